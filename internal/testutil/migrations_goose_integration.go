//go:build integration

package testutil

import (
	"context"
	"time"

	"github.com/Gunvolt24/top_products/migrations"
)

// ApplyMigrationsGoose — применяет встроенные миграции к тестовой БД.
func ApplyMigrationsGoose(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	return migrations.Up(ctx, dsn)
}
