package postgres

import (
	"context"
	"errors"
	"net"

	"github.com/Gunvolt24/top_products/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

// classify — оборачивает ошибку pgx в domain.StoreError.
// Недоступность хранилища (сеть, таймаут, потеря соединения) всегда KindConnection,
// остальное получает fallback.
func classify(op string, err error, fallback domain.ErrorKind) error {
	if err == nil {
		return nil
	}
	var se *domain.StoreError
	if errors.As(err, &se) {
		return err
	}
	if isConnectionError(err) {
		return domain.NewStoreError(domain.KindConnection, op, err)
	}
	return domain.NewStoreError(fallback, op, err)
}

func isConnectionError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	// Класс 08 — connection exception; 57P01..57P03 — сервер останавливается/недоступен.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := pgErr.Code
		return len(code) == 5 && (code[:2] == "08" || code == "57P01" || code == "57P02" || code == "57P03")
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
