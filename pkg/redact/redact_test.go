package redact_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/top_products/pkg/redact"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		secrets []string
	}{
		{
			name:    "password token",
			in:      "connect failed: password=secret123",
			want:    "connect failed: password=[REDACTED]",
			secrets: []string{"secret123"},
		},
		{
			name:    "libpq dsn",
			in:      "failed to connect to `host=db.internal user=app database=orders`: dial error",
			want:    "failed to connect to `host=[REDACTED] user=[REDACTED] database=[REDACTED]`: dial error",
			secrets: []string{"db.internal", "app", "orders"},
		},
		{
			name:    "semicolon separated",
			in:      "Host=db;User=root;Password=hunter2;Database=shop",
			want:    "Host=[REDACTED];User=[REDACTED];Password=[REDACTED];Database=[REDACTED]",
			secrets: []string{"hunter2", "root", "shop"},
		},
		{
			name:    "url credentials",
			in:      "parse postgres://app:s3cr3t@pg:5432/orders failed",
			want:    "parse postgres://[REDACTED]@pg:5432/orders failed",
			secrets: []string{"s3cr3t"},
		},
		{
			name:    "quoted value",
			in:      `password: "with space"`,
			want:    "password: [REDACTED]",
			secrets: []string{"with space"},
		},
		{
			name:    "pgx resolve error",
			in:      "failed to connect to `user=app database=shop`: hostname resolving error: lookup db-primary.internal on 127.0.0.11:53: no such host",
			want:    "failed to connect to `user=[REDACTED] database=[REDACTED]`: hostname resolving error: lookup [REDACTED] on 127.0.0.11:53: no such host",
			secrets: []string{"db-primary.internal", "app", "shop"},
		},
		{
			name:    "pgx dial error",
			in:      "failed to connect to `user=app database=shop`: 10.0.4.17:5432 (db-primary.internal): dial error: dial tcp 10.0.4.17:5432: connect: connection refused",
			want:    "failed to connect to `user=[REDACTED] database=[REDACTED]`: [REDACTED]: dial error: dial tcp [REDACTED]: connect: connection refused",
			secrets: []string{"db-primary.internal", "10.0.4.17"},
		},
		{
			name:    "ipv6 address with host",
			in:      "failed to connect to `user=app database=shop`: [::1]:5432 (localhost): server error",
			want:    "failed to connect to `user=[REDACTED] database=[REDACTED]`: [REDACTED]: server error",
			secrets: []string{"localhost", "::1"},
		},
		{
			name:    "read timeout",
			in:      "read tcp 172.18.0.3:51234->172.18.0.2:5432: i/o timeout",
			want:    "read tcp [REDACTED]: i/o timeout",
			secrets: []string{"172.18.0.2"},
		},
		{
			name:    "lookup without server",
			in:      "lookup pg.local: no such host",
			want:    "lookup [REDACTED]: no such host",
			secrets: []string{"pg.local"},
		},
		{
			name: "colon form only for passwords",
			in:   "user: not found; host: unknown; password: hunter2",
			want: "user: not found; host: unknown; password: [REDACTED]",
		},
		{
			name: "prose lookup is kept",
			in:   "cache lookup missed",
			want: "cache lookup missed",
		},
		{
			name: "nothing to redact",
			in:   "relation \"top_products_cache\" does not exist",
			want: "relation \"top_products_cache\" does not exist",
		},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := redact.String(tt.in)
			if got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for _, s := range tt.secrets {
				if strings.Contains(got, s) {
					t.Fatalf("secret %q leaked in %q", s, got)
				}
			}
		})
	}
}

func TestError(t *testing.T) {
	if got := redact.Error(nil); got != "" {
		t.Fatalf("Error(nil) = %q, want empty", got)
	}
	got := redact.Error(errors.New("auth: password=secret123"))
	if strings.Contains(got, "secret123") || !strings.Contains(got, redact.Marker) {
		t.Fatalf("Error() = %q, want redacted", got)
	}
}
