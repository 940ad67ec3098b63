// Пакет ctxmeta — метаданные запроса/запуска, которые прокидываются через context.Context
// (request_id HTTP-запроса, run_id запуска обновления кэша, trace_id).
// HTTP-слой, джоба обновления и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyRunID     ctxKey = "run_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithRunID кладёт идентификатор запуска обновления кэша.
func WithRunID(ctx context.Context, runID string) context.Context {
	return withString(ctx, KeyRunID, runID)
}

// RunIDFromContext достаёт run_id из контекста.
func RunIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRunID)
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
