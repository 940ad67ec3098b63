package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв (внешний приёмник логов).
// Реализация маскирует реквизиты подключения в сообщениях до записи.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения (например, устаревший кэш).
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки слоя данных и точек входа.
}
