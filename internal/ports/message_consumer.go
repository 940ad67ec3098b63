package ports

import "context"

// MessageConsumer — фоновый читатель событий об обновлении кэша.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
