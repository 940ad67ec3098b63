// Команда refresh — один цикл обновления кэша популярных товаров.
// Запускается внешним планировщиком (cron, k8s CronJob); код выхода 0 — успех, 1 — ошибка.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
