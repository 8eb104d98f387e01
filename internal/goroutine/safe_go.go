package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/creative-marketplace/internal/logger"
)

// Recover перехватывает панику и пишет её в лог со стеком. Вызывать через defer.
func Recover(name string) {
	if r := recover(); r != nil {
		logger.Log.WithFields(logrus.Fields{
			"goroutine": name,
			"panic":     r,
			"stack":     string(debug.Stack()),
		}).Error("паника в горутине")
	}
}

// Go запускает fn в отдельной горутине; паника не роняет процесс.
func Go(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}

// GoWithContext то же самое для функций, принимающих контекст.
func GoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		defer Recover(name)
		fn(ctx)
	}()
}
