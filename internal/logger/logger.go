package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init настраивает глобальный логгер: JSON для production, текст для development.
func Init(level string, env string) {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if env == "development" {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// WithComponent возвращает запись с полем component для логов конкретного слоя.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
