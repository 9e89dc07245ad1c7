package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. Пустой level выбирает уровень по GIN_MODE: info в продакшн, debug в остальных
// окружениях. Неизвестный level трактуется как info.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	release := os.Getenv("GIN_MODE") == "release"
	if !release {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch parsed, err := logrus.ParseLevel(level); {
	case level == "" && !release:
		l.SetLevel(logrus.DebugLevel)
	case err == nil:
		l.SetLevel(parsed)
	}
	return l
}

// Component логгер подсистемы. Все записи получают поле component.
func Component(l logrus.FieldLogger, name string) *logrus.Entry {
	return l.WithField("component", name)
}
