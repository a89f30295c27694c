package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

// InitLogger configures the process logger. Unknown levels fall back to info.
func InitLogger(level, format string) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// GetLogger returns the process logger. Packages may grab it at init time;
// InitLogger mutates the same instance afterwards.
func GetLogger() *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current()
}

func current() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
