package initializers

import (
	"time"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func InitLogger(cfg Config) {
	Log = NewLogger(cfg.LogLevel, cfg.LogFormat)
}

// NewLogger builds a logger at the given level. Unknown levels fall back to
// info; format is "json" or anything else for text.
func NewLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})
	}
	return logger
}
