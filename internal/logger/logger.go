package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the process logger: JSON lines in production, readable text
// everywhere else.
func New(level string, production bool, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if production {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	log.SetLevel(lvl)
	log.SetOutput(out)

	return log
}
