package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging writes JSON to stderr so log lines never interleave with the
// menu on stdout. Callers raise the level from config.
func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stderr,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.ErrorLevel,
	}

	return &logger
}
