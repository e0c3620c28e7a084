// Package logging builds the logrus logger shared by the API server and the
// admin CLI.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pageza/recipebox/config"
)

// NewLogger creates a configured Logrus logger. Development gets readable
// text output, every other environment gets JSON.
func NewLogger(env config.Environment, level string) *logrus.Logger {
	return newLogger(os.Stdout, env, level)
}

func newLogger(out io.Writer, env config.Environment, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if env == config.Development {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
