// Package logging configures the process logger. Every log line goes to
// stderr: stdout carries protocol frames and must stay clean.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// New builds a logrus logger writing to w with the given level and format.
// level is any name logrus understands ("debug", "info", "warn", "error");
// format is "text" or "json".
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(parsed)

	switch format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q (must be 'text' or 'json')", format)
	}
	return logger, nil
}
