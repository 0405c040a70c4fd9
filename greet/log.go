package greet

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger builds a stdout logger, which is where the Lambda runtime
// collects function logs from.
func NewLogger(level string, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	switch format {
	case "", LogFormatText:
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case LogFormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("greet: unrecognized log format: %q", format)
	}

	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("greet: %w", err)
	}
	l.SetLevel(lvl)

	return l, nil
}

// BuildLogger returns the configured Logger, or a new one built from the
// log level and format. Debug mode lowers the level to debug.
func (o *Options) BuildLogger() (*logrus.Logger, error) {
	if o.Logger != nil {
		return o.Logger, nil
	}
	l, err := NewLogger(o.LogLevel, o.LogFormat)
	if err != nil {
		return nil, err
	}
	if o.DebugMode {
		l.SetLevel(logrus.DebugLevel)
	}
	return l, nil
}
