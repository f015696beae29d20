package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger used by the command line tools.
var Log = logrus.New()

// Init configures Log from the environment. It should be called once from main.
//
// LOG_LEVEL sets the level (default "info"); LOG_FORMAT=json switches to the
// JSON formatter, anything else gives coloured text.
func Init() {
	Configure(Log, os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Configure applies level and format to l, writing to out.
func Configure(l *logrus.Logger, out io.Writer, level, format string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
	l.SetOutput(out)
}
