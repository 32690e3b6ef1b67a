package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DEBUG int = iota
	INFO
	WARNING
	ERROR
	SILENCE
)

type Logger interface {
	Debugf(msg string, a ...any)
	Infof(msg string, a ...any)
	Warnf(msg string, a ...any)
	Errorf(msg string, a ...any)
}

type defaultLogger struct {
	level int
	l     *logrus.Logger
}

// NewLogger returns a logger writing to stdout and, when file is not empty,
// to a rotated log file as well.
func NewLogger(level int, file string) *defaultLogger {
	var out io.Writer = os.Stdout
	if file != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    500, // megabytes
			MaxAge:     0,   // days
			MaxBackups: 0,
			Compress:   true,
		})
	}

	return newLogger(level, out)
}

func newLogger(level int, out io.Writer) *defaultLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
	})
	l.SetOutput(out)
	l.SetLevel(logrus.TraceLevel)
	if level >= SILENCE {
		l.SetOutput(io.Discard)
	}

	return &defaultLogger{level: level, l: l}
}

// ParseLevel converts a level name such as "info" or "warning" to its constant.
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "silence", "silent", "off":
		return SILENCE, nil
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

func (l *defaultLogger) Debugf(msg string, a ...any) {
	if l.level <= DEBUG {
		l.l.Debugf(msg, a...)
	}
}

func (l *defaultLogger) Infof(msg string, a ...any) {
	if l.level <= INFO {
		l.l.Infof(msg, a...)
	}
}

func (l *defaultLogger) Warnf(msg string, a ...any) {
	if l.level <= WARNING {
		l.l.Warnf(msg, a...)
	}
}

func (l *defaultLogger) Errorf(msg string, a ...any) {
	if l.level <= ERROR {
		l.l.Errorf(msg, a...)
	}
}
