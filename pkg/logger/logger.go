package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger логгер сервиса с printf-style API поверх logrus
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

// New создает логгер. Пустой file - вывод в stdout.
// level: debug, info, warn, error (регистр не важен).
func New(file string, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	base := logrus.New()
	base.SetLevel(lvl)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	l := &Logger{}

	var out io.Writer = os.Stdout
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		out = io.MultiWriter(os.Stdout, f)
	}
	base.SetOutput(out)

	l.entry = logrus.NewEntry(base)
	return l, nil
}

// NewWithWriter создает логгер, пишущий в w (для тестов)
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	base := logrus.New()
	base.SetLevel(level)
	base.SetOutput(w)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &Logger{entry: logrus.NewEntry(base)}
}

// Nop логгер, который ничего не пишет
func Nop() *Logger {
	return NewWithWriter(io.Discard, logrus.PanicLevel)
}

// With возвращает логгер с дополнительным полем (например, module=http)
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value), file: l.file}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.entry.Debugf(format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.entry.Infof(format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.entry.Warnf(format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.entry.Errorf(format, v...) }

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) { l.entry.Fatalf(format, v...) }

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
