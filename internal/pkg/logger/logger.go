package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	Encoding  string `envconfig:"ENCODING" default:"console"`
	Level     string `envconfig:"LEVEL" default:"info"`
	AddSource bool   `envconfig:"ADD_SOURCE" default:"false"`
}

// New создаёт логгер приложения. Неверный конфиг это ошибка запуска, поэтому паника.
func New(app string, cfg *Config) *slog.Logger {
	handler, err := newHandler(os.Stdout, os.Stderr, cfg)
	if err != nil {
		panic(fmt.Errorf("invalid logger config: %w", err))
	}

	return slog.New(handler).With("app", app)
}

func newHandler(stdout, stderr io.Writer, cfg *Config) (slog.Handler, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	switch strings.ToLower(cfg.Encoding) {
	case "json":
		return slog.NewJSONHandler(stdout, opts), nil
	case "", "console":
		return NewConsoleHandler(stderr, opts), nil
	default:
		return nil, fmt.Errorf("encoding %s is not supported", cfg.Encoding)
	}
}

// ParseLevel понимает debug, info, warn (warning), error; пустая строка это info
func ParseLevel(level string) (slog.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		level = "warn"
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("level %s is not supported", level)
	}
	return l, nil
}

// NewConsoleHandler текстовый вывод для локальной разработки:
// короткое время и file:line вместо полного пути к исходнику.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	consoleOpts := *opts
	consoleOpts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}

		switch a.Key {
		case slog.TimeKey:
			return slog.String(slog.TimeKey, a.Value.Time().Format(time.TimeOnly+".000"))
		case slog.SourceKey:
			if src, ok := a.Value.Any().(*slog.Source); ok {
				return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
			}
		}
		return a
	}

	return slog.NewTextHandler(w, &consoleOpts)
}
