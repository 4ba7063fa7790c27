package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	global *zerolog.Logger
	mu     sync.Mutex
)

// GetLogger returns the process-wide logger. Before Configure runs it
// hands out a console logger at info level.
func GetLogger() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		l := build(consoleWriter()).Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		global = &l
	}
	return global
}

// Configure replaces the process-wide logger according to LOG_LEVEL and
// LOG_FORMAT. Format is "json" or "console".
func Configure(level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "json":
		out = os.Stdout
	case "console":
		out = consoleWriter()
	default:
		return errors.New("unsupported log format")
	}

	zerolog.SetGlobalLevel(lvl)

	l := build(out).Level(lvl)
	mu.Lock()
	global = &l
	mu.Unlock()
	return nil
}

func build(out io.Writer) zerolog.Logger {
	return zerolog.New(out).With().Timestamp().Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}
