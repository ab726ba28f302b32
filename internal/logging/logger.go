// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Output formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger options.
type Config struct {
	// Level is one of silent, error, warn, info, verbose, silly or a zerolog level name.
	Level  string
	Format string
	Out    io.Writer
}

// New creates a logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if useConsole(cfg.Format, out) {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    os.Getenv("NO_COLOR") != "" || !isTerminal(out),
			PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		}
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Str("cmd", "lerna").Logger()
}

// ParseLevel maps npm-style log levels onto zerolog levels.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "silent", "off", "none":
		return zerolog.Disabled
	case "error":
		return zerolog.ErrorLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "", "info", "notice", "success", "http":
		return zerolog.InfoLevel
	case "verbose", "debug":
		return zerolog.DebugLevel
	case "silly", "trace":
		return zerolog.TraceLevel
	}
	if l, err := zerolog.ParseLevel(level); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

func useConsole(format string, out io.Writer) bool {
	switch strings.ToLower(format) {
	case FormatConsole:
		return true
	case FormatJSON:
		return false
	default:
		return isTerminal(out)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
