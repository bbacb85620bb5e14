// Package logging configures the zerolog logger used for diagnostics.
// Command results go to stdout; everything logged here goes to stderr.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Config holds logger configuration.
type Config struct {
	Level  string
	Pretty bool
	Out    io.Writer
}

var disabled = zerolog.Nop()

// New creates a configured zerolog.Logger.
func New(cfg Config) zerolog.Logger {
	var w io.Writer = cfg.Out
	if w == nil {
		w = os.Stderr
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// IsTerminal reports whether stderr is attached to a terminal.
func IsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type ctxKey struct{}

// WithLogger stores a logger in the context.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// Ctx retrieves the logger from the context.
// Without one, a disabled logger is returned so library code can log freely.
func Ctx(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
			return &l
		}
	}
	return &disabled
}

// levelAliases are accepted on top of zerolog's own level names.
var levelAliases = map[string]string{
	"warning": "warn",
	"off":     "disabled",
	"none":    "disabled",
}

func lookupLevel(s string) (zerolog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}
	if name == "" {
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	}
	return zerolog.ParseLevel(name)
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to DefaultLevel.
func ParseLevel(s string) zerolog.Level {
	level, err := lookupLevel(s)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// ValidLevel reports whether s names a level ParseLevel understands.
func ValidLevel(s string) bool {
	_, err := lookupLevel(s)
	return err == nil
}
