package gif89

import (
	"github.com/loopdecode/gif89/internal/container"
	"github.com/sirupsen/logrus"
)

// Logger receives debug-level tracing of the parser's block-by-block
// state transitions. It is structurally satisfied by *logrus.Logger, so
// callers can pass one directly without a wrapper.
type Logger = container.Logger

// Option configures a Decode call.
type Option func(*config)

type config struct {
	logger Logger
}

// WithLogger enables debug tracing of the parser's state transitions
// through the given Logger. Parsing is silent by default.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

// NewLogrusLogger returns a *logrus.Logger at debug level, ready to pass
// to WithLogger. Output goes to the logger's default destination
// (stderr) unless the caller reconfigures it first.
func NewLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return l
}
