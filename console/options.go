package console

import (
	"io"
	"time"
)

// Option represents console option
type Option func(c *Console)

// Options represents console options
type Options []Option

// Apply applies options
func (o Options) Apply(c *Console) {
	for _, opt := range o {
		opt(c)
	}
}

// WithOutput mirrors printed lines to w
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.output = w
	}
}

// WithClock sets timestamp source
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// WithTimeLayout sets timestamp layout
func WithTimeLayout(layout string) Option {
	return func(c *Console) {
		if layout != "" {
			c.timeLayout = layout
		}
	}
}

// WithHistoryLimit caps command history, 0 keeps all commands
func WithHistoryLimit(limit int) Option {
	return func(c *Console) {
		c.historyLimit = limit
	}
}

// WithRegistry sets command registry
func WithRegistry(registry *Registry) Option {
	return func(c *Console) {
		if registry != nil {
			c.registry = registry
		}
	}
}
