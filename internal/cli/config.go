package cli

import "log/slog"

// Option configures a parse.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger traces classification decisions at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
