package internal

import "github.com/mosgid/gid/internal/events"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config      *Config
	eventSource events.Source
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithEventSource overrides the event source (null by default). Used by
// tests and future live feeds.
func WithEventSource(src events.Source) Option {
	return func(a *application) {
		a.eventSource = src
	}
}
