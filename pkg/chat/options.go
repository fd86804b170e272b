package chat

import loggerpkg "github.com/minhyannv/gemini-chat-go/pkg/logger"

// Option configures optional dependencies for sessions.
type Option func(*sessionDeps)

type sessionDeps struct {
	logger loggerpkg.Logger
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *sessionDeps) {
		d.logger = loggerpkg.OrNop(l)
	}
}

func applyOptions(opts []Option) sessionDeps {
	deps := sessionDeps{logger: loggerpkg.NopLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	return deps
}
