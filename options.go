package actionkit

import (
	"log/slog"

	"github.com/dmitrymomot/actionkit/pkg/casing"
)

// Option configures a Builder.
type Option func(*Builder)

// WithNamespace sets the separator joining nested action types.
// Empty separators are ignored; the default is DefaultNamespace.
func WithNamespace(sep string) Option {
	return func(b *Builder) {
		if sep != "" {
			b.namespace = sep
		}
	}
}

// WithKeyCase replaces camel-casing of creator keys. fn is applied to each
// namespace segment separately. Nil functions are ignored.
func WithKeyCase(fn func(segment string) string) Option {
	return func(b *Builder) {
		if fn != nil {
			b.keyCase = fn
		}
	}
}

// WithLogger enables debug logging of built creators.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

func defaultKeyCase(segment string) string {
	return casing.CamelCase(segment)
}
