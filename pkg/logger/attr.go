package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// ActionType records a flat action type under the key "action_type".
func ActionType(actionType string) slog.Attr {
	return slog.String("action_type", actionType)
}

// CreatorKey records the camel-cased creator key under the key "creator_key".
func CreatorKey(key string) slog.Attr {
	return slog.String("creator_key", key)
}

// Namespace records the namespace separator under the key "namespace".
func Namespace(sep string) slog.Attr {
	return slog.String("namespace", sep)
}

// CreatorCount records how many creators were built under the key "creator_count".
func CreatorCount(n int) slog.Attr {
	return slog.Int("creator_count", n)
}

// Manifest records a manifest source under the key "manifest".
// If source is empty, it returns an empty Attr.
func Manifest(source string) slog.Attr {
	if source == "" {
		return slog.Attr{}
	}
	return slog.String("manifest", source)
}

// Command records the CLI command name under the key "command".
func Command(name string) slog.Attr {
	return slog.String("command", name)
}
