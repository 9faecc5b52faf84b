// Package logger builds *slog.Logger values for actionkit and its CLI.
//
// New applies a set of Option functions over JSON-at-info defaults, picks
// slog.NewTextHandler or slog.NewJSONHandler, attaches static attributes and
// wraps the result in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record.
//
// Attribute helpers in attr.go keep key names consistent across packages:
// ActionType, CreatorKey, Namespace, CreatorCount, Manifest, Component,
// Error and friends. Error and Errors return an empty Attr for nil errors,
// so callers can log without a nil check.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "actionkit"),
//	    logger.WithLevelName("debug"),
//	)
//
//	builder := actionkit.NewBuilder(actionkit.WithLogger(log))
//
// # Configuration
//
//   - WithEnvironment – text/debug for development, json/info for production.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel / WithLevelName – minimum level.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes from context.
//
// WithFormat and WithLevelName panic on invalid input.
package logger
