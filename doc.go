// Package actionkit builds action creators from declarative actions maps for
// unidirectional data-flow state management.
//
// An actions map pairs action types with transformers that compute an
// action's payload and, optionally, its meta. actionkit validates the map,
// flattens nested namespaces into joined types ("APP/LOADED"), builds one
// immutable ActionCreator per type and returns them keyed by camel-cased
// name, nested again by namespace.
//
// Key Features:
//
//   - Plain transformer, [payload, meta] pair and nested namespace values
//   - Identity actions declared by type name alone
//   - Error payloads flagged automatically for identity creators
//   - Insertion-ordered maps for deterministic output
//   - Fail-fast validation with a single ConfigurationError kind
//
// Basic Usage:
//
//	creators, err := actionkit.CreateActions(actionkit.NewMap(
//		actionkit.E("INCREMENT", func(amount any) any { return amount }),
//		actionkit.E("APP", actionkit.NewMap(
//			actionkit.E("LOADED", func() any { return nil }),
//		)),
//		actionkit.E("NOTIFY", []any{
//			func(text any) any { return text },
//			func() any { return map[string]any{"important": true} },
//		}),
//	), "RESET")
//	if err != nil {
//		return err
//	}
//
//	creators.MustLookup("increment").Create(5)
//	// Action{Type: "INCREMENT", Payload: 5}
//
//	creators.MustLookup("app", "loaded").Type()
//	// "APP/LOADED"
//
// Identity-only creators come back flat:
//
//	creators, _ := actionkit.CreateActions("FETCH", "APP/READY")
//	creators.Get("app/ready")
//
// Error Handling:
//
// CreateActions either returns every creator or a *ConfigurationError and
// nothing else. The error names the offending top-level type when an actions
// map value is invalid:
//
//	if actionkit.IsConfigurationError(err) { /* ... */ }
//	if errors.Is(err, actionkit.ErrConfiguration) { /* ... */ }
//
// Namespaces:
//
// Nested keys are joined with "/" by default. Use a Builder to change it:
//
//	b := actionkit.NewBuilder(actionkit.WithNamespace("--"))
//	creators, err := b.Build(actionsMap)
//
// When two namespace paths join to the same type, the one declared later
// wins. Identity types passed after a map override map entries the same way.
//
// Concurrency:
//
// Builders and creators never change after construction and are safe for
// concurrent use. Transformers are called on the caller's goroutine.
package actionkit
