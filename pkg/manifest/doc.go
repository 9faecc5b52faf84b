// Package manifest loads actions maps declared in YAML and resolves their
// transformer names against a Registry.
//
// A manifest looks like this:
//
//	namespace: "/"          # optional, defaults to actionkit.DefaultNamespace
//	identity: [RESET]       # optional identity action types
//	actions:
//	  INCREMENT: identity             # transformer name
//	  NOTIFY: [identity, correlation_id]  # [payload, meta] pair
//	  APP:                            # nested namespace
//	    LOADED: none
//	    FAILED: [~, correlation_id]   # null payload defaults to identity
//
// Key order is taken from the document, so creators come back in the order
// they were declared.
//
// # Usage
//
//	reg := manifest.NewRegistry().
//	    MustRegister("upper", func(args ...any) any { return strings.ToUpper(args[0].(string)) })
//
//	m, err := manifest.LoadFile("actions.yaml", reg)
//	if err != nil {
//	    return err
//	}
//	creators, err := m.Build()
//
// # Built-in transformers
//
//   - identity – first argument
//   - none – always nil
//   - args – all arguments as []any
//   - first_error_message – error text when the first argument is an error
//   - correlation_id – {"correlation_id": <uuid>}, meant for meta
//
// # Error Handling
//
// Load fails with ErrInvalidManifest for documents of the wrong shape and
// ErrUnknownTransformer for unregistered names. Shape problems inside the
// actions map, such as an empty namespace, surface from Build as
// *actionkit.ConfigurationError.
package manifest
