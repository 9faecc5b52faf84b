package manifest

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/actionkit"
)

// Built-in transformer names.
const (
	Identity          = "identity"
	None              = "none"
	Args              = "args"
	FirstErrorMessage = "first_error_message"
	CorrelationID     = "correlation_id"
)

// Registry resolves transformer names used in manifests.
// It is safe for concurrent use.
type Registry struct {
	mu           sync.RWMutex
	transformers map[string]actionkit.Transformer
}

// NewRegistry returns a registry holding the built-in transformers.
func NewRegistry() *Registry {
	r := &Registry{transformers: make(map[string]actionkit.Transformer)}
	r.transformers[Identity] = actionkit.Identity
	r.transformers[None] = func(...any) any { return nil }
	r.transformers[Args] = func(args ...any) any { return slices.Clone(args) }
	r.transformers[FirstErrorMessage] = firstErrorMessage
	r.transformers[CorrelationID] = func(...any) any {
		return map[string]any{"correlation_id": uuid.NewString()}
	}
	return r
}

// Register adds a named transformer. Names are unique.
func (r *Registry) Register(name string, fn actionkit.Transformer) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: name and transformer are required", ErrInvalidManifest)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transformers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateTransformer, name)
	}
	r.transformers[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, fn actionkit.Transformer) *Registry {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the transformer registered under name.
func (r *Registry) Lookup(name string) (actionkit.Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.transformers[name]
	return fn, ok
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.transformers))
	for name := range r.transformers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func firstErrorMessage(args ...any) any {
	if len(args) > 0 {
		if err, ok := args[0].(error); ok && err != nil {
			return err.Error()
		}
	}
	return actionkit.Identity(args...)
}
