package actionkit

import "reflect"

// Action is the plain record produced by an ActionCreator.
type Action struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
	Error   bool   `json:"error,omitempty"`
	Meta    any    `json:"meta,omitempty"`

	hasMeta bool
}

// HasMeta reports whether a meta transformer produced Meta, even when it
// returned nil.
func (a Action) HasMeta() bool {
	return a.hasMeta
}

// ActionCreator builds actions of a single, fixed type.
// It is immutable and safe for concurrent use.
type ActionCreator struct {
	actionType    string
	payload       Transformer
	meta          Transformer
	customPayload bool
}

// CreateAction returns a creator for actionType. A nil payload transformer
// defaults to Identity, and passing Identity itself is the same as nil.
// A nil meta transformer leaves actions without meta.
func CreateAction(actionType string, payload, meta Transformer) *ActionCreator {
	c := &ActionCreator{
		actionType: actionType,
		payload:    Identity,
		meta:       meta,
	}
	if payload != nil && !isIdentity(payload) {
		c.payload = payload
		c.customPayload = true
	}
	return c
}

// Type returns the action type set on every created action.
func (c *ActionCreator) Type() string {
	return c.actionType
}

// String returns the action type, so a creator can stand in for its type in
// formatted output and comparisons.
func (c *ActionCreator) String() string {
	return c.actionType
}

// Create builds an action from args.
// Without a custom payload transformer, a non-nil error as the first
// argument becomes the payload and marks the action as an error.
func (c *ActionCreator) Create(args ...any) Action {
	action := Action{Type: c.actionType}

	if err, ok := firstError(args); ok && !c.customPayload {
		action.Payload = err
		action.Error = true
	} else {
		action.Payload = c.payload(args...)
	}

	if c.meta != nil {
		action.Meta = c.meta(args...)
		action.hasMeta = true
	}

	return action
}

// Func returns Create as a plain function value.
func (c *ActionCreator) Func() func(args ...any) Action {
	return c.Create
}

var identityPC = reflect.ValueOf(Identity).Pointer()

func isIdentity(fn Transformer) bool {
	return reflect.ValueOf(fn).Pointer() == identityPC
}

// firstError reports a non-nil error in args[0]. A typed nil pointer
// wrapped in an error interface is not an error.
func firstError(args []any) (error, bool) {
	if len(args) == 0 {
		return nil, false
	}
	err, ok := args[0].(error)
	if !ok || err == nil {
		return nil, false
	}
	if v := reflect.ValueOf(err); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return err, true
}
