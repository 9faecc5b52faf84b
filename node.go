package actionkit

import (
	"iter"
	"slices"
)

// Transformer turns the raw arguments of an action creator call into a
// payload or meta value.
type Transformer func(args ...any) any

// Identity returns its first argument, or nil when called without arguments.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// Pair declares a payload transformer together with a meta transformer.
// A nil Payload defaults to Identity; Meta is required.
type Pair struct {
	Payload Transformer
	Meta    Transformer
}

// Entry is a single key/value of an actions map literal.
type Entry struct {
	Key   string
	Value any
}

// E is shorthand for Entry{Key: key, Value: value}.
func E(key string, value any) Entry {
	return Entry{Key: key, Value: value}
}

// Map is an insertion-ordered actions map. Values may be transformers
// (Transformer, func(...any) any, func(any) any, func() any), pairs
// (Pair, []Transformer, []any of [payload, meta]) or nested maps
// (*Map, map[string]any).
type Map struct {
	entries *orderedMap[any]
}

// NewMap creates an actions map from entries, preserving their order.
// A repeated key keeps its first position and takes the last value.
func NewMap(entries ...Entry) *Map {
	m := &Map{entries: newOrderedMap[any](len(entries))}
	for _, e := range entries {
		m.entries.set(e.Key, e.Value)
	}
	return m
}

// Set adds or replaces a key and returns the map for chaining.
func (m *Map) Set(key string, value any) *Map {
	if m.entries == nil {
		m.entries = newOrderedMap[any](1)
	}
	m.entries.set(key, value)
	return m
}

// Get returns the raw value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil || m.entries == nil {
		return nil, false
	}
	return m.entries.get(key)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.len()
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil || m.entries == nil {
		return nil
	}
	return m.entries.keyList()
}

func (m *Map) all() iter.Seq2[string, any] {
	if m == nil || m.entries == nil {
		return func(func(string, any) bool) {}
	}
	return m.entries.all()
}

// Node is a parsed actions map value: either a Leaf or a *Namespace.
type Node interface {
	isNode()
}

// Leaf is a validated transformer declaration. A nil Payload means the
// identity default; a nil Meta means actions carry no meta.
type Leaf struct {
	Payload Transformer
	Meta    Transformer
}

func (Leaf) isNode() {}

// Namespace is a validated, non-empty nesting level of an actions map.
type Namespace struct {
	children *orderedMap[Node]
}

func (*Namespace) isNode() {}

// Len returns the number of children.
func (n *Namespace) Len() int {
	if n == nil {
		return 0
	}
	return n.children.len()
}

// Keys returns the child keys in insertion order.
func (n *Namespace) Keys() []string {
	if n == nil {
		return nil
	}
	return n.children.keyList()
}

// Child returns the node stored under key.
func (n *Namespace) Child(key string) (Node, bool) {
	if n == nil {
		return nil, false
	}
	return n.children.get(key)
}

// All iterates children in insertion order.
func (n *Namespace) All() iter.Seq2[string, Node] {
	if n == nil {
		return func(func(string, Node) bool) {}
	}
	return n.children.all()
}

// IsValid reports whether value is an acceptable actions map value: a
// transformer, a [payload, meta] pair with a function meta, or a non-empty
// mapping whose values are all valid.
func IsValid(value any) bool {
	_, ok := parseNode(value)
	return ok
}

// Parse converts an untyped actions map value into a Node.
func Parse(value any) (Node, error) {
	node, ok := parseNode(value)
	if !ok {
		return nil, NewConfigurationError("", reasonInvalidValue)
	}
	return node, nil
}

func parseNode(value any) (Node, bool) {
	switch v := value.(type) {
	case Leaf:
		return v, true
	case *Namespace:
		return v, v.Len() > 0
	}
	if fn, ok := asTransformer(value); ok {
		return Leaf{Payload: fn}, true
	}
	if leaf, ok, isPair := parsePair(value); isPair {
		return leaf, ok
	}
	if entries, isMapping := mappingEntries(value); isMapping {
		if len(entries) == 0 {
			return nil, false
		}
		ns := &Namespace{children: newOrderedMap[Node](len(entries))}
		for _, e := range entries {
			child, ok := parseNode(e.Value)
			if !ok {
				return nil, false
			}
			ns.children.set(e.Key, child)
		}
		return ns, true
	}
	return nil, false
}

// parsePair reports isPair=true when value has a pair shape, regardless of
// whether its elements are valid.
func parsePair(value any) (leaf Leaf, ok bool, isPair bool) {
	var elems []any
	switch v := value.(type) {
	case Pair:
		if v.Meta == nil {
			return Leaf{}, false, true
		}
		return Leaf{Payload: v.Payload, Meta: v.Meta}, true, true
	case []Transformer:
		elems = make([]any, len(v))
		for i, fn := range v {
			if fn != nil {
				elems[i] = fn
			}
		}
	case []any:
		elems = v
	default:
		return Leaf{}, false, false
	}

	if len(elems) != 2 {
		return Leaf{}, false, true
	}

	var payload Transformer
	if elems[0] != nil && !isNilTransformer(elems[0]) {
		fn, ok := asTransformer(elems[0])
		if !ok {
			return Leaf{}, false, true
		}
		payload = fn
	}
	meta, ok := asTransformer(elems[1])
	if !ok {
		return Leaf{}, false, true
	}
	return Leaf{Payload: payload, Meta: meta}, true, true
}

// isNilTransformer reports a typed nil function in an untyped slot.
func isNilTransformer(value any) bool {
	switch fn := value.(type) {
	case Transformer:
		return fn == nil
	case func(...any) any:
		return fn == nil
	case func(any) any:
		return fn == nil
	case func() any:
		return fn == nil
	}
	return false
}

func asTransformer(value any) (Transformer, bool) {
	switch fn := value.(type) {
	case Transformer:
		return fn, fn != nil
	case func(...any) any:
		return fn, fn != nil
	case func(any) any:
		if fn == nil {
			return nil, false
		}
		return func(args ...any) any { return fn(Identity(args...)) }, true
	case func() any:
		if fn == nil {
			return nil, false
		}
		return func(...any) any { return fn() }, true
	}
	return nil, false
}

// mappingEntries returns the ordered entries of a mapping value. Plain Go
// maps have no order, so their keys are sorted.
func mappingEntries(value any) ([]Entry, bool) {
	switch m := value.(type) {
	case *Map:
		if m == nil {
			return nil, true
		}
		out := make([]Entry, 0, m.Len())
		for k, v := range m.all() {
			out = append(out, Entry{Key: k, Value: v})
		}
		return out, true
	case map[string]any:
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]Entry, 0, len(m))
		for _, k := range keys {
			out = append(out, Entry{Key: k, Value: m[k]})
		}
		return out, true
	case *Namespace:
		if m == nil {
			return nil, true
		}
		out := make([]Entry, 0, m.Len())
		for k, v := range m.All() {
			out = append(out, Entry{Key: k, Value: v})
		}
		return out, true
	}
	return nil, false
}
