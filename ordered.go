package actionkit

import "iter"

// orderedMap keeps keys in first-insertion order. Setting an existing key
// replaces its value in place.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any](capacity int) *orderedMap[V] {
	return &orderedMap[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

func (m *orderedMap[V]) set(key string, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *orderedMap[V]) all() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *orderedMap[V]) keyList() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}
