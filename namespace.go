package actionkit

import (
	"iter"
	"strings"
)

// DefaultNamespace joins namespace segments in flat action types,
// e.g. "APP/LOADED".
const DefaultNamespace = "/"

// FlatMap is an insertion-ordered mapping from a joined action type to its
// leaf declaration. It never contains nested namespaces.
type FlatMap struct {
	entries *orderedMap[Leaf]
}

// Len returns the number of flat action types.
func (f *FlatMap) Len() int {
	if f == nil {
		return 0
	}
	return f.entries.len()
}

// Keys returns the flat action types in insertion order.
func (f *FlatMap) Keys() []string {
	if f == nil {
		return nil
	}
	return f.entries.keyList()
}

// Get returns the leaf stored under a flat action type.
func (f *FlatMap) Get(actionType string) (Leaf, bool) {
	if f == nil {
		return Leaf{}, false
	}
	return f.entries.get(actionType)
}

// All iterates entries in insertion order.
func (f *FlatMap) All() iter.Seq2[string, Leaf] {
	if f == nil {
		return func(func(string, Leaf) bool) {}
	}
	return f.entries.all()
}

// Flatten walks ns depth-first in insertion order and joins nested keys with
// sep. When two paths join to the same type, the later leaf wins and the
// type keeps the position of its first occurrence.
func Flatten(ns *Namespace, sep string) *FlatMap {
	flat := &FlatMap{entries: newOrderedMap[Leaf](ns.Len())}
	flattenInto(flat, ns, "", sep)
	return flat
}

func flattenInto(flat *FlatMap, ns *Namespace, prefix, sep string) {
	for key, node := range ns.All() {
		actionType := key
		if prefix != "" {
			actionType = prefix + sep + key
		}
		switch n := node.(type) {
		case Leaf:
			flat.entries.set(actionType, n)
		case *Namespace:
			flattenInto(flat, n, actionType, sep)
		}
	}
}

// Unflatten splits every name on sep and nests its creator under the
// resulting path. Names sharing a prefix share the intermediate namespace.
func Unflatten(flat iter.Seq2[string, *ActionCreator], sep string) *Creators {
	root := newCreators(0)
	for name, creator := range flat {
		root.setPath(splitNamespace(name, sep), creator)
	}
	return root
}

func splitNamespace(name, sep string) []string {
	if sep == "" {
		return []string{name}
	}
	return strings.Split(name, sep)
}
