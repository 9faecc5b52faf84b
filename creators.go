package actionkit

import (
	"iter"
	"strings"
)

// Creators is the ordered, possibly nested result of CreateActions. A key can
// hold an action creator, a nested namespace, or both when one flat type is a
// namespace prefix of another.
type Creators struct {
	entries *orderedMap[*creatorsEntry]
}

type creatorsEntry struct {
	creator  *ActionCreator
	children *Creators
}

func newCreators(capacity int) *Creators {
	return &Creators{entries: newOrderedMap[*creatorsEntry](capacity)}
}

// Get returns the action creator stored directly under key.
func (c *Creators) Get(key string) (*ActionCreator, bool) {
	e, ok := c.entry(key)
	if !ok || e.creator == nil {
		return nil, false
	}
	return e.creator, true
}

// Namespace returns the nested creators stored under key.
func (c *Creators) Namespace(key string) (*Creators, bool) {
	e, ok := c.entry(key)
	if !ok || e.children == nil {
		return nil, false
	}
	return e.children, true
}

// Lookup follows path through nested namespaces and returns the creator at
// its end.
func (c *Creators) Lookup(path ...string) (*ActionCreator, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur := c
	for _, key := range path[:len(path)-1] {
		next, ok := cur.Namespace(key)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur.Get(path[len(path)-1])
}

// MustLookup is like Lookup but panics when no creator exists at path.
func (c *Creators) MustLookup(path ...string) *ActionCreator {
	creator, ok := c.Lookup(path...)
	if !ok {
		panic("actionkit: no action creator at path " + formatPath(path))
	}
	return creator
}

// Keys returns the top-level keys in insertion order.
func (c *Creators) Keys() []string {
	if c == nil {
		return nil
	}
	return c.entries.keyList()
}

// Len returns the number of top-level keys.
func (c *Creators) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.len()
}

// All iterates every creator depth-first in insertion order together with
// its key path.
func (c *Creators) All() iter.Seq2[[]string, *ActionCreator] {
	return func(yield func([]string, *ActionCreator) bool) {
		c.walk(nil, yield)
	}
}

// Types returns the action type of every creator in All order.
func (c *Creators) Types() []string {
	var types []string
	for _, creator := range c.All() {
		types = append(types, creator.Type())
	}
	return types
}

func (c *Creators) walk(prefix []string, yield func([]string, *ActionCreator) bool) bool {
	if c == nil {
		return true
	}
	for key, e := range c.entries.all() {
		path := append(append(make([]string, 0, len(prefix)+1), prefix...), key)
		if e.creator != nil && !yield(path, e.creator) {
			return false
		}
		if e.children != nil && !e.children.walk(path, yield) {
			return false
		}
	}
	return true
}

func (c *Creators) entry(key string) (*creatorsEntry, bool) {
	if c == nil {
		return nil, false
	}
	return c.entries.get(key)
}

func (c *Creators) set(key string, creator *ActionCreator) {
	e, ok := c.entries.get(key)
	if !ok {
		e = &creatorsEntry{}
		c.entries.set(key, e)
	}
	e.creator = creator
}

func (c *Creators) setPath(path []string, creator *ActionCreator) {
	cur := c
	for _, key := range path[:len(path)-1] {
		e, ok := cur.entries.get(key)
		if !ok {
			e = &creatorsEntry{}
			cur.entries.set(key, e)
		}
		if e.children == nil {
			e.children = newCreators(1)
		}
		cur = e.children
	}
	cur.set(path[len(path)-1], creator)
}

func formatPath(path []string) string {
	return strings.Join(path, ".")
}
