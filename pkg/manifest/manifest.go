package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/actionkit"
)

// Manifest is a parsed actions manifest.
type Manifest struct {
	// Source is the file path the manifest was loaded from, if any.
	Source string
	// Namespace overrides the namespace separator when non-empty.
	Namespace string
	// Identity lists identity action types.
	Identity []string
	// Actions is the actions map with transformer names resolved.
	Actions *actionkit.Map
}

// Build creates the action creators described by the manifest. The
// manifest's namespace applies first, so opts can still override it.
func (m *Manifest) Build(opts ...actionkit.Option) (*actionkit.Creators, error) {
	all := make([]actionkit.Option, 0, len(opts)+1)
	all = append(all, actionkit.WithNamespace(m.Namespace))
	all = append(all, opts...)

	identity := make([]any, len(m.Identity))
	for i, t := range m.Identity {
		identity[i] = t
	}

	actions := m.Actions
	if actions == nil {
		actions = actionkit.NewMap()
	}
	return actionkit.NewBuilder(all...).Build(actions, identity...)
}

// LoadFile reads a manifest from path.
func LoadFile(path string, reg *Registry) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := Load(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Source = path
	return m, nil
}

// Load decodes a YAML manifest from r and resolves transformer names
// against reg. A nil reg uses NewRegistry.
func Load(r io.Reader, reg *Registry) (*Manifest, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrInvalidManifest, root.Line)
	}

	m := &Manifest{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case "namespace":
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: namespace must be a string (line %d)", ErrInvalidManifest, value.Line)
			}
			m.Namespace = value.Value
		case "identity":
			types, err := decodeIdentity(value)
			if err != nil {
				return nil, err
			}
			m.Identity = types
		case "actions":
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: actions must be a mapping (line %d)", ErrInvalidManifest, value.Line)
			}
			actions, err := decodeMap(value, reg, nil)
			if err != nil {
				return nil, err
			}
			m.Actions = actions
		default:
			return nil, fmt.Errorf("%w: unknown field %q (line %d)", ErrInvalidManifest, key.Value, key.Line)
		}
	}

	return m, nil
}

func decodeIdentity(n *yaml.Node) ([]string, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: identity must be a list of action types (line %d)", ErrInvalidManifest, n.Line)
	}
	types := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, fmt.Errorf("%w: identity action type must be a string (line %d)", ErrInvalidManifest, item.Line)
		}
		types = append(types, item.Value)
	}
	return types, nil
}

func decodeMap(n *yaml.Node, reg *Registry, path []string) (*actionkit.Map, error) {
	m := actionkit.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		value, err := decodeValue(resolve(n.Content[i+1]), reg, append(slices.Clip(path), key))
		if err != nil {
			return nil, err
		}
		m.Set(key, value)
	}
	return m, nil
}

// decodeValue maps a YAML node onto an actions map value: scalar names a
// transformer, sequence is a [payload, meta] pair, mapping is a namespace.
// Shape errors are left to actionkit's validation.
func decodeValue(n *yaml.Node, reg *Registry, path []string) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return decodeMap(n, reg, path)
	case yaml.SequenceNode:
		pair := make([]any, len(n.Content))
		for i, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: %s: pair elements must be transformer names (line %d)",
					ErrInvalidManifest, strings.Join(path, "."), item.Line)
			}
			fn, err := lookup(item, reg, path)
			if err != nil {
				return nil, err
			}
			if fn != nil {
				pair[i] = fn
			}
		}
		return pair, nil
	case yaml.ScalarNode:
		fn, err := lookup(n, reg, path)
		if err != nil || fn == nil {
			return nil, err
		}
		return fn, nil
	}
	return nil, fmt.Errorf("%w: %s: unsupported value (line %d)", ErrInvalidManifest, strings.Join(path, "."), n.Line)
}

// lookup returns a nil transformer for YAML null.
func lookup(n *yaml.Node, reg *Registry, path []string) (actionkit.Transformer, error) {
	if isNull(n) {
		return nil, nil
	}
	fn, ok := reg.Lookup(n.Value)
	if !ok {
		return nil, fmt.Errorf("%w: %q for %s (line %d)", ErrUnknownTransformer, n.Value, strings.Join(path, "."), n.Line)
	}
	return fn, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
