package actionkit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/actionkit/pkg/logger"
)

// Builder turns actions maps and identity types into action creators.
// A Builder is immutable after NewBuilder and safe for concurrent use.
type Builder struct {
	namespace string
	keyCase   func(string) string
	logger    *slog.Logger
}

// NewBuilder creates a Builder with the given options applied over the
// defaults: "/" namespace separator, camelCase keys, no logging.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		namespace: DefaultNamespace,
		keyCase:   defaultKeyCase,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Namespace returns the separator used to join nested action types.
func (b *Builder) Namespace() string {
	return b.namespace
}

var defaultBuilder = NewBuilder()

// CreateActions builds action creators with the default Builder.
//
// When actionsMapOrType is a string, it and every identity type become
// identity creators in a flat result. When it is an actions map (*Map,
// map[string]any or *Namespace), identityTypes are merged over the creators
// derived from the map and the result is nested by namespace.
func CreateActions(actionsMapOrType any, identityTypes ...any) (*Creators, error) {
	return defaultBuilder.Build(actionsMapOrType, identityTypes...)
}

// MustCreateActions is like CreateActions but panics on error.
func MustCreateActions(actionsMapOrType any, identityTypes ...any) *Creators {
	return defaultBuilder.MustBuild(actionsMapOrType, identityTypes...)
}

// Build validates its arguments and builds the creators. It either returns a
// complete result or a *ConfigurationError; nothing is built on failure.
func (b *Builder) Build(actionsMapOrType any, identityTypes ...any) (*Creators, error) {
	identity := make([]string, 0, len(identityTypes))
	for _, t := range identityTypes {
		s, ok := t.(string)
		if !ok {
			return nil, NewConfigurationError("", reasonInvalidArguments)
		}
		identity = append(identity, s)
	}

	if first, ok := actionsMapOrType.(string); ok {
		flat := newOrderedMap[*ActionCreator](len(identity) + 1)
		b.addIdentity(flat, append([]string{first}, identity...))

		creators := newCreators(flat.len())
		for key, creator := range flat.all() {
			creators.set(key, creator)
		}
		b.logBuilt(creators)
		return creators, nil
	}

	if isNilMapping(actionsMapOrType) {
		return nil, NewConfigurationError("", reasonInvalidArguments)
	}
	entries, ok := mappingEntries(actionsMapOrType)
	if !ok {
		return nil, NewConfigurationError("", reasonInvalidArguments)
	}

	flat, err := b.fromActionsMap(entries)
	if err != nil {
		b.logger.Debug("invalid actions map", logger.Component("actionkit"), logger.Error(err))
		return nil, err
	}
	b.addIdentity(flat, identity)

	creators := Unflatten(flat.all(), b.namespace)
	b.logBuilt(creators)
	return creators, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild(actionsMapOrType any, identityTypes ...any) *Creators {
	creators, err := b.Build(actionsMapOrType, identityTypes...)
	if err != nil {
		panic(fmt.Sprintf("failed to create action creators: %v", err))
	}
	return creators
}

// Key returns the creator key for a flat action type.
func (b *Builder) Key(actionType string) string {
	segments := splitNamespace(actionType, b.namespace)
	for i, s := range segments {
		segments[i] = b.keyCase(s)
	}
	return strings.Join(segments, b.namespace)
}

// fromActionsMap validates every top-level value before building anything.
func (b *Builder) fromActionsMap(entries []Entry) (*orderedMap[*ActionCreator], error) {
	root := &Namespace{children: newOrderedMap[Node](len(entries))}
	for _, e := range entries {
		node, ok := parseNode(e.Value)
		if !ok {
			return nil, NewConfigurationError(e.Key, reasonInvalidValue)
		}
		root.children.set(e.Key, node)
	}

	leaves := Flatten(root, b.namespace)
	flat := newOrderedMap[*ActionCreator](leaves.Len())
	for actionType, leaf := range leaves.All() {
		b.add(flat, CreateAction(actionType, leaf.Payload, leaf.Meta))
	}
	return flat, nil
}

func (b *Builder) addIdentity(flat *orderedMap[*ActionCreator], types []string) {
	for _, t := range types {
		b.add(flat, CreateAction(t, nil, nil))
	}
}

func (b *Builder) add(flat *orderedMap[*ActionCreator], creator *ActionCreator) {
	key := b.Key(creator.Type())
	flat.set(key, creator)
	b.logger.Debug("action creator built",
		logger.ActionType(creator.Type()),
		logger.CreatorKey(key),
	)
}

func (b *Builder) logBuilt(creators *Creators) {
	if !b.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	b.logger.Debug("action creators built",
		logger.Namespace(b.namespace),
		logger.CreatorCount(len(creators.Types())),
	)
}

func isNilMapping(v any) bool {
	switch m := v.(type) {
	case nil:
		return true
	case *Map:
		return m == nil
	case *Namespace:
		return m == nil
	case map[string]any:
		return m == nil
	}
	return false
}
