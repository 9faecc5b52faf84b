package manifest

import "errors"

var (
	// ErrInvalidManifest is returned when a document does not have the manifest shape.
	ErrInvalidManifest = errors.New("invalid actions manifest")

	// ErrUnknownTransformer is returned when a manifest references an unregistered transformer.
	ErrUnknownTransformer = errors.New("unknown transformer")

	// ErrDuplicateTransformer is returned when registering a name twice.
	ErrDuplicateTransformer = errors.New("transformer already registered")
)
