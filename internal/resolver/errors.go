package resolver

import (
	"errors"

	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
)

var (
	// ErrSuffixAmbiguity indicates a version suffix that cannot be attached to
	// exactly one plain package.
	ErrSuffixAmbiguity = errors.New("version specifier can only be used for one package without constraint")

	// ErrUnknownMappingEntryShape is returned for entries the resolver cannot interpret.
	ErrUnknownMappingEntryShape = mapping.ErrUnknownMappingEntryShape
)
