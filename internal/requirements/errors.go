package requirements

import "errors"

// ErrSpecContainsWhitespace indicates a compound spec (for example one with a
// build string) that cannot be intersected with another spec.
var ErrSpecContainsWhitespace = errors.New("spec contains spaces, cannot merge specifiers")
