package constraint

import "errors"

var (
	// ErrConstraintConflict indicates mutually exclusive version bounds were set together.
	ErrConstraintConflict = errors.New("conflicting version constraints")
	// ErrEmptyVersionLiteral indicates a version bound was declared with an empty value.
	ErrEmptyVersionLiteral = errors.New("version is empty string")
	// ErrUnparsableVersion indicates a version bound is not a valid version literal.
	ErrUnparsableVersion = errors.New("unparsable version")
)
