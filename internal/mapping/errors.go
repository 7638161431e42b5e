package mapping

import "errors"

var (
	// ErrUnknownMappingEntryShape indicates an entry that is neither a list nor
	// an object with a recognized selector key.
	ErrUnknownMappingEntryShape = errors.New("unknown package map entry")
	// ErrSourceNotFound indicates a mapping file that does not exist.
	ErrSourceNotFound = errors.New("additional package map file not found")
)
