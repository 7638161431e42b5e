package mapping

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
)

// Source is a read-only snapshot of mapping entries, optionally loaded from a
// file.
type Source struct {
	entries map[string]Entry
	file    string
}

// NewSource creates an inline source. The entries map is copied.
func NewSource(entries map[string]Entry) Source {
	return Source{entries: maps.Clone(entries)}
}

// LoadFile loads a mapping document from path.
func LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("%w: %q", ErrSourceNotFound, path)
		}
		return Source{}, fmt.Errorf("failed to read package map file %s: %w", path, err)
	}

	src, err := Parse(data)
	if err != nil {
		return Source{}, fmt.Errorf("package map file %s: %w", path, err)
	}
	src.file = path
	return src, nil
}

func (s Source) File() string {
	return s.file
}

func (s Source) Len() int {
	return len(s.entries)
}
