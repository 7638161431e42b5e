package mapping

import (
	"slices"
	"sort"
)

// Store is the merged lookup table built from an ordered list of sources.
type Store struct {
	entries map[string]Entry
	files   []string
}

// Build folds sources into a Store. Sources earlier in the list take
// precedence: the fold walks the list back to front and every write replaces
// the whole entry.
func Build(sources ...Source) *Store {
	entries := make(map[string]Entry)
	for i := len(sources) - 1; i >= 0; i-- {
		for name, entry := range sources[i].entries {
			entries[name] = entry
		}
	}

	files := make([]string, 0)
	for _, src := range sources {
		if src.file != "" {
			files = append(files, src.file)
		}
	}

	return &Store{entries: entries, files: files}
}

// Get returns the entry for a ROS dependency name.
func (s *Store) Get(name string) (Entry, bool) {
	if s == nil {
		return nil, false
	}
	e, ok := s.entries[name]
	return e, ok
}

// SourceFiles returns the files the store was built from, in source order.
func (s *Store) SourceFiles() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.files)
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names returns the mapped dependency names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
