package requirements

import (
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// MergeSpecs combines two match specs for packageName into one.
//
// A wildcard or empty constraint yields the other spec, an exact ("==") spec
// wins over a range, identical constraints collapse, and anything else is
// intersected by joining the constraints with a comma.
func MergeSpecs(a, b, packageName string) (string, error) {
	bareA := bareConstraint(a, packageName)
	bareB := bareConstraint(b, packageName)

	if strings.Contains(bareA, " ") || strings.Contains(bareB, " ") {
		return "", fmt.Errorf("%q, or %q: %w", bareA, bareB, ErrSpecContainsWhitespace)
	}

	if isWildcard(bareA) || strings.Contains(bareB, "==") || bareA == bareB {
		return b, nil
	}
	if isWildcard(bareB) || strings.Contains(bareA, "==") {
		return a, nil
	}
	return packageName + " " + bareA + "," + bareB, nil
}

func bareConstraint(spec, packageName string) string {
	return strings.TrimSpace(strings.TrimPrefix(spec, packageName))
}

func isWildcard(bare string) bool {
	return bare == "" || bare == "*"
}

// MergeItems merges b into a, keyed by package name.
//
// Items are visited in the order a then b. The first occurrence of a package
// keeps its position unless it is replaced; a replaced or combined package
// moves to the end. A source package is never replaced: it wins over binaries
// regardless of order, and among sources the first one wins. Two binaries are
// combined with MergeSpecs.
//
// A template is kept only when a does not contain the same template.
func MergeItems(a, b []Item) ([]Item, error) {
	templatesInA := sets.New[string]()
	for _, item := range a {
		if t, ok := item.(Template); ok {
			templatesInA.Insert(t.Raw)
		}
	}

	result := make([]Item, 0, len(a)+len(b))
	for _, item := range append(slices.Clone(a), b...) {
		switch it := item.(type) {
		case Template:
			if !templatesInA.Has(it.Raw) {
				result = append(result, it)
			}

		case Concrete:
			name := it.PackageName()
			idx := indexOf(result, name)
			if idx < 0 {
				result = append(result, it)
				continue
			}

			switch existing := result[idx].(type) {
			case Source:
				continue
			case Binary:
				if src, ok := it.(Source); ok {
					result = append(slices.Delete(result, idx, idx+1), src)
					continue
				}
				spec, err := MergeSpecs(existing.Spec, it.(Binary).Spec, name)
				if err != nil {
					return nil, fmt.Errorf("merging %q: %w", name, err)
				}
				result = append(slices.Delete(result, idx, idx+1), Binary{Name: name, Spec: spec})
			}
		}
	}
	return result, nil
}

func indexOf(items []Item, name string) int {
	return slices.IndexFunc(items, func(item Item) bool {
		c, ok := item.(Concrete)
		return ok && c.PackageName() == name
	})
}

// Merge merges the build, host and run buckets of b into a. Run constraints
// are taken from a unchanged.
func Merge(a, b Set) (Set, error) {
	var (
		merged Set
		err    error
	)
	if merged.Build, err = MergeItems(a.Build, b.Build); err != nil {
		return Set{}, fmt.Errorf("build requirements: %w", err)
	}
	if merged.Host, err = MergeItems(a.Host, b.Host); err != nil {
		return Set{}, fmt.Errorf("host requirements: %w", err)
	}
	if merged.Run, err = MergeItems(a.Run, b.Run); err != nil {
		return Set{}, fmt.Errorf("run requirements: %w", err)
	}
	merged.RunConstraints = slices.Clone(a.RunConstraints)
	return merged, nil
}
