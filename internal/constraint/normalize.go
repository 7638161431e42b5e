// Package constraint turns the version bounds of a manifest dependency into a
// nameless match spec suffix.
package constraint

import (
	"fmt"
	"strings"

	"github.com/bayleafwalker/rosdep-bridge/internal/manifest"
	"github.com/bayleafwalker/rosdep-bridge/internal/version"
)

type bound struct {
	op    string
	value *string
}

// Normalize validates the version bounds of dep and renders them as a suffix
// that can be appended to a package name.
//
// The result is empty when no bound is set, "==<v>" for an exact version, and
// otherwise the lower bound followed by the upper bound, comma-joined and
// prefixed with a single space (e.g. " >=1.0,<2.0").
func Normalize(dep manifest.Dependency) (string, error) {
	lower := []bound{{">", dep.VersionGt}, {">=", dep.VersionGte}}
	upper := []bound{{"<", dep.VersionLt}, {"<=", dep.VersionLte}}
	eq := dep.VersionEq

	all := append(append([]bound{}, lower...), upper...)
	all = append(all, bound{"==", eq})
	for _, b := range all {
		if b.value == nil {
			continue
		}
		if *b.value == "" {
			return "", fmt.Errorf("dependency %q: %w", dep.Name, ErrEmptyVersionLiteral)
		}
		if _, err := version.Parse(*b.value); err != nil {
			return "", fmt.Errorf("dependency %q at version %q: %w: %v", dep.Name, *b.value, ErrUnparsableVersion, err)
		}
	}

	if isSet(upper) == len(upper) {
		return "", fmt.Errorf("dependency %q cannot be specified by both `<` and `<=`: %w", dep.Name, ErrConstraintConflict)
	}
	if isSet(lower) == len(lower) {
		return "", fmt.Errorf("dependency %q cannot be specified by both `>` and `>=`: %w", dep.Name, ErrConstraintConflict)
	}

	someInequality := isSet(lower)+isSet(upper) > 0
	if eq != nil && someInequality {
		return "", fmt.Errorf("dependency %q cannot be specified by both `=` and some inequality: %w", dep.Name, ErrConstraintConflict)
	}

	if eq != nil {
		return "==" + *eq, nil
	}

	parts := make([]string, 0, 2)
	for _, b := range append(lower, upper...) {
		if b.value != nil {
			parts = append(parts, b.op+*b.value)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return " " + strings.Join(parts, ","), nil
}

func isSet(bounds []bound) int {
	n := 0
	for _, b := range bounds {
		if b.value != nil {
			n++
		}
	}
	return n
}
