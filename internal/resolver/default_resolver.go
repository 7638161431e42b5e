// Package resolver translates single ROS dependencies into conda package specs
// using the package map.
package resolver

import (
	"fmt"
	"strings"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
)

// PackageMapper is the default Resolver. It consults the package map and
// falls back to the ROS package naming convention for unmapped names.
type PackageMapper struct {
	store  *mapping.Store
	distro distro.Distro
}

var _ Resolver = (*PackageMapper)(nil)

func NewDefault(store *mapping.Store, d distro.Distro) *PackageMapper {
	return &PackageMapper{store: store, distro: d}
}

// Mapped reports whether name has an entry in the package map.
func (m *PackageMapper) Mapped(name string) bool {
	_, ok := m.store.Get(name)
	return ok
}

func (m *PackageMapper) Resolve(name, suffix string, p platform.Platform) ([]string, error) {
	entry, ok := m.store.Get(name)
	if !ok {
		// Not in the package map, so it is assumed to be a ROS package.
		return []string{m.distro.PackageName(name) + suffix}, nil
	}

	switch e := entry.(type) {
	case mapping.SameFamily:
		if suffix != "" && len(e.Names) != 1 {
			return nil, fmt.Errorf("dependency %q maps to %d ROS packages: %w", name, len(e.Names), ErrSuffixAmbiguity)
		}
		out := make([]string, 0, len(e.Names))
		for _, alias := range e.Names {
			out = append(out, m.distro.PackageName(alias)+suffix)
		}
		return out, nil

	case mapping.TargetAliases:
		packages, extra := expandDirectives(e.Select(p.Family()), p)
		if suffix != "" {
			if len(packages) != 1 {
				return nil, fmt.Errorf("dependency %q maps to %d packages: %w", name, len(packages), ErrSuffixAmbiguity)
			}
			if strings.ContainsAny(packages[0], " \t") {
				return nil, fmt.Errorf("dependency %q maps to %q which already carries a constraint: %w", name, packages[0], ErrSuffixAmbiguity)
			}
			packages[0] += suffix
		}
		return append(packages, extra...), nil

	default:
		return nil, fmt.Errorf("dependency %q: %w", name, ErrUnknownMappingEntryShape)
	}
}
