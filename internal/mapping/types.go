package mapping

import (
	"slices"

	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
)

// Directive tokens may appear inside TargetAliases package lists. They are
// expanded by the resolver and never emitted as package names.
const (
	// DirectiveRequireGL requests native GL headers.
	DirectiveRequireGL = "REQUIRE_GL"
	// DirectiveRequireOpenGL requests the full OpenGL stack.
	DirectiveRequireOpenGL = "REQUIRE_OPENGL"
)

// Entry is the resolution rule for one ROS dependency name.
//
// The set of implementations is closed: SameFamily and TargetAliases.
type Entry interface {
	isEntry()
}

// SameFamily maps a dependency onto other ROS packages of the same distro.
type SameFamily struct {
	Names []string
}

// Tag selects how TargetAliases were declared.
type Tag string

const (
	TagConda     Tag = "conda"
	TagRobostack Tag = "robostack"
)

// TargetAliases maps a dependency onto plain conda packages, either for all
// platforms or per platform family.
type TargetAliases struct {
	Tag Tag
	// Packages is used when PerPlatform is nil.
	Packages    []string
	PerPlatform map[platform.Family][]string
}

func (SameFamily) isEntry()    {}
func (TargetAliases) isEntry() {}

// Select returns a copy of the package list for the platform family. A
// platform that is missing from a per-platform map selects an empty list.
func (t TargetAliases) Select(family platform.Family) []string {
	if t.PerPlatform == nil {
		return slices.Clone(t.Packages)
	}
	selected := slices.Clone(t.PerPlatform[family])
	if selected == nil {
		selected = []string{}
	}
	return selected
}
