package resolver

import "github.com/bayleafwalker/rosdep-bridge/internal/platform"

// Resolver maps one ROS dependency name plus a nameless constraint suffix onto
// zero or more conda package specs for the target platform.
type Resolver interface {
	Resolve(name, suffix string, p platform.Platform) ([]string, error)
}
