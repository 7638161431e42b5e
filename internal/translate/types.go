package translate

import (
	"github.com/bayleafwalker/rosdep-bridge/internal/graph"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
)

// Result is the output of a translation.
type Result struct {
	Requirements requirements.Set
	Graph        graph.DependencyGraph
	Diagnostics  Diagnostics
}

// Diagnostics captures human-readable information about the translation.
type Diagnostics struct {
	// Unmapped lists dependencies that were not in the package map and were
	// assumed to be ROS packages.
	Unmapped []UnmappedDependency
}

type UnmappedDependency struct {
	Bucket         graph.Bucket
	Name           string
	AssumedPackage string
}
