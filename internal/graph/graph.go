// Package graph records which manifest dependency produced which conda specs,
// so a translation can be explained after the fact.
package graph

import "slices"

type Bucket string

const (
	BucketBuild Bucket = "build"
	BucketRun   Bucket = "run"
)

// DependencyNode is a manifest dependency as it entered translation.
type DependencyNode struct {
	Name       string
	Constraint string
	// Mapped is false when the name was not in the package map and the ROS
	// naming convention was applied.
	Mapped bool
}

type Edge struct {
	Bucket     Bucket
	Dependency DependencyNode
	Specs      []string
}

type DependencyGraph struct {
	Edges []Edge
}

func (g *DependencyGraph) Add(bucket Bucket, dep DependencyNode, specs []string) {
	g.Edges = append(g.Edges, Edge{Bucket: bucket, Dependency: dep, Specs: slices.Clone(specs)})
}

// SpecsFor returns the specs produced for a dependency name in a bucket, in
// order. A name listed more than once contributes all of its specs.
func (g *DependencyGraph) SpecsFor(bucket Bucket, name string) []string {
	out := make([]string, 0)
	for _, e := range g.Edges {
		if e.Bucket == bucket && e.Dependency.Name == name {
			out = append(out, e.Specs...)
		}
	}
	return out
}

// Producers returns the dependencies that produced spec in any bucket.
func (g *DependencyGraph) Producers(spec string) []DependencyNode {
	out := make([]DependencyNode, 0)
	for _, e := range g.Edges {
		if slices.Contains(e.Specs, spec) && !slices.Contains(out, e.Dependency) {
			out = append(out, e.Dependency)
		}
	}
	return out
}
