// Package recipe assembles the requirements of a ROS package recipe: the
// translated manifest dependencies, the default toolchain and the
// requirements already declared by the project.
package recipe

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/graph"
	"github.com/bayleafwalker/rosdep-bridge/internal/manifest"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
	"github.com/bayleafwalker/rosdep-bridge/internal/translate"
)

// Input describes one recipe to generate.
type Input struct {
	Dependencies manifest.Dependencies
	// Project holds the requirements declared by the project itself. They are
	// the first argument of the merge.
	Project requirements.Set
	Env     map[string]string
	// ExtraInputGlobs are appended to the default input globs.
	ExtraInputGlobs []string
	Editable        bool
}

// Recipe is the generated requirement and build environment data.
type Recipe struct {
	Requirements requirements.Set
	Env          map[string]string
	InputGlobs   []string
	// Graph records which manifest dependency produced which specs.
	Graph       graph.DependencyGraph
	Diagnostics translate.Diagnostics
}

type Generator struct {
	distro   distro.Distro
	platform platform.Platform
	store    *mapping.Store
	opts     []translate.Option
}

func NewGenerator(d distro.Distro, p platform.Platform, store *mapping.Store, opts ...translate.Option) *Generator {
	return &Generator{distro: d, platform: p, store: store, opts: opts}
}

func (g *Generator) Generate(ctx context.Context, in Input) (Recipe, error) {
	logger := logr.FromContextOrDiscard(ctx)

	res, err := translate.New(g.distro, g.platform, g.store, g.opts...).Translate(ctx, in.Dependencies)
	if err != nil {
		return Recipe{}, fmt.Errorf("translating manifest dependencies: %w", err)
	}

	pkg := res.Requirements
	pkg.Build = append(pkg.Build, BuildTools(g.platform)...)
	pkg.Host = append(pkg.Host, HostTools(g.distro)...)
	pkg.Run = append(pkg.Run, requirements.ParseItem(g.distro.MutexName()))

	merged, err := requirements.Merge(in.Project, pkg)
	if err != nil {
		return Recipe{}, fmt.Errorf("merging requirements: %w", err)
	}

	for _, u := range res.Diagnostics.Unmapped {
		logger.V(1).Info("dependency not in package map, assuming ROS package",
			"dependency", u.Name, "package", u.AssumedPackage)
	}

	globs := append(InputGlobs(in.Editable, in.ExtraInputGlobs...), g.store.SourceFiles()...)
	return Recipe{
		Requirements: merged,
		Env:          Env(g.distro, in.Env),
		InputGlobs:   globs,
		Graph:        res.Graph,
		Diagnostics:  res.Diagnostics,
	}, nil
}
