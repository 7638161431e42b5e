// Package translate converts the categorized dependencies of a ROS manifest
// into conda requirement buckets.
package translate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/go-logr/logr"

	"github.com/bayleafwalker/rosdep-bridge/internal/constraint"
	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/graph"
	"github.com/bayleafwalker/rosdep-bridge/internal/manifest"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/metrics"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
	"github.com/bayleafwalker/rosdep-bridge/internal/resolver"
)

// WorkspaceDependency is added to the build bucket of every ROS 2 package.
const WorkspaceDependency = "ros_workspace"

// Pipeline translates manifests for one distro and platform.
type Pipeline struct {
	distro   distro.Distro
	platform platform.Platform
	mapper   *resolver.PackageMapper
	metrics  *metrics.Recorder
}

type Option func(*Pipeline)

// WithMetrics records translation metrics on r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(p *Pipeline) { p.metrics = r }
}

func New(d distro.Distro, p platform.Platform, store *mapping.Store, opts ...Option) *Pipeline {
	pl := &Pipeline{
		distro:   d,
		platform: p,
		mapper:   resolver.NewDefault(store, d),
	}
	for _, opt := range opts {
		opt(pl)
	}
	return pl
}

// Translate converts deps into a requirement set with build, host and run
// buckets. Host is a copy of build. Duplicates are kept; they are collapsed
// when the set is merged into existing requirements.
//
// The first invalid dependency aborts the translation.
func Translate(ctx context.Context, deps manifest.Dependencies, d distro.Distro, p platform.Platform, store *mapping.Store) (requirements.Set, error) {
	res, err := New(d, p, store).Translate(ctx, deps)
	if err != nil {
		return requirements.Set{}, err
	}
	return res.Requirements, nil
}

func (p *Pipeline) Translate(ctx context.Context, deps manifest.Dependencies) (Result, error) {
	start := time.Now()
	logger := logr.FromContextOrDiscard(ctx).WithValues(
		"distro", p.distro.Name,
		"platform", p.platform.String(),
	)

	buildDeps := deps.BuildBucket()
	if !p.distro.IsROS1() {
		buildDeps = append(buildDeps, manifest.NewDependency(WorkspaceDependency))
	}

	var res Result
	build, err := p.translateBucket(logger, &res, graph.BucketBuild, buildDeps)
	if err != nil {
		return Result{}, err
	}
	run, err := p.translateBucket(logger, &res, graph.BucketRun, deps.RunBucket())
	if err != nil {
		return Result{}, err
	}

	res.Requirements = requirements.Set{
		Build: build,
		Host:  slices.Clone(build),
		Run:   run,
	}

	p.metrics.ObserveDuration(time.Since(start))
	logger.Info("translated manifest dependencies",
		"build", len(build),
		"run", len(run),
		"unmapped", len(res.Diagnostics.Unmapped),
	)
	return res, nil
}

func (p *Pipeline) translateBucket(logger logr.Logger, res *Result, bucket graph.Bucket, deps []manifest.Dependency) ([]requirements.Item, error) {
	items := make([]requirements.Item, 0, len(deps))
	for _, dep := range deps {
		suffix, err := constraint.Normalize(dep)
		if err != nil {
			p.metrics.ObserveFailure(failureReason(err))
			return nil, fmt.Errorf("%s dependencies: %w", bucket, err)
		}

		specs, err := p.mapper.Resolve(dep.Name, suffix, p.platform)
		if err != nil {
			p.metrics.ObserveFailure(failureReason(err))
			return nil, fmt.Errorf("%s dependencies: %w", bucket, err)
		}

		mapped := p.mapper.Mapped(dep.Name)
		if !mapped {
			res.Diagnostics.Unmapped = append(res.Diagnostics.Unmapped, UnmappedDependency{
				Bucket:         bucket,
				Name:           dep.Name,
				AssumedPackage: specs[0],
			})
		}
		res.Graph.Add(bucket, graph.DependencyNode{Name: dep.Name, Constraint: suffix, Mapped: mapped}, specs)
		p.metrics.ObserveDependency(string(bucket), mapped, len(specs))
		logger.V(1).Info("resolved dependency", "bucket", bucket, "dependency", dep.Name, "specs", specs)

		items = append(items, requirements.ParseItems(specs...)...)
	}
	return items, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, constraint.ErrConstraintConflict):
		return "constraint_conflict"
	case errors.Is(err, constraint.ErrEmptyVersionLiteral):
		return "empty_version_literal"
	case errors.Is(err, constraint.ErrUnparsableVersion):
		return "unparsable_version"
	case errors.Is(err, resolver.ErrSuffixAmbiguity):
		return "suffix_ambiguity"
	case errors.Is(err, resolver.ErrUnknownMappingEntryShape):
		return "unknown_mapping_entry_shape"
	default:
		return "other"
	}
}
