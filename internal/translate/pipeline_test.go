package translate

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

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

var (
	jazzy  = distro.New("jazzy")
	noetic = distro.New("noetic")
	linux  = platform.MustParse("linux-64")
)

func TestTranslate_EndToEndUnmapped(t *testing.T) {
	deps := manifest.Dependencies{
		Run: []manifest.Dependency{{Name: "customlib", VersionGt: ptr.To("1.0.0"), EvaluatedCondition: true}},
	}

	set, err := Translate(context.Background(), deps, jazzy, linux, mapping.Build())
	require.NoError(t, err)

	assert.Equal(t, []string{"ros-jazzy-customlib >1.0.0"}, requirements.Strings(set.Run))
	assert.Equal(t, []string{"ros-jazzy-ros-workspace"}, requirements.Strings(set.Build))
	assert.Equal(t, set.Build, set.Host)
	assert.Empty(t, set.RunConstraints)
}

func TestTranslate_RangeConstraint(t *testing.T) {
	deps := manifest.Dependencies{
		Build: []manifest.Dependency{{
			Name:               "libfoo",
			VersionGte:         ptr.To("18.0.0"),
			VersionLt:          ptr.To("20.0.0"),
			EvaluatedCondition: true,
		}},
	}

	set, err := Translate(context.Background(), deps, jazzy, linux, mapping.Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"ros-jazzy-libfoo >=18.0.0,<20.0.0", "ros-jazzy-ros-workspace"}, requirements.Strings(set.Build))
}

func TestTranslate_Buckets(t *testing.T) {
	store := mapping.Build(mapping.NewSource(map[string]mapping.Entry{
		"opengl":       mapping.TargetAliases{Tag: mapping.TagRobostack, Packages: []string{mapping.DirectiveRequireOpenGL}},
		"python3-yaml": mapping.TargetAliases{Tag: mapping.TagConda, Packages: []string{"pyyaml"}},
	}))
	skipped := manifest.NewDependency("only_on_windows")
	skipped.EvaluatedCondition = false

	deps := manifest.Dependencies{
		BuildTool:   []manifest.Dependency{manifest.NewDependency("catkin")},
		Build:       []manifest.Dependency{manifest.NewDependency("opengl"), skipped},
		BuildExport: []manifest.Dependency{manifest.NewDependency("python3-yaml")},
		Exec:        []manifest.Dependency{manifest.NewDependency("rospy")},
		Test:        []manifest.Dependency{manifest.NewDependency("rostest")},
	}

	res, err := New(noetic, linux, store).Translate(context.Background(), deps)
	require.NoError(t, err)

	wantBuild := []string{
		"ros-noetic-catkin",
		"libgl-devel", "libopengl-devel", "xorg-libx11", "xorg-libxext",
		"pyyaml",
		"ros-noetic-rostest",
	}
	assert.Equal(t, wantBuild, requirements.Strings(res.Requirements.Build), "ROS 1 has no workspace dependency")
	assert.Equal(t, wantBuild, requirements.Strings(res.Requirements.Host))
	assert.Equal(t, []string{"ros-noetic-rospy", "pyyaml"}, requirements.Strings(res.Requirements.Run))

	assert.Equal(t, []UnmappedDependency{
		{Bucket: graph.BucketBuild, Name: "catkin", AssumedPackage: "ros-noetic-catkin"},
		{Bucket: graph.BucketBuild, Name: "rostest", AssumedPackage: "ros-noetic-rostest"},
		{Bucket: graph.BucketRun, Name: "rospy", AssumedPackage: "ros-noetic-rospy"},
	}, res.Diagnostics.Unmapped)

	assert.Equal(t, []string{"libgl-devel", "libopengl-devel", "xorg-libx11", "xorg-libxext"},
		res.Graph.SpecsFor(graph.BucketBuild, "opengl"))
	assert.Equal(t, []graph.DependencyNode{{Name: "python3-yaml", Mapped: true}}, res.Graph.Producers("pyyaml"))
}

func TestTranslate_KeepsDuplicates(t *testing.T) {
	deps := manifest.Dependencies{
		Build: []manifest.Dependency{manifest.NewDependency("rclcpp")},
		Test:  []manifest.Dependency{manifest.NewDependency("rclcpp")},
	}

	set, err := Translate(context.Background(), deps, jazzy, linux, mapping.Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"ros-jazzy-rclcpp", "ros-jazzy-rclcpp", "ros-jazzy-ros-workspace"}, requirements.Strings(set.Build))
}

func TestTranslate_FailFast(t *testing.T) {
	store := mapping.Build(mapping.NewSource(map[string]mapping.Entry{
		"multi": mapping.TargetAliases{Tag: mapping.TagConda, Packages: []string{"a", "b"}},
	}))

	tests := []struct {
		name string
		deps manifest.Dependencies
		want error
	}{
		{
			name: "conflict",
			deps: manifest.Dependencies{Run: []manifest.Dependency{
				{Name: "foo", VersionLt: ptr.To("2"), VersionLte: ptr.To("2"), EvaluatedCondition: true},
			}},
			want: constraint.ErrConstraintConflict,
		},
		{
			name: "ambiguity",
			deps: manifest.Dependencies{Build: []manifest.Dependency{
				manifest.NewDependency("ok"),
				{Name: "multi", VersionEq: ptr.To("1.0"), EvaluatedCondition: true},
			}},
			want: resolver.ErrSuffixAmbiguity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := prometheus.NewRegistry()
			rec, err := metrics.NewRecorder(reg)
			require.NoError(t, err)

			_, err = New(jazzy, linux, store, WithMetrics(rec)).Translate(context.Background(), tt.deps)
			require.ErrorIs(t, err, tt.want)
			count, err := testutil.GatherAndCount(reg, "rosdep_translate_failures_total")
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestTranslate_LogsThroughContext(t *testing.T) {
	var lines []string
	logger := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})
	ctx := logr.NewContext(context.Background(), logger)

	_, err := Translate(ctx, manifest.Dependencies{Run: []manifest.Dependency{manifest.NewDependency("rclpy")}}, jazzy, linux, mapping.Build())
	require.NoError(t, err)

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "translated manifest dependencies")
}
