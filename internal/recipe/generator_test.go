package recipe

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/manifest"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
)

func TestGenerate_MergesProjectRequirements(t *testing.T) {
	g := NewGenerator(distro.New("noetic"), platform.MustParse("linux-64"), mapping.Build())

	rec, err := g.Generate(context.Background(), Input{
		Dependencies: manifest.Dependencies{
			Build: []manifest.Dependency{manifest.NewDependency("roscpp")},
			Exec:  []manifest.Dependency{manifest.NewDependency("rospy")},
		},
		Project: requirements.Set{
			Host: requirements.ParseItems("ros-distro-mutex 0.5.*"),
			Run:  requirements.ParseItems("rich >=10.0"),
		},
		Env: map[string]string{"FOO": "bar"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"ros-noetic-roscpp",
		"ninja", "python", "setuptools", "git", "git-lfs", "cmake", "cpython",
		"patch", "make", "coreutils",
		"${{ compiler('c') }}", "${{ compiler('cxx') }}",
	}, requirements.Strings(rec.Requirements.Build))
	assert.Equal(t, []string{
		"ros-noetic-roscpp", "python", "numpy", "pip", "pkg-config", "ros-distro-mutex 0.5.*",
	}, requirements.Strings(rec.Requirements.Host))
	assert.Equal(t, []string{
		"rich >=10.0", "ros-noetic-rospy", "ros-distro-mutex",
	}, requirements.Strings(rec.Requirements.Run))

	assert.Equal(t, map[string]string{"ROS_DISTRO": "noetic", "ROS_VERSION": "1", "FOO": "bar"}, rec.Env)
	assert.Len(t, rec.Diagnostics.Unmapped, 2)
}

func TestGenerate_SourceDependencyWins(t *testing.T) {
	g := NewGenerator(distro.New("jazzy"), platform.MustParse("linux-64"), mapping.Build())

	src := requirements.Source{Name: "ros-jazzy-my-msgs", Location: "../my_msgs"}
	rec, err := g.Generate(context.Background(), Input{
		Dependencies: manifest.Dependencies{
			Build: []manifest.Dependency{manifest.NewDependency("my_msgs")},
		},
		Project: requirements.Set{Host: []requirements.Item{src}},
	})
	require.NoError(t, err)

	assert.Contains(t, rec.Requirements.Host, requirements.Item(src))
	assert.NotContains(t, requirements.Strings(rec.Requirements.Host), "ros-jazzy-my-msgs")
	assert.Contains(t, requirements.Strings(rec.Requirements.Host), "ros2-distro-mutex")
	assert.Contains(t, requirements.Strings(rec.Requirements.Build), "ros-jazzy-ros-workspace")
}

func TestGenerate_InputGlobsIncludeMappingFiles(t *testing.T) {
	src, err := mapping.LoadFile(filepath.Join("..", "mapping", "testdata", "other_package_map.yaml"))
	require.NoError(t, err)

	g := NewGenerator(distro.New("jazzy"), platform.MustParse("linux-64"), mapping.Build(src))
	rec, err := g.Generate(context.Background(), Input{ExtraInputGlobs: []string{"msg/*.msg"}})
	require.NoError(t, err)

	assert.Contains(t, rec.InputGlobs, "package.xml")
	assert.Contains(t, rec.InputGlobs, "**/*.py")
	assert.Contains(t, rec.InputGlobs, "msg/*.msg")
	assert.Equal(t, src.File(), rec.InputGlobs[len(rec.InputGlobs)-1])
}

func TestGenerate_TranslationError(t *testing.T) {
	store := mapping.Build(mapping.NewSource(map[string]mapping.Entry{
		"multi": mapping.SameFamily{Names: []string{"a", "b"}},
	}))
	eq := "1.0"

	g := NewGenerator(distro.New("jazzy"), platform.MustParse("linux-64"), store)
	_, err := g.Generate(context.Background(), Input{
		Dependencies: manifest.Dependencies{
			Run: []manifest.Dependency{{Name: "multi", VersionEq: &eq, EvaluatedCondition: true}},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "translating manifest dependencies")
}

func TestBuildTools(t *testing.T) {
	win := requirements.Strings(BuildTools(platform.MustParse("win-64")))
	assert.Contains(t, win, "m2-patch")
	assert.NotContains(t, win, "make")

	osx := requirements.Strings(BuildTools(platform.MustParse("osx-arm64")))
	assert.Contains(t, osx, "tapi")
	assert.Contains(t, osx, "make")
	assert.NotContains(t, osx, "m2-patch")
}

func TestInputGlobsEditable(t *testing.T) {
	assert.NotContains(t, InputGlobs(true), "**/*.py")
	assert.Contains(t, InputGlobs(false), "**/*.pyx")
}

func TestEnvOverrides(t *testing.T) {
	env := Env(distro.New("humble"), map[string]string{"ROS_VERSION": "3"})
	assert.Equal(t, "humble", env["ROS_DISTRO"])
	assert.Equal(t, "3", env["ROS_VERSION"])
}
