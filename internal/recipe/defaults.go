package recipe

import (
	"maps"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
)

var (
	commonBuildTools  = []string{"ninja", "python", "setuptools", "git", "git-lfs", "cmake", "cpython"}
	unixBuildTools    = []string{"patch", "make", "coreutils"}
	windowsBuildTools = []string{"m2-patch"}
	osxBuildTools     = []string{"tapi"}

	compilers = []string{"${{ compiler('c') }}", "${{ compiler('cxx') }}"}

	hostTools = []string{"python", "numpy", "pip", "pkg-config"}

	baseInputGlobs = []string{
		"**/*.c",
		"**/*.cpp",
		"**/*.h",
		"**/*.hpp",
		"**/*.rs",
		"**/*.sh",
		"package.xml",
		"setup.py",
		"setup.cfg",
		"pyproject.toml",
		"Makefile",
		"CMakeLists.txt",
		"MANIFEST.in",
		"tests/**/*.py",
		"docs/**/*.rst",
		"docs/**/*.md",
	}
	pythonInputGlobs = []string{"**/*.py", "**/*.pyx"}
)

// BuildTools returns the tools every ROS package needs in its build
// environment on p, followed by the C and C++ compiler templates.
func BuildTools(p platform.Platform) []requirements.Item {
	specs := append([]string{}, commonBuildTools...)
	if p.IsUnix() {
		specs = append(specs, unixBuildTools...)
	}
	if p.IsWindows() {
		specs = append(specs, windowsBuildTools...)
	}
	if p.IsOSX() {
		specs = append(specs, osxBuildTools...)
	}
	return requirements.ParseItems(append(specs, compilers...)...)
}

// HostTools returns the default host requirements, ending with the distro mutex.
func HostTools(d distro.Distro) []requirements.Item {
	return requirements.ParseItems(append(append([]string{}, hostTools...), d.MutexName())...)
}

// Env returns the environment used for condition evaluation and the build
// script. User values override ROS_DISTRO and ROS_VERSION.
func Env(d distro.Distro, user map[string]string) map[string]string {
	env := map[string]string{
		"ROS_DISTRO":  d.Name,
		"ROS_VERSION": d.Version(),
	}
	maps.Copy(env, user)
	return env
}

// InputGlobs returns the files whose changes invalidate a build. Python
// sources are left out for editable installs.
func InputGlobs(editable bool, extra ...string) []string {
	globs := append([]string{}, baseInputGlobs...)
	if !editable {
		globs = append(globs, pythonInputGlobs...)
	}
	return append(globs, extra...)
}
