// Package distro describes the ROS distribution that package names are
// generated for.
package distro

import (
	"errors"
	"regexp"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// ErrNoDistro indicates that no distro could be determined.
var ErrNoDistro = errors.New("ROS distro must be either explicitly configured or auto-detected from robostack channels")

var ros1Distros = sets.New(
	"boxturtle", "cturtle", "diamondback", "electric", "fuerte", "groovy",
	"hydro", "indigo", "jade", "kinetic", "lunar", "melodic", "noetic",
)

var reRobostackChannel = regexp.MustCompile(`robostack-(\w+)`)

// Distro is a ROS distribution such as "noetic" or "jazzy".
type Distro struct {
	Name string
}

func New(name string) Distro {
	return Distro{Name: strings.ToLower(strings.TrimSpace(name))}
}

// IsROS1 reports whether the distro belongs to the ROS 1 release line.
func (d Distro) IsROS1() bool {
	return ros1Distros.Has(d.Name)
}

// Version returns "1" or "2", the value of ROS_VERSION for the distro.
func (d Distro) Version() string {
	if d.IsROS1() {
		return "1"
	}
	return "2"
}

// MutexName is the package that pins an environment to a single distro.
func (d Distro) MutexName() string {
	if d.IsROS1() {
		return "ros-distro-mutex"
	}
	return "ros2-distro-mutex"
}

// PackageName returns the conda package name of the ROS package name:
// ros-<distro>-<name> with underscores replaced by dashes.
func (d Distro) PackageName(rosName string) string {
	return "ros-" + d.Name + "-" + strings.ReplaceAll(rosName, "_", "-")
}

// FromChannels returns the distro named by the first robostack-<distro>
// channel. Channels may be names or URLs; robostack-staging is ignored.
func FromChannels(channels []string) (Distro, bool) {
	for _, channel := range channels {
		name := strings.TrimRight(channel, "/")
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		for _, m := range reRobostackChannel.FindAllStringSubmatch(name, -1) {
			if m[1] != "staging" {
				return New(m[1]), true
			}
		}
	}
	return Distro{}, false
}
