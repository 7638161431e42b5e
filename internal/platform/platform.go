// Package platform maps conda subdirs (linux-64, osx-arm64, win-64, ...) onto
// the platform families used by package mappings.
package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform indicates a subdir that has no platform family.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Family is the key used to select platform-specific package lists.
type Family string

const (
	FamilyLinux   Family = "linux"
	FamilyOSX     Family = "osx"
	FamilyWindows Family = "win64"
	FamilyUnix    Family = "unix"
)

// Platform is a conda subdir together with its family.
type Platform struct {
	subdir string
	family Family
}

// Parse resolves a subdir such as "linux-64" into a Platform.
func Parse(subdir string) (Platform, error) {
	subdir = strings.TrimSpace(subdir)
	osName, _, found := strings.Cut(subdir, "-")
	if !found {
		return Platform{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, subdir)
	}

	var family Family
	switch osName {
	case "linux":
		family = FamilyLinux
	case "osx":
		family = FamilyOSX
	case "win":
		family = FamilyWindows
	case "freebsd", "zos":
		family = FamilyUnix
	default:
		return Platform{}, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, subdir)
	}
	return Platform{subdir: subdir, family: family}, nil
}

func MustParse(subdir string) Platform {
	p, err := Parse(subdir)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Platform) String() string { return p.subdir }

// Family returns the mapping key for the platform.
func (p Platform) Family() Family { return p.family }

func (p Platform) IsLinux() bool   { return p.family == FamilyLinux }
func (p Platform) IsOSX() bool     { return p.family == FamilyOSX }
func (p Platform) IsWindows() bool { return p.family == FamilyWindows }

// IsUnix reports whether the platform is POSIX-like: linux, osx or another unix.
func (p Platform) IsUnix() bool {
	switch p.family {
	case FamilyLinux, FamilyOSX, FamilyUnix:
		return true
	}
	return false
}
