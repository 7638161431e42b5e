package resolver

import (
	"slices"

	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
)

const (
	pkgLibGLDevel     = "libgl-devel"
	pkgLibOpenGLDevel = "libopengl-devel"
	pkgXorgLibX11     = "xorg-libx11"
	pkgXorgLibXext    = "xorg-libxext"
)

// expandDirectives removes directive tokens from packages and returns the
// remaining packages together with the extra packages the directives request
// on p.
func expandDirectives(packages []string, p platform.Platform) (remaining, extra []string) {
	extra = make([]string, 0)

	if slices.Contains(packages, mapping.DirectiveRequireGL) {
		packages = remove(packages, mapping.DirectiveRequireGL)
		if p.IsLinux() {
			extra = append(extra, pkgLibGLDevel)
		}
	}
	if slices.Contains(packages, mapping.DirectiveRequireOpenGL) {
		packages = remove(packages, mapping.DirectiveRequireOpenGL)
		if p.IsLinux() {
			extra = append(extra, pkgLibGLDevel, pkgLibOpenGLDevel)
		}
		if p.IsUnix() {
			extra = append(extra, pkgXorgLibX11, pkgXorgLibXext)
		}
	}
	return packages, extra
}

func remove(packages []string, token string) []string {
	return slices.DeleteFunc(slices.Clone(packages), func(s string) bool { return s == token })
}
