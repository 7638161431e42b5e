package manifest

// BuildBucket returns the dependencies needed at build time, in declaration
// order: buildtool, buildtool-export, build, build-export and test.
//
// Test dependencies are included because build tooling (CMake test macros,
// pytest hooks) may need them while building.
func (d Dependencies) BuildBucket() []Dependency {
	return active(d.BuildTool, d.BuildToolExport, d.Build, d.BuildExport, d.Test)
}

// RunBucket returns the dependencies needed at run time, in declaration order:
// run, exec, build-export and buildtool-export.
func (d Dependencies) RunBucket() []Dependency {
	return active(d.Run, d.Exec, d.BuildExport, d.BuildToolExport)
}

func active(groups ...[]Dependency) []Dependency {
	out := make([]Dependency, 0)
	for _, group := range groups {
		for _, dep := range group {
			if !dep.EvaluatedCondition {
				continue
			}
			out = append(out, dep)
		}
	}
	return out
}
