// Package manifest holds the dependency declarations read from a foreign
// (ROS package.xml) manifest, after conditions have been evaluated.
package manifest

// Dependency is a single dependency declaration.
//
// Version bounds are optional; a nil pointer means the bound is absent and an
// empty string means the bound was declared without a value.
type Dependency struct {
	Name string `yaml:"name"`

	VersionLt  *string `yaml:"version_lt,omitempty"`
	VersionLte *string `yaml:"version_lte,omitempty"`
	VersionGt  *string `yaml:"version_gt,omitempty"`
	VersionGte *string `yaml:"version_gte,omitempty"`
	VersionEq  *string `yaml:"version_eq,omitempty"`

	// EvaluatedCondition is the result of the dependency's condition attribute.
	// Dependencies without a condition evaluate to true.
	EvaluatedCondition bool `yaml:"evaluated_condition"`
}

// NewDependency returns an unconditional dependency without version bounds.
func NewDependency(name string) Dependency {
	return Dependency{Name: name, EvaluatedCondition: true}
}

// Dependencies is a manifest's dependency set partitioned by declaration tag.
type Dependencies struct {
	BuildTool       []Dependency `yaml:"buildtool_depends,omitempty"`
	BuildToolExport []Dependency `yaml:"buildtool_export_depends,omitempty"`
	Build           []Dependency `yaml:"build_depends,omitempty"`
	BuildExport     []Dependency `yaml:"build_export_depends,omitempty"`
	Run             []Dependency `yaml:"run_depends,omitempty"`
	Exec            []Dependency `yaml:"exec_depends,omitempty"`
	Test            []Dependency `yaml:"test_depends,omitempty"`
}
