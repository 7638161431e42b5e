package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(deps []Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, d.Name)
	}
	return out
}

func TestBuildBucketOrderAndFilter(t *testing.T) {
	skipped := NewDependency("skipped")
	skipped.EvaluatedCondition = false

	d := Dependencies{
		BuildTool:       []Dependency{NewDependency("ament_cmake")},
		BuildToolExport: []Dependency{NewDependency("ament_cmake_export")},
		Build:           []Dependency{NewDependency("rclcpp"), skipped},
		BuildExport:     []Dependency{NewDependency("eigen")},
		Run:             []Dependency{NewDependency("rclpy")},
		Exec:            []Dependency{NewDependency("launch")},
		Test:            []Dependency{NewDependency("ament_lint_auto")},
	}

	assert.Equal(t,
		[]string{"ament_cmake", "ament_cmake_export", "rclcpp", "eigen", "ament_lint_auto"},
		names(d.BuildBucket()),
	)
	assert.Equal(t,
		[]string{"rclpy", "launch", "eigen", "ament_cmake_export"},
		names(d.RunBucket()),
	)
}

func TestEmptyBuckets(t *testing.T) {
	var d Dependencies
	assert.Empty(t, d.BuildBucket())
	assert.NotNil(t, d.RunBucket())
}
