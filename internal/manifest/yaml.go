package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare dependency name or a mapping with the
// dependency fields. A missing evaluated_condition defaults to true.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*d = NewDependency(name)
		return nil

	case yaml.MappingNode:
		type plain Dependency
		out := plain{EvaluatedCondition: true}
		if err := node.Decode(&out); err != nil {
			return err
		}
		if out.Name == "" {
			return fmt.Errorf("line %d: dependency without a name", node.Line)
		}
		*d = Dependency(out)
		return nil

	default:
		return fmt.Errorf("line %d: expected dependency name or mapping, got %v", node.Line, node.Kind)
	}
}

// ParseDependencies decodes a YAML dependency listing.
func ParseDependencies(data []byte) (Dependencies, error) {
	var deps Dependencies
	if err := yaml.Unmarshal(data, &deps); err != nil {
		return Dependencies{}, fmt.Errorf("failed to parse dependency listing: %w", err)
	}
	return deps, nil
}
