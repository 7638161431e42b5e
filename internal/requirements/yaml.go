package requirements

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlSet struct {
	Build          []yaml.Node `yaml:"build"`
	Host           []yaml.Node `yaml:"host"`
	Run            []yaml.Node `yaml:"run"`
	RunConstraints []yaml.Node `yaml:"run_constraints"`
}

type yamlSource struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Git  string `yaml:"git"`
	URL  string `yaml:"url"`
}

// UnmarshalYAML decodes the buckets of a requirement set. Every entry is
// either a match spec or template string, or a source package object with a
// name and one of path, git or url.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlSet
	if err := node.Decode(&raw); err != nil {
		return err
	}

	var (
		out Set
		err error
	)
	if out.Build, err = decodeItems(raw.Build); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if out.Host, err = decodeItems(raw.Host); err != nil {
		return fmt.Errorf("host: %w", err)
	}
	if out.Run, err = decodeItems(raw.Run); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if out.RunConstraints, err = decodeItems(raw.RunConstraints); err != nil {
		return fmt.Errorf("run_constraints: %w", err)
	}
	*s = out
	return nil
}

func decodeItems(nodes []yaml.Node) ([]Item, error) {
	items := make([]Item, 0, len(nodes))
	for i := range nodes {
		item, err := decodeItem(&nodes[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeItem(node *yaml.Node) (Item, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseItem(node.Value), nil

	case yaml.MappingNode:
		var src yamlSource
		if err := node.Decode(&src); err != nil {
			return nil, err
		}
		if src.Name == "" {
			return nil, fmt.Errorf("line %d: source requirement without a name", node.Line)
		}
		location := src.Path
		for _, candidate := range []string{src.Git, src.URL} {
			if location == "" {
				location = candidate
			}
		}
		if location == "" {
			return nil, fmt.Errorf("line %d: source requirement %q needs one of path, git or url", node.Line, src.Name)
		}
		return Source{Name: src.Name, Location: location}, nil

	default:
		return nil, fmt.Errorf("line %d: expected requirement string or source object, got %v", node.Line, node.Kind)
	}
}

// ParseSet decodes a YAML requirement set.
func ParseSet(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("failed to parse requirements: %w", err)
	}
	return s, nil
}
