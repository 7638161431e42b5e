package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
)

// Parse decodes a mapping document into an inline Source.
//
// JSON documents are accepted as well since they are valid YAML.
func Parse(data []byte) (Source, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Source{}, fmt.Errorf("failed to parse package map: %w", err)
	}

	entries := make(map[string]Entry, len(doc))
	for name, node := range doc {
		entry, err := decodeEntry(&node)
		if err != nil {
			return Source{}, fmt.Errorf("entry %q: %w", name, err)
		}
		entries[name] = entry
	}
	return Source{entries: entries}, nil
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		if node.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: %w: entry is empty", node.Line, ErrUnknownMappingEntryShape)
		}
		names, err := decodeStringList(node)
		if err != nil {
			return nil, err
		}
		return SameFamily{Names: names}, nil

	case yaml.MappingNode:
		fields := make(map[string]*yaml.Node, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			fields[node.Content[i].Value] = node.Content[i+1]
		}

		if v, ok := fields["ros"]; ok {
			names, err := decodeStringList(v)
			if err != nil {
				return nil, fmt.Errorf("ros: %w", err)
			}
			return SameFamily{Names: names}, nil
		}
		for _, tag := range []Tag{TagRobostack, TagConda} {
			if v, ok := fields[string(tag)]; ok {
				aliases, err := decodeTargetAliases(tag, v)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tag, err)
				}
				return aliases, nil
			}
		}
		return nil, fmt.Errorf("line %d: %w: expected one of ros, robostack or conda", node.Line, ErrUnknownMappingEntryShape)

	default:
		return nil, fmt.Errorf("line %d: %w", node.Line, ErrUnknownMappingEntryShape)
	}
}

func decodeTargetAliases(tag Tag, node *yaml.Node) (TargetAliases, error) {
	if node.Kind != yaml.MappingNode {
		packages, err := decodeStringList(node)
		if err != nil {
			return TargetAliases{}, err
		}
		return TargetAliases{Tag: tag, Packages: packages}, nil
	}

	perPlatform := make(map[platform.Family][]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		packages, err := decodeStringList(node.Content[i+1])
		if err != nil {
			return TargetAliases{}, fmt.Errorf("%s: %w", key, err)
		}
		perPlatform[platform.Family(key)] = packages
	}
	return TargetAliases{Tag: tag, PerPlatform: perPlatform}, nil
}

// decodeStringList accepts a single string or a list of strings. A null or
// empty scalar decodes to an empty list.
func decodeStringList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return []string{}, nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return []string{s}, nil

	case yaml.SequenceNode:
		out := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: expected string in list, got %v", item.Line, item.Kind)
			}
			out = append(out, item.Value)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("line %d: expected string or list, got %v", node.Line, node.Kind)
	}
}
