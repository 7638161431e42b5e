// Package config loads the backend configuration of a ROS package: the
// target distro, build environment and extra package mapping sources.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BackendConfig is the raw configuration document.
type BackendConfig struct {
	// Distro to generate package names for. Detected from the robostack
	// channels when empty.
	Distro string            `json:"distro,omitempty"`
	Noarch *bool             `json:"noarch,omitempty"`
	Env    map[string]string `json:"env,omitempty"`
	// DebugDir is deprecated and ignored.
	DebugDir        string   `json:"debug-dir,omitempty"`
	DebugDirLegacy  string   `json:"debug_dir,omitempty"`
	ExtraInputGlobs []string `json:"extra-input-globs,omitempty"`
	// ExtraPackageMappings take priority over the built-in mapping, earliest first.
	ExtraPackageMappings []MappingRef `json:"extra-package-mappings,omitempty"`
}

// MappingRef points at a mapping file or carries an inline mapping.
//
// Accepted forms:
//
//	- path/to/map.yaml
//	- file: path/to/map.yaml
//	- mapping: {pkg: {conda: [pkg]}}
//	- {pkg: {conda: [pkg]}}
type MappingRef struct {
	File   string          `json:"file,omitempty"`
	Inline json.RawMessage `json:"mapping,omitempty"`
}

func (r *MappingRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty package mapping entry")
	}

	switch data[0] {
	case '"':
		var file string
		if err := json.Unmarshal(data, &file); err != nil {
			return err
		}
		*r = MappingRef{File: file}
		return nil

	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if raw, ok := obj["file"]; ok {
			var file string
			if err := json.Unmarshal(raw, &file); err != nil {
				return fmt.Errorf("file: %w", err)
			}
			*r = MappingRef{File: file}
			return nil
		}
		if raw, ok := obj["mapping"]; ok {
			*r = MappingRef{Inline: raw}
			return nil
		}
		*r = MappingRef{Inline: append(json.RawMessage{}, data...)}
		return nil
	}
	return fmt.Errorf("unrecognized package mapping entry %s", data)
}
