package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/bayleafwalker/rosdep-bridge/internal/distro"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
)

// ErrInvalidConfig is returned for configuration documents that fail validation.
var ErrInvalidConfig = errors.New("invalid backend configuration")

// LoadOptions carries the context a configuration is resolved in.
type LoadOptions struct {
	// ManifestRoot is the base for relative paths. Defaults to the working directory.
	ManifestRoot string
	// Distro overrides the configured distro when set.
	Distro string
	// Channels are searched for a robostack-<distro> channel when no distro is set.
	Channels []string
	Logger   logr.Logger
}

// Config is a validated configuration with its mapping sources loaded.
type Config struct {
	Distro          distro.Distro
	Noarch          bool
	Env             map[string]string
	ExtraInputGlobs []string
	// Mappings are ordered by priority, highest first.
	Mappings []mapping.Source
}

// Load parses, validates and resolves a configuration document. Unknown keys
// are rejected.
func Load(data []byte, opts LoadOptions) (*Config, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, err
	}
	if opts.Distro != "" {
		raw.Distro = opts.Distro
	}
	return resolve(raw, opts)
}

func decode(data []byte) (BackendConfig, error) {
	var raw BackendConfig
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return BackendConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return raw, nil
}

// resolve validates raw and fills in everything derived from the environment.
func resolve(raw BackendConfig, opts LoadOptions) (*Config, error) {
	if errs := validate(raw); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, errs.ToAggregate())
	}

	root := opts.ManifestRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}

	if raw.DebugDir != "" || raw.DebugDirLegacy != "" {
		opts.Logger.Info("debug-dir backend configuration is deprecated and ignored; debug data is written to the build work directory")
	}

	d, err := resolveDistro(raw.Distro, opts.Channels)
	if err != nil {
		return nil, err
	}

	sources := make([]mapping.Source, 0, len(raw.ExtraPackageMappings))
	for i, ref := range raw.ExtraPackageMappings {
		src, err := loadMapping(ref, root)
		if err != nil {
			return nil, fmt.Errorf("extra-package-mappings[%d]: %w", i, err)
		}
		opts.Logger.V(1).Info("loaded extra package mapping", "index", i, "file", src.File(), "entries", src.Len())
		sources = append(sources, src)
	}

	return &Config{
		Distro:          d,
		Noarch:          raw.Noarch == nil || *raw.Noarch,
		Env:             raw.Env,
		ExtraInputGlobs: raw.ExtraInputGlobs,
		Mappings:        sources,
	}, nil
}

// validate checks raw for structural errors.
func validate(raw BackendConfig) field.ErrorList {
	var errs field.ErrorList

	if raw.DebugDir != "" && raw.DebugDirLegacy != "" {
		errs = append(errs, field.Forbidden(field.NewPath("debug_dir"), "may not be set together with debug-dir"))
	}

	envPath := field.NewPath("env")
	for k := range raw.Env {
		if k == "" {
			errs = append(errs, field.Invalid(envPath, k, "variable names must not be empty"))
		}
	}

	globsPath := field.NewPath("extra-input-globs")
	for i, g := range raw.ExtraInputGlobs {
		if _, err := filepath.Match(g, ""); err != nil {
			errs = append(errs, field.Invalid(globsPath.Index(i), g, err.Error()))
		}
	}

	mappingsPath := field.NewPath("extra-package-mappings")
	for i, ref := range raw.ExtraPackageMappings {
		if ref.File == "" && len(ref.Inline) == 0 {
			errs = append(errs, field.Required(mappingsPath.Index(i), "a file path or an inline mapping is required"))
		}
	}
	return errs
}

func resolveDistro(name string, channels []string) (distro.Distro, error) {
	if name != "" {
		return distro.New(name), nil
	}
	if d, ok := distro.FromChannels(channels); ok {
		return d, nil
	}
	return distro.Distro{}, fmt.Errorf(
		"%w: a 'robostack-<distro>' channel (e.g. 'robostack-kilted') was not found in the provided channels: %v",
		distro.ErrNoDistro, channels)
}

func loadMapping(ref MappingRef, root string) (mapping.Source, error) {
	if ref.File == "" {
		return mapping.Parse(ref.Inline)
	}
	path := ref.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return mapping.LoadFile(filepath.Clean(path))
}

// Store builds the mapping store: configured sources first, then defaults.
func (c *Config) Store(defaults ...mapping.Source) *mapping.Store {
	return mapping.Build(append(append([]mapping.Source{}, c.Mappings...), defaults...)...)
}
