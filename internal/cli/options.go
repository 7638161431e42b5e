package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/bayleafwalker/rosdep-bridge/internal/config"
	"github.com/bayleafwalker/rosdep-bridge/internal/mapping"
	"github.com/bayleafwalker/rosdep-bridge/internal/platform"
)

// mappingOptions are shared by every command that needs a mapping store.
type mappingOptions struct {
	ConfigPath  string
	Distro      string
	Platform    string
	Channels    []string
	PackageMaps []string
}

func (o *mappingOptions) AddFlags(flags *pflag.FlagSet) {
	const (
		configPathUse  = "backend configuration file. Relative paths inside it resolve against its directory."
		distroUse      = "ROS distro, overrides the configuration."
		platformUse    = "conda subdir to translate for."
		channelsUse    = "channels searched for a robostack-<distro> channel when no distro is configured."
		packageMapsUse = "package map files used after the configured extra package mappings, earliest first."
	)

	flags.StringVar(&o.ConfigPath, "config", o.ConfigPath, configPathUse)
	flags.StringVar(&o.Distro, "distro", o.Distro, distroUse)
	flags.StringVar(&o.Platform, "platform", "linux-64", platformUse)
	flags.StringSliceVar(&o.Channels, "channel", o.Channels, channelsUse)
	flags.StringArrayVar(&o.PackageMaps, "package-map", o.PackageMaps, packageMapsUse)
}

type environment struct {
	config   *config.Config
	platform platform.Platform
	store    *mapping.Store
}

func (o *mappingOptions) load(logger logr.Logger) (environment, error) {
	p, err := platform.Parse(o.Platform)
	if err != nil {
		return environment{}, err
	}

	var data []byte
	root := ""
	if o.ConfigPath != "" {
		if data, err = os.ReadFile(o.ConfigPath); err != nil {
			return environment{}, fmt.Errorf("reading configuration: %w", err)
		}
		root = filepath.Dir(o.ConfigPath)
	}

	cfg, err := config.Load(data, config.LoadOptions{
		ManifestRoot: root,
		Distro:       o.Distro,
		Channels:     o.Channels,
		Logger:       logger,
	})
	if err != nil {
		return environment{}, err
	}

	base := make([]mapping.Source, 0, len(o.PackageMaps))
	for _, path := range o.PackageMaps {
		src, err := mapping.LoadFile(path)
		if err != nil {
			return environment{}, err
		}
		base = append(base, src)
	}

	store := cfg.Store(base...)
	logger.V(1).Info("package map ready", "entries", store.Len(), "files", store.SourceFiles())
	return environment{config: cfg, platform: p, store: store}, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
