package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bayleafwalker/rosdep-bridge/internal/resolver"
)

func newResolveCmd() *cobra.Command {
	const (
		cmdUse   = "resolve name"
		cmdShort = "prints the conda specs a single ROS dependency maps to"
	)

	var opts resolveOptions

	cmd := &cobra.Command{
		Args:  cobra.ExactArgs(1),
		Use:   cmdUse,
		Short: cmdShort,
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		env, err := opts.load(logr.FromContextOrDiscard(cmd.Context()))
		if err != nil {
			return err
		}

		mapper := resolver.NewDefault(env.store, env.config.Distro)
		specs, err := mapper.Resolve(args[0], opts.Suffix, env.platform)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}

		for _, spec := range specs {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), spec); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

type resolveOptions struct {
	mappingOptions

	Suffix string
}

func (o *resolveOptions) AddFlags(flags *pflag.FlagSet) {
	const suffixUse = `version suffix to append, e.g. " >=1.2" or "==3.0".`

	o.mappingOptions.AddFlags(flags)
	flags.StringVar(&o.Suffix, "suffix", o.Suffix, suffixUse)
}
