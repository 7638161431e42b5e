package cli

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/bayleafwalker/rosdep-bridge/internal/resolver"
)

func newMappingsCmd() *cobra.Command {
	const (
		cmdUse   = "mappings"
		cmdShort = "lists the mapped dependency names and their packages on the platform"
	)

	var opts mappingOptions

	cmd := &cobra.Command{
		Args:  cobra.NoArgs,
		Use:   cmdUse,
		Short: cmdShort,
	}
	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		env, err := opts.load(logr.FromContextOrDiscard(cmd.Context()))
		if err != nil {
			return err
		}

		mapper := resolver.NewDefault(env.store, env.config.Distro)
		for _, name := range env.store.Names() {
			specs, err := mapper.Resolve(name, "", env.platform)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", name, err)
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, strings.Join(specs, ", ")); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
