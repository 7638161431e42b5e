package cli

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bayleafwalker/rosdep-bridge/internal/manifest"
	"github.com/bayleafwalker/rosdep-bridge/internal/metrics"
	"github.com/bayleafwalker/rosdep-bridge/internal/recipe"
	"github.com/bayleafwalker/rosdep-bridge/internal/requirements"
	"github.com/bayleafwalker/rosdep-bridge/internal/translate"
)

func newTranslateCmd() *cobra.Command {
	const (
		cmdUse   = "translate --deps dependencies.yaml"
		cmdShort = "translates manifest dependencies into conda requirements"
		cmdLong  = "translates the condition-evaluated dependencies of a ROS package manifest into build, host and run requirements, merged into the project requirements"
	)

	var opts translateOptions

	cmd := &cobra.Command{
		Args:  cobra.NoArgs,
		Use:   cmdUse,
		Short: cmdShort,
		Long:  cmdLong,
	}
	opts.AddFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("deps")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return opts.run(cmd)
	}
	return cmd
}

type translateOptions struct {
	mappingOptions

	DepsPath         string
	RequirementsPath string
	Editable         bool
	Explain          bool
	MetricsPath      string
}

func (o *translateOptions) AddFlags(flags *pflag.FlagSet) {
	const (
		depsUse         = "YAML file with the categorized manifest dependencies, - for stdin."
		requirementsUse = "YAML file with requirements already declared by the project."
		editableUse     = "leave python sources out of the input globs."
		explainUse      = "print which manifest dependency produced each spec."
		metricsUse      = "write translation metrics in the Prometheus text format to this file."
	)

	o.mappingOptions.AddFlags(flags)
	flags.StringVar(&o.DepsPath, "deps", o.DepsPath, depsUse)
	flags.StringVar(&o.RequirementsPath, "requirements", o.RequirementsPath, requirementsUse)
	flags.BoolVar(&o.Editable, "editable", o.Editable, editableUse)
	flags.BoolVar(&o.Explain, "explain", o.Explain, explainUse)
	flags.StringVar(&o.MetricsPath, "metrics-file", o.MetricsPath, metricsUse)
}

type recipeOutput struct {
	Requirements requirementsOutput `yaml:"requirements"`
	Env          map[string]string  `yaml:"env,omitempty"`
	InputGlobs   []string           `yaml:"input_globs"`
	Noarch       bool               `yaml:"noarch"`
}

type requirementsOutput struct {
	Build          []string `yaml:"build"`
	Host           []string `yaml:"host"`
	Run            []string `yaml:"run"`
	RunConstraints []string `yaml:"run_constraints,omitempty"`
}

func (o *translateOptions) run(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	env, err := o.load(logger)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), o.DepsPath)
	if err != nil {
		return fmt.Errorf("reading dependencies: %w", err)
	}
	deps, err := manifest.ParseDependencies(data)
	if err != nil {
		return err
	}

	var project requirements.Set
	if o.RequirementsPath != "" {
		data, err := readInput(cmd.InOrStdin(), o.RequirementsPath)
		if err != nil {
			return fmt.Errorf("reading project requirements: %w", err)
		}
		if project, err = requirements.ParseSet(data); err != nil {
			return err
		}
	}

	var translateOpts []translate.Option
	reg := prometheus.NewRegistry()
	if o.MetricsPath != "" {
		rec, err := metrics.NewRecorder(reg)
		if err != nil {
			return err
		}
		translateOpts = append(translateOpts, translate.WithMetrics(rec))
	}

	gen := recipe.NewGenerator(env.config.Distro, env.platform, env.store, translateOpts...)
	rec, genErr := gen.Generate(ctx, recipe.Input{
		Dependencies:    deps,
		Project:         project,
		Env:             env.config.Env,
		ExtraInputGlobs: env.config.ExtraInputGlobs,
		Editable:        o.Editable,
	})
	if o.MetricsPath != "" {
		if err := prometheus.WriteToTextfile(o.MetricsPath, reg); err != nil {
			logger.Error(err, "writing metrics", "path", o.MetricsPath)
		}
	}
	if genErr != nil {
		return genErr
	}

	out := recipeOutput{
		Requirements: requirementsOutput{
			Build:          requirements.Strings(rec.Requirements.Build),
			Host:           requirements.Strings(rec.Requirements.Host),
			Run:            requirements.Strings(rec.Requirements.Run),
			RunConstraints: requirements.Strings(rec.Requirements.RunConstraints),
		},
		Env:        rec.Env,
		InputGlobs: rec.InputGlobs,
		Noarch:     env.config.Noarch,
	}
	if err := writeYAML(cmd.OutOrStdout(), out); err != nil {
		return err
	}

	if o.Explain {
		return writeExplanation(cmd.OutOrStdout(), rec)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return enc.Close()
}

func writeExplanation(w io.Writer, rec recipe.Recipe) error {
	if _, err := fmt.Fprintln(w, "# provenance"); err != nil {
		return err
	}
	for _, e := range rec.Graph.Edges {
		source := "package map"
		if !e.Dependency.Mapped {
			source = "ROS naming"
		}
		if _, err := fmt.Fprintf(w, "# %s: %s%s -> %v (%s)\n",
			e.Bucket, e.Dependency.Name, e.Dependency.Constraint, e.Specs, source); err != nil {
			return err
		}
	}
	return nil
}
