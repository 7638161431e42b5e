// Package cli implements the rosdep-bridge command line.
package cli

import (
	"context"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string) int {
	cmd := NewRootCmd()
	cmd.SetIn(inReader)
	cmd.SetOut(outWriter)
	cmd.SetErr(errWriter)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return ReturnCodeError
	}
	return ReturnCodeSuccess
}

func NewRootCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:          "rosdep-bridge",
		Short:        "translates ROS package dependencies into conda requirements",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity, higher is more verbose")

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logger := newLogger(cmd.ErrOrStderr(), verbosity)
		cmd.SetContext(logr.NewContext(cmd.Context(), logger))
	}

	cmd.AddCommand(
		newTranslateCmd(),
		newResolveCmd(),
		newMappingsCmd(),
	)
	return cmd
}
