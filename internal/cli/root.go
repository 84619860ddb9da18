package cli

import (
	"github.com/spf13/cobra"

	"github.com/zeusync/arscene/internal/core/observability/log"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string

	// Logger overrides the logger built from LogLevel.
	Logger log.Log
}

func (o *RootOptions) logger() (log.Log, error) {
	if o.Logger != nil {
		return o.Logger, nil
	}
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, err
	}
	o.Logger = log.New(level)
	return o.Logger, nil
}

// NewRootCommand creates the root command for the arscene CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arscene",
		Short: "Drive AR plane nodes against an engine",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := log.ParseLevel(opts.LogLevel)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewVectorCommand(opts))
	cmd.AddCommand(NewPlaneCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}
