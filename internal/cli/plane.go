package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/arscene/internal/core/native/nativetest"
	"github.com/zeusync/arscene/internal/core/nodes"
)

type planeOptions struct {
	minWidth  float32
	minHeight float32
	setWidth  float32
	setHeight float32
}

// NewPlaneCommand creates the plane command. It runs a single plane
// lifecycle against a recording engine and prints every engine call.
func NewPlaneCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &planeOptions{}

	cmd := &cobra.Command{
		Use:   "plane",
		Short: "Trace the engine calls of one plane lifecycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := rootOpts.logger()
			if err != nil {
				return err
			}

			rec := nativetest.NewRecorder()
			p, err := nodes.NewPlane(rec, opts.minWidth, opts.minHeight, nodes.WithLogger(logger))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("set-width") {
				if err = p.SetMinWidth(opts.setWidth); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("set-height") {
				if err = p.SetMinHeight(opts.setHeight); err != nil {
					return err
				}
			}
			if err = p.Destroy(); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), rec.Trace())
			return nil
		},
	}

	cmd.Flags().Float32Var(&opts.minWidth, "min-width", 0.5, "initial minimum width")
	cmd.Flags().Float32Var(&opts.minHeight, "min-height", 0.5, "initial minimum height")
	cmd.Flags().Float32Var(&opts.setWidth, "set-width", 0, "minimum width to set after creation")
	cmd.Flags().Float32Var(&opts.setHeight, "set-height", 0, "minimum height to set after creation")

	return cmd
}
