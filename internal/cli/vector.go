package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/arscene/internal/core/math3d"
)

// NewVectorCommand creates the vector command.
func NewVectorCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "vector <x,y,z>",
		Short: "Parse a vector and print its array form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := math3d.ParseVector(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vector %s\n", v)
			fmt.Fprintf(out, "array  %v\n", v.ToArray())
			return nil
		},
	}
}
