package cmd

import (
	"fmt"

	"github.com/sky-flux/grist"
	"github.com/spf13/cobra"
)

type abvOptions struct {
	og          float64
	fg          float64
	attenuation float64
}

func newABVCmd() *cobra.Command {
	o := &abvOptions{}
	cmd := &cobra.Command{
		Use:   "abv",
		Short: "Estimate alcohol by volume",
		Long: `Estimate alcohol by volume from original and final gravity.

Give --fg directly, or --attenuation (apparent, percent) to estimate it.

Examples:
  grist abv --og 1.050 --fg 1.010
  grist abv --og 1.060 --attenuation 75`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fg := o.fg
			if cmd.Flags().Changed("attenuation") {
				fg = grist.FinalGravity(o.og, o.attenuation)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "FG   %s\nABV  %s%%\n", fixed(fg, 3), fixed(grist.ABV(o.og, fg), 2))
			return nil
		},
	}
	cmd.Flags().Float64Var(&o.og, "og", 0, "Original gravity (required)")
	cmd.Flags().Float64Var(&o.fg, "fg", 0, "Final gravity")
	cmd.Flags().Float64Var(&o.attenuation, "attenuation", 0, "Apparent attenuation percent")
	_ = cmd.MarkFlagRequired("og")
	cmd.MarkFlagsMutuallyExclusive("fg", "attenuation")
	cmd.MarkFlagsOneRequired("fg", "attenuation")
	return cmd
}
