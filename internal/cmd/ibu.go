package cmd

import (
	"fmt"

	"github.com/sky-flux/grist"
	"github.com/spf13/cobra"
)

type ibuOptions struct {
	gravity float64
	gallons float64
	hops    []string
}

func newIBUCmd(g *globals) *cobra.Command {
	o := &ibuOptions{}
	cmd := &cobra.Command{
		Use:   "ibu",
		Short: "Estimate bitterness with the Tinseth formula",
		Long: `Estimate the IBUs contributed by hop additions.

Each --hop is ounces:minutes:alpha, e.g. 1:60:5.5 for one ounce of 5.5%
alpha acid hops boiled for 60 minutes.

Examples:
  grist ibu --gravity 1.050 --gallons 5 --hop 1:60:5 --hop 1:15:5`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIBU(cmd, g, o)
		},
	}
	cmd.Flags().Float64Var(&o.gravity, "gravity", 0, "Average boil gravity (required)")
	cmd.Flags().Float64Var(&o.gallons, "gallons", 0, "Final wort volume in gallons (default from config)")
	cmd.Flags().StringArrayVar(&o.hops, "hop", nil, "Hop addition ounces:minutes:alpha (repeatable)")
	_ = cmd.MarkFlagRequired("gravity")
	_ = cmd.MarkFlagRequired("hop")
	return cmd
}

func runIBU(cmd *cobra.Command, g *globals, o *ibuOptions) error {
	gals := o.gallons
	if gals == 0 {
		gals = g.cfg.Brewhouse.Gallons
	}

	additions := make([]grist.HopAddition, 0, len(o.hops))
	for _, h := range o.hops {
		f, err := parseFields(h, 3, 3)
		if err != nil {
			return err
		}
		additions = append(additions, grist.HopAddition{Ounces: f[0], Minutes: f[1], AlphaAcid: f[2]})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s IBU\n", fixed(grist.IBU(o.gravity, gals, additions), 1))
	return nil
}
