package cmd

import (
	"fmt"

	"github.com/sky-flux/grist"
	"github.com/sky-flux/grist/yeast"
	"github.com/spf13/cobra"
)

type pitchOptions struct {
	rate    float64
	liters  float64
	gallons float64
	plato   float64
	gravity float64
}

func newPitchCmd(g *globals) *cobra.Command {
	o := &pitchOptions{}
	cmd := &cobra.Command{
		Use:   "pitch",
		Short: "Compute the cells needed to pitch a batch",
		Long: `Compute the yeast cells, in billions, needed to pitch a batch at a
given rate (million cells per mL per degree Plato).

Give the batch volume with --liters or --gallons and its density with
--plato or --gravity. Missing values come from the [brewhouse] config.

Examples:
  grist pitch --rate 0.75 --liters 20 --plato 12
  grist pitch --gallons 5 --gravity 1.060`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPitch(cmd, g, o)
		},
	}
	cmd.Flags().Float64Var(&o.rate, "rate", 0, "Pitch rate, million cells/mL/°P (default from config)")
	cmd.Flags().Float64Var(&o.liters, "liters", 0, "Batch volume in liters")
	cmd.Flags().Float64Var(&o.gallons, "gallons", 0, "Batch volume in gallons (default from config)")
	cmd.Flags().Float64Var(&o.plato, "plato", 0, "Wort density in degrees Plato")
	cmd.Flags().Float64Var(&o.gravity, "gravity", 0, "Wort specific gravity")
	cmd.MarkFlagsMutuallyExclusive("liters", "gallons")
	cmd.MarkFlagsMutuallyExclusive("plato", "gravity")
	cmd.MarkFlagsOneRequired("plato", "gravity")
	return cmd
}

func runPitch(cmd *cobra.Command, g *globals, o *pitchOptions) error {
	rate := o.rate
	if rate == 0 {
		rate = g.cfg.Brewhouse.PitchRate
	}

	liters := o.liters
	if liters == 0 {
		gals := o.gallons
		if gals == 0 {
			gals = g.cfg.Brewhouse.Gallons
		}
		liters = grist.GallonsToLiters(gals)
	}

	plato := o.plato
	if plato == 0 {
		plato = grist.GravityToPlato(o.gravity)
	}

	need := yeast.TargetCells(rate, liters, plato)
	fmt.Fprintf(cmd.OutOrStdout(), "%s for %s L at %s °P (rate %s)\n",
		cellsString(need), fixed(liters, 1), fixed(plato, 1), fixed(rate, 2))
	return nil
}
