package cmd

import (
	"fmt"

	"github.com/sky-flux/grist"
	"github.com/spf13/cobra"
)

type gravityOptions struct {
	gallons    float64
	efficiency float64
	malts      []string
}

func newGravityCmd(g *globals) *cobra.Command {
	o := &gravityOptions{}
	cmd := &cobra.Command{
		Use:   "og",
		Short: "Estimate original gravity and color from a grist",
		Long: `Estimate the original gravity and SRM color of a batch.

Each --malt is pounds:ppg:lovibond, e.g. 9:37:2 for nine pounds of pale
malt. The lovibond field may be omitted and counts as 0.

Examples:
  grist og --malt 9:37:2 --malt 1:34:60
  grist og --gallons 10 --efficiency 80 --malt 18:37:2`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGravity(cmd, g, o)
		},
	}
	cmd.Flags().Float64Var(&o.gallons, "gallons", 0, "Batch volume in gallons (default from config)")
	cmd.Flags().Float64Var(&o.efficiency, "efficiency", 0, "Brewhouse efficiency percent (default from config)")
	cmd.Flags().StringArrayVar(&o.malts, "malt", nil, "Fermentable pounds:ppg[:lovibond] (repeatable)")
	_ = cmd.MarkFlagRequired("malt")
	return cmd
}

func runGravity(cmd *cobra.Command, g *globals, o *gravityOptions) error {
	gals := o.gallons
	if gals == 0 {
		gals = g.cfg.Brewhouse.Gallons
	}
	eff := o.efficiency
	if eff == 0 {
		eff = g.cfg.Brewhouse.Efficiency
	}

	var weights, ppgs, lovibonds []float64
	for _, m := range o.malts {
		f, err := parseFields(m, 2, 3)
		if err != nil {
			return err
		}
		weights = append(weights, f[0])
		ppgs = append(ppgs, f[1])
		if len(f) == 3 {
			lovibonds = append(lovibonds, f[2])
		} else {
			lovibonds = append(lovibonds, 0)
		}
	}

	og, err := grist.OriginalGravity(gals, eff, ppgs, weights)
	if err != nil {
		return err
	}
	srm, err := grist.SRM(gals, lovibonds, weights)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "OG   %s (%s °P)\n", fixed(og, 3), fixed(grist.GravityToPlato(og), 1))
	fmt.Fprintf(out, "SRM  %s\n", fixed(srm, 1))
	return nil
}
