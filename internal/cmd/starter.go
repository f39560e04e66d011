package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sky-flux/grist"
	"github.com/sky-flux/grist/internal/style"
	"github.com/sky-flux/grist/yeast"
	"github.com/spf13/cobra"
)

type starterOptions struct {
	cells      float64
	target     float64
	mfg        string
	now        string
	gravity    float64
	maxGallons float64
	maxGrowth  float64
	liters     bool
	json       bool
	check      bool
}

func newStarterCmd(g *globals) *cobra.Command {
	o := &starterOptions{}
	cmd := &cobra.Command{
		Use:   "starter",
		Short: "Plan yeast starter steps to reach a target cell count",
		Long: `Plan a sequence of yeast starters that grows --cells billion cells to
--target billion cells.

Each step is limited by the target, by --max-growth (the largest ratio of
final to initial cells in one step) and by --max-gallons (the largest
starter the equipment holds). The limiter column names which one applied.

With --mfg, --cells is the count at manufacture and is reduced for age
before planning. --now sets the date the age is measured to.

Examples:
  grist starter --cells 100 --target 819
  grist starter --cells 100 --target 2000 --max-gallons 3 --max-growth 4
  grist starter --cells 100 --mfg 2024-03-01 --target 400 --json
  grist starter --cells 100 --target 400 --check && echo ok`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStarter(cmd, g, o)
		},
	}

	cmd.Flags().Float64Var(&o.cells, "cells", 0, "Cells available, in billions (required)")
	cmd.Flags().Float64Var(&o.target, "target", 0, "Cells wanted, in billions (required)")
	cmd.Flags().StringVar(&o.mfg, "mfg", "", "Manufacture date of the yeast (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.now, "now", "", "Date to evaluate viability at (default today)")
	cmd.Flags().Float64Var(&o.gravity, "gravity", 0, "Starter wort gravity (default from config)")
	cmd.Flags().Float64Var(&o.maxGallons, "max-gallons", 0, "Largest starter, in gallons (default from config)")
	cmd.Flags().Float64Var(&o.maxGrowth, "max-growth", 0, "Largest growth ratio per step (default from config)")
	cmd.Flags().BoolVar(&o.liters, "liters", false, "Show volumes in liters")
	cmd.Flags().BoolVar(&o.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&o.check, "check", false, "Print nothing; exit 1 if the target cannot be reached")
	_ = cmd.MarkFlagRequired("cells")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

// starterReport is the JSON form of a plan.
type starterReport struct {
	Planner yeast.PlannerConfig  `json:"planner"`
	Cells   float64              `json:"cells"`
	Target  float64              `json:"target"`
	Steps   []yeast.StarterStep  `json:"steps"`
	Summary yeast.StarterSummary `json:"summary"`
}

func runStarter(cmd *cobra.Command, g *globals, o *starterOptions) error {
	cfg := g.cfg
	if o.gravity != 0 {
		cfg.Starter.Gravity = o.gravity
	}
	if o.maxGallons != 0 {
		cfg.Starter.MaxGallons = o.maxGallons
	}
	if o.maxGrowth != 0 {
		cfg.Starter.MaxGrowthPerStep = o.maxGrowth
	}
	planner, err := cfg.Planner()
	if err != nil {
		return usagef("%v", err)
	}

	cells := o.cells
	if o.mfg != "" {
		now, err := parseDate("now", o.now, time.Now())
		if err != nil {
			return err
		}
		mfg, err := parseDate("mfg", o.mfg, now)
		if err != nil {
			return err
		}
		cells = yeast.ViableCells(o.cells, now, mfg)
		slog.Debug("adjusted for viability", "cells", o.cells, "viable", cells)
	}

	steps := planner.Plan(cells, o.target)
	for i, s := range steps {
		slog.Debug("starter step", "step", i+1, "gallons", s.Gallons,
			"inoculation_rate", s.InoculationRate, "final_cells", s.FinalCells, "limiter", s.Limiter.String())
	}
	sum := yeast.Summarize(cells, o.target, steps)

	if o.check {
		if !sum.Reached {
			return NewSilentExit(ExitFailure)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if o.json {
		if steps == nil {
			steps = []yeast.StarterStep{}
		}
		return writeJSON(out, starterReport{
			Planner: planner.Config(),
			Cells:   cells,
			Target:  o.target,
			Steps:   steps,
			Summary: sum,
		})
	}

	if len(steps) == 0 {
		if cells == 0 {
			style.Fprintf(out, style.WarningPrefix, "No viable cells to grow")
			return nil
		}
		style.Fprintf(out, style.SuccessPrefix, "No starter needed: %s available, %s wanted",
			cellsString(cells), cellsString(o.target))
		return nil
	}

	unit, volume := "gal", func(s yeast.StarterStep) float64 { return s.Gallons }
	if o.liters {
		unit, volume = "L", yeast.StarterStep.Liters
	}

	tbl := style.NewTable(
		style.Column{Name: "Step", Align: style.AlignRight},
		style.Column{Name: "Volume (" + unit + ")", Align: style.AlignRight},
		style.Column{Name: "DME (g)", Align: style.AlignRight},
		style.Column{Name: "Inoculation", Align: style.AlignRight},
		style.Column{Name: "Growth", Align: style.AlignRight},
		style.Column{Name: "Cells", Align: style.AlignRight},
		style.Column{Name: "Limiter", Style: style.Dim},
	)
	for i, s := range steps {
		tbl.AddRow(
			fmt.Sprint(i+1),
			fixed(volume(s), 2),
			fixed(s.ExtractGrams, 0),
			fixed(s.InoculationRate, 2),
			fixed(s.GrowthRate, 2),
			cellsString(s.InitialCells)+" → "+cellsString(s.FinalCells),
			s.Limiter.String(),
		)
	}
	fmt.Fprint(out, tbl.Render())
	fmt.Fprintln(out)

	total := sum.Gallons
	if o.liters {
		total = grist.GallonsToLiters(sum.Gallons)
	}
	if sum.Reached {
		style.Fprintf(out, style.SuccessPrefix, "Reaches %s in %d step(s), %s %s of starter wort",
			cellsString(sum.FinalCells), sum.Steps, fixed(total, 2), unit)
	} else {
		style.Fprintf(out, style.WarningPrefix, "Stops at %s after %d step(s); target %s is out of reach",
			cellsString(sum.FinalCells), sum.Steps, cellsString(o.target))
	}
	return nil
}
