// Package yeast estimates yeast viability and plans starter propagation.
//
// It provides three groups of calculations:
//
//   - [Viability], [ViableCells] and [TotalViableCells] estimate how many
//     cells in a package are still alive, assuming linear decay from the
//     manufacture date.
//
//   - [GrowthRate] and [StarterCells] apply the Braukaiser growth model to a
//     single starter of known size.
//
//   - [StarterSteps] (and [Planner], its configured form) works backwards from
//     a target cell count to a sequence of starter steps, each bounded by a
//     maximum volume and a maximum growth ratio.
//
// # Units
//
// Cell counts are billions of cells. Starter volumes are US gallons and
// extract is grams of dry malt extract. [TargetCells] keeps the metric
// pitch-rate convention (million cells per mL per degree Plato).
//
// # Usage
//
//	cells := yeast.ViableCells(100, time.Now(), mfg)
//	need := yeast.TargetCells(0.75, 20, 12)
//	for _, step := range yeast.StarterSteps(cells, need, 1.036, 1, 6) {
//	    fmt.Printf("%.2f gal -> %.0f B cells (%s)\n", step.Gallons, step.FinalCells, step.Limiter)
//	}
package yeast
