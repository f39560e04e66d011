package yeast

import (
	"fmt"
	"math"
	"time"

	"github.com/sky-flux/grist"
)

// ViabilityLossPerDay is the fraction of a package's cells assumed to die each
// day after manufacture.
//
// Source: https://brewersfriend.com/yeast-pitch-rate-and-starter-calculator
const ViabilityLossPerDay = 0.007

const hoursPerDay = 24.0

// Viability returns the estimated fraction of living cells in a package
// manufactured at mfg, as of now. The result never drops below 0; a
// manufacture date after now yields a value above 1.
func Viability(now, mfg time.Time) float64 {
	days := now.Sub(mfg).Hours() / hoursPerDay
	return math.Max(1-ViabilityLossPerDay*days, 0)
}

// ViableCells returns the estimated living cells, in billions, of a package
// that held cells billion cells at manufacture.
func ViableCells(cells float64, now, mfg time.Time) float64 {
	return cells * Viability(now, mfg)
}

// TotalViableCells sums ViableCells over several packages.
// cellCounts[i] was manufactured at mfgDates[i].
// Returns grist.ErrLengthMismatch if the slices differ in length.
func TotalViableCells(now time.Time, cellCounts []float64, mfgDates []time.Time) (float64, error) {
	if len(cellCounts) != len(mfgDates) {
		return 0, fmt.Errorf("%w: %d cell counts, %d manufacture dates",
			grist.ErrLengthMismatch, len(cellCounts), len(mfgDates))
	}
	var total float64
	for i, cells := range cellCounts {
		total += ViableCells(cells, now, mfgDates[i])
	}
	return total, nil
}

// TargetCells returns the cells, in billions, needed to pitch liters of wort
// at plato degrees Plato at pitchRate million cells per mL per degree Plato.
//
// Source: https://brewersfriend.com/yeast-pitch-rate-and-starter-calculator
func TargetCells(pitchRate, liters, plato float64) float64 {
	return pitchRate * liters * plato
}
