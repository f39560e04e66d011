package yeast

import "github.com/sky-flux/grist"

// DMEPointsPerPoundPerGallon is the assumed extract potential of the dry malt
// extract used for starters.
const DMEPointsPerPoundPerGallon = 42

// Braukaiser growth model constants.
// Source: http://braukaiser.com/blog/blog/2012/11/03/estimating-yeast-growth
const (
	maxGrowthRate   = 1.4  // growth ceiling, and the rate below which it applies
	linearIntercept = 2.33 // growth = linearIntercept - linearSlope*rate
	linearSlope     = 0.67
	saturationRate  = 3.5 // no growth at or above this inoculation rate
)

// GrowthRate returns billions of new cells per gram of extract as a function
// of the inoculation rate (billions of pitched cells per gram of extract).
//
//	rate < 1.4        → 1.4
//	1.4 ≤ rate < 3.5  → 2.33 - 0.67·rate
//	rate ≥ 3.5        → 0
//
// Source: http://braukaiser.com/blog/blog/2012/11/03/estimating-yeast-growth
func GrowthRate(inoculationRate float64) float64 {
	if inoculationRate < maxGrowthRate {
		return maxGrowthRate
	} else if inoculationRate < saturationRate {
		return linearIntercept - linearSlope*inoculationRate
	}
	return 0
}

// wort holds the extract density of a starter wort.
type wort struct {
	gramsPerGal float64 // grams of DME per gallon
}

// newWort derives the extract density of DME wort at the given gravity.
// grams/gal = lb/g · (SG - 1) · 1000 / PPG
func newWort(gravity float64) wort {
	return wort{gramsPerGal: grist.GramsPerPound * (gravity - 1) * 1000 / DMEPointsPerPoundPerGallon}
}

// extractGrams returns the grams of extract in gals of this wort.
func (w *wort) extractGrams(gals float64) float64 {
	return w.gramsPerGal * gals
}

// grow returns the cell count after pitching cells into extractGrams of extract.
func grow(cells, extractGrams float64) float64 {
	return cells + GrowthRate(cells/extractGrams)*extractGrams
}

// StarterCells returns the estimated cells, in billions, after growing cells
// in a single starter of gals gallons at the given gravity.
//
// Source: https://brewersfriend.com/yeast-pitch-rate-and-starter-calculator
func StarterCells(cells, gravity, gals float64) float64 {
	w := newWort(gravity)
	return grow(cells, w.extractGrams(gals))
}
