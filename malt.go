package grist

import "math"

// OriginalGravity returns the estimated original gravity of gals of wort
// brewed at the given brewhouse efficiency (percent). ppgs holds each
// fermentable's gravity points per pound per gallon, weights its pounds.
// Returns ErrLengthMismatch if ppgs and weights differ in length.
func OriginalGravity(gals, efficiency float64, ppgs, weights []float64) (float64, error) {
	if err := checkLengths("ppgs", len(ppgs), "weights", len(weights)); err != nil {
		return 0, err
	}
	var points float64
	for i, w := range weights {
		points += w * ppgs[i]
	}
	return (efficiency/100)*points/(1000*gals) + 1, nil
}

// SRM returns the Morey estimate of wort color from each fermentable's color
// in degrees Lovibond and weight in pounds.
//
//	SRM = 1.4922 · (MCU)^0.6859, MCU = Σ(lb · °L) / gals
//
// Returns ErrLengthMismatch if lovibonds and weights differ in length.
func SRM(gals float64, lovibonds, weights []float64) (float64, error) {
	if err := checkLengths("lovibonds", len(lovibonds), "weights", len(weights)); err != nil {
		return 0, err
	}
	var mcu float64
	for i, w := range weights {
		mcu += w * lovibonds[i]
	}
	return 1.4922 * math.Pow(mcu/gals, 0.6859), nil
}

// Fractions returns each value divided by the sum of all values.
// A zero sum yields NaN or ±Inf entries.
func Fractions(values []float64) []float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / total
	}
	return out
}

// CalcWeights returns the pounds of each fermentable needed to reach og in
// gals of wort at the given efficiency. percentages are relative shares of the
// grist and need not sum to 100. If the fermentables contribute no gravity,
// every weight is zero.
// Returns ErrLengthMismatch if ppgs and percentages differ in length.
func CalcWeights(og, gals, efficiency float64, ppgs, percentages []float64) ([]float64, error) {
	if err := checkLengths("ppgs", len(ppgs), "percentages", len(percentages)); err != nil {
		return nil, err
	}
	points := (og - 1) * 100000 / efficiency * gals
	proportions := Fractions(percentages)

	var perPound float64
	for i, p := range proportions {
		perPound += ppgs[i] * p
	}
	var totalLbs float64
	if perPound > 0 {
		totalLbs = points / perPound
	}

	weights := make([]float64, len(proportions))
	for i, p := range proportions {
		weights[i] = p * totalLbs
	}
	return weights, nil
}
