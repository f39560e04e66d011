package grist

import "math"

// Utilization returns the Tinseth hop utilization for an addition boiled for
// the given number of minutes in wort of the given average gravity.
//
//	U = 1.65 · 0.000125^(G-1) · (1 - e^(-0.04·t)) / 4.15
//
// Source: http://realbeer.com/hops/research.html
func Utilization(gravity, minutes float64) float64 {
	bigness := 1.65 * math.Pow(0.000125, gravity-1)
	boilTime := (1 - math.Exp(-0.04*minutes)) / 4.15
	return bigness * boilTime
}

// HopAddition is one hop addition during the boil.
type HopAddition struct {
	Ounces    float64 `json:"ounces"`
	Minutes   float64 `json:"minutes"`    // boil time
	AlphaAcid float64 `json:"alpha_acid"` // percent, e.g. 5.5
}

// IBU returns the Tinseth estimate of bitterness contributed by the additions
// to gals of finished wort. An empty addition list yields 0.
//
//	IBU = Σ U(G, t) · oz · AA · 74.90 / gals
func IBU(gravity, gals float64, additions []HopAddition) float64 {
	var total float64
	for _, a := range additions {
		total += Utilization(gravity, a.Minutes) * a.Ounces * a.AlphaAcid * 74.90 / gals
	}
	return total
}
