package grist

// FinalGravity returns the final gravity of wort at og after fermenting to the
// given apparent attenuation (percent).
//
//	FG = (OG - 1) · (1 - att/100) + 1
func FinalGravity(og, attenuation float64) float64 {
	return (og-1)*(1-attenuation/100) + 1
}

// ABV returns the estimated alcohol by volume, in percent.
//
//	ABV = (OG - FG) · 131
func ABV(og, fg float64) float64 {
	return (og - fg) * 131
}
