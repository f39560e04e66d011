package grist

// Unit constants. The library works in US gallons, pounds and ounces;
// callers holding metric quantities convert at the boundary.
const (
	GramsPerPound   = 453.59237
	GramsPerOunce   = GramsPerPound / 16
	LitersPerGallon = 3.785411784
)

// GallonsToLiters converts US gallons to liters.
func GallonsToLiters(gals float64) float64 {
	return gals * LitersPerGallon
}

// LitersToGallons converts liters to US gallons.
func LitersToGallons(liters float64) float64 {
	return liters / LitersPerGallon
}

// KilogramsToPounds converts kilograms to pounds.
func KilogramsToPounds(kg float64) float64 {
	return kg * 1000 / GramsPerPound
}

// GramsToOunces converts grams to ounces.
func GramsToOunces(g float64) float64 {
	return g / GramsPerOunce
}

// GravityToPlato converts specific gravity to degrees Plato.
// °P = -616.868 + 1111.14·SG - 630.272·SG² + 135.997·SG³
func GravityToPlato(sg float64) float64 {
	return -616.868 + 1111.14*sg - 630.272*sg*sg + 135.997*sg*sg*sg
}

// PlatoToGravity converts degrees Plato to specific gravity.
// SG = 1 + P / (258.6 - (P / 258.2) · 227.1)
func PlatoToGravity(plato float64) float64 {
	return 1 + plato/(258.6-(plato/258.2)*227.1)
}
