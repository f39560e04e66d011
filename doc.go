// Package grist implements brewing arithmetic: hop bitterness, malt-derived
// gravity and color, and alcohol estimates.
//
// All functions are pure. Volumes are US gallons, grain and extract weights
// are pounds and hop weights are ounces; see units.go for conversions.
// Yeast viability and starter planning live in the grist/yeast subpackage.
//
// Basic usage:
//
//	og, err := grist.OriginalGravity(5, 72, []float64{37, 34}, []float64{9, 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fg := grist.FinalGravity(og, 75)
//	fmt.Printf("%.1f%% ABV\n", grist.ABV(og, fg))
package grist
