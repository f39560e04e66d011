package yeast

import "github.com/sky-flux/grist"

// StarterStep is one planned propagation step. Steps are values; a plan never
// changes a step after emitting it.
type StarterStep struct {
	InitialCells    float64 `json:"initial_cells"`    // billions, at pitch
	Gallons         float64 `json:"gallons"`          // starter wort volume; 0 means no further growth is possible
	GrowthRate      float64 `json:"growth_rate"`      // billions of cells per gram of extract
	ExtractGrams    float64 `json:"extract_grams"`    // DME in Gallons of wort
	InoculationRate float64 `json:"inoculation_rate"` // InitialCells / ExtractGrams; 0 when Gallons is 0
	FinalCells      float64 `json:"final_cells"`      // billions, after growth
	Limiter         Limiter `json:"limiter"`
}

// Liters returns the step's starter volume in liters.
func (s StarterStep) Liters() float64 {
	return grist.GallonsToLiters(s.Gallons)
}

// Growth returns the billions of cells the step adds.
func (s StarterStep) Growth() float64 {
	return s.FinalCells - s.InitialCells
}

// StarterSummary totals a plan.
type StarterSummary struct {
	Steps        int     `json:"steps"`
	Gallons      float64 `json:"gallons"`       // summed over all steps
	ExtractGrams float64 `json:"extract_grams"` // summed over all steps
	FinalCells   float64 `json:"final_cells"`
	Reached      bool    `json:"reached"` // FinalCells >= the requested target
}

// Summarize totals the steps of a plan built toward targetCells. An empty
// plan means no starter is needed, or none is possible; FinalCells is then
// cells and Reached reports cells >= targetCells.
func Summarize(cells, targetCells float64, steps []StarterStep) StarterSummary {
	sum := StarterSummary{Steps: len(steps), FinalCells: cells}
	for _, s := range steps {
		sum.Gallons += s.Gallons
		sum.ExtractGrams += s.ExtractGrams
		sum.FinalCells = s.FinalCells
	}
	sum.Reached = sum.FinalCells >= targetCells
	return sum
}
