package yeast

// MaxStarterSteps caps the number of steps a plan may contain so that
// pathological input cannot loop forever.
const MaxStarterSteps = 20

// Closed-form starter volume, derived from the Braukaiser growth model.
//
// With E grams of extract per gallon, c current cells and T target cells:
//
//	rate = c / (E·gal)
//	T    = c + growth(rate) · E·gal
//
// Constant regime, growth = 1.4 (rate < 1.4):
//
//	E·gal = (T - c) / 1.4
//	rate  = 1.4·c / (T - c) < 1.4   ⇔   2c < T
//	gal   = (T - c) / (1.4·E)
//
// Linear regime, growth = 2.33 - 0.67·rate (rate < 3.5):
//
//	T - c = 2.33·E·gal - 0.67·c
//	gal   = (T - 0.33·c) / (2.33·E)
//	rate  = 2.33·c / (T - 0.33·c) < 3.5   ⇔   (2.33/3.5 + 0.33)·c < T
//
// The linear condition holds for every T > c. At T ≤ c the step would need
// zero or negative growth and gal = 0.

// stepGallons returns the starter volume that grows cells to target.
func (w *wort) stepGallons(cells, target float64) float64 {
	switch {
	case !(target > cells):
		return 0
	case 2*cells < target:
		return (target - cells) / (maxGrowthRate * w.gramsPerGal)
	default:
		return (target - (1-linearSlope)*cells) / (linearIntercept * w.gramsPerGal)
	}
}

// stepCeiling returns the most cells the next step may reach from cells, and
// which constraint set that number. Constraints are checked in the order
// target, growth ratio, volume; a later one wins only if strictly tighter.
func (w *wort) stepCeiling(cells, targetCells, maxGals, maxGrowthPerStep float64) (float64, Limiter) {
	ceiling, limiter := targetCells, LimitTarget

	if byRatio := cells * maxGrowthPerStep; ceiling > byRatio {
		ceiling, limiter = byRatio, LimitGrowthRatio
	}

	// The full volume gives the lowest inoculation rate, hence the most growth.
	if byVolume := grow(cells, w.extractGrams(maxGals)); ceiling > byVolume {
		ceiling, limiter = byVolume, LimitVolume
	}
	return ceiling, limiter
}

// StarterSteps plans a sequence of starters that grows cells billion cells
// toward targetCells. Each step uses wort of the given gravity, at most
// maxGals gallons, and at most multiplies its cell count by maxGrowthPerStep.
//
// The result is empty if cells is zero or already meets targetCells. A step
// with zero Gallons means no further growth is possible and ends the plan.
// Plans are capped at MaxStarterSteps steps; a capped plan stops short of the
// target without error. Inputs are not validated: out-of-range values
// propagate through the arithmetic.
func StarterSteps(cells, targetCells, gravity, maxGals, maxGrowthPerStep float64) []StarterStep {
	if cells == 0 || cells >= targetCells {
		return nil
	}

	w := newWort(gravity)
	var steps []StarterStep
	current := cells
	for n := 0; n < MaxStarterSteps; n++ {
		ceiling, limiter := w.stepCeiling(current, targetCells, maxGals, maxGrowthPerStep)
		gals := w.stepGallons(current, ceiling)

		step := StarterStep{
			InitialCells: current,
			Gallons:      gals,
			ExtractGrams: w.extractGrams(gals),
			FinalCells:   ceiling,
			Limiter:      limiter,
		}
		if gals > 0 {
			step.InoculationRate = current / step.ExtractGrams
			step.GrowthRate = GrowthRate(step.InoculationRate)
		} else {
			// Nothing grows; the ceiling did not exceed the current count.
			step.FinalCells = current
		}
		steps = append(steps, step)

		if ceiling >= targetCells || gals == 0 {
			break
		}
		current = ceiling
	}
	return steps
}
