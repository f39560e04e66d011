package yeast

import (
	"encoding/json"
	"fmt"
	"math"
)

// PlannerConfig configures a Planner.
// Zero values produce sensible defaults; see field comments.
type PlannerConfig struct {
	Gravity          float64 `json:"gravity" toml:"gravity"`                           // zero → 1.036
	MaxGallons       float64 `json:"max_gallons" toml:"max_gallons"`                   // zero → 1
	MaxGrowthPerStep float64 `json:"max_growth_per_step" toml:"max_growth_per_step"` // zero → 6
}

// Default planner settings.
const (
	DefaultStarterGravity   = 1.036
	DefaultMaxGallons       = 1.0
	DefaultMaxGrowthPerStep = 6.0
)

// Planner plans yeast starters for a fixed wort gravity and equipment limits.
// A Planner is immutable and safe for concurrent use.
type Planner struct {
	gravity          float64
	maxGallons       float64
	maxGrowthPerStep float64
}

// NewPlanner creates a Planner from the given config.
// Zero-value fields are filled with defaults; invalid values return an error
// wrapping ErrInvalidPlanner.
func NewPlanner(cfg PlannerConfig) (*Planner, error) {
	gravity := cfg.Gravity
	if gravity == 0 {
		gravity = DefaultStarterGravity
	}
	if !(gravity > 1) || math.IsInf(gravity, 0) {
		return nil, fmt.Errorf("%w: gravity %f must be above 1", ErrInvalidPlanner, gravity)
	}

	maxGals := cfg.MaxGallons
	if maxGals == 0 {
		maxGals = DefaultMaxGallons
	}
	if !(maxGals > 0) || math.IsInf(maxGals, 0) {
		return nil, fmt.Errorf("%w: max gallons %f must be positive", ErrInvalidPlanner, maxGals)
	}

	maxGrowth := cfg.MaxGrowthPerStep
	if maxGrowth == 0 {
		maxGrowth = DefaultMaxGrowthPerStep
	}
	if !(maxGrowth > 0) || math.IsInf(maxGrowth, 0) {
		return nil, fmt.Errorf("%w: max growth per step %f must be positive", ErrInvalidPlanner, maxGrowth)
	}

	return &Planner{
		gravity:          gravity,
		maxGallons:       maxGals,
		maxGrowthPerStep: maxGrowth,
	}, nil
}

// Config returns the effective configuration, defaults included.
func (p *Planner) Config() PlannerConfig {
	return PlannerConfig{
		Gravity:          p.gravity,
		MaxGallons:       p.maxGallons,
		MaxGrowthPerStep: p.maxGrowthPerStep,
	}
}

// Plan returns the starter steps that grow cells toward targetCells.
// See StarterSteps.
func (p *Planner) Plan(cells, targetCells float64) []StarterStep {
	return StarterSteps(cells, targetCells, p.gravity, p.maxGallons, p.maxGrowthPerStep)
}

// StarterCells returns the cells after a single starter of gals gallons.
func (p *Planner) StarterCells(cells, gals float64) float64 {
	return StarterCells(cells, p.gravity, gals)
}

// MarshalJSON implements json.Marshaler.
func (p *Planner) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Config())
}

// UnmarshalJSON implements json.Unmarshaler.
// The decoded config is validated exactly as NewPlanner does.
func (p *Planner) UnmarshalJSON(data []byte) error {
	var cfg PlannerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return err
	}
	rebuilt, err := NewPlanner(cfg)
	if err != nil {
		return err
	}
	*p = *rebuilt
	return nil
}
