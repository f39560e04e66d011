package yeast

import "errors"

// Sentinel errors for the yeast package.
// Use errors.Is to check: errors.Is(err, yeast.ErrInvalidPlanner)
var (
	ErrInvalidLimiter = errors.New("yeast: invalid limiter")
	ErrInvalidPlanner = errors.New("yeast: invalid planner config")
)
