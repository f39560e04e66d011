package yeast

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Limiter names the constraint that capped a starter step's final cell count.
type Limiter int

const (
	LimitTarget      Limiter = iota + 1 // The overall target was reachable.
	LimitGrowthRatio                    // Capped by the maximum growth ratio per step.
	LimitVolume                         // Capped by the maximum starter volume.
)

var (
	limiterNames  = [...]string{LimitTarget: "target", LimitGrowthRatio: "max growth ratio", LimitVolume: "max starter volume"}
	limiterByName = map[string]Limiter{
		"target":             LimitTarget,
		"max growth ratio":   LimitGrowthRatio,
		"max starter volume": LimitVolume,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Limiter(0)
	_ json.Marshaler           = Limiter(0)
	_ json.Unmarshaler         = (*Limiter)(nil)
	_ encoding.TextMarshaler   = Limiter(0)
	_ encoding.TextUnmarshaler = (*Limiter)(nil)
)

// String returns the limiter label ("target", "max growth ratio",
// "max starter volume"). For invalid values it returns "Limiter(n)".
func (l Limiter) String() string {
	if l.IsValid() {
		return limiterNames[l]
	}
	return fmt.Sprintf("Limiter(%d)", int(l))
}

// IsValid reports whether l is one of the defined limiters.
func (l Limiter) IsValid() bool {
	return l >= LimitTarget && l <= LimitVolume
}

// MarshalText implements encoding.TextMarshaler.
func (l Limiter) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimiter, int(l))
	}
	return []byte(limiterNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Limiter) UnmarshalText(text []byte) error {
	v, ok := limiterByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLimiter, text)
	}
	*l = v
	return nil
}

// MarshalJSON implements json.Marshaler. Limiter serializes as a JSON string.
func (l Limiter) MarshalJSON() ([]byte, error) {
	text, err := l.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (l *Limiter) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLimiter, data)
	}
	return l.UnmarshalText([]byte(s))
}
