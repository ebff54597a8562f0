// Package ramp derives ten-level shade scales from a single base color.
//
// The curve is fixed: level 500 is the base color, lighter levels move
// lightness toward 1 and darker levels toward 0 by a fraction of the
// remaining distance, and chroma is scaled down toward both ends so the
// palest and deepest shades are less vivid. Hue never changes.
//
//	level  lightness                 chroma
//	  50   L + (1-L)*0.90            C*0.15
//	 100   L + (1-L)*0.78            C*0.30
//	 200   L + (1-L)*0.60            C*0.55
//	 300   L + (1-L)*0.40            C*0.75
//	 400   L + (1-L)*0.20            C*0.90
//	 500   L                         C
//	 600   L*(1-0.18)                C*0.95
//	 700   L*(1-0.36)                C*0.85
//	 800   L*(1-0.54)                C*0.70
//	 900   L*(1-0.70)                C*0.55
//
// Shades are not gamut-clipped here.
package ramp

import (
	"fmt"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
)

// Direction says which way a level moves lightness.
type Direction int

const (
	Base Direction = iota
	Lighter
	Darker
)

// Step is one point of the curve.
type Step struct {
	Level int
	// Direction of the lightness move.
	Direction Direction
	// Shift is the fraction of the distance to the lightness extreme.
	Shift float64
	// ChromaFactor multiplies the base chroma.
	ChromaFactor float64
}

var curve = [models.ShadeCount]Step{
	{Level: 50, Direction: Lighter, Shift: 0.90, ChromaFactor: 0.15},
	{Level: 100, Direction: Lighter, Shift: 0.78, ChromaFactor: 0.30},
	{Level: 200, Direction: Lighter, Shift: 0.60, ChromaFactor: 0.55},
	{Level: 300, Direction: Lighter, Shift: 0.40, ChromaFactor: 0.75},
	{Level: 400, Direction: Lighter, Shift: 0.20, ChromaFactor: 0.90},
	{Level: 500, Direction: Base, Shift: 0, ChromaFactor: 1.00},
	{Level: 600, Direction: Darker, Shift: 0.18, ChromaFactor: 0.95},
	{Level: 700, Direction: Darker, Shift: 0.36, ChromaFactor: 0.85},
	{Level: 800, Direction: Darker, Shift: 0.54, ChromaFactor: 0.70},
	{Level: 900, Direction: Darker, Shift: 0.70, ChromaFactor: 0.55},
}

// Curve returns the curve point for level.
func Curve(level int) (Step, error) {
	for _, step := range curve {
		if step.Level == level {
			return step, nil
		}
	}
	return Step{}, fmt.Errorf("unknown shade level %d", level)
}

// Apply moves base along the step.
func (s Step) Apply(base color.PerceptualColor) color.PerceptualColor {
	l := base.L
	switch s.Direction {
	case Lighter:
		l = base.L + (color.MaxLightness-base.L)*s.Shift
	case Darker:
		l = base.L * (1 - s.Shift)
	}
	return color.PerceptualColor{L: l, C: base.C * s.ChromaFactor, H: base.H}
}

// Shade returns the unclipped shade of base at level.
func Shade(base color.PerceptualColor, level int) (color.PerceptualColor, error) {
	step, err := Curve(level)
	if err != nil {
		return color.PerceptualColor{}, err
	}
	return step.Apply(base), nil
}

// Generate returns the ten unclipped shades of base in ascending level order.
func Generate(base color.PerceptualColor) [models.ShadeCount]color.PerceptualColor {
	var out [models.ShadeCount]color.PerceptualColor
	for i, step := range curve {
		out[i] = step.Apply(base)
	}
	return out
}
