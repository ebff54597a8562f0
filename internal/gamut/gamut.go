// Package gamut keeps perceptual colors inside the displayable sRGB cube.
package gamut

import "github.com/opencode-ai/themekit/internal/color"

// ChromaTolerance is the width of the chroma bracket at which Clip stops
// searching. It sits two orders of magnitude below the 4-decimal precision
// used when tokens are serialized.
const ChromaTolerance = 1e-6

// maxSteps bounds the bisection. ceil(log2(MaxChroma/ChromaTolerance)) is 19,
// so reaching it means the bracket arithmetic is broken.
const maxSteps = 64

// InGamut reports whether p converts to sRGB without any channel needing
// to be clamped.
func InGamut(p color.PerceptualColor) bool {
	for _, v := range color.Channels(p) {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Clip returns p unchanged when it is in gamut. Otherwise it lowers chroma,
// holding lightness and hue fixed, to the largest in-gamut value found by
// bisection over [0, p.C]. Zero chroma is always in gamut, so Clip always
// converges.
func Clip(p color.PerceptualColor) color.PerceptualColor {
	if InGamut(p) {
		return p
	}

	lo, hi := 0.0, p.C
	for step := 0; hi-lo > ChromaTolerance && step < maxSteps; step++ {
		mid := lo + (hi-lo)/2
		if InGamut(p.WithChroma(mid)) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return p.WithChroma(lo)
}

// MaxChroma returns the largest in-gamut chroma for the given lightness
// and hue, within ChromaTolerance.
func MaxChroma(l, h float64) float64 {
	return Clip(color.PerceptualColor{L: l, C: color.MaxChroma, H: h}).C
}
