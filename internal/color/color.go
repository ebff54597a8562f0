// Package color converts between perceptual OKLCH colors and 8-bit sRGB.
package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Bounds for PerceptualColor components.
const (
	MaxLightness = 1.0
	MaxChroma    = 0.5
	MaxHue       = 360.0
)

// PerceptualColor is a color in the OKLCH space.
// L is lightness [0, 1], C is chroma [0, 0.5], H is hue in degrees [0, 360].
type PerceptualColor struct {
	L float64 `json:"l" yaml:"l"`
	C float64 `json:"c" yaml:"c"`
	H float64 `json:"h" yaml:"h"`
}

// DeviceColor is an 8-bit sRGB triple.
type DeviceColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Validate reports whether every component is within its documented range.
func (p PerceptualColor) Validate() error {
	switch {
	case math.IsNaN(p.L) || p.L < 0 || p.L > MaxLightness:
		return fmt.Errorf("lightness %v out of range [0, %v]", p.L, MaxLightness)
	case math.IsNaN(p.C) || p.C < 0 || p.C > MaxChroma:
		return fmt.Errorf("chroma %v out of range [0, %v]", p.C, MaxChroma)
	case math.IsNaN(p.H) || p.H < 0 || p.H > MaxHue:
		return fmt.Errorf("hue %v out of range [0, %v]", p.H, MaxHue)
	}
	return nil
}

// WithChroma returns a copy with chroma replaced.
func (p PerceptualColor) WithChroma(c float64) PerceptualColor {
	p.C = c
	return p
}

// RotateHue returns a copy with the hue shifted by deg, wrapped into [0, 360).
func (p PerceptualColor) RotateHue(deg float64) PerceptualColor {
	h := math.Mod(p.H+deg, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	p.H = h
	return p
}

func (p PerceptualColor) String() string {
	return fmt.Sprintf("oklch(%.4f %.4f %.4f)", p.L, p.C, p.H)
}

// Encode converts p to gamma-encoded sRGB channels in 0..1 units without
// clamping, so out-of-gamut colors yield values below 0 or above 1.
//
// Lightness extremes collapse to a single achromatic point: L <= 0 is black
// and L >= 1 is white whatever the chroma. Zero chroma takes an achromatic
// path so all three channels are bit-identical.
func Encode(p PerceptualColor) (r, g, b float64) {
	if p.L <= 0 {
		return 0, 0, 0
	}
	if p.L >= MaxLightness {
		return 1, 1, 1
	}
	if p.C == 0 {
		v := linearToSRGB(p.L * p.L * p.L)
		return v, v, v
	}

	hRad := p.H * (math.Pi / 180.0)
	a := p.C * math.Cos(hRad)
	bb := p.C * math.Sin(hRad)

	lr, lg, lb := oklabToLinearRGB(p.L, a, bb)
	return linearToSRGB(lr), linearToSRGB(lg), linearToSRGB(lb)
}

// Channels returns the rounded 8-bit channel values before clamping.
func Channels(p PerceptualColor) [3]int {
	r, g, b := Encode(p)
	return [3]int{
		int(math.Round(r * 255.0)),
		int(math.Round(g * 255.0)),
		int(math.Round(b * 255.0)),
	}
}

// ToDevice converts p to an sRGB triple. Channels are clamped to [0, 255];
// callers that need a faithful result clip the color into gamut first.
func ToDevice(p PerceptualColor) DeviceColor {
	ch := Channels(p)
	return DeviceColor{
		R: clampByte(ch[0]),
		G: clampByte(ch[1]),
		B: clampByte(ch[2]),
	}
}

// ToHex renders d as lowercase #rrggbb.
func ToHex(d DeviceColor) string {
	return d.colorful().Hex()
}

// ToHexFromPerceptual is ToHex(ToDevice(p)).
func ToHexFromPerceptual(p PerceptualColor) string {
	return ToHex(ToDevice(p))
}

// ParseHex parses #rrggbb (or #rgb) text into a DeviceColor.
func ParseHex(s string) (DeviceColor, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return DeviceColor{}, fmt.Errorf("parse hex %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return DeviceColor{R: r, G: g, B: b}, nil
}

// FromDevice converts an sRGB triple back to OKLCH. Achromatic inputs
// report hue 0.
func FromDevice(d DeviceColor) PerceptualColor {
	lr, lg, lb := d.colorful().LinearRgb()
	l, a, b := linearRGBToOKLab(lr, lg, lb)

	c := math.Sqrt(a*a + b*b)
	if c < 1e-7 {
		return PerceptualColor{L: clamp(l, 0, MaxLightness)}
	}
	h := math.Atan2(b, a) * (180.0 / math.Pi)
	if h < 0 {
		h += MaxHue
	}
	return PerceptualColor{L: clamp(l, 0, MaxLightness), C: c, H: h}
}

// Linear returns the linear-light channels of d in 0..1 units.
func (d DeviceColor) Linear() (r, g, b float64) {
	return d.colorful().LinearRgb()
}

func (d DeviceColor) colorful() colorful.Color {
	return colorful.Color{
		R: float64(d.R) / 255.0,
		G: float64(d.G) / 255.0,
		B: float64(d.B) / 255.0,
	}
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func oklabToLinearRGB(l, a, b float64) (float64, float64, float64) {
	lp := l + 0.3963377774*a + 0.2158037573*b
	mp := l - 0.1055613458*a - 0.0638541728*b
	sp := l - 0.0894841775*a - 1.2914855480*b

	lc := lp * lp * lp
	mc := mp * mp * mp
	sc := sp * sp * sp

	r := +4.0767416621*lc - 3.3077115913*mc + 0.2309699292*sc
	g := -1.2684380046*lc + 2.6097574011*mc - 0.3413193965*sc
	bl := -0.0041960863*lc - 0.7034186147*mc + 1.7076147010*sc
	return r, g, bl
}

func linearRGBToOKLab(r, g, b float64) (float64, float64, float64) {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	L := 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A := 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B := 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return L, A, B
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
