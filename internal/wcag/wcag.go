// Package wcag checks semantic color pairs of a resolved theme against
// WCAG 2.x contrast thresholds.
package wcag

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
)

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// ParseLevel accepts "AA" or "AAA" in any case.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	}
	return "", fmt.Errorf("unknown WCAG level %q (expected AA or AAA)", s)
}

// TextSize selects which threshold family applies to a check.
type TextSize string

const (
	TextNormal TextSize = "normal"
	TextLarge  TextSize = "large"
)

var thresholds = map[Level]map[TextSize]float64{
	LevelAA:  {TextNormal: 4.5, TextLarge: 3.0},
	LevelAAA: {TextNormal: 7.0, TextLarge: 4.5},
}

// Threshold returns the minimum contrast ratio for level and size.
func Threshold(level Level, size TextSize) (float64, error) {
	bySize, ok := thresholds[level]
	if !ok {
		return 0, fmt.Errorf("unknown WCAG level %q", level)
	}
	t, ok := bySize[size]
	if !ok {
		return 0, fmt.Errorf("unknown text size %q", size)
	}
	return t, nil
}

// Pairing is a foreground shade checked against the theme background.
type Pairing struct {
	Semantic string
	Role     models.Role
	Level    int
	Size     TextSize
}

// Background is the canonical surface every pairing is checked against.
var Background = struct {
	Role  models.Role
	Level int
}{Role: models.RoleNeutral, Level: 50}

// Pairings lists every check in report order. primary, success, warning
// and error are mandatory.
var Pairings = []Pairing{
	{Semantic: "primary", Role: models.RolePrimary, Level: 500, Size: TextNormal},
	{Semantic: "secondary", Role: models.RoleSecondary, Level: 500, Size: TextLarge},
	{Semantic: "accent", Role: models.RoleAccent, Level: 500, Size: TextLarge},
	{Semantic: "success", Role: models.RoleSuccess, Level: 500, Size: TextNormal},
	{Semantic: "warning", Role: models.RoleWarning, Level: 500, Size: TextNormal},
	{Semantic: "error", Role: models.RoleError, Level: 500, Size: TextNormal},
	{Semantic: "text", Role: models.RoleNeutral, Level: 900, Size: TextNormal},
}

// Check is the outcome of one pairing.
type Check struct {
	Semantic      string   `json:"semantic"`
	Foreground    string   `json:"foreground"`
	Background    string   `json:"background"`
	ForegroundHex string   `json:"foregroundHex"`
	BackgroundHex string   `json:"backgroundHex"`
	TextSize      TextSize `json:"textSize"`
	Threshold     float64  `json:"threshold"`
	ContrastRatio float64  `json:"contrastRatio"`
	Passed        bool     `json:"passed"`
}

// ComplianceReport is the accessibility outcome for a theme.
type ComplianceReport struct {
	Theme  string  `json:"theme"`
	Level  Level   `json:"level"`
	Passed bool    `json:"passed"`
	Checks []Check `json:"checks"`
}

// Failed returns the checks that did not pass.
func (r *ComplianceReport) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// RelativeLuminance computes WCAG relative luminance from linearized sRGB.
func RelativeLuminance(d color.DeviceColor) float64 {
	r, g, b := d.Linear()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns (L1+0.05)/(L2+0.05) with L1 the lighter color.
func ContrastRatio(a, b color.DeviceColor) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Validate runs every pairing against theme at level. A theme missing a
// paired shade is an error rather than a skipped check.
func Validate(theme *models.ResolvedTheme, level Level) (*ComplianceReport, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme is required")
	}
	if _, ok := thresholds[level]; !ok {
		return nil, fmt.Errorf("unknown WCAG level %q", level)
	}

	bg, ok := theme.Tokens.Shade(Background.Role, Background.Level)
	if !ok {
		return nil, fmt.Errorf("theme %q has no %s-%d background", theme.ID, Background.Role, Background.Level)
	}

	report := &ComplianceReport{Theme: theme.ID, Level: level, Passed: true}
	for _, p := range Pairings {
		fg, ok := theme.Tokens.Shade(p.Role, p.Level)
		if !ok {
			return nil, fmt.Errorf("theme %q has no %s-%d shade for %s check", theme.ID, p.Role, p.Level, p.Semantic)
		}
		threshold, err := Threshold(level, p.Size)
		if err != nil {
			return nil, err
		}

		ratio := ContrastRatio(fg.Device, bg.Device)
		check := Check{
			Semantic:      p.Semantic,
			Foreground:    fmt.Sprintf("%s-%d", p.Role, p.Level),
			Background:    fmt.Sprintf("%s-%d", Background.Role, Background.Level),
			ForegroundHex: fg.Hex,
			BackgroundHex: bg.Hex,
			TextSize:      p.Size,
			Threshold:     threshold,
			ContrastRatio: ratio,
			Passed:        ratio >= threshold,
		}
		if !check.Passed {
			report.Passed = false
		}
		report.Checks = append(report.Checks, check)
	}

	return report, nil
}
