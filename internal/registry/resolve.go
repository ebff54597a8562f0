package registry

import (
	"fmt"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/gamut"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/ramp"
)

// Status roles take their hue from this table, their lightness from the
// primary color, and their chroma from the primary clamped to
// [minStatusChroma, maxStatusChroma].
var statusHues = map[models.Role]float64{
	models.RoleSuccess: 145,
	models.RoleWarning: 70,
	models.RoleError:   27,
}

const (
	minStatusChroma = 0.12
	maxStatusChroma = 0.20

	secondaryHueShift = 30
	accentHueShift    = 180
)

// BaseColors returns the 500-level base for every role in models.Roles order.
func BaseColors(palette models.ColorPalette) [len(models.Roles)]color.PerceptualColor {
	var out [len(models.Roles)]color.PerceptualColor
	for i, role := range models.Roles {
		out[i] = baseColor(palette, role)
	}
	return out
}

func baseColor(palette models.ColorPalette, role models.Role) color.PerceptualColor {
	primary := palette.Primary
	switch role {
	case models.RolePrimary:
		return primary
	case models.RoleSecondary:
		if palette.Secondary != nil {
			return *palette.Secondary
		}
		return primary.RotateHue(secondaryHueShift)
	case models.RoleAccent:
		if palette.Accent != nil {
			return *palette.Accent
		}
		return primary.RotateHue(accentHueShift)
	case models.RoleNeutral:
		return palette.Neutral
	default:
		c := primary.C
		if c < minStatusChroma {
			c = minStatusChroma
		}
		if c > maxStatusChroma {
			c = maxStatusChroma
		}
		return color.PerceptualColor{L: primary.L, C: c, H: statusHues[role]}
	}
}

// Resolve expands a validated descriptor into a ResolvedTheme. Every shade
// is clipped into gamut; a shade that is still out of gamut afterwards is
// reported as a ConversionAnomalyError.
func Resolve(desc *models.ThemeDescriptor) (*models.ResolvedTheme, error) {
	if desc == nil {
		return nil, fmt.Errorf("descriptor is required")
	}

	bases := BaseColors(desc.ColorPalette)
	tokens := make(models.SemanticTokenScale, 0, len(models.Roles))
	for i, role := range models.Roles {
		r, err := expandRamp(desc.ID, role, bases[i])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, r)
	}

	composition, err := Compose(desc.ComponentDefaults, desc.Typography)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", desc.ID, err)
	}

	return &models.ResolvedTheme{
		ID:          desc.ID,
		Name:        desc.Name,
		Tokens:      tokens,
		Composition: composition,
	}, nil
}

func expandRamp(theme string, role models.Role, base color.PerceptualColor) (models.Ramp, error) {
	out := models.Ramp{Role: role}
	for i, shade := range ramp.Generate(base) {
		level := models.ShadeLevels[i]
		clipped := gamut.Clip(shade)
		if !gamut.InGamut(clipped) {
			return models.Ramp{}, &ConversionAnomalyError{Theme: theme, Role: role, Level: level, Color: shade}
		}
		device := color.ToDevice(clipped)
		out.Shades[i] = models.Shade{
			Level:  level,
			Color:  clipped,
			Device: device,
			Hex:    color.ToHex(device),
		}
	}
	return out, nil
}
