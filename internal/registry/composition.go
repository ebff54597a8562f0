package registry

import (
	"fmt"

	"github.com/opencode-ai/themekit/internal/models"
)

// Defaults applied when a descriptor leaves typography fields unset.
const (
	DefaultFontFamily    = "system-ui, sans-serif"
	DefaultHeadingWeight = 700
	DefaultBodyWeight    = 400
)

var radiusTable = map[models.BorderRadius]string{
	models.BorderRadiusNone:   "0",
	models.BorderRadiusSmall:  "0.125rem",
	models.BorderRadiusMedium: "0.375rem",
	models.BorderRadiusLarge:  "0.75rem",
	models.BorderRadiusFull:   "9999px",
}

var borderWidthTable = map[models.Contrast]string{
	models.ContrastLow:     "1px",
	models.ContrastMedium:  "1px",
	models.ContrastHigh:    "2px",
	models.ContrastMaximum: "3px",
}

// Maximum contrast drops shadows in favor of heavier borders.
var shadowTable = map[models.Contrast]string{
	models.ContrastLow:     "0 1px 2px rgb(0 0 0 / 0.05)",
	models.ContrastMedium:  "0 1px 3px rgb(0 0 0 / 0.12)",
	models.ContrastHigh:    "0 2px 4px rgb(0 0 0 / 0.25)",
	models.ContrastMaximum: "none",
}

var spacingTable = map[models.Density]string{
	models.DensityCompact:     "0.2rem",
	models.DensityComfortable: "0.25rem",
	models.DensitySpacious:    "0.3rem",
}

var fontSizeTable = map[models.FontScale]string{
	models.FontScaleSmall:  "14px",
	models.FontScaleMedium: "16px",
	models.FontScaleLarge:  "18px",
}

var fontRatioTable = map[models.FontScale]string{
	models.FontScaleSmall:  "1.125",
	models.FontScaleMedium: "1.2",
	models.FontScaleLarge:  "1.25",
}

// Compose maps structural presets and typography to composition tokens.
func Compose(defaults models.ComponentDefaults, typography models.Typography) (models.CompositionToken, error) {
	radius, ok := radiusTable[defaults.BorderRadius]
	if !ok {
		return models.CompositionToken{}, fmt.Errorf("no radius for border radius %q", defaults.BorderRadius)
	}
	width, ok := borderWidthTable[defaults.Contrast]
	if !ok {
		return models.CompositionToken{}, fmt.Errorf("no border width for contrast %q", defaults.Contrast)
	}
	shadow, ok := shadowTable[defaults.Contrast]
	if !ok {
		return models.CompositionToken{}, fmt.Errorf("no shadow for contrast %q", defaults.Contrast)
	}
	unit, ok := spacingTable[defaults.Density]
	if !ok {
		return models.CompositionToken{}, fmt.Errorf("no spacing for density %q", defaults.Density)
	}
	size, ok := fontSizeTable[typography.FontScale]
	if !ok {
		return models.CompositionToken{}, fmt.Errorf("no font size for scale %q", typography.FontScale)
	}
	ratio := fontRatioTable[typography.FontScale]

	family := typography.FontFamily
	if family == "" {
		family = DefaultFontFamily
	}
	heading := typography.HeadingWeight
	if heading == 0 {
		heading = DefaultHeadingWeight
	}
	body := typography.BodyWeight
	if body == 0 {
		body = DefaultBodyWeight
	}

	return models.CompositionToken{
		Border:  models.BorderToken{Radius: radius, Width: width},
		Shadow:  models.ShadowToken{Elevation: shadow},
		Spacing: models.SpacingToken{Unit: unit},
		Typography: models.TypographyToken{
			FontFamily:    family,
			BaseSize:      size,
			ScaleRatio:    ratio,
			HeadingWeight: heading,
			BodyWeight:    body,
		},
	}, nil
}
