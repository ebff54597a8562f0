// Package models defines the theme descriptor and resolved token types.
package models

import "github.com/opencode-ai/themekit/internal/color"

// Framework names the UI framework a theme targets.
type Framework string

const (
	FrameworkReact   Framework = "react"
	FrameworkNextJS  Framework = "nextjs"
	FrameworkVue     Framework = "vue"
	FrameworkNuxt    Framework = "nuxt"
	FrameworkSvelte  Framework = "svelte"
	FrameworkAngular Framework = "angular"
	FrameworkSolid   Framework = "solid"
	FrameworkAstro   Framework = "astro"
	FrameworkVanilla Framework = "vanilla"
)

// Frameworks lists every recognized framework.
var Frameworks = []Framework{
	FrameworkReact, FrameworkNextJS, FrameworkVue, FrameworkNuxt, FrameworkSvelte,
	FrameworkAngular, FrameworkSolid, FrameworkAstro, FrameworkVanilla,
}

// BrandTone is the overall voice of a theme.
type BrandTone string

const (
	BrandToneProfessional BrandTone = "professional"
	BrandTonePlayful      BrandTone = "playful"
	BrandToneMinimal      BrandTone = "minimal"
	BrandToneBold         BrandTone = "bold"
	BrandToneElegant      BrandTone = "elegant"
	BrandToneTechnical    BrandTone = "technical"
	BrandToneFriendly     BrandTone = "friendly"
)

// BrandTones lists every recognized brand tone.
var BrandTones = []BrandTone{
	BrandToneProfessional, BrandTonePlayful, BrandToneMinimal, BrandToneBold,
	BrandToneElegant, BrandToneTechnical, BrandToneFriendly,
}

// FontScale selects the base type size.
type FontScale string

const (
	FontScaleSmall  FontScale = "small"
	FontScaleMedium FontScale = "medium"
	FontScaleLarge  FontScale = "large"
)

// FontScales lists every recognized font scale.
var FontScales = []FontScale{FontScaleSmall, FontScaleMedium, FontScaleLarge}

// BorderRadius selects the corner rounding preset.
type BorderRadius string

const (
	BorderRadiusNone   BorderRadius = "none"
	BorderRadiusSmall  BorderRadius = "small"
	BorderRadiusMedium BorderRadius = "medium"
	BorderRadiusLarge  BorderRadius = "large"
	BorderRadiusFull   BorderRadius = "full"
)

// BorderRadii lists every recognized radius preset.
var BorderRadii = []BorderRadius{
	BorderRadiusNone, BorderRadiusSmall, BorderRadiusMedium, BorderRadiusLarge, BorderRadiusFull,
}

// Density selects the spacing preset.
type Density string

const (
	DensityCompact     Density = "compact"
	DensityComfortable Density = "comfortable"
	DensitySpacious    Density = "spacious"
)

// Densities lists every recognized density.
var Densities = []Density{DensityCompact, DensityComfortable, DensitySpacious}

// Contrast selects how strongly structural elements stand out.
type Contrast string

const (
	ContrastLow     Contrast = "low"
	ContrastMedium  Contrast = "medium"
	ContrastHigh    Contrast = "high"
	ContrastMaximum Contrast = "maximum"
)

// Contrasts lists every recognized contrast preset.
var Contrasts = []Contrast{ContrastLow, ContrastMedium, ContrastHigh, ContrastMaximum}

// ColorPalette holds the brand colors. Primary and Neutral are required.
// A nil Secondary falls back to Primary rotated by 30 degrees and a nil
// Accent to Primary rotated by 180 degrees.
type ColorPalette struct {
	Primary   color.PerceptualColor  `json:"primary" yaml:"primary"`
	Secondary *color.PerceptualColor `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent    *color.PerceptualColor `json:"accent,omitempty" yaml:"accent,omitempty"`
	Neutral   color.PerceptualColor  `json:"neutral" yaml:"neutral"`
}

// Typography describes the type scale. Zero weights mean "use the default".
type Typography struct {
	FontFamily    string    `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	FontScale     FontScale `json:"fontScale" yaml:"fontScale"`
	HeadingWeight int       `json:"headingWeight,omitempty" yaml:"headingWeight,omitempty"`
	BodyWeight    int       `json:"bodyWeight,omitempty" yaml:"bodyWeight,omitempty"`
}

// ComponentDefaults holds structural presets.
type ComponentDefaults struct {
	BorderRadius BorderRadius `json:"borderRadius" yaml:"borderRadius"`
	Density      Density      `json:"density" yaml:"density"`
	Contrast     Contrast     `json:"contrast" yaml:"contrast"`
}

// StackInfo is descriptive metadata and is not interpreted.
type StackInfo struct {
	Framework  Framework `json:"framework" yaml:"framework"`
	Styling    string    `json:"styling" yaml:"styling"`
	Components string    `json:"components,omitempty" yaml:"components,omitempty"`
}

// AIContext is free-text guidance passed through as-is.
type AIContext struct {
	BrandTone          string `json:"brandTone" yaml:"brandTone"`
	DesignPhilosophy   string `json:"designPhilosophy" yaml:"designPhilosophy"`
	ColorGuidance      string `json:"colorGuidance" yaml:"colorGuidance"`
	ComponentGuidance  string `json:"componentGuidance" yaml:"componentGuidance"`
	AccessibilityNotes string `json:"accessibilityNotes,omitempty" yaml:"accessibilityNotes,omitempty"`
}

// ThemeDescriptor is the validated form of a raw theme description.
type ThemeDescriptor struct {
	ID                string            `json:"id" yaml:"id"`
	Name              string            `json:"name" yaml:"name"`
	Description       string            `json:"description" yaml:"description"`
	StackInfo         StackInfo         `json:"stackInfo" yaml:"stackInfo"`
	BrandTone         BrandTone         `json:"brandTone" yaml:"brandTone"`
	ColorPalette      ColorPalette      `json:"colorPalette" yaml:"colorPalette"`
	Typography        Typography        `json:"typography" yaml:"typography"`
	ComponentDefaults ComponentDefaults `json:"componentDefaults" yaml:"componentDefaults"`
	AIContext         AIContext         `json:"aiContext" yaml:"aiContext"`
}
