package models

import "github.com/opencode-ai/themekit/internal/color"

// Role is a semantic color role.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
	RoleNeutral   Role = "neutral"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleError     Role = "error"
)

// Roles is the canonical role order used for expansion and serialization.
var Roles = [...]Role{
	RolePrimary, RoleSecondary, RoleAccent, RoleNeutral, RoleSuccess, RoleWarning, RoleError,
}

// ShadeCount is the number of levels in every ramp.
const ShadeCount = 10

// ShadeLevels are the ramp levels in ascending order.
var ShadeLevels = [ShadeCount]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Shade is one level of a ramp. Color is always in gamut; Device and Hex
// are derived from it.
type Shade struct {
	Level  int                   `json:"level"`
	Color  color.PerceptualColor `json:"color"`
	Device color.DeviceColor     `json:"device"`
	Hex    string                `json:"hex"`
}

// Ramp is the ten-level scale for one role.
type Ramp struct {
	Role   Role              `json:"role"`
	Shades [ShadeCount]Shade `json:"shades"`
}

// Shade returns the shade at level.
func (r Ramp) Shade(level int) (Shade, bool) {
	for _, s := range r.Shades {
		if s.Level == level {
			return s, true
		}
	}
	return Shade{}, false
}

// SemanticTokenScale holds one ramp per role in Roles order.
type SemanticTokenScale []Ramp

// Ramp returns the ramp for role.
func (s SemanticTokenScale) Ramp(role Role) (Ramp, bool) {
	for _, r := range s {
		if r.Role == role {
			return r, true
		}
	}
	return Ramp{}, false
}

// Shade returns role's shade at level.
func (s SemanticTokenScale) Shade(role Role, level int) (Shade, bool) {
	r, ok := s.Ramp(role)
	if !ok {
		return Shade{}, false
	}
	return r.Shade(level)
}

// BorderToken describes borders.
type BorderToken struct {
	Radius string `json:"radius"`
	Width  string `json:"width"`
}

// ShadowToken describes elevation.
type ShadowToken struct {
	Elevation string `json:"elevation"`
}

// SpacingToken describes the spacing unit.
type SpacingToken struct {
	Unit string `json:"unit"`
}

// TypographyToken describes resolved type settings.
type TypographyToken struct {
	FontFamily    string `json:"fontFamily"`
	BaseSize      string `json:"baseSize"`
	ScaleRatio    string `json:"scaleRatio"`
	HeadingWeight int    `json:"headingWeight"`
	BodyWeight    int    `json:"bodyWeight"`
}

// CompositionToken groups the non-color structural tokens.
type CompositionToken struct {
	Border     BorderToken     `json:"border"`
	Shadow     ShadowToken     `json:"shadow"`
	Spacing    SpacingToken    `json:"spacing"`
	Typography TypographyToken `json:"typography"`
}

// ResolvedTheme is a validated, fully expanded theme. It is shared by the
// registry cache and must not be modified.
type ResolvedTheme struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Tokens      SemanticTokenScale `json:"tokens"`
	Composition CompositionToken   `json:"composition"`
}
