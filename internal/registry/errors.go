package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
)

var (
	// ErrUnknownTheme matches any UnknownThemeError.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrConversionAnomaly matches any ConversionAnomalyError.
	ErrConversionAnomaly = errors.New("color conversion anomaly")
)

// UnknownThemeError is returned when a theme name is not registered.
type UnknownThemeError struct {
	Name      string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}

func (e *UnknownThemeError) Unwrap() error {
	return ErrUnknownTheme
}

// ConversionAnomalyError reports a shade that is still out of gamut after
// clipping. It indicates a defect in the color pipeline, not bad input.
type ConversionAnomalyError struct {
	Theme string
	Role  models.Role
	Level int
	Color color.PerceptualColor
}

func (e *ConversionAnomalyError) Error() string {
	return fmt.Sprintf("theme %q: %s-%d %s out of gamut after clipping", e.Theme, e.Role, e.Level, e.Color)
}

func (e *ConversionAnomalyError) Unwrap() error {
	return ErrConversionAnomaly
}
