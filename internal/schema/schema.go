// Package schema validates raw theme descriptors before they are trusted.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
	"gopkg.in/yaml.v3"
)

// Font weights must be multiples of weightStep within [minWeight, maxWeight].
const (
	minWeight  = 100
	maxWeight  = 900
	weightStep = 100
)

// Decode parses YAML or JSON descriptor text into the raw shape accepted by
// Validate.
func Decode(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decode descriptor: document is empty")
	}
	return raw, nil
}

// Validate checks raw against the descriptor schema and returns the typed
// descriptor. On failure the error is a ValidationErrors holding every
// problem found. raw is never modified and values are never coerced.
func Validate(raw any) (*models.ThemeDescriptor, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, ValidationErrors{{Reason: fmt.Sprintf("descriptor must be an object, got %s", kindOf(raw))}}
	}

	c := &checker{}
	desc := &models.ThemeDescriptor{
		ID:          c.str(root, "", "id", true, true),
		Name:        c.str(root, "", "name", true, true),
		Description: c.str(root, "", "description", true, false),
	}

	if obj, ok := c.object(root, "", "stackInfo"); ok {
		desc.StackInfo = models.StackInfo{
			Framework:  enum(c, obj, "stackInfo", "framework", models.Frameworks),
			Styling:    c.str(obj, "stackInfo", "styling", true, false),
			Components: c.str(obj, "stackInfo", "components", false, false),
		}
	}

	desc.BrandTone = enum(c, root, "", "brandTone", models.BrandTones)

	if obj, ok := c.object(root, "", "colorPalette"); ok {
		palette := models.ColorPalette{}
		if p := c.perceptual(obj, "colorPalette", "primary", true); p != nil {
			palette.Primary = *p
		}
		palette.Secondary = c.perceptual(obj, "colorPalette", "secondary", false)
		palette.Accent = c.perceptual(obj, "colorPalette", "accent", false)
		if n := c.perceptual(obj, "colorPalette", "neutral", true); n != nil {
			palette.Neutral = *n
		}
		desc.ColorPalette = palette
	}

	if obj, ok := c.object(root, "", "typography"); ok {
		desc.Typography = models.Typography{
			FontFamily:    c.str(obj, "typography", "fontFamily", false, true),
			FontScale:     enum(c, obj, "typography", "fontScale", models.FontScales),
			HeadingWeight: c.weight(obj, "typography", "headingWeight"),
			BodyWeight:    c.weight(obj, "typography", "bodyWeight"),
		}
	}

	if obj, ok := c.object(root, "", "componentDefaults"); ok {
		desc.ComponentDefaults = models.ComponentDefaults{
			BorderRadius: enum(c, obj, "componentDefaults", "borderRadius", models.BorderRadii),
			Density:      enum(c, obj, "componentDefaults", "density", models.Densities),
			Contrast:     enum(c, obj, "componentDefaults", "contrast", models.Contrasts),
		}
	}

	if obj, ok := c.object(root, "", "aiContext"); ok {
		desc.AIContext = models.AIContext{
			BrandTone:          c.str(obj, "aiContext", "brandTone", true, false),
			DesignPhilosophy:   c.str(obj, "aiContext", "designPhilosophy", true, false),
			ColorGuidance:      c.str(obj, "aiContext", "colorGuidance", true, false),
			ComponentGuidance:  c.str(obj, "aiContext", "componentGuidance", true, false),
			AccessibilityNotes: c.str(obj, "aiContext", "accessibilityNotes", false, false),
		}
	}

	if len(c.errs) > 0 {
		return nil, c.errs
	}
	return desc, nil
}

type checker struct {
	errs ValidationErrors
}

func (c *checker) fail(path, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func join(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func (c *checker) object(obj map[string]any, parent, key string) (map[string]any, bool) {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok || v == nil {
		c.fail(path, "is required")
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		c.fail(path, "must be an object, got %s", kindOf(v))
		return nil, false
	}
	return m, true
}

func (c *checker) str(obj map[string]any, parent, key string, required, nonEmpty bool) string {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok || v == nil {
		if required {
			c.fail(path, "is required")
		}
		return ""
	}
	s, ok := v.(string)
	if !ok {
		c.fail(path, "must be a string, got %s", kindOf(v))
		return ""
	}
	if nonEmpty && strings.TrimSpace(s) == "" {
		c.fail(path, "must not be empty")
		return ""
	}
	return s
}

func enum[T ~string](c *checker, obj map[string]any, parent, key string, allowed []T) T {
	before := len(c.errs)
	s := c.str(obj, parent, key, true, false)
	if len(c.errs) > before {
		return ""
	}
	for _, a := range allowed {
		if string(a) == s {
			return a
		}
	}
	c.fail(join(parent, key), "unknown value %q, must be one of %s", s, listOf(allowed))
	return ""
}

func (c *checker) perceptual(obj map[string]any, parent, key string, required bool) *color.PerceptualColor {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok || v == nil {
		if required {
			c.fail(path, "is required")
		}
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		c.fail(path, "must be an object with l, c and h, got %s", kindOf(v))
		return nil
	}

	before := len(c.errs)
	l := c.bounded(m, path, "l", color.MaxLightness)
	ch := c.bounded(m, path, "c", color.MaxChroma)
	h := c.bounded(m, path, "h", color.MaxHue)
	if len(c.errs) > before {
		return nil
	}
	return &color.PerceptualColor{L: l, C: ch, H: h}
}

func (c *checker) bounded(obj map[string]any, parent, key string, limit float64) float64 {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok || v == nil {
		c.fail(path, "is required")
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		c.fail(path, "must be a number, got %s", kindOf(v))
		return 0
	}
	if !(n >= 0 && n <= limit) {
		c.fail(path, "%v out of range [0, %v]", n, limit)
		return 0
	}
	return n
}

func (c *checker) weight(obj map[string]any, parent, key string) int {
	path := join(parent, key)
	v, ok := obj[key]
	if !ok || v == nil {
		return 0
	}
	n, ok := toFloat(v)
	if !ok {
		c.fail(path, "must be an integer, got %s", kindOf(v))
		return 0
	}
	if n != math.Trunc(n) {
		c.fail(path, "must be an integer, got %v", n)
		return 0
	}
	w := int(n)
	if w < minWeight || w > maxWeight || w%weightStep != 0 {
		c.fail(path, "%d must be a multiple of %d between %d and %d", w, weightStep, minWeight, maxWeight)
		return 0
	}
	return w
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := toFloat(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

func listOf[T ~string](allowed []T) string {
	parts := make([]string, 0, len(allowed))
	for _, a := range allowed {
		parts = append(parts, string(a))
	}
	return strings.Join(parts, ", ")
}
