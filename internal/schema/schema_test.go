package schema

import (
	"errors"
	"testing"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `id: harbor
name: Harbor
description: Calm blues for dashboards
stackInfo:
  framework: react
  styling: tailwind
brandTone: professional
colorPalette:
  primary: {l: 0.5, c: 0.17, h: 255}
  accent: {l: 0.6, c: 0.12, h: 40}
  neutral: {l: 0.55, c: 0.015, h: 255}
typography:
  fontFamily: Inter, sans-serif
  fontScale: medium
  headingWeight: 600
componentDefaults:
  borderRadius: medium
  density: comfortable
  contrast: medium
aiContext:
  brandTone: calm and precise
  designPhilosophy: content first
  colorGuidance: blue for actions
  componentGuidance: flat cards
`

func decodeValid(t *testing.T) map[string]any {
	t.Helper()
	raw, err := Decode([]byte(validYAML))
	require.NoError(t, err)
	return raw
}

func section(raw map[string]any, path ...string) map[string]any {
	m := raw
	for _, key := range path {
		m = m[key].(map[string]any)
	}
	return m
}

func requireValidationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidDescriptor))
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
	return verrs
}

func TestValidateAcceptsDescriptor(t *testing.T) {
	desc, err := Validate(decodeValid(t))
	require.NoError(t, err)

	assert.Equal(t, "harbor", desc.ID)
	assert.Equal(t, "Harbor", desc.Name)
	assert.Equal(t, models.FrameworkReact, desc.StackInfo.Framework)
	assert.Equal(t, models.BrandToneProfessional, desc.BrandTone)
	assert.Equal(t, color.PerceptualColor{L: 0.5, C: 0.17, H: 255}, desc.ColorPalette.Primary)
	assert.Nil(t, desc.ColorPalette.Secondary)
	require.NotNil(t, desc.ColorPalette.Accent)
	assert.Equal(t, 40.0, desc.ColorPalette.Accent.H)
	assert.Equal(t, models.FontScaleMedium, desc.Typography.FontScale)
	assert.Equal(t, 600, desc.Typography.HeadingWeight)
	assert.Equal(t, 0, desc.Typography.BodyWeight)
	assert.Equal(t, models.ContrastMedium, desc.ComponentDefaults.Contrast)
	assert.Equal(t, "content first", desc.AIContext.DesignPhilosophy)
}

func TestValidateLightnessOutOfRange(t *testing.T) {
	raw := decodeValid(t)
	section(raw, "colorPalette", "primary")["l"] = 1.5

	_, err := Validate(raw)
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("colorPalette.primary.l"))
	assert.Contains(t, err.Error(), "colorPalette.primary.l")
}

func TestValidateCollectsEveryError(t *testing.T) {
	raw := decodeValid(t)
	raw["id"] = ""
	delete(raw, "name")
	raw["brandTone"] = "grumpy"
	section(raw, "colorPalette", "primary")["c"] = 0.8
	section(raw, "colorPalette", "primary")["h"] = -3
	delete(section(raw, "colorPalette"), "neutral")
	section(raw, "typography")["fontScale"] = "huge"
	section(raw, "typography")["bodyWeight"] = 450
	section(raw, "componentDefaults")["density"] = "cozy"
	section(raw, "stackInfo")["framework"] = "cobol"

	_, err := Validate(raw)
	verrs := requireValidationErrors(t, err)

	assert.Equal(t, []string{
		"id",
		"name",
		"stackInfo.framework",
		"brandTone",
		"colorPalette.primary.c",
		"colorPalette.primary.h",
		"colorPalette.neutral",
		"typography.fontScale",
		"typography.bodyWeight",
		"componentDefaults.density",
	}, verrs.Paths())
}

func TestValidateDoesNotCoerce(t *testing.T) {
	raw := decodeValid(t)
	section(raw, "colorPalette", "neutral")["l"] = "0.5"
	raw["name"] = 42

	_, err := Validate(raw)
	verrs := requireValidationErrors(t, err)
	assert.True(t, verrs.Has("colorPalette.neutral.l"))
	assert.True(t, verrs.Has("name"))
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	raw := decodeValid(t)
	section(raw, "colorPalette", "primary")["l"] = 2.0
	snapshot := decodeValid(t)
	section(snapshot, "colorPalette", "primary")["l"] = 2.0

	_, _ = Validate(raw)
	assert.Equal(t, snapshot, raw)
}

func TestValidateMissingSections(t *testing.T) {
	_, err := Validate(map[string]any{"id": "x", "name": "X"})
	verrs := requireValidationErrors(t, err)
	for _, path := range []string{"description", "stackInfo", "brandTone", "colorPalette", "typography", "componentDefaults", "aiContext"} {
		assert.True(t, verrs.Has(path), "expected error at %s", path)
	}
}

func TestValidateRejectsNonObject(t *testing.T) {
	_, err := Validate([]any{"nope"})
	verrs := requireValidationErrors(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "", verrs[0].Path)
}

func TestDecodeJSON(t *testing.T) {
	raw, err := Decode([]byte(`{"id": "j", "colorPalette": {"primary": {"l": 0.5, "c": 0.1, "h": 10}}}`))
	require.NoError(t, err)
	assert.Equal(t, "j", raw["id"])

	_, err = Decode([]byte(""))
	require.Error(t, err)

	_, err = Decode([]byte("id: [unterminated"))
	require.Error(t, err)
}

func TestValidationErrorsMessage(t *testing.T) {
	verrs := ValidationErrors{
		{Path: "id", Reason: "must not be empty"},
		{Path: "colorPalette.primary.l", Reason: "1.5 out of range [0, 1]"},
	}
	assert.Equal(t,
		"invalid theme descriptor: 2 problems: id: must not be empty; colorPalette.primary.l: 1.5 out of range [0, 1]",
		verrs.Error())
}
