package wcag

import (
	"testing"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/registry"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTheme(t *testing.T, name string) *models.ResolvedTheme {
	t.Helper()
	r, err := registry.New(registry.WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	theme, err := r.Load(name)
	require.NoError(t, err)
	return theme
}

func checkFor(t *testing.T, report *ComplianceReport, semantic string) Check {
	t.Helper()
	for _, c := range report.Checks {
		if c.Semantic == semantic {
			return c
		}
	}
	t.Fatalf("no %s check in report", semantic)
	return Check{}
}

func TestContrastRatio(t *testing.T) {
	black := color.DeviceColor{}
	white := color.DeviceColor{R: 255, G: 255, B: 255}

	assert.InDelta(t, 21.0, ContrastRatio(black, white), 1e-9)
	assert.InDelta(t, 21.0, ContrastRatio(white, black), 1e-9)
	assert.InDelta(t, 1.0, ContrastRatio(white, white), 1e-12)
	assert.InDelta(t, 0.0, RelativeLuminance(black), 1e-12)
	assert.InDelta(t, 1.0, RelativeLuminance(white), 1e-9)
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		level Level
		size  TextSize
		want  float64
	}{
		{LevelAA, TextNormal, 4.5},
		{LevelAA, TextLarge, 3.0},
		{LevelAAA, TextNormal, 7.0},
		{LevelAAA, TextLarge, 4.5},
	}
	for _, tt := range tests {
		got, err := Threshold(tt.level, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s", tt.level, tt.size)
	}

	_, err := Threshold("A", TextNormal)
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("aaa")
	require.NoError(t, err)
	assert.Equal(t, LevelAAA, level)

	_, err = ParseLevel("AAAA")
	require.Error(t, err)
}

func TestHighContrastPassesAAA(t *testing.T) {
	report, err := Validate(loadTheme(t, "high-contrast"), LevelAAA)
	require.NoError(t, err)

	assert.True(t, report.Passed, "failed checks: %+v", report.Failed())
	assert.Equal(t, LevelAAA, report.Level)
	for _, semantic := range []string{"primary", "success", "warning", "error"} {
		c := checkFor(t, report, semantic)
		assert.True(t, c.Passed, "%s ratio %.2f", semantic, c.ContrastRatio)
		assert.Equal(t, TextNormal, c.TextSize)
		assert.Equal(t, 7.0, c.Threshold)
		assert.Equal(t, "neutral-50", c.Background)
	}
}

func TestDefaultPassesAAOnly(t *testing.T) {
	theme := loadTheme(t, "default")

	aa, err := Validate(theme, LevelAA)
	require.NoError(t, err)
	assert.True(t, aa.Passed, "failed checks: %+v", aa.Failed())

	aaa, err := Validate(theme, LevelAAA)
	require.NoError(t, err)
	assert.False(t, aaa.Passed)
	assert.NotEmpty(t, aaa.Failed())
}

func TestSunsetFailsAA(t *testing.T) {
	report, err := Validate(loadTheme(t, "sunset"), LevelAA)
	require.NoError(t, err)

	assert.False(t, report.Passed)
	primary := checkFor(t, report, "primary")
	assert.False(t, primary.Passed)
	assert.Less(t, primary.ContrastRatio, 4.5)
	assert.Equal(t, "primary-500", primary.Foreground)
}

func TestReportCoversRequiredRoles(t *testing.T) {
	report, err := Validate(loadTheme(t, "forest"), LevelAA)
	require.NoError(t, err)

	require.Len(t, report.Checks, len(Pairings))
	for i, p := range Pairings {
		assert.Equal(t, p.Semantic, report.Checks[i].Semantic)
	}
}

func TestValidateMissingShadeIsError(t *testing.T) {
	theme := loadTheme(t, "default")
	trimmed := &models.ResolvedTheme{ID: theme.ID, Name: theme.Name, Composition: theme.Composition}
	for _, r := range theme.Tokens {
		if r.Role != models.RoleWarning {
			trimmed.Tokens = append(trimmed.Tokens, r)
		}
	}

	_, err := Validate(trimmed, LevelAA)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warning")
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	_, err := Validate(loadTheme(t, "default"), Level("A"))
	require.Error(t, err)
}
