package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/gamut"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := New(WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	return r
}

func customRaw() map[string]any {
	return map[string]any{
		"id":          "harbor",
		"name":        "Harbor",
		"description": "Custom blue",
		"stackInfo":   map[string]any{"framework": "vue", "styling": "unocss"},
		"brandTone":   "minimal",
		"colorPalette": map[string]any{
			"primary": map[string]any{"l": 0.55, "c": 0.3, "h": 230},
			"neutral": map[string]any{"l": 0.6, "c": 0.01, "h": 230},
		},
		"typography":        map[string]any{"fontScale": "small"},
		"componentDefaults": map[string]any{"borderRadius": "none", "density": "compact", "contrast": "high"},
		"aiContext": map[string]any{
			"brandTone":         "quiet",
			"designPhilosophy":  "less",
			"colorGuidance":     "blue",
			"componentGuidance": "flat",
		},
	}
}

func TestListAvailable(t *testing.T) {
	r := newTestRegistry(t)

	list := r.ListAvailable()
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
		assert.Equal(t, SourceBuiltin, s.Source)
		assert.NotEmpty(t, s.Description)
		assert.NotEmpty(t, s.Title)
	}
	assert.Equal(t, []string{"default", "forest", "high-contrast", "sunset"}, names)
}

func TestLoadBuiltins(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range Builtins {
		theme, err := r.Load(string(name))
		require.NoError(t, err, "load %s", name)
		assert.Equal(t, string(name), theme.ID)
		require.Len(t, theme.Tokens, len(models.Roles))

		for i, rp := range theme.Tokens {
			assert.Equal(t, models.Roles[i], rp.Role)
			for j, shade := range rp.Shades {
				assert.Equal(t, models.ShadeLevels[j], shade.Level)
				require.True(t, gamut.InGamut(shade.Color), "%s %s-%d out of gamut", name, rp.Role, shade.Level)
				require.NoError(t, shade.Color.Validate())
				assert.Equal(t, color.ToDevice(shade.Color), shade.Device)
				assert.Equal(t, color.ToHex(shade.Device), shade.Hex)
				if j > 0 {
					assert.Less(t, shade.Color.L, rp.Shades[j-1].Color.L)
				}
			}
		}
	}
}

func TestLoadCaches(t *testing.T) {
	r := newTestRegistry(t)
	require.False(t, r.Cached("default"))

	first, err := r.Load("default")
	require.NoError(t, err)
	require.True(t, r.Cached("default"))

	second, err := r.Load("default")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestNamesAreTrimmed(t *testing.T) {
	r := newTestRegistry(t)

	theme, err := r.Load(" default\t")
	require.NoError(t, err)
	assert.Equal(t, "default", theme.ID)
	assert.True(t, r.Cached(" default"))
	assert.True(t, r.Cached("default "))

	again, err := r.Load("default")
	require.NoError(t, err)
	assert.Same(t, theme, again)
}

func TestLoadUnknownTheme(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Load("default")
	require.NoError(t, err)
	before := len(r.cache)

	_, err = r.Load("nonexistent-theme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTheme))

	var unknown *UnknownThemeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "nonexistent-theme", unknown.Name)
	assert.Equal(t, []string{"default", "forest", "high-contrast", "sunset"}, unknown.Available)

	assert.Len(t, r.cache, before)
	assert.False(t, r.Cached("nonexistent-theme"))
}

func TestLoadConcurrent(t *testing.T) {
	r := newTestRegistry(t)

	const workers = 16
	results := make([]*models.ResolvedTheme, workers*len(Builtins))
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		for j, name := range Builtins {
			wg.Add(1)
			go func(slot int, name string) {
				defer wg.Done()
				theme, err := r.Load(name)
				if err == nil {
					results[slot] = theme
				}
			}(i*len(Builtins)+j, string(name))
		}
	}
	wg.Wait()

	for i, theme := range results {
		require.NotNil(t, theme, "slot %d", i)
		assert.Same(t, results[i%len(Builtins)], theme)
	}
}

func TestReload(t *testing.T) {
	r := newTestRegistry(t)
	first, err := r.Load("forest")
	require.NoError(t, err)

	reloaded, err := r.Reload("forest")
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)
	assert.Equal(t, first, reloaded)

	_, err = r.Reload("missing")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestPurge(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Load("default")
	require.NoError(t, err)

	r.Purge()
	assert.False(t, r.Cached("default"))
}

func TestRegister(t *testing.T) {
	r := newTestRegistry(t)
	raw := customRaw()

	name, err := r.Register(raw, "/themes/harbor.yaml")
	require.NoError(t, err)
	assert.Equal(t, "harbor", name)

	theme, err := r.Load("harbor")
	require.NoError(t, err)
	assert.Equal(t, "Harbor", theme.Name)
	assert.Equal(t, "0", theme.Composition.Border.Radius)

	primary, ok := theme.Tokens.Shade(models.RolePrimary, 500)
	require.True(t, ok)
	assert.Less(t, primary.Color.C, 0.3, "vivid primary should be clipped")
	assert.Equal(t, 0.55, primary.Color.L)
	assert.Equal(t, 230.0, primary.Color.H)

	raw["name"] = "Mutated"
	again, err := r.Load("harbor")
	require.NoError(t, err)
	assert.Same(t, theme, again)

	replacement := customRaw()
	replacement["name"] = "Harbor Two"
	_, err = r.Register(replacement, "/other/harbor.yaml")
	require.NoError(t, err)
	assert.False(t, r.Cached("harbor"))

	updated, err := r.Load("harbor")
	require.NoError(t, err)
	assert.Equal(t, "Harbor Two", updated.Name)
}

func TestRegisterInvalid(t *testing.T) {
	r := newTestRegistry(t)
	raw := customRaw()
	raw["colorPalette"].(map[string]any)["primary"].(map[string]any)["l"] = 1.5

	_, err := r.Register(raw, "bad.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrInvalidDescriptor))
	assert.Contains(t, err.Error(), "colorPalette.primary.l")
	assert.NotContains(t, r.Names(), "harbor")
}

func TestDescriptor(t *testing.T) {
	r := newTestRegistry(t)
	desc, err := r.Descriptor("high-contrast")
	require.NoError(t, err)
	assert.Equal(t, models.ContrastMaximum, desc.ComponentDefaults.Contrast)

	_, err = r.Descriptor("nope")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestResolveFallbacksAndStatusRoles(t *testing.T) {
	r := newTestRegistry(t)
	theme, err := r.Load("default")
	require.NoError(t, err)

	secondary, ok := theme.Tokens.Shade(models.RoleSecondary, 500)
	require.True(t, ok)
	assert.InDelta(t, 285.0, secondary.Color.H, 1e-9)

	accent, ok := theme.Tokens.Shade(models.RoleAccent, 500)
	require.True(t, ok)
	assert.InDelta(t, 75.0, accent.Color.H, 1e-9)

	for role, hue := range statusHues {
		shade, ok := theme.Tokens.Shade(role, 500)
		require.True(t, ok)
		assert.Equal(t, hue, shade.Color.H)
		assert.Equal(t, 0.5, shade.Color.L)
	}
}

func TestResolveDeterministic(t *testing.T) {
	r := newTestRegistry(t)
	desc, err := r.Descriptor("sunset")
	require.NoError(t, err)

	a, err := Resolve(desc)
	require.NoError(t, err)
	b, err := Resolve(desc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHighContrastComposition(t *testing.T) {
	r := newTestRegistry(t)
	theme, err := r.Load("high-contrast")
	require.NoError(t, err)

	assert.Equal(t, models.CompositionToken{
		Border:  models.BorderToken{Radius: "0.125rem", Width: "3px"},
		Shadow:  models.ShadowToken{Elevation: "none"},
		Spacing: models.SpacingToken{Unit: "0.3rem"},
		Typography: models.TypographyToken{
			FontFamily:    "Atkinson Hyperlegible, system-ui, sans-serif",
			BaseSize:      "18px",
			ScaleRatio:    "1.25",
			HeadingWeight: 800,
			BodyWeight:    500,
		},
	}, theme.Composition)
}

func TestComposeCoversEveryPreset(t *testing.T) {
	for _, radius := range models.BorderRadii {
		for _, density := range models.Densities {
			for _, contrast := range models.Contrasts {
				for _, scale := range models.FontScales {
					tok, err := Compose(
						models.ComponentDefaults{BorderRadius: radius, Density: density, Contrast: contrast},
						models.Typography{FontScale: scale},
					)
					require.NoError(t, err)
					assert.NotEmpty(t, tok.Border.Radius)
					assert.NotEmpty(t, tok.Typography.ScaleRatio)
					assert.Equal(t, DefaultFontFamily, tok.Typography.FontFamily)
					assert.Equal(t, DefaultHeadingWeight, tok.Typography.HeadingWeight)
					assert.Equal(t, DefaultBodyWeight, tok.Typography.BodyWeight)
				}
			}
		}
	}

	_, err := Compose(models.ComponentDefaults{BorderRadius: "oval"}, models.Typography{})
	require.Error(t, err)
}

func TestConversionAnomalyError(t *testing.T) {
	err := error(&ConversionAnomalyError{
		Theme: "x",
		Role:  models.RoleError,
		Level: 900,
		Color: color.PerceptualColor{L: 0.2, C: 0.3, H: 10},
	})
	assert.True(t, errors.Is(err, ErrConversionAnomaly))
	assert.Contains(t, err.Error(), "error-900")
}
