package styles

import (
	"fmt"

	"github.com/opencode-ai/themekit/internal/models"
)

// TerminalTokens are the hex colors the CLI paints with.
type TerminalTokens struct {
	Text      string
	TextMuted string
	Accent    string
	Focus     string
	Success   string
	Warning   string
	Error     string
	Info      string
}

type tokenSource struct {
	field *string
	role  models.Role
	level int
}

// TokensFromTheme picks terminal colors from a resolved theme's shades.
func TokensFromTheme(theme *models.ResolvedTheme) (TerminalTokens, error) {
	if theme == nil {
		return TerminalTokens{}, fmt.Errorf("theme is required")
	}

	var t TerminalTokens
	sources := []tokenSource{
		{&t.Text, models.RoleNeutral, 900},
		{&t.TextMuted, models.RoleNeutral, 600},
		{&t.Accent, models.RolePrimary, 500},
		{&t.Focus, models.RoleAccent, 500},
		{&t.Success, models.RoleSuccess, 500},
		{&t.Warning, models.RoleWarning, 500},
		{&t.Error, models.RoleError, 500},
		{&t.Info, models.RoleSecondary, 500},
	}
	for _, src := range sources {
		shade, ok := theme.Tokens.Shade(src.role, src.level)
		if !ok {
			return TerminalTokens{}, fmt.Errorf("theme %q has no %s-%d shade", theme.ID, src.role, src.level)
		}
		*src.field = shade.Hex
	}
	return t, nil
}
