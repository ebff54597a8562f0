// Package styles derives lipgloss styles for CLI output from a resolved theme.
package styles

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/opencode-ai/themekit/internal/models"
)

// Styles contains lipgloss styles derived from terminal tokens.
type Styles struct {
	Tokens   TerminalTokens
	renderer *lipgloss.Renderer

	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
}

// ForTheme builds styles for theme rendered to out. Color output follows
// the capabilities of out, so redirected output stays plain.
func ForTheme(out io.Writer, theme *models.ResolvedTheme) (Styles, error) {
	tokens, err := TokensFromTheme(theme)
	if err != nil {
		return Styles{}, err
	}
	return BuildStyles(lipgloss.NewRenderer(out), tokens), nil
}

// BuildStyles converts tokens into lipgloss styles.
func BuildStyles(r *lipgloss.Renderer, tokens TerminalTokens) Styles {
	fg := func(hex string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(hex))
	}

	return Styles{
		Tokens:   tokens,
		renderer: r,
		Title:    fg(tokens.Accent).Bold(true),
		Text:     fg(tokens.Text),
		Muted:    fg(tokens.TextMuted),
		Accent:   fg(tokens.Accent),
		Focus:    fg(tokens.Focus).Bold(true),
		Success:  fg(tokens.Success),
		Warning:  fg(tokens.Warning),
		Error:    fg(tokens.Error),
		Info:     fg(tokens.Info),
		Pass:     fg(tokens.Success).Bold(true),
		Fail:     fg(tokens.Error).Bold(true),
	}
}

// Swatch renders a block of width cells filled with hex.
func (s Styles) Swatch(hex string, width int) string {
	if width <= 0 {
		width = 2
	}
	return s.renderer.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", width))
}

// Role returns the style that paints text in role's 500 shade.
func (s Styles) Role(role models.Role) lipgloss.Style {
	switch role {
	case models.RolePrimary:
		return s.Accent
	case models.RoleSecondary:
		return s.Info
	case models.RoleAccent:
		return s.Focus
	case models.RoleSuccess:
		return s.Success
	case models.RoleWarning:
		return s.Warning
	case models.RoleError:
		return s.Error
	default:
		return s.Text
	}
}

// Verdict renders pass or fail text.
func (s Styles) Verdict(passed bool) string {
	if passed {
		return s.Pass.Render("pass")
	}
	return s.Fail.Render("fail")
}
