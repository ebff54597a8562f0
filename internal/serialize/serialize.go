// Package serialize flattens a resolved theme into stylesheet custom
// properties and parses them back.
//
// Colors are written as oklch() function text rather than hex so the
// rendering layer performs the final color-space handling. Every color
// component is printed with exactly Precision decimal places, so parsing
// a serialized color recovers each component within 0.5e-4.
package serialize

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/models"
)

// Precision is the number of decimal places used for color components.
const Precision = 4

// DefaultPrefix namespaces every variable name.
const DefaultPrefix = "theme"

var prefixPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Variable is one custom property.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type options struct {
	prefix string
}

// Option configures serialization.
type Option func(*options)

// WithPrefix replaces DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// ValidPrefix reports whether prefix is lowercase and hyphen-separated.
func ValidPrefix(prefix string) bool {
	return prefixPattern.MatchString(prefix)
}

// ColorName returns the variable name of role's shade at level.
func ColorName(prefix string, role models.Role, level int) string {
	return fmt.Sprintf("--%s-color-%s-%d", prefix, role, level)
}

// Variables returns the theme's custom properties ordered by role, then
// ascending shade level, then composition tokens.
func Variables(theme *models.ResolvedTheme, opts ...Option) ([]Variable, error) {
	if theme == nil {
		return nil, fmt.Errorf("theme is required")
	}
	o := options{prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(&o)
	}
	if !ValidPrefix(o.prefix) {
		return nil, fmt.Errorf("invalid variable prefix %q: use lowercase words separated by hyphens", o.prefix)
	}

	vars := make([]Variable, 0, len(theme.Tokens)*models.ShadeCount+9)
	for _, r := range theme.Tokens {
		for _, shade := range r.Shades {
			vars = append(vars, Variable{
				Name:  ColorName(o.prefix, r.Role, shade.Level),
				Value: FormatColor(shade.Color),
			})
		}
	}

	comp := theme.Composition
	name := func(suffix string) string {
		return "--" + o.prefix + "-" + suffix
	}
	vars = append(vars,
		Variable{Name: name("border-radius"), Value: comp.Border.Radius},
		Variable{Name: name("border-width"), Value: comp.Border.Width},
		Variable{Name: name("shadow"), Value: comp.Shadow.Elevation},
		Variable{Name: name("spacing-unit"), Value: comp.Spacing.Unit},
		Variable{Name: name("font-family"), Value: comp.Typography.FontFamily},
		Variable{Name: name("font-size-base"), Value: comp.Typography.BaseSize},
		Variable{Name: name("font-scale-ratio"), Value: comp.Typography.ScaleRatio},
		Variable{Name: name("font-weight-heading"), Value: strconv.Itoa(comp.Typography.HeadingWeight)},
		Variable{Name: name("font-weight-body"), Value: strconv.Itoa(comp.Typography.BodyWeight)},
	)
	return vars, nil
}

// Serialize renders the variables as a :root block, one declaration per line.
func Serialize(theme *models.ResolvedTheme, opts ...Option) (string, error) {
	vars, err := Variables(theme, opts...)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// FormatColor renders p as oklch(L C H) with Precision decimals.
func FormatColor(p color.PerceptualColor) string {
	return "oklch(" + formatComponent(p.L) + " " + formatComponent(p.C) + " " + formatComponent(p.H) + ")"
}

func formatComponent(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// ParseColor parses oklch(L C H) text and checks component ranges.
func ParseColor(s string) (color.PerceptualColor, error) {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "oklch(") || !strings.HasSuffix(text, ")") {
		return color.PerceptualColor{}, fmt.Errorf("parse color %q: expected oklch(L C H)", s)
	}
	fields := strings.Fields(text[len("oklch(") : len(text)-1])
	if len(fields) != 3 {
		return color.PerceptualColor{}, fmt.Errorf("parse color %q: expected 3 components, got %d", s, len(fields))
	}

	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return color.PerceptualColor{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		vals[i] = v
	}

	p := color.PerceptualColor{L: vals[0], C: vals[1], H: vals[2]}
	if err := p.Validate(); err != nil {
		return color.PerceptualColor{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return p, nil
}

// Parse reads text produced by Serialize back into variables.
func Parse(text string) ([]Variable, error) {
	var vars []Variable
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == ":root {" || line == "}" {
			continue
		}
		if !strings.HasPrefix(line, "--") || !strings.HasSuffix(line, ";") {
			return nil, fmt.Errorf("line %d: expected --name: value;", lineNo)
		}
		name, value, ok := strings.Cut(strings.TrimSuffix(line, ";"), ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ':'", lineNo)
		}
		vars = append(vars, Variable{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}
