package cli

import (
	"strconv"

	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect available themes",
}

var themesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List built-in and file themes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := ensureRegistry()
		if err != nil {
			return err
		}
		summaries := reg.ListAvailable()
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			return WriteOutput(out, summaries)
		}

		defaultName := GetConfig().Themes.Default
		rows := make([][]string, 0, len(summaries))
		for _, s := range summaries {
			rows = append(rows, []string{s.Name, s.Title, formatYesNo(s.Name == defaultName), s.Source})
		}
		return writeTable(out, []string{"NAME", "TITLE", "DEFAULT", "SOURCE"}, rows)
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a theme's resolved shade ramps",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := ensureRegistry()
		if err != nil {
			return err
		}
		theme, err := reg.Load(themeArg(args))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			return WriteOutput(out, theme)
		}

		st, err := styles.ForTheme(out, theme)
		if err != nil {
			return err
		}
		swatches := hasTTY()

		headers := []string{"ROLE"}
		for _, level := range models.ShadeLevels {
			headers = append(headers, strconv.Itoa(level))
		}
		rows := make([][]string, 0, len(theme.Tokens))
		for _, r := range theme.Tokens {
			row := []string{string(r.Role)}
			for _, shade := range r.Shades {
				row = append(row, shade.Hex)
			}
			rows = append(rows, row)
		}

		writeLine(out, st.Title.Render(theme.Name)+st.Muted.Render(" ("+theme.ID+")"))
		if err := writeTable(out, headers, rows); err != nil {
			return err
		}
		if swatches {
			for _, r := range theme.Tokens {
				line := ""
				for _, shade := range r.Shades {
					line += st.Swatch(shade.Hex, 3)
				}
				writeLine(out, line+" "+st.Role(r.Role).Render(string(r.Role)))
			}
		}

		comp := theme.Composition
		writeLine(out, "")
		return writeTable(out, nil, [][]string{
			{"border", comp.Border.Radius + " radius, " + comp.Border.Width + " width"},
			{"shadow", comp.Shadow.Elevation},
			{"spacing", comp.Spacing.Unit},
			{"font", comp.Typography.FontFamily},
			{"type scale", comp.Typography.BaseSize + " x " + comp.Typography.ScaleRatio},
			{"weights", strconv.Itoa(comp.Typography.HeadingWeight) + " heading, " + strconv.Itoa(comp.Typography.BodyWeight) + " body"},
		})
	},
}
