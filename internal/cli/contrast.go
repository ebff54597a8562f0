package cli

import (
	"fmt"
	"strconv"

	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/wcag"
	"github.com/spf13/cobra"
)

var contrastLevel string

func init() {
	rootCmd.AddCommand(contrastCmd)
	contrastCmd.Flags().StringVar(&contrastLevel, "level", "", "WCAG level to check: AA or AAA (default from config)")
}

var contrastCmd = &cobra.Command{
	Use:   "contrast [name]",
	Short: "Check a theme against WCAG contrast thresholds",
	Long: `Check every semantic pairing of a theme against its neutral-50 background.
Exits non-zero when any pairing falls below the threshold for the level.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := GetConfig().ContrastLevel()
		if contrastLevel != "" {
			parsed, err := wcag.ParseLevel(contrastLevel)
			if err != nil {
				return err
			}
			level = parsed
		}

		reg, err := ensureRegistry()
		if err != nil {
			return err
		}
		theme, err := reg.Load(themeArg(args))
		if err != nil {
			return err
		}
		report, err := wcag.Validate(theme, level)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			if err := WriteOutput(out, report); err != nil {
				return err
			}
		} else {
			st, err := styles.ForTheme(out, theme)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(report.Checks))
			for _, c := range report.Checks {
				rows = append(rows, []string{
					c.Semantic,
					c.Foreground + " " + c.ForegroundHex,
					c.Background + " " + c.BackgroundHex,
					string(c.TextSize),
					strconv.FormatFloat(c.ContrastRatio, 'f', 2, 64),
					strconv.FormatFloat(c.Threshold, 'f', 1, 64),
					st.Verdict(c.Passed),
				})
			}
			writeLine(out, st.Title.Render(fmt.Sprintf("%s at WCAG %s", theme.ID, level)))
			if err := writeTable(out, []string{"CHECK", "FOREGROUND", "BACKGROUND", "SIZE", "RATIO", "MIN", "RESULT"}, rows); err != nil {
				return err
			}
		}

		if !report.Passed {
			return &exitError{msg: fmt.Sprintf("theme %s fails WCAG %s on %d check(s)", theme.ID, level, len(report.Failed()))}
		}
		return nil
	},
}
