package cli

import (
	"fmt"
	"os"

	"github.com/opencode-ai/themekit/internal/serialize"
	"github.com/spf13/cobra"
)

var (
	exportPrefix string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "", "variable name prefix (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Export a theme as stylesheet custom properties",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := GetConfig().Export.Prefix
		if exportPrefix != "" {
			prefix = exportPrefix
		}

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
			vars, err := serialize.Variables(theme, serialize.WithPrefix(prefix))
			if err != nil {
				return err
			}
			return WriteOutput(out, vars)
		}

		text, err := serialize.Serialize(theme, serialize.WithPrefix(prefix))
		if err != nil {
			return err
		}
		if exportOutput == "" {
			_, err := fmt.Fprint(out, text)
			return err
		}
		if err := os.WriteFile(exportOutput, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		logger.Info().Str("theme", theme.ID).Str("file", exportOutput).Msg("theme exported")
		return nil
	},
}
