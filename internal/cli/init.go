package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/spf13/cobra"
)

var (
	initForce bool

	// configDirFunc is replaced in tests.
	configDirFunc = config.DefaultConfigDir
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

type initResult struct {
	Path    string `json:"path"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file and a themes directory",
	Args:  cobra.NoArgs,
	// init must work when the existing config is broken, so it skips
	// config loading and only sets up logging.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(cmd, config.DefaultConfig().Logging)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		result := createConfigFile()
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			if err := WriteOutput(out, result); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(out, "%s: %s\n", result.Status, result.Message)
		}
		if result.Status == "failed" {
			return &exitError{msg: result.Message}
		}
		return nil
	},
}

func createConfigFile() initResult {
	dir := configDirFunc()
	path := filepath.Join(dir, config.FileName)
	result := initResult{Path: path}

	if _, err := os.Stat(path); err == nil && !initForce {
		result.Status = "skipped"
		result.Message = fmt.Sprintf("%s already exists (use --force to overwrite)", path)
		return result
	}

	if err := os.MkdirAll(filepath.Join(dir, "themes"), 0o755); err != nil {
		result.Status = "failed"
		result.Message = fmt.Sprintf("create %s: %v", dir, err)
		return result
	}
	if err := os.WriteFile(path, []byte(config.Template), 0o644); err != nil {
		result.Status = "failed"
		result.Message = fmt.Sprintf("write %s: %v", path, err)
		return result
	}

	result.Status = "done"
	result.Message = fmt.Sprintf("wrote %s", path)
	return result
}
