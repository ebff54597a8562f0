// Package cli implements the themekit command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/opencode-ai/themekit/internal/config"
	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/registry"
	"github.com/opencode-ai/themekit/internal/themestore"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	projectDir string
	logLevel   string
	logFormat  string
	jsonOutput bool

	appConfig     *config.Config
	themeRegistry *registry.Registry
	logger        = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "themekit",
	Short: "Design-token pipeline for perceptual color themes",
	Long: `themekit turns small theme descriptors into shade ramps, checks them
against WCAG contrast levels and exports stylesheet custom properties.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.themekit/config.yaml or $XDG_CONFIG_HOME/themekit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project", ".", "project directory whose .themekit/themes is searched first")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format override (console, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initApp loads configuration and logging. Themes are loaded on demand by
// ensureRegistry so a broken theme file cannot block validate or init.
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := initLogging(cmd, cfg.Logging); err != nil {
		return err
	}
	appConfig = cfg

	logger.Debug().Str("config", cfg.File).Msg("initialized")
	return nil
}

// initLogging applies the --log-level and --log-format overrides to base.
func initLogging(cmd *cobra.Command, base config.LoggingConfig) error {
	if logLevel != "" {
		base.Level = logLevel
	}
	if logFormat != "" {
		base.Format = logFormat
	}
	if err := logging.Init(logging.Config{
		Level:  base.Level,
		Format: base.Format,
		Out:    cmd.ErrOrStderr(),
	}); err != nil {
		return err
	}
	logger = logging.Component("cli")
	return nil
}

// ensureRegistry builds the registry from the built-in themes and every
// descriptor file on the search path, once per process.
func ensureRegistry() (*registry.Registry, error) {
	if themeRegistry != nil {
		return themeRegistry, nil
	}

	reg, err := registry.New()
	if err != nil {
		return nil, err
	}
	store := themestore.New(themestore.SearchPaths(projectDir, GetConfig().Themes.Dirs))
	names, err := store.RegisterAll(reg)
	if err != nil {
		return nil, err
	}
	themeRegistry = reg

	logger.Debug().Strs("theme_files", names).Strs("paths", store.Paths()).Msg("themes registered")
	return reg, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// WriteOutput writes v as indented JSON.
func WriteOutput(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// themeArg returns the theme named by args or the configured default.
func themeArg(args []string) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return strings.TrimSpace(args[0])
	}
	return GetConfig().Themes.Default
}

// exitError carries a message already reported to the user.
type exitError struct {
	msg string
}

func (e *exitError) Error() string {
	return e.msg
}

// ReportError prints err unless it was already reported.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if _, ok := err.(*exitError); ok && IsJSONOutput() {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
