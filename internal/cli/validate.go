package cli

import (
	"errors"
	"fmt"

	"github.com/opencode-ai/themekit/internal/registry"
	"github.com/opencode-ai/themekit/internal/schema"
	"github.com/opencode-ai/themekit/internal/themestore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidateResult is the outcome of `themekit validate`.
type ValidateResult struct {
	File   string              `json:"file"`
	ID     string              `json:"id,omitempty"`
	Valid  bool                `json:"valid"`
	Errors []schema.FieldError `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a theme descriptor file",
	Long: `Check a theme descriptor file against the schema and resolve its shade
ramps. Every schema problem is reported, not only the first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := validateFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			if err := WriteOutput(out, result); err != nil {
				return err
			}
		} else if result.Valid {
			fmt.Fprintf(out, "%s: valid theme %q\n", result.File, result.ID)
		} else {
			fmt.Fprintf(out, "%s: %d problem(s)\n", result.File, len(result.Errors))
			for _, e := range result.Errors {
				fmt.Fprintf(out, "  %s\n", e.Error())
			}
		}

		if !result.Valid {
			return &exitError{msg: fmt.Sprintf("%s is not a valid theme descriptor", result.File)}
		}
		return nil
	},
}

func validateFile(path string) (*ValidateResult, error) {
	result := &ValidateResult{File: path}

	desc, err := themestore.LoadDescriptor(path)
	if err != nil {
		var verrs schema.ValidationErrors
		if errors.As(err, &verrs) {
			result.Errors = verrs
			return result, nil
		}
		return nil, err
	}
	result.ID = desc.ID

	parsed, err := schema.Validate(desc.Raw)
	if err != nil {
		return nil, err
	}
	if _, err := registry.Resolve(parsed); err != nil {
		var anomaly *registry.ConversionAnomalyError
		if errors.As(err, &anomaly) {
			result.Errors = []schema.FieldError{{
				Path:   fmt.Sprintf("colorPalette.%s", anomaly.Role),
				Reason: err.Error(),
			}}
			return result, nil
		}
		return nil, err
	}

	result.Valid = true
	return result, nil
}
