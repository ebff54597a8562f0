package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/opencode-ai/themekit/internal/color"
	"github.com/opencode-ai/themekit/internal/gamut"
	"github.com/opencode-ai/themekit/internal/serialize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

// ConvertResult is the outcome of `themekit convert`.
type ConvertResult struct {
	Input   color.PerceptualColor `json:"input"`
	InGamut bool                  `json:"inGamut"`
	Clipped color.PerceptualColor `json:"clipped"`
	Device  color.DeviceColor     `json:"device"`
	Hex     string                `json:"hex"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <l> <c> <h> | convert <#rrggbb>",
	Short: "Convert between OKLCH and sRGB",
	Long: `Convert an OKLCH color to sRGB, reducing chroma when it falls outside the
sRGB gamut, or convert a hex color to OKLCH.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("expected l c h or a single hex color, got %d argument(s)", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := convertArgs(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if IsJSONOutput() {
			return WriteOutput(out, result)
		}
		return writeTable(out, nil, [][]string{
			{"input", serialize.FormatColor(result.Input)},
			{"in gamut", formatYesNo(result.InGamut)},
			{"clipped", serialize.FormatColor(result.Clipped)},
			{"rgb", fmt.Sprintf("%d %d %d", result.Device.R, result.Device.G, result.Device.B)},
			{"hex", result.Hex},
		})
	},
}

func convertArgs(args []string) (*ConvertResult, error) {
	var p color.PerceptualColor
	if len(args) == 1 {
		if !strings.HasPrefix(strings.TrimSpace(args[0]), "#") {
			return nil, fmt.Errorf("expected a #rrggbb color, got %q", args[0])
		}
		d, err := color.ParseHex(args[0])
		if err != nil {
			return nil, err
		}
		p = color.FromDevice(d)
	} else {
		var vals [3]float64
		for i, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid component %q: %w", arg, err)
			}
			vals[i] = v
		}
		p = color.PerceptualColor{L: vals[0], C: vals[1], H: vals[2]}
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	clipped := gamut.Clip(p)
	device := color.ToDevice(clipped)
	return &ConvertResult{
		Input:   p,
		InGamut: gamut.InGamut(p),
		Clipped: clipped,
		Device:  device,
		Hex:     color.ToHex(device),
	}, nil
}
