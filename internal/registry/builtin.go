package registry

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/opencode-ai/themekit/internal/schema"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin names a theme bundled with themekit.
type Builtin string

const (
	BuiltinDefault      Builtin = "default"
	BuiltinHighContrast Builtin = "high-contrast"
	BuiltinForest       Builtin = "forest"
	BuiltinSunset       Builtin = "sunset"
)

// Builtins is the closed set of bundled themes.
var Builtins = [...]Builtin{BuiltinDefault, BuiltinHighContrast, BuiltinForest, BuiltinSunset}

// SourceBuiltin marks descriptors that came from the embedded set.
const SourceBuiltin = "builtin"

// loadBuiltinDescriptors decodes every bundled descriptor, keyed by Builtin.
// Each Builtin must have a matching builtin/<name>.yaml whose id equals the
// name.
func loadBuiltinDescriptors() (map[Builtin]map[string]any, error) {
	out := make(map[Builtin]map[string]any, len(Builtins))
	for _, name := range Builtins {
		path := "builtin/" + string(name) + ".yaml"
		data, err := fs.ReadFile(builtinFS, path)
		if err != nil {
			return nil, fmt.Errorf("read builtin theme %s: %w", name, err)
		}
		raw, err := schema.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin theme %s: %w", name, err)
		}
		if id, _ := raw["id"].(string); id != string(name) {
			return nil, fmt.Errorf("builtin theme %s: id %q does not match file name", name, id)
		}
		out[name] = raw
	}

	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin themes: %w", err)
	}
	if len(entries) != len(Builtins) {
		return nil, fmt.Errorf("builtin themes: %d files for %d names", len(entries), len(Builtins))
	}

	return out, nil
}
