// Package registry resolves theme names to fully expanded, validated themes
// and caches the results for the life of the registry.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/schema"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Summary describes a registered theme.
type Summary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// entry is a registered raw descriptor. generation changes whenever the
// name is re-registered so in-flight resolutions of a replaced descriptor
// are not cached.
type entry struct {
	raw        map[string]any
	source     string
	generation uint64
}

// Registry maps theme names (descriptor ids) to resolved themes.
// It is safe for concurrent use.
type Registry struct {
	logger zerolog.Logger

	mu         sync.RWMutex
	entries    map[string]entry
	cache      map[string]*models.ResolvedTheme
	generation uint64

	group singleflight.Group
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// New creates a registry seeded with the built-in themes.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		logger:  logging.Component("registry"),
		entries: make(map[string]entry),
		cache:   make(map[string]*models.ResolvedTheme),
	}
	for _, opt := range opts {
		opt(r)
	}

	builtins, err := loadBuiltinDescriptors()
	if err != nil {
		return nil, err
	}
	for _, name := range Builtins {
		r.generation++
		r.entries[string(name)] = entry{raw: builtins[name], source: SourceBuiltin, generation: r.generation}
	}

	return r, nil
}

// Register validates raw and adds it under its id, replacing any theme of
// the same name and dropping that name's cached resolution. source is a
// free-form origin such as a file path.
func (r *Registry) Register(raw map[string]any, source string) (string, error) {
	desc, err := schema.Validate(raw)
	if err != nil {
		return "", fmt.Errorf("register theme from %s: %w", source, err)
	}
	name := desc.ID

	r.mu.Lock()
	prev, replaced := r.entries[name]
	r.generation++
	r.entries[name] = entry{raw: cloneRaw(raw), source: source, generation: r.generation}
	delete(r.cache, name)
	r.mu.Unlock()

	if replaced {
		r.logger.Warn().
			Str("theme", name).
			Str("source", source).
			Str("previous_source", prev.source).
			Msg("theme replaced")
	} else {
		r.logger.Debug().Str("theme", name).Str("source", source).Msg("theme registered")
	}
	return name, nil
}

// ListAvailable returns every registered theme sorted by name.
func (r *Registry) ListAvailable() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.entries))
	for name, e := range r.entries {
		title, _ := e.raw["name"].(string)
		description, _ := e.raw["description"].(string)
		out = append(out, Summary{Name: name, Title: title, Description: description, Source: e.source})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	summaries := r.ListAvailable()
	names := make([]string, 0, len(summaries))
	for _, s := range summaries {
		names = append(names, s.Name)
	}
	return names
}

// Descriptor validates and returns the descriptor registered under name.
func (r *Registry) Descriptor(name string) (*models.ThemeDescriptor, error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return schema.Validate(e.raw)
}

// Load returns the resolved theme for name, resolving and caching it on
// first use. Concurrent loads of the same uncached name share one
// resolution. The returned theme is shared and must not be modified.
func (r *Registry) Load(name string) (*models.ResolvedTheme, error) {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	theme, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		r.logger.Debug().Str("theme", name).Msg("cache hit")
		return theme, nil
	}

	v, err, _ := r.group.Do(name, func() (any, error) {
		return r.resolve(name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.ResolvedTheme), nil
}

// Reload discards any cached resolution of name and resolves it again.
func (r *Registry) Reload(name string) (*models.ResolvedTheme, error) {
	name = strings.TrimSpace(name)
	if _, err := r.lookup(name); err != nil {
		return nil, err
	}

	r.mu.Lock()
	delete(r.cache, name)
	r.mu.Unlock()

	r.logger.Info().Str("theme", name).Msg("reloading theme")
	return r.Load(name)
}

// Purge empties the cache.
func (r *Registry) Purge() {
	r.mu.Lock()
	r.cache = make(map[string]*models.ResolvedTheme)
	r.mu.Unlock()
}

// Cached reports whether name currently has a cached resolution.
func (r *Registry) Cached(name string) bool {
	name = strings.TrimSpace(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cache[name]
	return ok
}

func (r *Registry) lookup(name string) (entry, error) {
	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return entry{}, &UnknownThemeError{Name: name, Available: r.Names()}
	}
	return e, nil
}

func (r *Registry) resolve(name string) (*models.ResolvedTheme, error) {
	r.mu.RLock()
	if theme, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return theme, nil
	}
	r.mu.RUnlock()

	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().Str("theme", name).Msg("cache miss")

	desc, err := schema.Validate(e.raw)
	if err != nil {
		return nil, fmt.Errorf("theme %q from %s: %w", name, e.source, err)
	}

	theme, err := Resolve(desc)
	if err != nil {
		r.logger.Error().Err(err).Str("theme", name).Msg("theme resolution failed")
		return nil, err
	}

	r.mu.Lock()
	if current, ok := r.entries[name]; ok && current.generation == e.generation {
		r.cache[name] = theme
	}
	r.mu.Unlock()

	return theme, nil
}

// cloneRaw deep-copies the object and array nodes of a decoded descriptor
// so later changes by the caller cannot reach the registry.
func cloneRaw(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneRaw(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
