// Package themestore reads theme descriptor files from disk and hands them
// to a registry.
package themestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/schema"
	"github.com/rs/zerolog"
)

// Descriptor is a validated descriptor file.
type Descriptor struct {
	ID     string
	Source string
	Raw    map[string]any
}

// Registrar accepts raw descriptors.
type Registrar interface {
	Register(raw map[string]any, source string) (string, error)
}

// LoadDescriptor reads and validates a single .yaml, .yml or .json file.
func LoadDescriptor(path string) (*Descriptor, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("descriptor path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor %s: %w", path, err)
	}

	raw, err := schema.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse descriptor %s: %w", path, err)
	}
	desc, err := schema.Validate(raw)
	if err != nil {
		return nil, fmt.Errorf("validate descriptor %s: %w", path, err)
	}

	return &Descriptor{ID: desc.ID, Source: path, Raw: raw}, nil
}

// LoadFromDir loads every descriptor file in dir sorted by id. A missing
// directory yields no descriptors.
func LoadFromDir(dir string) ([]*Descriptor, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Descriptor{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Descriptor{}, nil
		}
		return nil, fmt.Errorf("read themes dir %s: %w", dir, err)
	}

	descriptors := make([]*Descriptor, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		desc, err := LoadDescriptor(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, desc)
	}

	sort.Slice(descriptors, func(i, j int) bool {
		if descriptors[i].ID == descriptors[j].ID {
			return descriptors[i].Source < descriptors[j].Source
		}
		return descriptors[i].ID < descriptors[j].ID
	})

	return descriptors, nil
}

// SearchPaths returns theme directories in precedence order: the project
// directory, any configured directories, then the user config directory.
func SearchPaths(projectDir string, extraDirs []string) []string {
	paths := make([]string, 0, len(extraDirs)+2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themekit", "themes"))
	}
	for _, dir := range extraDirs {
		if strings.TrimSpace(dir) != "" {
			paths = append(paths, dir)
		}
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themekit", "themes"))
	}
	return paths
}

// Store loads descriptors from an ordered list of directories.
type Store struct {
	paths  []string
	logger zerolog.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a store over paths, highest precedence first.
func New(paths []string, opts ...Option) *Store {
	s := &Store{
		paths:  append([]string(nil), paths...),
		logger: logging.Component("themestore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Paths returns the directories searched.
func (s *Store) Paths() []string {
	return append([]string(nil), s.paths...)
}

// Load returns descriptors from every path. When two files share an id the
// one found first wins.
func (s *Store) Load() ([]*Descriptor, error) {
	seen := make(map[string]*Descriptor)
	order := make([]string, 0)

	for _, path := range s.paths {
		descriptors, err := LoadFromDir(path)
		if err != nil {
			return nil, err
		}
		for _, desc := range descriptors {
			if prev, exists := seen[desc.ID]; exists {
				s.logger.Debug().
					Str("theme", desc.ID).
					Str("source", desc.Source).
					Str("kept", prev.Source).
					Msg("shadowed descriptor skipped")
				continue
			}
			seen[desc.ID] = desc
			order = append(order, desc.ID)
		}
	}

	resolved := make([]*Descriptor, 0, len(order))
	for _, id := range order {
		resolved = append(resolved, seen[id])
	}
	return resolved, nil
}

// RegisterAll loads every descriptor and registers it, returning the
// registered names in load order.
func (s *Store) RegisterAll(reg Registrar) ([]string, error) {
	descriptors, err := s.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(descriptors))
	for _, desc := range descriptors {
		name, err := reg.Register(desc.Raw, desc.Source)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	s.logger.Debug().Int("count", len(names)).Strs("paths", s.paths).Msg("theme files registered")
	return names, nil
}
