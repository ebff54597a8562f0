package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDescriptor matches any ValidationErrors via errors.Is.
var ErrInvalidDescriptor = errors.New("invalid theme descriptor")

// FieldError is one problem at a dotted field path such as
// "colorPalette.primary.l".
type FieldError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

func (e FieldError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// ValidationErrors lists every problem found in a descriptor, in field order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return fmt.Sprintf("%s: %s", ErrInvalidDescriptor, v[0].Error())
	}
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return fmt.Sprintf("%s: %d problems: %s", ErrInvalidDescriptor, len(v), strings.Join(parts, "; "))
}

// Is reports whether target is ErrInvalidDescriptor.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrInvalidDescriptor
}

// Paths returns the field paths in order.
func (v ValidationErrors) Paths() []string {
	paths := make([]string, 0, len(v))
	for _, e := range v {
		paths = append(paths, e.Path)
	}
	return paths
}

// Has reports whether any error is recorded at path.
func (v ValidationErrors) Has(path string) bool {
	for _, e := range v {
		if e.Path == path {
			return true
		}
	}
	return false
}
