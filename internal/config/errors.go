// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedConfig classifies every load failure caused by the source itself.
	// Use errors.Is(err, ErrMalformedConfig) instead of type assertions where possible.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrUnknownConfigField classifies strict YAML parse failures caused by unknown keys.
	ErrUnknownConfigField = errors.New("unknown config field")
)

// MalformedConfigError reports a source that is missing required fields,
// has fields of the wrong shape or violates an invariant. No Configuration
// is produced alongside it.
type MalformedConfigError struct {
	Source string // file path, empty for in-memory sources
	Err    error
}

func (e *MalformedConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("malformed config: %v", e.Err)
	}
	return fmt.Sprintf("malformed config %s: %v", e.Source, e.Err)
}

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMalformedConfig) true for any MalformedConfigError.
func (e *MalformedConfigError) Is(target error) bool {
	return target == ErrMalformedConfig
}

// PathExpansionWarning records a content pattern that matched no files.
// It is never fatal: partially built projects legitimately have empty globs.
type PathExpansionWarning struct {
	Pattern string
}

func (w PathExpansionWarning) String() string {
	return fmt.Sprintf("content pattern %q matched no files", w.Pattern)
}
