// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities for twresolve.
package validate

import (
	"fmt"
	"strings"

	"github.com/ManuGH/twresolve/internal/theme"
	"github.com/bmatcuk/doublestar/v4"
)

// Error represents a validation error
type Error struct {
	Field   string      // Field name that failed validation
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Fields returns the distinct field names that failed, in first-seen order.
func (e ValidationError) Fields() []string {
	seen := make(map[string]struct{}, len(e.errors))
	out := make([]string, 0, len(e.errors))
	for _, err := range e.errors {
		if _, ok := seen[err.Field]; ok {
			continue
		}
		seen[err.Field] = struct{}{}
		out = append(out, err.Field)
	}
	return out
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	// Multiple errors - format as list
	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// NotEmpty validates that a string is not empty or whitespace-only
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// OneOf validates that a value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.AddError(field,
		fmt.Sprintf("value must be one of %v, got %q", allowed, value),
		value)
}

// Glob validates glob syntax (**, brace sets, character classes).
// A leading "!" marks an exclusion and is not part of the pattern itself.
func (v *Validator) Glob(field, pattern string) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		v.AddError(field, "pattern cannot be empty", pattern)
		return
	}
	body := strings.TrimPrefix(trimmed, "!")
	if body == "" {
		v.AddError(field, "exclusion must name a pattern", pattern)
		return
	}
	if !doublestar.ValidatePattern(body) {
		v.AddError(field, "invalid glob syntax", pattern)
	}
}

// Color validates a hex or named color literal.
func (v *Validator) Color(field, value string) {
	if _, err := theme.ParseColor(value); err != nil {
		v.AddError(field, err.Error(), value)
	}
}

// Unique reports every value that occurs more than once, once per duplicate value.
func (v *Validator) Unique(field string, values []string) {
	seen := make(map[string]int, len(values))
	for _, val := range values {
		seen[val]++
		if seen[val] == 2 {
			v.AddError(field, fmt.Sprintf("duplicate value %q", val), val)
		}
	}
}
