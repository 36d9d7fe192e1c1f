// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID         = "run_id"
	FieldCorrelationID = "correlation_id"

	// Process fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Config fields
	FieldConfigPath = "config_path"
	FieldRoot       = "root"
	FieldPattern    = "pattern"
	FieldPlugin     = "plugin"
	FieldTheme      = "theme"

	// Failure fields
	FieldInvalidFields = "invalid_fields"

	// Result fields
	FieldPath     = "path"
	FieldFiles    = "files"
	FieldWarnings = "warnings"
	FieldClasses  = "classes"
)
