// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package theme parses color literals used by theme definitions and
// knows the semantic color roles and built-in theme names of the
// component plugin. Unknown roles and names are never rejected here;
// callers decide whether to pass them through.
package theme
