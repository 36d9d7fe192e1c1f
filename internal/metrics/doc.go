// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package metrics exposes Prometheus instruments for configuration loading
// and content resolution. Instruments live on the default registry; a
// one-shot process writes them out with WriteTextfile.
package metrics
