// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"sort"
	"strings"
)

// MergeSafelist returns the sorted union of scanned class names and the
// configured safelist. Safelisted classes survive even when the scan saw none
// of them. Blank scanned names are dropped.
func MergeSafelist(cfg Configuration, scanned []string) []string {
	set := make(map[string]struct{}, len(scanned)+len(cfg.safelist))
	for _, class := range scanned {
		class = strings.TrimSpace(class)
		if class == "" {
			continue
		}
		set[class] = struct{}{}
	}
	for _, class := range cfg.safelist {
		set[class] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for class := range set {
		out = append(out, class)
	}
	sort.Strings(out)
	return out
}
