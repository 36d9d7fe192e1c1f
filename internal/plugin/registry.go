// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package plugin maps plugin identifiers from a configuration to
// descriptors compiled into the binary. Nothing is loaded at runtime.
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicatePlugin is returned when an identifier is registered twice.
var ErrDuplicatePlugin = errors.New("duplicate plugin identifier")

// Descriptor describes a presentation plugin known to the build.
type Descriptor struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	// ThemeAware plugins consume the configured color themes.
	ThemeAware bool `json:"theme_aware"`
}

// Registry is an immutable-after-construction lookup table.
type Registry struct {
	byID map[string]Descriptor
}

// NewRegistry builds a registry from descs. Identifiers must be non-empty and unique.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, fmt.Errorf("plugin descriptor without identifier")
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlugin, id)
		}
		d.ID = id
		r.byID[id] = d
	}
	return r, nil
}

// Builtin returns a fresh registry holding the plugins shipped with the build.
func Builtin() *Registry {
	r, err := NewRegistry(builtinDescriptors...)
	if err != nil {
		// builtinDescriptors is static; a failure here is a programming error.
		panic(err)
	}
	return r
}

var builtinDescriptors = []Descriptor{
	{ID: "@tailwindcss/forms", Description: "minimal reset styling for form controls"},
	{ID: "@tailwindcss/typography", Description: "prose classes for rendered markdown and CMS content"},
	{ID: "@tailwindcss/aspect-ratio", Description: "fixed aspect-ratio containers"},
	{ID: "daisyui", Description: "component classes and color themes", ThemeAware: true},
}

// Lookup returns the descriptor registered for id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Resolve splits ids into registered descriptors and unknown identifiers.
// Both results keep the input order; unknown identifiers are not an error.
func (r *Registry) Resolve(ids []string) (known []Descriptor, unknown []string) {
	for _, id := range ids {
		if d, ok := r.byID[id]; ok {
			known = append(known, d)
			continue
		}
		unknown = append(unknown, id)
	}
	return known, unknown
}

// IDs returns all registered identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
