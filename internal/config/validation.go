// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ManuGH/twresolve/internal/validate"
)

// New validates p and builds an immutable Configuration from it.
// On failure it returns the zero Configuration and a *MalformedConfigError.
func New(p Params) (Configuration, error) {
	if err := validateParams(p); err != nil {
		return Configuration{}, &MalformedConfigError{Err: err}
	}

	themes := make([]ThemeDefinition, len(p.Themes))
	for i, t := range p.Themes {
		themes[i] = ThemeDefinition{kind: t.kind, name: t.name, colors: cloneStringMap(t.colors)}
	}
	if len(themes) == 0 {
		themes = nil
	}

	return Configuration{
		contentPatterns: cloneStringSlice(p.Content),
		safelist:        dedupe(p.Safelist),
		themeExtensions: cloneExtensions(p.ThemeExtensions),
		plugins:         cloneStringSlice(p.Plugins),
		themes:          themes,
	}, nil
}

// Validate checks every invariant of cfg and reports all violations at once.
func Validate(cfg Configuration) error {
	return validateParams(Params{
		Content:         cfg.contentPatterns,
		Safelist:        cfg.safelist,
		ThemeExtensions: cfg.themeExtensions,
		Plugins:         cfg.plugins,
		Themes:          cfg.themes,
	})
}

func validateParams(p Params) error {
	v := validate.New()

	// Content patterns are the only required field.
	if len(p.Content) == 0 {
		v.AddError("content", "is required and must list at least one pattern", nil)
	}
	includes := 0
	for i, pattern := range p.Content {
		v.Glob(fmt.Sprintf("content[%d]", i), pattern)
		if !isExclusion(pattern) {
			includes++
		}
	}
	if len(p.Content) > 0 && includes == 0 {
		v.AddError("content", "must contain at least one pattern that is not an exclusion", p.Content)
	}

	for i, class := range p.Safelist {
		v.NotEmpty(fmt.Sprintf("safelist[%d]", i), class)
	}

	for _, category := range sortedKeys(p.ThemeExtensions) {
		if strings.TrimSpace(category) == "" {
			v.AddError("theme.extend", "category name cannot be empty", category)
		}
		tokens := p.ThemeExtensions[category]
		for _, token := range sortedKeys(tokens) {
			field := fmt.Sprintf("theme.extend.%s.%s", category, token)
			if strings.TrimSpace(token) == "" {
				v.AddError(field, "token name cannot be empty", token)
			}
			value := tokens[token]
			if len(value) == 0 {
				v.AddError(field, "value cannot be empty", value)
			}
			for _, part := range value {
				v.NotEmpty(field, part)
			}
		}
	}

	for i, id := range p.Plugins {
		v.NotEmpty(fmt.Sprintf("plugins[%d]", i), id)
	}
	v.Unique("plugins", p.Plugins)

	names := make([]string, 0, len(p.Themes))
	for i, t := range p.Themes {
		field := fmt.Sprintf("themes[%d]", i)
		v.NotEmpty(field, t.name)
		names = append(names, t.name)

		switch t.kind {
		case ThemeNamed:
		case ThemeCustom:
			if len(t.colors) == 0 {
				v.AddError(field, fmt.Sprintf("custom theme %q defines no colors", t.name), t.name)
			}
			for _, role := range sortedKeys(t.colors) {
				v.NotEmpty(field+".role", role)
				v.Color(fmt.Sprintf("%s.%s", field, role), t.colors[role])
			}
		default:
			v.AddError(field, "theme definition has no kind", t.name)
		}
	}
	// Two definitions sharing a name are ambiguous; reject rather than pick one.
	v.Unique("themes", names)

	if !v.IsValid() {
		return v.Err()
	}
	return nil
}

func isExclusion(pattern string) bool {
	return strings.HasPrefix(strings.TrimSpace(pattern), "!")
}

func dedupe(in []string) []string {
	if in == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
