// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package manifest renders a resolved configuration into the JSON document
// handed to the CSS build tool.
package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ManuGH/twresolve/internal/config"
	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/plugin"
	"github.com/ManuGH/twresolve/internal/theme"
	"github.com/google/renameio/v2"
)

// SchemaVersion is bumped whenever the JSON layout changes incompatibly.
const SchemaVersion = 1

// Manifest is everything the build tool needs: which files to scan, which
// classes to always emit, and how to configure plugins and themes.
type Manifest struct {
	Schema          int                            `json:"schema"`
	Content         []string                       `json:"content"`
	Classes         []string                       `json:"classes"`
	ThemeExtensions map[string]map[string][]string `json:"themeExtensions,omitempty"`
	Plugins         []Plugin                       `json:"plugins"`
	Themes          []Theme                        `json:"themes"`
}

// Plugin is a configured plugin identifier. Known is false for identifiers
// the registry does not describe; they are passed through untouched.
type Plugin struct {
	ID          string `json:"id"`
	Known       bool   `json:"known"`
	ThemeAware  bool   `json:"themeAware,omitempty"`
	Description string `json:"description,omitempty"`
}

// Theme is one theme entry in declaration order.
type Theme struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Builtin bool   `json:"builtin,omitempty"`
	// Colors maps roles to the literal as written in the config.
	Colors map[string]string `json:"colors,omitempty"`
	// Normalized maps roles to lowercase #rrggbb; keyword colors are omitted.
	Normalized map[string]string `json:"normalized,omitempty"`
	// UnknownRoles lists roles the component plugin does not define.
	UnknownRoles []string `json:"unknownRoles,omitempty"`
}

// Build assembles the manifest. files is the resolved content set, scanned the
// class names found in it; the configured safelist is merged in.
func Build(cfg config.Configuration, files, scanned []string, reg *plugin.Registry) Manifest {
	m := Manifest{
		Schema:  SchemaVersion,
		Content: append([]string{}, files...),
		Classes: config.MergeSafelist(cfg, scanned),
		Plugins: []Plugin{},
		Themes:  []Theme{},
	}

	if ext := cfg.ThemeExtensions(); len(ext) > 0 {
		m.ThemeExtensions = make(map[string]map[string][]string, len(ext))
		for category, tokens := range ext {
			out := make(map[string][]string, len(tokens))
			for token, value := range tokens {
				out[token] = []string(value)
			}
			m.ThemeExtensions[category] = out
		}
	}

	for _, id := range cfg.Plugins() {
		p := Plugin{ID: id}
		if reg != nil {
			if d, ok := reg.Lookup(id); ok {
				p.Known = true
				p.ThemeAware = d.ThemeAware
				p.Description = d.Description
			}
		}
		m.Plugins = append(m.Plugins, p)
	}

	for _, def := range cfg.Themes() {
		m.Themes = append(m.Themes, buildTheme(def))
	}
	return m
}

func buildTheme(def config.ThemeDefinition) Theme {
	t := Theme{Name: def.Name(), Kind: def.Kind().String()}
	if def.Kind() == config.ThemeNamed {
		t.Builtin = theme.IsBuiltin(def.Name())
		return t
	}

	t.Colors = def.Colors()
	t.Normalized = make(map[string]string, len(t.Colors))
	for _, role := range sortedKeys(t.Colors) {
		if !theme.IsKnownRole(role) {
			t.UnknownRoles = append(t.UnknownRoles, role)
		}
		if isKeyword(t.Colors[role]) {
			continue
		}
		c, err := theme.ParseColor(t.Colors[role])
		if err != nil {
			// Configuration validation rejects invalid colors before this point.
			continue
		}
		t.Normalized[role] = c.Hex()
	}
	return t
}

// UnknownPlugins returns identifiers the registry did not recognize.
func (m Manifest) UnknownPlugins() []string {
	var out []string
	for _, p := range m.Plugins {
		if !p.Known {
			out = append(out, p.ID)
		}
	}
	return out
}

// Encode writes m as indented JSON followed by a newline. Map keys are
// emitted in sorted order, so equal manifests encode to equal bytes.
func Encode(w io.Writer, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Write atomically replaces the file at path with the encoded manifest.
// Readers see either the old or the new file, never a partial one.
func Write(ctx context.Context, path string, m Manifest) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending manifest file: %w", err)
	}
	defer func() {
		// No-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending manifest file")
		}
	}()

	if err := Encode(pendingFile, m); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace manifest file: %w", err)
	}

	logger.Debug().
		Str(xglog.FieldEvent, "manifest.written").
		Str(xglog.FieldPath, path).
		Int(xglog.FieldFiles, len(m.Content)).
		Int(xglog.FieldClasses, len(m.Classes)).
		Msg("manifest written")
	return nil
}
