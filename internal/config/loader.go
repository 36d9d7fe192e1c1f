// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/ManuGH/twresolve/internal/validate"
	"gopkg.in/yaml.v3"
)

// Load parses and validates a configuration from r.
// Any problem with the source yields a *MalformedConfigError and the zero Configuration.
func Load(r io.Reader) (Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Configuration{}, fmt.Errorf("read config: %w", err)
	}
	return parse(data, "")
}

// LoadFile reads and parses the configuration at path.
// I/O failures are returned as plain wrapped errors; they are not MalformedConfigError.
func LoadFile(path string) (Configuration, error) {
	path = filepath.Clean(path)
	logger := xglog.WithComponent("config")

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".json" {
		metrics.IncConfigLoad(metrics.OutcomeMalformed)
		return Configuration{}, &MalformedConfigError{
			Source: path,
			Err:    fmt.Errorf("unsupported config format %q (YAML or JSON only)", ext),
		}
	}

	// #nosec G304 -- configuration file paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.IncConfigLoad(metrics.OutcomeIOError)
		return Configuration{}, fmt.Errorf("read file: %w", err)
	}

	cfg, err := parse(data, path)
	if err != nil {
		ev := logger.Error().Err(err).
			Str(xglog.FieldEvent, "config.load_failed").
			Str(xglog.FieldConfigPath, path)
		var verr validate.ValidationError
		if errors.As(err, &verr) {
			ev = ev.Strs(xglog.FieldInvalidFields, verr.Fields())
		}
		ev.Msg("configuration rejected")
		return Configuration{}, err
	}

	logger.Debug().
		Str(xglog.FieldEvent, "config.loaded").
		Str(xglog.FieldConfigPath, path).
		Int("patterns", len(cfg.contentPatterns)).
		Int("safelist", len(cfg.safelist)).
		Int("themes", len(cfg.themes)).
		Msg("configuration loaded")
	return cfg, nil
}

// parse decodes data strictly: unknown keys, trailing documents and shape
// mismatches are all malformed.
func parse(data []byte, source string) (Configuration, error) {
	fc, err := decodeStrict(data)
	if err != nil {
		metrics.IncConfigLoad(metrics.OutcomeMalformed)
		return Configuration{}, &MalformedConfigError{Source: source, Err: err}
	}

	cfg, err := New(Params{
		Content:         fc.Content,
		Safelist:        fc.Safelist,
		ThemeExtensions: fc.Theme.Extend,
		Plugins:         fc.Plugins,
		Themes:          fc.Themes,
	})
	if err != nil {
		metrics.IncConfigLoad(metrics.OutcomeMalformed)
		var mce *MalformedConfigError
		if errors.As(err, &mce) {
			mce.Source = source
		}
		return Configuration{}, err
	}

	metrics.IncConfigLoad(metrics.OutcomeSuccess)
	return cfg, nil
}

func decodeStrict(data []byte) (fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fc); err != nil {
		if err == io.EOF {
			// Empty document: validation reports the missing content field.
			return fileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return fileConfig{}, fmt.Errorf("%w: %v", ErrUnknownConfigField, err)
		}
		return fileConfig{}, fmt.Errorf("parse: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fileConfig{}, fmt.Errorf("config contains multiple documents or trailing content")
	}
	return fc, nil
}
