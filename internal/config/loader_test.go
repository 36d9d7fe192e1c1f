// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ManuGH/twresolve/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_FullConfig(t *testing.T) {
	cfg, err := LoadFile("testdata/tailwind.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"./templates/**/*.{html,js}",
		"../templates/**/*.{html,js}",
		"../../templates/**/*.{html,js}",
		"../../congress/templates/**/*.{html,js}",
		"../../**/templates/**/*.{html,js}",
	}, cfg.ContentPatterns())

	assert.Equal(t, []string{
		"sm:card-side", "card-side", "card", "card-body", "card-title", "card-actions",
	}, cfg.Safelist())

	ext := cfg.ThemeExtensions()
	require.Contains(t, ext, "fontFamily")
	assert.Equal(t, TokenValue{"Helvetica", "Arial", "sans-serif"}, ext["fontFamily"]["sans"])

	assert.Equal(t, []string{
		"@tailwindcss/forms", "@tailwindcss/typography", "@tailwindcss/aspect-ratio", "daisyui",
	}, cfg.Plugins())

	themes := cfg.Themes()
	require.Len(t, themes, 2)
	assert.Equal(t, ThemeCustom, themes[0].Kind())
	assert.Equal(t, "WMATA", themes[0].Name())
	assert.Equal(t, map[string]string{
		"primary":   "#009CDE",
		"secondary": "#ED8B00",
		"accent":    "#BF0D3E",
		"neutral":   "#FFD100",
		"base-100":  "#919D9D",
		"info":      "#4A412A",
	}, themes[0].Colors())
	assert.Equal(t, ThemeNamed, themes[1].Kind())
	assert.Equal(t, "retro", themes[1].Name())
	assert.Nil(t, themes[1].Colors())
}

func TestLoadFile_MissingContent(t *testing.T) {
	cfg, err := LoadFile("testdata/missing-content.yaml")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrMalformedConfig))
	assert.True(t, cfg.IsZero(), "no configuration may be produced on failure")

	var mce *MalformedConfigError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, filepath.Clean("testdata/missing-content.yaml"), mce.Source)

	var verr validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields(), "content")
}

func TestLoadFile_UnknownKey(t *testing.T) {
	_, err := LoadFile("testdata/unknown-key.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedConfig))
	assert.True(t, errors.Is(err, ErrUnknownConfigField))
}

func TestLoadFile_DuplicateThemeName(t *testing.T) {
	_, err := LoadFile("testdata/duplicate-theme.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedConfig))
	assert.Contains(t, err.Error(), `duplicate value "retro"`)
}

func TestLoadFile_JSON(t *testing.T) {
	cfg, err := LoadFile("testdata/minimal.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"./templates/**/*.html"}, cfg.ContentPatterns())
	assert.Equal(t, []string{"card"}, cfg.Safelist())
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tailwind.config.js")
	require.NoError(t, os.WriteFile(path, []byte("module.exports = {}"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedConfig))
}

func TestLoadFile_MissingFileIsNotMalformed(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, errors.Is(err, ErrMalformedConfig))
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "empty document",
			source:  "",
			wantMsg: "content",
		},
		{
			name:    "content is a scalar",
			source:  "content: ./templates/**/*.html\n",
			wantMsg: "cannot unmarshal",
		},
		{
			name:    "content is an empty list",
			source:  "content: []\n",
			wantMsg: "at least one pattern",
		},
		{
			name:    "content entry is blank",
			source:  "content: ['']\n",
			wantMsg: "pattern cannot be empty",
		},
		{
			name:    "only exclusions",
			source:  "content: ['!**/vendor/**']\n",
			wantMsg: "not an exclusion",
		},
		{
			name:    "bad glob syntax",
			source:  "content: ['templates/*.{html,js']\n",
			wantMsg: "invalid glob syntax",
		},
		{
			name:    "blank safelist entry",
			source:  "content: ['*.html']\nsafelist: [card, '  ']\n",
			wantMsg: "safelist[1]",
		},
		{
			name:    "invalid theme color",
			source:  "content: ['*.html']\nthemes:\n  - brand:\n      primary: '#12345'\n",
			wantMsg: "themes[0].primary",
		},
		{
			name:    "custom theme without colors",
			source:  "content: ['*.html']\nthemes:\n  - brand: {}\n",
			wantMsg: "defines no colors",
		},
		{
			name:    "theme entry is an empty mapping",
			source:  "content: ['*.html']\nthemes:\n  - {}\n",
			wantMsg: "must declare a theme",
		},
		{
			name:    "theme entry is a list",
			source:  "content: ['*.html']\nthemes:\n  - [a, b]\n",
			wantMsg: "must be a name or a mapping",
		},
		{
			name:    "theme colors not a mapping",
			source:  "content: ['*.html']\nthemes:\n  - brand: red\n",
			wantMsg: "must map color roles",
		},
		{
			name:    "themes not a list",
			source:  "content: ['*.html']\nthemes: retro\n",
			wantMsg: "themes must be a list",
		},
		{
			name:    "duplicate plugin",
			source:  "content: ['*.html']\nplugins: [daisyui, daisyui]\n",
			wantMsg: `duplicate value "daisyui"`,
		},
		{
			name:    "token value is a mapping",
			source:  "content: ['*.html']\ntheme:\n  extend:\n    fontFamily:\n      sans: {a: b}\n",
			wantMsg: "scalar or a list",
		},
		{
			name:    "token value is an empty list",
			source:  "content: ['*.html']\ntheme:\n  extend:\n    spacing:\n      gutter: []\n",
			wantMsg: "theme.extend.spacing.gutter",
		},
		{
			name:    "multiple documents",
			source:  "content: ['*.html']\n---\ncontent: ['*.js']\n",
			wantMsg: "multiple documents",
		},
		{
			name:    "not yaml",
			source:  "content: [unterminated\n",
			wantMsg: "parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(strings.NewReader(tt.source))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedConfig), "want MalformedConfigError, got %T: %v", err, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.True(t, cfg.IsZero())
		})
	}
}

func TestLoad_ScalarTokenValue(t *testing.T) {
	cfg, err := Load(strings.NewReader("content: ['*.html']\ntheme:\n  extend:\n    colors:\n      brand: '#009CDE'\n"))
	require.NoError(t, err)
	assert.Equal(t, TokenValue{"#009CDE"}, cfg.ThemeExtensions()["colors"]["brand"])
}

func TestLoad_MultipleThemesInOneItemKeepOrder(t *testing.T) {
	src := `content: ['*.html']
themes:
  - zeta:
      primary: red
    alpha:
      primary: blue
  - dark
`
	cfg, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	themes := cfg.Themes()
	require.Len(t, themes, 3)
	assert.Equal(t, "zeta", themes[0].Name())
	assert.Equal(t, "alpha", themes[1].Name())
	assert.Equal(t, "dark", themes[2].Name())
}

func TestLoad_UnknownPluginsAndThemesPassThrough(t *testing.T) {
	src := "content: ['*.html']\nplugins: ['@acme/charts']\nthemes: [not-a-builtin]\n"
	cfg, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"@acme/charts"}, cfg.Plugins())
	assert.Equal(t, "not-a-builtin", cfg.Themes()[0].Name())
}

func TestLoad_SafelistDeduplicated(t *testing.T) {
	cfg, err := Load(strings.NewReader("content: ['*.html']\nsafelist: [card, btn, card]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"card", "btn"}, cfg.Safelist())
}

func TestConfiguration_AccessorsReturnCopies(t *testing.T) {
	cfg, err := LoadFile("testdata/tailwind.yaml")
	require.NoError(t, err)

	patterns := cfg.ContentPatterns()
	patterns[0] = "mutated"
	safelist := cfg.Safelist()
	safelist[0] = "mutated"
	ext := cfg.ThemeExtensions()
	ext["fontFamily"]["sans"][0] = "mutated"
	themes := cfg.Themes()
	colors := themes[0].Colors()
	colors["primary"] = "mutated"

	assert.Equal(t, "./templates/**/*.{html,js}", cfg.ContentPatterns()[0])
	assert.Equal(t, "sm:card-side", cfg.Safelist()[0])
	assert.Equal(t, "Helvetica", cfg.ThemeExtensions()["fontFamily"]["sans"][0])
	assert.Equal(t, "#009CDE", cfg.Themes()[0].Colors()["primary"])
}

func TestNew_CopiesParams(t *testing.T) {
	content := []string{"**/*.html"}
	colors := map[string]string{"primary": "#fff"}

	cfg, err := New(Params{
		Content: content,
		Themes:  []ThemeDefinition{CustomTheme("brand", colors), NamedTheme("dark")},
	})
	require.NoError(t, err)

	content[0] = "mutated"
	colors["primary"] = "mutated"

	assert.Equal(t, []string{"**/*.html"}, cfg.ContentPatterns())
	assert.Equal(t, "#fff", cfg.Themes()[0].Colors()["primary"])
	assert.NoError(t, Validate(cfg))
}

func TestNew_RejectsZeroThemeDefinition(t *testing.T) {
	_, err := New(Params{Content: []string{"*.html"}, Themes: []ThemeDefinition{{}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedConfig))
}

func TestValidate_ZeroConfiguration(t *testing.T) {
	err := Validate(Configuration{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content")
}

func TestThemeKind_String(t *testing.T) {
	assert.Equal(t, "custom", ThemeCustom.String())
	assert.Equal(t, "named", ThemeNamed.String())
	assert.Equal(t, "unknown", ThemeKind(0).String())
}
