// SPDX-License-Identifier: MIT

// config-docs generates the Markdown reference for the configuration file
// from the built-in plugin registry and theme tables.
//
// Usage:
//
//	go run ./tools/config-docs [output.md]
//
// Defaults:
//   - output: docs/config.md
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/twresolve/internal/plugin"
	"github.com/ManuGH/twresolve/internal/theme"
)

type keyInfo struct {
	Name        string
	Type        string
	Required    bool
	Description string
	Example     string
}

var keys = []keyInfo{
	{
		Name:        "content",
		Type:        "array<string>",
		Required:    true,
		Description: "Glob patterns for files scanned for class names. Supports `**` and brace sets; a leading `!` excludes matches. At least one pattern must not be an exclusion.",
		Example:     "content:\n  - \"./templates/**/*.{html,js}\"\n  - \"!**/vendor/**\"",
	},
	{
		Name:        "safelist",
		Type:        "array<string>",
		Description: "Class names that are always generated, even when no scanned file uses them.",
		Example:     "safelist: [card, card-body, \"sm:card-side\"]",
	},
	{
		Name:        "theme.extend",
		Type:        "map<string, map<string, string|array<string>>>",
		Description: "Design token overrides by category. A scalar value is treated as a one-element list.",
		Example:     "theme:\n  extend:\n    fontFamily:\n      sans: [Helvetica, Arial, sans-serif]",
	},
	{
		Name:        "plugins",
		Type:        "array<string>",
		Description: "Plugin identifiers in load order. Duplicates are rejected; identifiers not listed below are passed through.",
		Example:     "plugins: [\"@tailwindcss/forms\", daisyui]",
	},
	{
		Name:        "themes",
		Type:        "array<string|map<string, map<string, color>>>",
		Description: "Scalars reference predefined themes, mappings define custom themes by color role. Theme names must be unique.",
		Example:     "themes:\n  - WMATA:\n      primary: \"#009CDE\"\n  - retro",
	},
}

func main() {
	out := "docs/config.md"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	buf := &bytes.Buffer{}
	check(render(buf, plugin.Builtin()))

	check(os.MkdirAll(filepath.Dir(out), 0o755))
	check(os.WriteFile(out, buf.Bytes(), 0o644)) // #nosec G306 -- generated documentation
	fmt.Printf("generated %s\n", out)
}

func render(w io.Writer, reg *plugin.Registry) error {
	buf := &bytes.Buffer{}
	fmt.Fprintln(buf, "# twresolve configuration")
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "> Generated by `go run ./tools/config-docs`. Do not edit by hand.")
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "## Overview")
	fmt.Fprintln(buf, "| Key | Type | Required | Description |")
	fmt.Fprintln(buf, "|---|---|:---:|---|")
	for _, k := range keys {
		fmt.Fprintf(buf, "| `%s` | %s | %s | %s |\n", k.Name, mdCode(k.Type), boolIcon(k.Required), mdSan(k.Description))
	}
	fmt.Fprintln(buf)

	for _, k := range keys {
		fmt.Fprintf(buf, "## `%s`\n\n", k.Name)
		fmt.Fprintf(buf, "%s\n\n```yaml\n%s\n```\n\n", mdSan(k.Description), k.Example)
	}

	fmt.Fprintln(buf, "## Known plugins")
	fmt.Fprintln(buf, "| Plugin | Uses themes | Description |")
	fmt.Fprintln(buf, "|---|:---:|---|")
	for _, id := range reg.IDs() {
		d, _ := reg.Lookup(id)
		fmt.Fprintf(buf, "| `%s` | %s | %s |\n", d.ID, boolIcon(d.ThemeAware), mdSan(d.Description))
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "## Color roles")
	fmt.Fprintln(buf, strings.Join(wrapBackticks(theme.Roles), ", "))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "## Predefined themes")
	fmt.Fprintln(buf, strings.Join(wrapBackticks(theme.BuiltinNames), ", "))

	_, err := w.Write(buf.Bytes())
	return err
}

func mdSan(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}

func mdCode(s string) string {
	return "`" + strings.ReplaceAll(s, "|", "\\|") + "`"
}

func wrapBackticks(v []string) []string {
	out := make([]string, len(v))
	for i, s := range v {
		out[i] = "`" + s + "`"
	}
	return out
}

func boolIcon(b bool) string {
	if b {
		return "✓"
	}
	return ""
}

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
