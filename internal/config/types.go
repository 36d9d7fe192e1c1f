// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ThemeKind tags the variant held by a ThemeDefinition.
type ThemeKind int

const (
	// ThemeCustom is a named variant with its own role → color mapping.
	ThemeCustom ThemeKind = iota + 1
	// ThemeNamed references a theme predefined by the build tool.
	ThemeNamed
)

func (k ThemeKind) String() string {
	switch k {
	case ThemeCustom:
		return "custom"
	case ThemeNamed:
		return "named"
	default:
		return "unknown"
	}
}

// ThemeDefinition is either a custom theme or a reference to a predefined one.
type ThemeDefinition struct {
	kind   ThemeKind
	name   string
	colors map[string]string
}

// CustomTheme defines a theme with its own semantic color roles.
func CustomTheme(name string, colors map[string]string) ThemeDefinition {
	return ThemeDefinition{kind: ThemeCustom, name: name, colors: cloneStringMap(colors)}
}

// NamedTheme references a predefined theme by name.
func NamedTheme(name string) ThemeDefinition {
	return ThemeDefinition{kind: ThemeNamed, name: name}
}

func (t ThemeDefinition) Kind() ThemeKind { return t.kind }
func (t ThemeDefinition) Name() string    { return t.name }

// Colors returns a copy of the role → color mapping; nil for named references.
func (t ThemeDefinition) Colors() map[string]string {
	return cloneStringMap(t.colors)
}

// TokenValue is the value of a theme token. Scalars decode to a single
// element so font stacks and single values share one shape.
type TokenValue []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (v *TokenValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = TokenValue{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(TokenValue, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: token list entries must be scalars", item.Line)
			}
			out = append(out, item.Value)
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("line %d: token value must be a scalar or a list of scalars", node.Line)
	}
}

// themeList decodes the themes sequence. A scalar item is a named reference;
// a mapping item declares one custom theme per key, in document order.
type themeList []ThemeDefinition

func (l *themeList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: themes must be a list", node.Line)
	}
	out := make(themeList, 0, len(node.Content))
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			out = append(out, NamedTheme(item.Value))
		case yaml.MappingNode:
			if len(item.Content) == 0 {
				return fmt.Errorf("line %d: theme entry must declare a theme", item.Line)
			}
			for i := 0; i+1 < len(item.Content); i += 2 {
				key, val := item.Content[i], item.Content[i+1]
				if val.Kind != yaml.MappingNode {
					return fmt.Errorf("line %d: theme %q must map color roles to colors", val.Line, key.Value)
				}
				colors := make(map[string]string, len(val.Content)/2)
				for j := 0; j+1 < len(val.Content); j += 2 {
					role, color := val.Content[j], val.Content[j+1]
					if color.Kind != yaml.ScalarNode {
						return fmt.Errorf("line %d: color for %s.%s must be a scalar", color.Line, key.Value, role.Value)
					}
					if _, dup := colors[role.Value]; dup {
						return fmt.Errorf("line %d: theme %q sets role %q twice", role.Line, key.Value, role.Value)
					}
					colors[role.Value] = color.Value
				}
				out = append(out, ThemeDefinition{kind: ThemeCustom, name: key.Value, colors: colors})
			}
		default:
			return fmt.Errorf("line %d: theme entry must be a name or a mapping", item.Line)
		}
	}
	*l = out
	return nil
}

// fileConfig mirrors the YAML source.
type fileConfig struct {
	Content  []string     `yaml:"content"`
	Safelist []string     `yaml:"safelist"`
	Theme    themeSection `yaml:"theme"`
	Plugins  []string     `yaml:"plugins"`
	Themes   themeList    `yaml:"themes"`
}

type themeSection struct {
	Extend map[string]map[string]TokenValue `yaml:"extend"`
}

// Params is the input to New for configurations built in code.
type Params struct {
	Content         []string
	Safelist        []string
	ThemeExtensions map[string]map[string]TokenValue
	Plugins         []string
	Themes          []ThemeDefinition
}

// Configuration is the validated, immutable build configuration.
// The zero value is empty and is never returned alongside a nil error.
type Configuration struct {
	contentPatterns []string
	safelist        []string
	themeExtensions map[string]map[string]TokenValue
	plugins         []string
	themes          []ThemeDefinition
}

// ContentPatterns returns the glob patterns in source order.
func (c Configuration) ContentPatterns() []string { return cloneStringSlice(c.contentPatterns) }

// Safelist returns the distinct safelisted class names in first-seen order.
func (c Configuration) Safelist() []string { return cloneStringSlice(c.safelist) }

// ThemeExtensions returns category → token → value.
func (c Configuration) ThemeExtensions() map[string]map[string]TokenValue {
	return cloneExtensions(c.themeExtensions)
}

// Plugins returns plugin identifiers in source order.
func (c Configuration) Plugins() []string { return cloneStringSlice(c.plugins) }

// Themes returns theme definitions in source order.
func (c Configuration) Themes() []ThemeDefinition {
	if c.themes == nil {
		return nil
	}
	out := make([]ThemeDefinition, len(c.themes))
	for i, t := range c.themes {
		out[i] = ThemeDefinition{kind: t.kind, name: t.name, colors: cloneStringMap(t.colors)}
	}
	return out
}

// IsZero reports whether c is the empty Configuration.
func (c Configuration) IsZero() bool {
	return len(c.contentPatterns) == 0
}
