// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package theme

// Roles lists the semantic color roles understood by the component plugin.
var Roles = []string{
	"primary", "primary-content",
	"secondary", "secondary-content",
	"accent", "accent-content",
	"neutral", "neutral-content",
	"base-100", "base-200", "base-300", "base-content",
	"info", "info-content",
	"success", "success-content",
	"warning", "warning-content",
	"error", "error-content",
}

// BuiltinNames lists the predefined themes that a named reference may select.
var BuiltinNames = []string{
	"light", "dark", "cupcake", "bumblebee", "emerald", "corporate",
	"synthwave", "retro", "cyberpunk", "valentine", "halloween", "garden",
	"forest", "aqua", "lofi", "pastel", "fantasy", "wireframe", "black",
	"luxury", "dracula", "cmyk", "autumn", "business", "acid", "lemonade",
	"night", "coffee", "winter", "dim", "nord", "sunset",
}

var (
	roleSet    = toSet(Roles)
	builtinSet = toSet(BuiltinNames)
)

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

// IsKnownRole reports whether role is one of Roles.
func IsKnownRole(role string) bool {
	_, ok := roleSet[role]
	return ok
}

// IsBuiltin reports whether name is one of BuiltinNames.
func IsBuiltin(name string) bool {
	_, ok := builtinSet[name]
	return ok
}
