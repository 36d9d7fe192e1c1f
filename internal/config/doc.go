// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config loads, validates and resolves the utility-CSS build
// configuration.
//
// A Configuration is built once, either with Load/LoadFile from YAML or
// with New from Go code, and never changes afterwards: accessors return
// copies. A Resolver expands the content patterns against the filesystem
// and MergeSafelist folds the safelist into a set of scanned class names.
//
// Example source:
//
//	content:
//	  - "./templates/**/*.{html,js}"
//	  - "!./templates/vendor/**"
//	safelist: [card, card-body]
//	theme:
//	  extend:
//	    fontFamily:
//	      sans: [Helvetica, Arial, sans-serif]
//	plugins: ["@tailwindcss/forms", daisyui]
//	themes:
//	  - WMATA:
//	      primary: "#009CDE"
//	  - retro
package config
