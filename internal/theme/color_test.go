// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantHex   string
		wantAlpha float64
		wantNamed bool
		wantErr   bool
	}{
		{"six digit hex", "#009CDE", "#009cde", 1, false, false},
		{"three digit hex", "#fff", "#ffffff", 1, false, false},
		{"eight digit hex", "#00000080", "#000000", float64(0x80) / 255, false, false},
		{"four digit hex", "#f00f", "#ff0000", 1, false, false},
		{"named color", "cornflowerblue", "#6495ed", 1, true, false},
		{"named color mixed case", "Red", "#ff0000", 1, true, false},
		{"rebeccapurple", "RebeccaPurple", "#663399", 1, true, false},
		{"transparent", "transparent", "#000000", 0, true, false},
		{"currentColor keyword", "currentColor", "#000000", 1, true, false},
		{"surrounding space", "  #BF0D3E ", "#bf0d3e", 1, false, false},
		{"empty", "", "", 0, false, true},
		{"five digits", "#12345", "", 0, false, true},
		{"non hex digit", "#12345g", "", 0, false, true},
		{"unknown name", "wmata-blue", "", 0, false, true},
		{"function syntax", "rgb(0,0,0)", "", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidColor), "error should wrap ErrInvalidColor: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHex, c.Hex())
			assert.InDelta(t, tt.wantAlpha, c.Alpha(), 0.001)
			assert.Equal(t, tt.wantNamed, c.IsNamed())
		})
	}
}

func TestColor_StringKeepsSpelling(t *testing.T) {
	c, err := ParseColor("#ED8B00")
	require.NoError(t, err)
	assert.Equal(t, "#ED8B00", c.String())
}

func TestRolesAndBuiltins(t *testing.T) {
	assert.True(t, IsKnownRole("base-100"))
	assert.True(t, IsKnownRole("primary"))
	assert.False(t, IsKnownRole("brand"))

	assert.True(t, IsBuiltin("retro"))
	assert.False(t, IsBuiltin("WMATA"))
}
