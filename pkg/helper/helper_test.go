package helper

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToMinutes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "-"},
		{-1, "-"},
		{92.608, "01:32.608"},
		{59.9996, "01:00.000"},
		{61.5, "01:01.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SecondsToMinutes(tt.in), "input %v", tt.in)
	}
}

func TestGetDriverCodeName(t *testing.T) {
	assert.Equal(t, "", GetDriverCodeName("  "))
	assert.Equal(t, "MVE", GetDriverCodeName("Max Verstappen"))
	assert.Equal(t, "ZHO", GetDriverCodeName("Zhou"))
	assert.Equal(t, "AAB", GetDriverCodeName("Ab"))
}

func TestGetDriverCodeNameUnicode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Nico Hülkenberg", "NHÜ"},
		{"Sergio Pérez", "SPÉ"},
		{"Émile", "ÉMI"},
		{"Ö", "ÖÖ"},
	}
	for _, tt := range tests {
		got := GetDriverCodeName(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.True(t, utf8.ValidString(got), "input %q", tt.in)
	}
}
