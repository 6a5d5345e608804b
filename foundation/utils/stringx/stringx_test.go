// File: stringx_test.go
// Title: String Utilities Tests
// Description: Tests for the string helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test suite
// - 2026-10-17 v0.2.0: Reduced with the package

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   \t\n", true},
		{" ", true},
		{" dia ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := IsNotBlank(tt.input); got == tt.want {
			t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
		}
	}
}

func TestFromBlankDefault(t *testing.T) {
	if got := FromBlankDefault("  ", "N/A"); got != "N/A" {
		t.Errorf("FromBlankDefault(blank) = %q", got)
	}
	if got := FromBlankDefault("Lisboa", "N/A"); got != "Lisboa" {
		t.Errorf("FromBlankDefault(Lisboa) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short enough", "Museu", 10, "Museu"},
		{"ascii", "Passeio pelo Tejo", 10, "Passeio..."},
		{"multibyte", "atividade até às três", 8, "ativi..."},
		{"ellipsis longer than max", "abcdef", 2, ".."},
		{"zero", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, "..."); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
