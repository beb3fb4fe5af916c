// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"addition", "2 + 3", 5},
		{"subtraction", "10 - 4", 6},
		{"multiplication", "6 * 7", 42},
		{"division", "10 / 4", 2.5},
		{"precedence", "2 + 3 * 4", 14},
		{"parens override precedence", "(2 + 3) * 4", 20},
		{"nested parens", "((1 + 2) * (3 + 4))", 21},
		{"unary minus", "-5 + 3", -2},
		{"unary minus factor", "2 * -3", -6},
		{"unary plus", "+7", 7},
		{"decimal", "1.5 + 2.25", 3.75},
		{"leading dot", ".5 * 2", 1},
		{"no spaces", "2+3*4", 14},
		{"extra spaces", "  2   +   2  ", 4},
		{"left assoc subtraction", "10 - 3 - 2", 5},
		{"left assoc division", "100 / 10 / 2", 5},
		{"single number", "42", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr)
			if err != nil {
				t.Fatalf("Evaluate(%q) error: %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"letters rejected", "DROP TABLE notes"},
		{"function call rejected", "abs(-1)"},
		{"power operator rejected", "2 ** 3"},
		{"division by zero", "1 / 0"},
		{"division by zero nested", "5 / (3 - 3)"},
		{"unbalanced open paren", "(2 + 3"},
		{"unbalanced close paren", "2 + 3)"},
		{"trailing operator", "2 +"},
		{"double dot", "1.2.3"},
		{"empty", ""},
		{"only spaces", "   "},
		{"bare operator", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Evaluate(tt.expr); err == nil {
				t.Errorf("Evaluate(%q) expected error, got none", tt.expr)
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	if !Allowed("2 + (3 * 4.5)") {
		t.Error("expected arithmetic expression to be allowed")
	}
	if Allowed("2 + x") {
		t.Error("expected letters to be rejected")
	}
	if Allowed("2; rm -rf /") {
		t.Error("expected semicolon to be rejected")
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{14, "14"},
		{2.5, "2.5"},
		{-6, "-6"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatResult(tt.in); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
