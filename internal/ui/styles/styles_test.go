// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRenderersKeepMessageText(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
	}{
		{"success", RenderSuccess},
		{"error", RenderError},
		{"warning", RenderWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("hello")
			if !strings.Contains(out, "hello") {
				t.Errorf("rendered output %q lost the message", out)
			}
		})
	}
}

func TestSetColorModeNever(t *testing.T) {
	orig := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(orig)

	SetColorMode("never")
	if out := RenderError("plain"); out != "plain" {
		t.Errorf("expected unstyled output with color disabled, got %q", out)
	}
}

func TestSetColorModeAlways(t *testing.T) {
	orig := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(orig)

	SetColorMode("always")
	if lipgloss.ColorProfile() != termenv.ANSI256 {
		t.Error("expected ANSI256 profile after forcing color")
	}
}
