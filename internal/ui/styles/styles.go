// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for sidekick's terminal output.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLORS
// =============================================================================

// Cyan - Brand color, prompts, command names
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, completed todos
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// =============================================================================
// STYLES
// =============================================================================

// Heading styles section headers in listings and help output.
var Heading = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

// Muted styles timestamps and secondary detail.
var Muted = lipgloss.NewStyle().Foreground(TextMuted)

// Done styles the completed-todo marker.
var Done = lipgloss.NewStyle().Foreground(Emerald)

var (
	successStyle = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(Amber).Bold(true)
)

// RenderSuccess renders a success message in high contrast green.
func RenderSuccess(message string) string {
	return successStyle.Render(message)
}

// RenderError renders an error message in high contrast red.
func RenderError(message string) string {
	return errorStyle.Render(message)
}

// RenderWarning renders a warning message in high contrast amber.
func RenderWarning(message string) string {
	return warningStyle.Render(message)
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

// SetColorMode applies the configured color mode: "always" forces ANSI
// output, "never" disables it, anything else leaves terminal detection
// alone.
func SetColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ClearScreen erases the terminal and homes the cursor.
func ClearScreen() {
	termenv.NewOutput(os.Stdout).ClearScreen()
}
