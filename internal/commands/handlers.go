// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/jeranaias/sidekick/internal/ui/styles"
	"github.com/jeranaias/sidekick/internal/util"
)

// =============================================================================
// GENERAL COMMANDS
// =============================================================================

// helpCategories fixes the display order of help sections.
var helpCategories = []string{"General", "Productivity", "System", "Utilities"}

// HandleHelp prints the command reference. When writing to a terminal the
// markdown is rendered with glamour; otherwise plain text is emitted.
func HandleHelp(ctx *Context, args []string) {
	md := helpMarkdown(ctx)

	if isTerminal(ctx) {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(ctx.Out, out)
				return
			}
		}
	}

	fmt.Fprint(ctx.Out, plainHelp(md))
}

// helpMarkdown builds the help text from the registry so new commands show
// up without touching this function.
func helpMarkdown(ctx *Context) string {
	var b strings.Builder
	b.WriteString("# sidekick - Available Commands\n\n")

	registry := ctx.registry
	if registry == nil {
		registry = NewRegistry()
	}
	byCategory := registry.ByCategory()
	for _, category := range helpCategories {
		cmds := byCategory[category]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString("## " + category + "\n\n")
		for _, cmd := range cmds {
			name := cmd.Name
			if len(cmd.Aliases) > 0 {
				name += "/" + strings.Join(cmd.Aliases, "/")
			}
			fmt.Fprintf(&b, "- `%s` %s\n", util.PadWidth(name, 13), cmd.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Usage Examples\n\n")
	b.WriteString("```\n")
	b.WriteString("note add \"Meeting notes\" \"Discussed project timeline\"\n")
	b.WriteString("todo add \"Buy groceries\"\n")
	b.WriteString("calc 15 * 8 + 32\n")
	b.WriteString("files ls /home/user\n")
	b.WriteString("convert 100 celsius fahrenheit\n")
	b.WriteString("```\n")
	return b.String()
}

// plainHelp strips the light markdown used in helpMarkdown for non-terminal
// output.
func plainHelp(md string) string {
	var b strings.Builder
	for _, line := range strings.Split(md, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			b.WriteString(strings.TrimPrefix(line, "# ") + "\n")
		case strings.HasPrefix(line, "## "):
			b.WriteString(strings.TrimPrefix(line, "## ") + "\n")
		case line == "```":
			// fence lines dropped
		case strings.HasPrefix(line, "- "):
			b.WriteString("  " + strings.ReplaceAll(strings.TrimPrefix(line, "- "), "`", "") + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// isTerminal reports whether the context's output writer is a TTY.
func isTerminal(ctx *Context) bool {
	f, ok := ctx.Out.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// HandleTime prints the current wall-clock time.
func HandleTime(ctx *Context, args []string) {
	ctx.Printf("Current time: %s\n", time.Now().Format("15:04:05"))
}

// HandleDate prints the current date with the weekday.
func HandleDate(ctx *Context, args []string) {
	ctx.Printf("Current date: %s\n", time.Now().Format("2006-01-02 (Monday)"))
}

// HandleClear clears the terminal.
func HandleClear(ctx *Context, args []string) {
	styles.ClearScreen()
}

// HandleExit says goodbye and asks the loop to stop.
func HandleExit(ctx *Context, args []string) {
	ctx.Println("Goodbye!")
	ctx.RequestQuit()
}

// =============================================================================
// UTILITY COMMANDS
// =============================================================================

// HandleWeather is a placeholder; sidekick stays offline.
func HandleWeather(ctx *Context, args []string) {
	ctx.Println("Weather service not implemented. Use 'curl wttr.in' for weather info.")
}
