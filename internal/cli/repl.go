// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/sidekick/internal/commands"
	"github.com/jeranaias/sidekick/internal/ui/styles"
)

var (
	promptStyle  = lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	welcomeStyle = lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(styles.TextMuted)
)

// RunREPL runs the interactive loop until the user exits. dataDir is where
// the input history file lives.
func RunREPL(dispatcher *commands.Dispatcher, dataDir string) error {
	ctx := dispatcher.Context()

	fmt.Fprintln(ctx.Out, welcomeStyle.Render("Welcome to sidekick!"))
	fmt.Fprintln(ctx.Out, infoStyle.Render("Type 'help' for available commands or 'exit' to quit."))

	input := NewInput(dataDir, dispatcher.Registry())
	defer input.Close()

	// SIGTERM should still restore the terminal and flush input history.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		if _, ok := <-sigChan; ok {
			input.Close()
			os.Exit(0)
		}
	}()

	prompt := "> "
	if ctx.Config != nil && ctx.Config.Prompt != "" {
		prompt = ctx.Config.Prompt
	}

	for {
		line, err := input.ReadLine(promptStyle.Render(prompt))
		if err != nil {
			// Ctrl+C or Ctrl+D ends the session.
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(ctx.Out)
				fmt.Fprintln(ctx.Out, "Exiting...")
				return nil
			}
			return err
		}

		dispatcher.DispatchLine(line)

		if ctx.Quitting() {
			return nil
		}
	}
}
