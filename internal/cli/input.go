// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/sidekick/internal/commands"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// Input provides line editing, input history, and command-name completion
// for the interactive loop.
type Input struct {
	line        *liner.State
	historyFile string
}

// NewInput creates an Input with history persisted under dataDir and
// completion over the registry's command names.
func NewInput(dataDir string, registry *commands.Registry) *Input {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	names := registry.Names()
	line.SetCompleter(func(prefix string) []string {
		var matches []string
		lower := strings.ToLower(prefix)
		for _, name := range names {
			if strings.HasPrefix(name, lower) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	in := &Input{
		line:        line,
		historyFile: filepath.Join(dataDir, "input_history"),
	}
	in.loadHistory()
	return in
}

func (in *Input) loadHistory() {
	if f, err := os.Open(in.historyFile); err == nil {
		in.line.ReadHistory(f)
		f.Close()
	}
}

// ReadLine reads one line with the given prompt. Non-blank lines are added
// to the in-memory history.
func (in *Input) ReadLine(prompt string) (string, error) {
	input, err := in.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		in.line.AppendHistory(input)
	}
	return input, nil
}

// saveHistory persists input history with owner-only permissions.
func (in *Input) saveHistory() {
	f, err := os.OpenFile(in.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	in.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (in *Input) Close() {
	in.saveHistory()
	in.line.Close()
}
