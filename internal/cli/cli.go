// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/sidekick/internal/commands"
	"github.com/jeranaias/sidekick/internal/config"
	"github.com/jeranaias/sidekick/internal/storage"
	"github.com/jeranaias/sidekick/internal/ui/styles"
)

// Setup loads configuration and opens the data store, returning a ready
// dispatcher and the resolved data directory. A broken config file is
// reported as a warning and replaced with defaults.
func Setup() (*commands.Dispatcher, string, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styles.RenderWarning("Warning:"), err)
	}
	if cfg == nil {
		cfg = config.Default()
		cfg.ApplyEnvOverrides()
	}
	styles.SetColorMode(cfg.UI.Color)

	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, "", fmt.Errorf("resolving data directory: %w", err)
	}

	store, err := storage.NewStore(dataDir)
	if err != nil {
		return nil, "", fmt.Errorf("opening data store: %w", err)
	}

	history := storage.NewLog(store, cfg.History.MaxEntries)

	ctx := commands.NewContext(cfg, store, history)
	dispatcher := commands.NewDispatcher(commands.NewRegistry(), ctx)
	return dispatcher, dataDir, nil
}

// RunOnce executes a single command passed on the shell command line.
func RunOnce(dispatcher *commands.Dispatcher, name string, args []string) {
	dispatcher.Dispatch(name, args)
}
