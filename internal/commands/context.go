// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/sidekick/internal/config"
	"github.com/jeranaias/sidekick/internal/storage"
)

// =============================================================================
// CONTEXT TYPE
// =============================================================================

// Context provides access to application state for command handlers.
// It follows the dependency injection pattern, allowing handlers to reach
// services without direct coupling to the application structure.
type Context struct {
	// Config provides access to application configuration
	Config *config.Config

	// Store handles data file persistence
	Store *storage.Store

	// Notes is the loaded note collection. Handlers mutate it in place
	// and persist through Store.
	Notes storage.Notes

	// Todos is the loaded todo list
	Todos []storage.Todo

	// History records executed commands
	History *storage.Log

	// Out receives handler output
	Out io.Writer

	// Errw receives warnings
	Errw io.Writer

	registry *Registry
	quit     bool
}

// NewContext creates a command context with the given dependencies, loading
// the note and todo collections from the store.
func NewContext(cfg *config.Config, store *storage.Store, history *storage.Log) *Context {
	return &Context{
		Config:  cfg,
		Store:   store,
		Notes:   store.LoadNotes(),
		Todos:   store.LoadTodos(),
		History: history,
		Out:     os.Stdout,
		Errw:    os.Stderr,
	}
}

// Printf writes formatted output to the context's output writer.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line to the context's output writer.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Warnf writes a formatted warning to the context's error writer.
func (c *Context) Warnf(format string, args ...any) {
	fmt.Fprintf(c.Errw, format, args...)
}

// RequestQuit asks the surrounding loop to stop after the current command.
func (c *Context) RequestQuit() {
	c.quit = true
}

// Quitting reports whether a handler has requested exit.
func (c *Context) Quitting() bool {
	return c.quit
}
