// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/jeranaias/sidekick/internal/ui/styles"
)

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher routes parsed input lines to command handlers and records
// executed commands in history.
type Dispatcher struct {
	registry *Registry
	parser   *Parser
	ctx      *Context
}

// NewDispatcher creates a dispatcher over the given registry and context.
func NewDispatcher(registry *Registry, ctx *Context) *Dispatcher {
	ctx.registry = registry
	return &Dispatcher{
		registry: registry,
		parser:   NewParser(registry),
		ctx:      ctx,
	}
}

// Context returns the dispatcher's command context.
func (d *Dispatcher) Context() *Context {
	return d.ctx
}

// Registry returns the dispatcher's command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// DispatchLine parses and executes one line of input. Blank lines are
// ignored and leave no history entry.
func (d *Dispatcher) DispatchLine(line string) {
	result := d.parser.Parse(line)
	if result.Empty {
		return
	}
	d.dispatch(result)
}

// Dispatch executes a pre-split command. Used by one-shot invocation where
// the shell has already tokenized the arguments.
func (d *Dispatcher) Dispatch(name string, args []string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	d.dispatch(ParseResult{
		Name:    name,
		Args:    args,
		Command: d.registry.Get(name),
	})
}

// dispatch records the command in history and runs its handler. Unknown
// commands are recorded too, so history reflects everything the user typed.
func (d *Dispatcher) dispatch(result ParseResult) {
	entry := result.Name
	if len(result.Args) > 0 {
		entry += " " + strings.Join(result.Args, " ")
	}
	if d.ctx.History != nil {
		if err := d.ctx.History.Record(entry); err != nil {
			d.ctx.Warnf("Warning: could not save history: %v\n", err)
		}
	}

	if result.Command == nil {
		d.ctx.Println(styles.RenderError("Unknown command: " + result.Name))
		d.ctx.Println("Type 'help' for available commands")
		return
	}

	result.Command.Handler.Run(d.ctx, result.Args)
}
