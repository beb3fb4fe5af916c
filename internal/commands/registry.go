// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler executes a command with its parsed arguments.
type Handler interface {
	Run(ctx *Context, args []string)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx *Context, args []string)

// Run calls the underlying function.
func (f HandlerFunc) Run(ctx *Context, args []string) {
	f(ctx, args)
}

// Command represents a command that can be executed.
type Command struct {
	// Name is the primary command name (e.g., "note")
	Name string

	// Aliases are alternative names (e.g., "quit" for "exit")
	Aliases []string

	// Description is shown in help output
	Description string

	// Usage shows argument syntax (e.g., "note add <title> <content>")
	Usage string

	// Handler executes the command
	Handler Handler

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]*Command
	order    []string
}

// NewRegistry creates a new command registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd *Command) {
	if _, exists := r.commands[cmd.Name]; !exists {
		r.order = append(r.order, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	for _, alias := range cmd.Aliases {
		r.aliases[alias] = cmd
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) *Command {
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	if cmd, ok := r.aliases[name]; ok {
		return cmd
	}
	return nil
}

// All returns all registered commands in registration order.
func (r *Registry) All() []*Command {
	cmds := make([]*Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Names returns every command name and alias, sorted. Used for input
// completion.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		names = append(names, name)
	}
	for alias := range r.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns visible commands grouped by category, preserving
// registration order within each group.
func (r *Registry) ByCategory() map[string][]*Command {
	result := make(map[string][]*Command)
	for _, cmd := range r.All() {
		if cmd.Hidden {
			continue
		}
		category := cmd.Category
		if category == "" {
			category = "General"
		}
		result[category] = append(result[category], cmd)
	}
	return result
}

// =============================================================================
// BUILT-IN COMMANDS
// =============================================================================

func (r *Registry) registerBuiltins() {
	// General commands
	r.Register(&Command{
		Name:        "help",
		Description: "Show this help message",
		Category:    "General",
		Handler:     HandlerFunc(HandleHelp),
	})

	r.Register(&Command{
		Name:        "time",
		Description: "Show current time",
		Category:    "General",
		Handler:     HandlerFunc(HandleTime),
	})

	r.Register(&Command{
		Name:        "date",
		Description: "Show current date",
		Category:    "General",
		Handler:     HandlerFunc(HandleDate),
	})

	r.Register(&Command{
		Name:        "clear",
		Description: "Clear screen",
		Category:    "General",
		Handler:     HandlerFunc(HandleClear),
	})

	r.Register(&Command{
		Name:        "exit",
		Aliases:     []string{"quit"},
		Description: "Exit the assistant",
		Category:    "General",
		Handler:     HandlerFunc(HandleExit),
	})

	// Productivity commands
	r.Register(&Command{
		Name:        "note",
		Description: "Note management (add, list, delete, search)",
		Usage:       "note <add|list|delete|search> [arguments]",
		Category:    "Productivity",
		Handler:     HandlerFunc(HandleNote),
	})

	r.Register(&Command{
		Name:        "todo",
		Description: "Todo list management (add, list, done, delete)",
		Usage:       "todo <add|list|done|delete> [arguments]",
		Category:    "Productivity",
		Handler:     HandlerFunc(HandleTodo),
	})

	r.Register(&Command{
		Name:        "calc",
		Description: "Calculator (basic math operations)",
		Usage:       "calc <expression>",
		Category:    "Productivity",
		Handler:     HandlerFunc(HandleCalc),
	})

	// System commands
	r.Register(&Command{
		Name:        "system",
		Description: "Show system information",
		Category:    "System",
		Handler:     HandlerFunc(HandleSystem),
	})

	r.Register(&Command{
		Name:        "files",
		Description: "File operations (ls, find, size)",
		Usage:       "files <ls|find|size> [path]",
		Category:    "System",
		Handler:     HandlerFunc(HandleFiles),
	})

	r.Register(&Command{
		Name:        "search",
		Description: "Search for files",
		Usage:       "search <filename_pattern> [directory]",
		Category:    "System",
		Handler:     HandlerFunc(HandleSearch),
	})

	// Utility commands
	r.Register(&Command{
		Name:        "convert",
		Description: "Unit conversions (length, weight, temperature)",
		Usage:       "convert <value> <from_unit> <to_unit>",
		Category:    "Utilities",
		Handler:     HandlerFunc(HandleConvert),
	})

	r.Register(&Command{
		Name:        "weather",
		Description: "Simple weather info (placeholder)",
		Category:    "Utilities",
		Handler:     HandlerFunc(HandleWeather),
	})

	r.Register(&Command{
		Name:        "history",
		Description: "Show command history",
		Usage:       "history [count]",
		Category:    "Utilities",
		Handler:     HandlerFunc(HandleHistory),
	})
}
