// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements sidekick's command system: the registry of
// built-in commands, the quote-aware line parser, and the dispatcher that
// routes parsed input to handlers.
//
// Handlers receive a *Context carrying the application state (config,
// store, loaded collections, command history) and an output writer, so the
// same handlers serve both the interactive loop and one-shot invocation.
package commands
