// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli wires the command system to the terminal: the interactive
// REPL with line editing and input history, and one-shot execution for
// commands passed on the shell command line.
package cli
