// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the assistant's collections as JSON files.
//
// Three collections live under the data directory:
//   - notes.json    mapping title -> Note
//   - todos.json    ordered sequence of Todo
//   - history.json  bounded sequence of HistoryEntry
//
// Each collection is loaded once at startup and flushed after every
// mutation. Loads never fail: a missing or corrupt file yields the empty
// default so the assistant always starts. Saves are atomic (write-temp,
// fsync, rename) but a save error is the caller's to report; it never
// aborts the process.
package storage
