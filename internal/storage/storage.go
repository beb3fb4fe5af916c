// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/jeranaias/sidekick/internal/util"
)

// TimestampLayout is the on-disk timestamp format. It matches ISO-8601 with
// microsecond precision, so data files written by earlier versions of the
// assistant parse and display unchanged.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Timestamp returns the current time in the on-disk format.
func Timestamp() string {
	return time.Now().Format(TimestampLayout)
}

// DisplayTimestamp truncates a stored timestamp to second precision for
// display (the first 19 characters, "YYYY-MM-DDTHH:MM:SS").
func DisplayTimestamp(ts string) string {
	if len(ts) > 19 {
		return ts[:19]
	}
	return ts
}

// =============================================================================
// STORE
// =============================================================================

// Store reads and writes the assistant's JSON data files.
type Store struct {
	// BaseDir is the directory holding the data files.
	BaseDir string
}

// NewStore creates a store rooted at baseDir, creating the directory if
// needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &Store{BaseDir: baseDir}, nil
}

// NotesPath returns the path of the notes collection file.
func (s *Store) NotesPath() string { return filepath.Join(s.BaseDir, "notes.json") }

// TodosPath returns the path of the todos collection file.
func (s *Store) TodosPath() string { return filepath.Join(s.BaseDir, "todos.json") }

// HistoryPath returns the path of the history collection file.
func (s *Store) HistoryPath() string { return filepath.Join(s.BaseDir, "history.json") }

// loadJSON reads path into v. It reports false when the file is missing,
// unreadable, or malformed; the caller keeps its default in that case.
func (s *Store) loadJSON(path string, v interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

// saveJSON writes v to path as indented JSON. The write is atomic so a crash
// mid-save leaves the previous file intact.
func (s *Store) saveJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(path, data, 0644)
}
