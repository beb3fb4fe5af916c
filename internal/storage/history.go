// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// HistoryEntry records one dispatched command.
type HistoryEntry struct {
	Command   string `json:"command"`
	Timestamp string `json:"timestamp"`
}

// Log is the bounded command history. Appends past the cap drop the oldest
// entries, and every append is flushed to history.json.
type Log struct {
	store   *Store
	max     int
	entries []HistoryEntry
}

// NewLog loads the persisted history from the store. An existing file longer
// than max is trimmed to its most recent max entries on load.
func NewLog(store *Store, max int) *Log {
	l := &Log{store: store, max: max}
	store.loadJSON(store.HistoryPath(), &l.entries)
	if l.entries == nil {
		l.entries = []HistoryEntry{}
	}
	l.truncate()
	return l
}

// Record appends a command with the current timestamp, enforces the cap, and
// persists the log. The returned error is a save failure; the entry is kept
// in memory regardless.
func (l *Log) Record(command string) error {
	l.entries = append(l.entries, HistoryEntry{
		Command:   command,
		Timestamp: Timestamp(),
	})
	l.truncate()
	return l.store.saveJSON(l.store.HistoryPath(), l.entries)
}

// Recent returns up to the most recent n entries in chronological order.
func (l *Log) Recent(n int) []HistoryEntry {
	if n <= 0 || len(l.entries) == 0 {
		return nil
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]HistoryEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len returns the number of entries currently held.
func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) truncate() {
	if l.max > 0 && len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}
