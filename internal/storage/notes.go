// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Note is a titled note. The title is the map key in notes.json, so it does
// not repeat inside the record.
type Note struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Notes is the in-memory notes collection, keyed by title. Titles are unique;
// re-adding an existing title overwrites its content (last write wins).
type Notes map[string]Note

// LoadNotes loads the notes collection, returning an empty collection when
// the file is missing or corrupt.
func (s *Store) LoadNotes() Notes {
	notes := Notes{}
	s.loadJSON(s.NotesPath(), &notes)
	if notes == nil {
		notes = Notes{}
	}
	return notes
}

// SaveNotes persists the notes collection.
func (s *Store) SaveNotes(notes Notes) error {
	return s.saveJSON(s.NotesPath(), notes)
}

// Set adds or overwrites the note for title and returns the stored record.
// Overwriting keeps the note's ID stable across edits of the same title.
func (n Notes) Set(title, content string) Note {
	note := Note{
		ID:        uuid.NewString(),
		Content:   content,
		Timestamp: Timestamp(),
	}
	if old, ok := n[title]; ok && old.ID != "" {
		note.ID = old.ID
	}
	n[title] = note
	return note
}

// Delete removes the note for title, reporting whether it existed.
func (n Notes) Delete(title string) bool {
	if _, ok := n[title]; !ok {
		return false
	}
	delete(n, title)
	return true
}

// Titles returns all note titles in sorted order.
func (n Notes) Titles() []string {
	titles := make([]string, 0, len(n))
	for title := range n {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles
}

// Search returns the sorted titles of notes whose title or content contains
// keyword, case-insensitively.
func (n Notes) Search(keyword string) []string {
	keyword = strings.ToLower(keyword)
	var matches []string
	for title, note := range n {
		if strings.Contains(strings.ToLower(title), keyword) ||
			strings.Contains(strings.ToLower(note.Content), keyword) {
			matches = append(matches, title)
		}
	}
	sort.Strings(matches)
	return matches
}
