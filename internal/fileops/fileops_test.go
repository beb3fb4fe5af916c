// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile creates a file with n bytes of content under dir, making parent
// directories as needed.
func writeFile(t *testing.T, dir, rel string, n int) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zeta.txt", 1)
	writeFile(t, dir, "alpha.txt", 1)
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = e.DisplayName()
	}
	want := []string{"alpha.txt", "sub/", "zeta.txt"}
	if len(got) != len(want) {
		t.Fatalf("List returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListMissing(t *testing.T) {
	if _, err := List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestSizeFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.bin", 1234)

	n, err := Size(filepath.Join(dir, "data.bin"))
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if n != 1234 {
		t.Errorf("Size = %d, want 1234", n)
	}
}

func TestSizeDirectoryRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 100)
	writeFile(t, dir, "sub/b.txt", 200)
	writeFile(t, dir, "sub/deep/c.txt", 300)

	n, err := Size(dir)
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if n != 600 {
		t.Errorf("Size = %d, want 600", n)
	}
}

func TestSearch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", 1)
	writeFile(t, dir, "sub/more-notes.md", 1)
	writeFile(t, dir, "sub/unrelated.go", 1)

	matches, err := Search(dir, "notes")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Search returned %v, want 2 matches", matches)
	}
	if matches[0] != "notes.txt" || matches[1] != filepath.ToSlash(filepath.Join("sub", "more-notes.md")) {
		t.Errorf("Search returned %v", matches)
	}
}

func TestSearchNoMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 1)

	matches, err := Search(dir, "zzz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search returned %v, want none", matches)
	}
}

func TestSearchEscapesMeta(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "literal.txt", 1)

	// A glob metacharacter in the pattern must not match everything.
	matches, err := Search(dir, "*")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Search(%q) returned %v, want none", "*", matches)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
