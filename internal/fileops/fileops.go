// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fileops provides the filesystem queries behind the files and
// search commands: directory listings, file/directory sizes, and recursive
// name search.
package fileops

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// DisplayName returns the listing name with a trailing slash for directories.
func (e Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// List returns the entries of dir sorted by name.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Size returns the size of path in bytes. For a regular file this is its
// length; for a directory it is the sum of all regular files beneath it.
// Unreadable subtrees are skipped rather than failing the whole walk.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}

	var total int64
	err = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return nil
			}
			total += fi.Size()
		}
		return nil
	})
	return total, err
}

// Search walks dir recursively and returns paths (relative to dir) whose
// base name contains pattern as a substring, sorted. The pattern is a plain
// substring, not a glob; metacharacters in it are escaped and matched
// literally.
func Search(dir, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*"+escapeMeta(pattern)+"*")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// escapeMeta backslash-escapes glob metacharacters so a user-supplied
// substring cannot change the match semantics.
func escapeMeta(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			out = append(out, '\\', r)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// FormatBytes renders a byte count in human-readable binary units.
func FormatBytes(n int64) string {
	return humanize.IBytes(uint64(n))
}
