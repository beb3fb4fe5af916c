// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jeranaias/sidekick/internal/fileops"
)

// counts formats match totals with locale-aware digit grouping.
var counts = message.NewPrinter(language.English)

// HandleFiles implements the files command: ls, find, size.
func HandleFiles(ctx *Context, args []string) {
	if len(args) == 0 {
		ctx.Println("Usage: files <ls|find|size> [path]")
		return
	}

	switch strings.ToLower(args[0]) {
	case "ls":
		filesLs(ctx, args[1:])
	case "find":
		// find is a convenience alias for the search command
		HandleSearch(ctx, args[1:])
	case "size":
		filesSize(ctx, args[1:])
	default:
		ctx.Println("Usage: files <ls|find|size> [path]")
	}
}

// argPath returns the first argument as a path, defaulting to the current
// directory.
func argPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func filesLs(ctx *Context, args []string) {
	path := argPath(args)

	info, err := os.Stat(path)
	if err != nil {
		ctx.Printf("Path not found: %s\n", path)
		return
	}
	if !info.IsDir() {
		ctx.Printf("%s is not a directory\n", path)
		return
	}

	entries, err := fileops.List(path)
	if err != nil {
		if os.IsPermission(err) {
			ctx.Printf("Permission denied: %s\n", path)
			return
		}
		ctx.Warnf("Error: %v\n", err)
		return
	}
	for _, entry := range entries {
		ctx.Println(entry.DisplayName())
	}
}

func filesSize(ctx *Context, args []string) {
	path := argPath(args)

	info, err := os.Stat(path)
	if err != nil {
		ctx.Printf("Path not found: %s\n", path)
		return
	}

	size, err := fileops.Size(path)
	if err != nil {
		if os.IsPermission(err) {
			ctx.Printf("Permission denied: %s\n", path)
			return
		}
		ctx.Warnf("Error: %v\n", err)
		return
	}

	name := filepath.Base(path)
	if info.IsDir() {
		name += "/"
	}
	ctx.Printf("%s: %s\n", name, fileops.FormatBytes(size))
}

// HandleSearch implements the search command: recursive filename search.
func HandleSearch(ctx *Context, args []string) {
	if len(args) == 0 {
		ctx.Println("Usage: search <filename_pattern> [directory]")
		return
	}

	pattern := args[0]
	dir := "."
	if len(args) > 1 {
		dir = args[1]
	}

	matches, err := fileops.Search(dir, pattern)
	if err != nil {
		if os.IsPermission(err) {
			ctx.Printf("Permission denied: %s\n", dir)
			return
		}
		ctx.Warnf("Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		ctx.Println("No matches found")
		return
	}

	limit := 20
	if ctx.Config != nil && ctx.Config.Search.MaxResults > 0 {
		limit = ctx.Config.Search.MaxResults
	}

	counts.Fprintf(ctx.Out, "Found %d matches:\n", len(matches))
	for i, match := range matches {
		if i >= limit {
			counts.Fprintf(ctx.Out, "  ... and %d more\n", len(matches)-limit)
			break
		}
		ctx.Printf("  %s\n", filepath.Join(dir, match))
	}
}
