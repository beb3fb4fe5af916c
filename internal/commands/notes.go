// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/jeranaias/sidekick/internal/storage"
	"github.com/jeranaias/sidekick/internal/ui/styles"
)

// HandleNote implements the note command: add, list, delete, search.
func HandleNote(ctx *Context, args []string) {
	if len(args) == 0 {
		ctx.Println("Usage: note <add|list|delete|search> [arguments]")
		return
	}

	switch strings.ToLower(args[0]) {
	case "add":
		noteAdd(ctx, args[1:])
	case "list":
		noteList(ctx)
	case "delete":
		noteDelete(ctx, args[1:])
	case "search":
		noteSearch(ctx, args[1:])
	default:
		ctx.Println("Usage: note <add|list|delete|search> [arguments]")
	}
}

func noteAdd(ctx *Context, args []string) {
	if len(args) < 2 {
		ctx.Println("Usage: note add <title> <content>")
		return
	}
	title := args[0]
	content := strings.Join(args[1:], " ")

	ctx.Notes.Set(title, content)
	if err := ctx.Store.SaveNotes(ctx.Notes); err != nil {
		ctx.Warnf("Error saving data: %v\n", err)
		return
	}
	ctx.Println(styles.RenderSuccess(fmt.Sprintf("Note '%s' added successfully", title)))
}

func noteList(ctx *Context) {
	if len(ctx.Notes) == 0 {
		ctx.Println("No notes found")
		return
	}
	for _, title := range ctx.Notes.Titles() {
		note := ctx.Notes[title]
		printNote(ctx, title, note)
	}
}

func noteDelete(ctx *Context, args []string) {
	if len(args) < 1 {
		ctx.Println("Usage: note delete <title>")
		return
	}
	title := args[0]
	if !ctx.Notes.Delete(title) {
		ctx.Printf("Note '%s' not found\n", title)
		return
	}
	if err := ctx.Store.SaveNotes(ctx.Notes); err != nil {
		ctx.Warnf("Error saving data: %v\n", err)
		return
	}
	ctx.Printf("Note '%s' deleted\n", title)
}

func noteSearch(ctx *Context, args []string) {
	if len(args) < 1 {
		ctx.Println("Usage: note search <keyword>")
		return
	}
	titles := ctx.Notes.Search(args[0])
	if len(titles) == 0 {
		ctx.Println("No notes found matching the keyword")
		return
	}
	for _, title := range titles {
		note := ctx.Notes[title]
		ctx.Printf("\n%s:\n", title)
		ctx.Printf("  %s\n", note.Content)
	}
}

func printNote(ctx *Context, title string, note storage.Note) {
	ctx.Printf("\n%s:\n", title)
	ctx.Printf("  %s\n", note.Content)
	ctx.Printf("  Created: %s\n", storage.DisplayTimestamp(note.Timestamp))
}
