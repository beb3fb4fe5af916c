// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"

	"github.com/jeranaias/sidekick/internal/storage"
	"github.com/jeranaias/sidekick/internal/ui/styles"
	"github.com/jeranaias/sidekick/internal/util"
)

// HandleHistory shows the most recent commands, oldest first.
func HandleHistory(ctx *Context, args []string) {
	if ctx.History == nil || ctx.History.Len() == 0 {
		ctx.Println("No command history")
		return
	}

	limit := 10
	if ctx.Config != nil && ctx.Config.History.ListLimit > 0 {
		limit = ctx.Config.History.ListLimit
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			ctx.Println("Usage: history [count]")
			return
		}
		limit = n
	}

	ctx.Println(styles.Heading.Render("Recent commands:"))
	for i, entry := range ctx.History.Recent(limit) {
		ts := styles.Muted.Render(storage.DisplayTimestamp(entry.Timestamp))
		// Very long command lines are trimmed so the timestamp stays visible.
		ctx.Printf("%2d. %s (%s)\n", i+1, util.TruncateRunes(entry.Command, 80), ts)
	}
}
