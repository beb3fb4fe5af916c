// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/jeranaias/sidekick/internal/sysinfo"
)

// HandleSystem prints a snapshot of the host environment.
func HandleSystem(ctx *Context, args []string) {
	info := sysinfo.Collect()

	ctx.Printf("Operating System: %s\n", info.OS)
	ctx.Printf("Architecture: %s\n", info.Arch)
	ctx.Printf("Go Version: %s\n", info.GoVersion)
	ctx.Printf("Current Directory: %s\n", info.WorkingDir)
	ctx.Printf("Home Directory: %s\n", info.HomeDir)

	if info.Disk != nil {
		ctx.Printf("Disk Usage: %s\n", info.Disk)
	} else {
		ctx.Println("Disk usage information not available")
	}
}
