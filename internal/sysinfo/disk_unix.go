// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package sysinfo

import (
	"syscall"
)

const rootPath = "/"

// diskUsage returns filesystem usage for the given path on Unix systems.
func diskUsage(path string) (DiskUsage, error) {
	var stat syscall.Statfs_t

	if err := syscall.Statfs(path, &stat); err != nil {
		return DiskUsage{}, err
	}

	total := stat.Blocks * uint64(stat.Bsize)
	// Bavail counts blocks available to non-root users; used space is
	// measured against that so the percentage matches what df reports.
	free := stat.Bavail * uint64(stat.Bsize)
	return DiskUsage{
		Total: total,
		Used:  total - free,
		Free:  free,
	}, nil
}
