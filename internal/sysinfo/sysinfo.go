// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sysinfo gathers the host details shown by the system command:
// platform, runtime version, working and home directories, and root
// filesystem usage.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/dustin/go-humanize"
)

// DiskUsage describes usage of a single filesystem.
type DiskUsage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// Percent returns used space as a percentage of total, or 0 for an empty
// filesystem.
func (d DiskUsage) Percent() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Used) / float64(d.Total) * 100
}

// String renders usage as "used / total (pct%)".
func (d DiskUsage) String() string {
	return fmt.Sprintf("%s / %s (%.1f%%)",
		humanize.IBytes(d.Used), humanize.IBytes(d.Total), d.Percent())
}

// Info is a snapshot of the host environment.
type Info struct {
	OS         string
	Arch       string
	GoVersion  string
	WorkingDir string
	HomeDir    string
	// Disk is nil when usage could not be determined.
	Disk *DiskUsage
}

// Collect gathers an Info snapshot. Directory and disk lookups that fail
// leave their fields empty rather than failing the whole snapshot.
func Collect() Info {
	info := Info{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		GoVersion: runtime.Version(),
	}
	if wd, err := os.Getwd(); err == nil {
		info.WorkingDir = wd
	}
	if home, err := os.UserHomeDir(); err == nil {
		info.HomeDir = home
	}
	if du, err := diskUsage(rootPath); err == nil {
		info.Disk = &du
	}
	return info
}
