// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across sidekick.
//
// String Utilities:
//   - TruncateRunes: UTF-8 safe string truncation with ellipsis
//   - PadWidth: display-width aware column padding
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
