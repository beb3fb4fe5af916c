// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"strconv"

	"github.com/jeranaias/sidekick/internal/convert"
)

// HandleConvert converts a value between units.
func HandleConvert(ctx *Context, args []string) {
	if len(args) < 3 {
		ctx.Println("Usage: convert <value> <from_unit> <to_unit>")
		ctx.Printf("Supported: %s\n", convert.Supported())
		return
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		ctx.Println("Invalid value. Please enter a number.")
		return
	}

	result, err := convert.Convert(value, args[1], args[2])
	if err != nil {
		if errors.Is(err, convert.ErrUnsupported) {
			ctx.Println("Conversion not supported")
			return
		}
		ctx.Warnf("Error: %v\n", err)
		return
	}
	ctx.Println(convert.Format(value, args[1], args[2], result))
}
