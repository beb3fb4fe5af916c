// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strings"

	"github.com/jeranaias/sidekick/internal/calc"
)

// HandleCalc evaluates an arithmetic expression.
func HandleCalc(ctx *Context, args []string) {
	if len(args) == 0 {
		ctx.Println("Usage: calc <expression>")
		ctx.Println("Example: calc 2 + 3 * 4")
		return
	}

	expression := strings.Join(args, " ")
	if !calc.Allowed(expression) {
		ctx.Println("Error: Only basic math operations allowed")
		return
	}

	result, err := calc.Evaluate(expression)
	if err != nil {
		ctx.Printf("Error calculating: %v\n", err)
		return
	}
	ctx.Printf("%s = %s\n", expression, calc.FormatResult(result))
}
