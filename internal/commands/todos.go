// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"strconv"
	"strings"

	"github.com/jeranaias/sidekick/internal/storage"
	"github.com/jeranaias/sidekick/internal/ui/styles"
)

// HandleTodo implements the todo command: add, list, done, delete.
func HandleTodo(ctx *Context, args []string) {
	if len(args) == 0 {
		ctx.Println("Usage: todo <add|list|done|delete> [arguments]")
		return
	}

	switch strings.ToLower(args[0]) {
	case "add":
		todoAdd(ctx, args[1:])
	case "list":
		todoList(ctx)
	case "done":
		todoDone(ctx, args[1:])
	case "delete":
		todoDelete(ctx, args[1:])
	default:
		ctx.Println("Usage: todo <add|list|done|delete> [arguments]")
	}
}

func todoAdd(ctx *Context, args []string) {
	if len(args) < 1 {
		ctx.Println("Usage: todo add <task description>")
		return
	}
	task := strings.Join(args, " ")
	ctx.Todos = append(ctx.Todos, storage.NewTodo(task))
	if err := ctx.Store.SaveTodos(ctx.Todos); err != nil {
		ctx.Warnf("Error saving data: %v\n", err)
		return
	}
	ctx.Println(styles.RenderSuccess("Todo added: " + task))
}

func todoList(ctx *Context) {
	if len(ctx.Todos) == 0 {
		ctx.Println("No todos found")
		return
	}
	for i, todo := range ctx.Todos {
		status := "○"
		if todo.Done {
			status = styles.Done.Render("✓")
		}
		ctx.Printf("%d. %s %s\n", i+1, status, todo.Task)
	}
}

// parseTaskNumber converts a 1-based task number argument to a slice index.
// The second return distinguishes "not a number" from "out of range".
func parseTaskNumber(ctx *Context, arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		ctx.Println("Task number must be a number")
		return 0, false
	}
	idx := n - 1
	if idx < 0 || idx >= len(ctx.Todos) {
		ctx.Println("Invalid task number")
		return 0, false
	}
	return idx, true
}

func todoDone(ctx *Context, args []string) {
	if len(args) < 1 {
		ctx.Println("Usage: todo done <task_number>")
		return
	}
	idx, ok := parseTaskNumber(ctx, args[0])
	if !ok {
		return
	}
	ctx.Todos[idx].Done = true
	if err := ctx.Store.SaveTodos(ctx.Todos); err != nil {
		ctx.Warnf("Error saving data: %v\n", err)
		return
	}
	ctx.Println(styles.RenderSuccess("Todo marked as done: " + ctx.Todos[idx].Task))
}

func todoDelete(ctx *Context, args []string) {
	if len(args) < 1 {
		ctx.Println("Usage: todo delete <task_number>")
		return
	}
	idx, ok := parseTaskNumber(ctx, args[0])
	if !ok {
		return
	}
	deleted := ctx.Todos[idx]
	ctx.Todos = append(ctx.Todos[:idx], ctx.Todos[idx+1:]...)
	if err := ctx.Store.SaveTodos(ctx.Todos); err != nil {
		ctx.Warnf("Error saving data: %v\n", err)
		return
	}
	ctx.Printf("Todo deleted: %s\n", deleted.Task)
}
