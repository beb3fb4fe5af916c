// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

// Todo is a single todo item. Its user-facing identity is its 1-based
// position in the list, not a stored ID.
type Todo struct {
	Task    string `json:"task"`
	Done    bool   `json:"done"`
	Created string `json:"created"`
}

// NewTodo creates an open todo with the current timestamp.
func NewTodo(task string) Todo {
	return Todo{Task: task, Created: Timestamp()}
}

// LoadTodos loads the todo list, returning an empty list when the file is
// missing or corrupt.
func (s *Store) LoadTodos() []Todo {
	var todos []Todo
	s.loadJSON(s.TodosPath(), &todos)
	if todos == nil {
		todos = []Todo{}
	}
	return todos
}

// SaveTodos persists the todo list.
func (s *Store) SaveTodos(todos []Todo) error {
	return s.saveJSON(s.TodosPath(), todos)
}
