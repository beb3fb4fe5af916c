// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"testing"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "note list", []string{"note", "list"}},
		{"double quotes", `note add Title "hello world"`, []string{"note", "add", "Title", "hello world"}},
		{"single quotes", `note add 'my title' content`, []string{"note", "add", "my title", "content"}},
		{"empty", "", nil},
		{"only spaces", "    ", nil},
		{"multiple spaces", "a    b", []string{"a", "b"}},
		{"escaped quote", `say "she said \"hi\""`, []string{"say", `she said "hi"`}},
		{"escaped backslash", `path "a\\b"`, []string{"path", `a\b`}},
		{"adjacent quoted", `a"b c"d`, []string{"ab cd"}},
		{"unclosed quote", `note add "dangling`, []string{"note", "add", "dangling"}},
		{"unicode", `note add café "crème brûlée"`, []string{"note", "add", "café", "crème brûlée"}},
		// These arguments encode with 0x85 / 0xA0 continuation bytes, which
		// read as NEL / NBSP if the input is classified byte-wise.
		{"multibyte with 0x85", "note add Åland", []string{"note", "add", "Åland"}},
		{"multibyte with 0xa0", "note add Voilà", []string{"note", "add", "Voilà"}},
		{"cjk", "note add 你好 世界", []string{"note", "add", "你好", "世界"}},
		{"nbsp splits tokens", "a b", []string{"a", "b"}},
		{"tabs", "a\tb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCommandLine(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommandLine(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p := NewParser(NewRegistry())

	t.Run("known command", func(t *testing.T) {
		r := p.Parse("Note add Title content")
		if r.Empty {
			t.Fatal("result unexpectedly empty")
		}
		if r.Name != "note" {
			t.Errorf("Name = %q, want %q", r.Name, "note")
		}
		if r.Command == nil || r.Command.Name != "note" {
			t.Error("command not resolved")
		}
		if !reflect.DeepEqual(r.Args, []string{"add", "Title", "content"}) {
			t.Errorf("Args = %#v", r.Args)
		}
	})

	t.Run("arguments keep case", func(t *testing.T) {
		r := p.Parse("note add MixedCase Content")
		if r.Args[1] != "MixedCase" {
			t.Errorf("arg case changed: %q", r.Args[1])
		}
	})

	t.Run("alias", func(t *testing.T) {
		r := p.Parse("quit")
		if r.Command == nil || r.Command.Name != "exit" {
			t.Error("alias did not resolve")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		r := p.Parse("bogus arg")
		if r.Command != nil {
			t.Error("unknown command resolved")
		}
		if r.Name != "bogus" {
			t.Errorf("Name = %q", r.Name)
		}
	})

	t.Run("blank", func(t *testing.T) {
		r := p.Parse("   ")
		if !r.Empty {
			t.Error("blank input not flagged empty")
		}
	})

	t.Run("adjacent quoted split", func(t *testing.T) {
		// Quotes glue text to the surrounding token, shell-style.
		r := p.Parse(`note add Title "hello world"`)
		if len(r.Args) != 3 || r.Args[2] != "hello world" {
			t.Errorf("Args = %#v", r.Args)
		}
	})
}
