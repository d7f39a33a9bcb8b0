package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// KeyMap holds the bindings of normal mode, built from the configured key mappings
type KeyMap struct {
	AddTask       key.Binding
	EditTask      key.Binding
	ViewTask      key.Binding
	DeleteTask    key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding

	CreateColumn    key.Binding
	RenameColumn    key.Binding
	DeleteColumn    key.Binding
	MoveColumnLeft  key.Binding
	MoveColumnRight key.Binding

	CreateBoard key.Binding
	RenameBoard key.Binding
	DeleteBoard key.Binding
	PrevBoard   key.Binding
	NextBoard   key.Binding

	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	ShowHelp key.Binding
	Quit     key.Binding

	Confirm key.Binding
	Cancel  key.Binding
}

// keyName converts a configured key to the name bubbletea reports for it
func keyName(k string) string {
	switch k {
	case " ":
		return "space"
	case "\t":
		return "tab"
	}
	return k
}

func binding(help string, keys ...string) key.Binding {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		names = append(names, keyName(k))
	}
	helpKey := ""
	if len(names) > 0 {
		helpKey = names[0]
	}
	return key.NewBinding(key.WithKeys(names...), key.WithHelp(helpKey, help))
}

// NewKeyMap builds the key bindings. Arrow keys always navigate, enter always
// edits and ctrl+c always quits, whatever the configured mappings say.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		AddTask:       binding("add task", km.AddTask),
		EditTask:      binding("edit task", km.EditTask, "enter"),
		ViewTask:      binding("view task", km.ViewTask),
		DeleteTask:    binding("delete task", km.DeleteTask),
		MoveTaskLeft:  binding("move task to previous column", km.MoveTaskLeft, "shift+left"),
		MoveTaskRight: binding("move task to next column", km.MoveTaskRight, "shift+right"),
		MoveTaskUp:    binding("move task up", km.MoveTaskUp, "shift+up"),
		MoveTaskDown:  binding("move task down", km.MoveTaskDown, "shift+down"),

		CreateColumn:    binding("add column", km.CreateColumn),
		RenameColumn:    binding("edit column", km.RenameColumn),
		DeleteColumn:    binding("delete column", km.DeleteColumn),
		MoveColumnLeft:  binding("move column left", km.MoveColumnLeft),
		MoveColumnRight: binding("move column right", km.MoveColumnRight),

		CreateBoard: binding("new board", km.CreateBoard),
		RenameBoard: binding("rename board", km.RenameBoard),
		DeleteBoard: binding("delete board", km.DeleteBoard),
		PrevBoard:   binding("previous board", km.PrevBoard),
		NextBoard:   binding("next board", km.NextBoard),

		PrevColumn: binding("previous column", km.PrevColumn, "left"),
		NextColumn: binding("next column", km.NextColumn, "right"),
		PrevTask:   binding("previous task", km.PrevTask, "up"),
		NextTask:   binding("next task", km.NextTask, "down"),

		ShowHelp: binding("toggle help", km.ShowHelp),
		Quit:     binding("quit", km.Quit, "ctrl+c"),

		Confirm: binding("confirm", "y", "Y"),
		Cancel:  binding("cancel", "n", "N", "esc"),
	}
}

// HelpSections lists the bindings for the help screen
func (k KeyMap) HelpSections() []components.HelpSection {
	section := func(title string, bindings ...key.Binding) components.HelpSection {
		s := components.HelpSection{Title: title}
		for _, b := range bindings {
			s.Entries = append(s.Entries, components.HelpEntry{
				Keys:        strings.Join(b.Keys(), "/"),
				Description: b.Help().Desc,
			})
		}
		return s
	}

	return []components.HelpSection{
		section("Navigation", k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask),
		section("Tasks", k.AddTask, k.EditTask, k.ViewTask, k.DeleteTask,
			k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown),
		section("Columns", k.CreateColumn, k.RenameColumn, k.DeleteColumn,
			k.MoveColumnLeft, k.MoveColumnRight),
		section("Boards", k.CreateBoard, k.RenameBoard, k.DeleteBoard, k.PrevBoard, k.NextBoard),
		section("Other", k.ShowHelp, k.Quit),
	}
}
