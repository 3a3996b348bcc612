package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// defaultGameKeys binds terminal key names to game actions.
var defaultGameKeys = map[string]core.Action{
	"left":  core.ActionLeft,
	"a":     core.ActionLeft,
	"right": core.ActionRight,
	"d":     core.ActionRight,
	"up":    core.ActionUp,
	"w":     core.ActionUp,
	"down":  core.ActionDown,
	"s":     core.ActionDown,
	"x":     core.ActionRotate,
	"z":     core.ActionRotate,
	"p":     core.ActionPause,
	"esc":   core.ActionPause,
	"r":     core.ActionRestart,
	"q":     core.ActionQuit,
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	game map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: defaultGameKeys}
}

// MapKey returns the game action bound to the key, or ActionNone.
// ctrl+c is not a game action; the program handles it before the game sees it.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	if a, ok := km.game[msg.String()]; ok {
		return a
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
