package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// KeyMapper translates Bubble Tea key strings to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings: arrows,
// WASD-style letters and vim keys all steer.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}
	km.bindGame(core.ActionQuit, "ctrl+c", "q")
	km.bindGame(core.ActionLeft, "left", "a", "h")
	km.bindGame(core.ActionRight, "right", "d", "l")
	km.bindGame(core.ActionConfirm, "enter")
	km.bindGame(core.ActionBack, "esc", "b")
	km.bindGame(core.ActionPause, "p", " ")
	km.bindGame(core.ActionRestart, "r")

	km.bindMenu(MenuActionQuit, "ctrl+c", "q")
	km.bindMenu(MenuActionUp, "up", "w", "k")
	km.bindMenu(MenuActionDown, "down", "s", "j")
	km.bindMenu(MenuActionSelect, "enter", " ")
	km.bindMenu(MenuActionBack, "esc", "b")
	km.bindMenu(MenuActionScoreboard, "tab")
	return km
}

func (km *KeyMapper) bindGame(a core.Action, keys ...string) {
	for _, k := range keys {
		km.game[k] = a
	}
}

func (km *KeyMapper) bindMenu(a MenuAction, keys ...string) {
	for _, k := range keys {
		km.menu[k] = a
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.game[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
