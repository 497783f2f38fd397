package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-arena/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and autorepeat but never releases, so the window
// must outlast the gap before autorepeat kicks in.
const DefaultHoldWindow = 250 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a hard quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q":
		return core.ActionQuit, false
	case "w", "up":
		return core.ActionMoveUp, false
	case "s", "down":
		return core.ActionMoveDown, false
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case " ", "space":
		return core.ActionAttack, false
	case "p":
		return core.ActionPause, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// isHoldable reports whether an action is sampled as a held key rather
// than delivered once.
func isHoldable(a core.Action) bool {
	switch a {
	case core.ActionMoveUp, core.ActionMoveDown, core.ActionMoveLeft, core.ActionMoveRight, core.ActionAttack:
		return true
	}
	return false
}

// HoldTracker turns a stream of key presses into per-frame input.
// Movement and attack stay active for the hold window after their last
// press; everything else fires on exactly one frame.
type HoldTracker struct {
	window  time.Duration
	last    map[core.Action]time.Time
	pending core.InputFrame
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:  window,
		last:    make(map[core.Action]time.Time),
		pending: core.NewInputFrame(),
	}
}

// Press records a key press at the given time.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if isHoldable(a) {
		h.last[a] = now
		return
	}
	h.pending.Set(a)
}

// Frame returns the input for a frame sampled at now and consumes
// one-shot actions.
func (h *HoldTracker) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, at := range h.last {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	return frame
}

// Reset forgets all presses.
func (h *HoldTracker) Reset() {
	clear(h.last)
	h.pending.Clear()
}
