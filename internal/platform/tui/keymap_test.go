package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/monster-arena/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{runeKey("w"), core.ActionMoveUp, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp, false},
		{runeKey("a"), core.ActionMoveLeft, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft, false},
		{runeKey("s"), core.ActionMoveDown, false},
		{runeKey("d"), core.ActionMoveRight, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionAttack, false},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestHoldTrackerHoldsMovement(t *testing.T) {
	h := NewHoldTracker(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionMoveRight, t0)

	if !h.Frame(t0.Add(16 * time.Millisecond)).Has(core.ActionMoveRight) {
		t.Error("key should be held right after the press")
	}
	if !h.Frame(t0.Add(200 * time.Millisecond)).Has(core.ActionMoveRight) {
		t.Error("key should be held until the window ends")
	}
	if h.Frame(t0.Add(201 * time.Millisecond)).Has(core.ActionMoveRight) {
		t.Error("key should be released after the window")
	}
}

func TestHoldTrackerAutorepeatExtends(t *testing.T) {
	h := NewHoldTracker(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	for i := 0; i < 10; i++ {
		h.Press(core.ActionAttack, t0.Add(time.Duration(i)*50*time.Millisecond))
	}

	if !h.Frame(t0.Add(520 * time.Millisecond)).Has(core.ActionAttack) {
		t.Error("repeated presses should keep the key held")
	}
}

func TestHoldTrackerOneShot(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionPause, t0)
	h.Press(core.ActionMoveUp, t0)

	first := h.Frame(t0)
	if !first.Has(core.ActionPause) || !first.Has(core.ActionMoveUp) {
		t.Fatal("first frame should carry both actions")
	}

	second := h.Frame(t0.Add(10 * time.Millisecond))
	if second.Has(core.ActionPause) {
		t.Error("pause must fire on one frame only")
	}
	if !second.Has(core.ActionMoveUp) {
		t.Error("movement should still be held")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(time.Second)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionMoveLeft, t0)
	h.Press(core.ActionConfirm, t0)
	h.Reset()

	if f := h.Frame(t0); f.Has(core.ActionMoveLeft) || f.Has(core.ActionConfirm) {
		t.Error("Reset should forget all presses")
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(50)
	t0 := time.Unix(1000, 0)

	if dt := c.delta(t0); dt != 0.02 {
		t.Errorf("first delta = %f, expected 0.02", dt)
	}
	if dt := c.delta(t0.Add(30 * time.Millisecond)); dt < 0.0299 || dt > 0.0301 {
		t.Errorf("delta = %f, expected 0.03", dt)
	}
	if dt := c.delta(t0.Add(5 * time.Second)); dt != maxFrameDelta {
		t.Errorf("long gap delta = %f, expected clamp %f", dt, maxFrameDelta)
	}
	if dt := c.delta(t0); dt != 0 {
		t.Errorf("backwards clock delta = %f, expected 0", dt)
	}

	c.reset()
	if dt := c.delta(t0.Add(time.Hour)); dt != 0.02 {
		t.Errorf("delta after reset = %f, expected 0.02", dt)
	}
}
