// Package session implements the outer state machine that moves a player
// between the main menu, the info screens and the two play modes.
package session

import (
	"errors"
	"fmt"
)

// State is a top-level screen of the application.
type State int

const (
	StateMainMenu State = iota
	StateControls
	StateLeaderboard
	StateSurvival
	StateArena
	StateGameOver
	StateExit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateControls:
		return "Controls"
	case StateLeaderboard:
		return "Leaderboard"
	case StateSurvival:
		return "Survival"
	case StateArena:
		return "Arena"
	case StateGameOver:
		return "GameOver"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsPlaying reports whether s is one of the play modes.
func (s State) IsPlaying() bool {
	return s == StateSurvival || s == StateArena
}

// ErrInvalidTransition is returned when an action is not allowed in the current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label  string
	Target State
}

// menuItems is the main menu in display order.
var menuItems = []MenuItem{
	{"Survival Mode", StateSurvival},
	{"Arena Mode", StateArena},
	{"Leaderboard", StateLeaderboard},
	{"Controls", StateControls},
	{"Exit", StateExit},
}

// transitions lists every allowed move.
var transitions = map[State][]State{
	StateMainMenu:    {StateSurvival, StateArena, StateLeaderboard, StateControls, StateExit},
	StateControls:    {StateMainMenu},
	StateLeaderboard: {StateMainMenu},
	StateSurvival:    {StateGameOver},
	StateArena:       {StateGameOver},
	StateGameOver:    {StateMainMenu},
}

// Machine tracks the current state and the main-menu cursor.
// The zero value is not usable; call New.
type Machine struct {
	state    State
	cursor   int
	lastMode State // Play mode that led to the current game over
}

// New returns a machine on the main menu with the cursor on the first item.
func New() *Machine {
	return &Machine{state: StateMainMenu, lastMode: StateSurvival}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Cursor returns the index of the highlighted main-menu item.
func (m *Machine) Cursor() int {
	return m.cursor
}

// Items returns the main menu entries.
func (m *Machine) Items() []MenuItem {
	return menuItems
}

// LastMode returns the play mode most recently entered.
func (m *Machine) LastMode() State {
	return m.lastMode
}

// CursorDown moves the menu cursor down, wrapping to the top.
func (m *Machine) CursorDown() {
	if m.state == StateMainMenu {
		m.cursor = (m.cursor + 1) % len(menuItems)
	}
}

// CursorUp moves the menu cursor up, wrapping to the bottom.
func (m *Machine) CursorUp() {
	if m.state == StateMainMenu {
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)
	}
}

// Select activates the highlighted menu item and returns the new state.
// Entering a play mode means the caller must reset the simulation.
func (m *Machine) Select() (State, error) {
	if m.state != StateMainMenu {
		return m.state, m.invalid("select")
	}
	err := m.transition(menuItems[m.cursor].Target)
	return m.state, err
}

// Start jumps from the main menu straight into a play mode.
func (m *Machine) Start(mode State) error {
	if !mode.IsPlaying() {
		return fmt.Errorf("%w: %s is not a play mode", ErrInvalidTransition, mode)
	}
	return m.transition(mode)
}

// Back leaves an info screen for the main menu.
func (m *Machine) Back() error {
	if m.state != StateControls && m.state != StateLeaderboard {
		return m.invalid("back")
	}
	return m.transition(StateMainMenu)
}

// EndGame moves from a play mode to the game over screen.
func (m *Machine) EndGame() error {
	return m.transition(StateGameOver)
}

// Confirm dismisses the game over screen.
func (m *Machine) Confirm() error {
	if m.state != StateGameOver {
		return m.invalid("confirm")
	}
	return m.transition(StateMainMenu)
}

func (m *Machine) transition(to State) error {
	for _, allowed := range transitions[m.state] {
		if allowed == to {
			m.state = to
			if to.IsPlaying() {
				m.lastMode = to
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, to)
}

func (m *Machine) invalid(action string) error {
	return fmt.Errorf("%w: %s in %s", ErrInvalidTransition, action, m.state)
}
