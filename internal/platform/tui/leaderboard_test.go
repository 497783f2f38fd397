package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestLeaderboardTabs(t *testing.T) {
	recorder, _, _ := newTestRecorder(t)
	for _, run := range []struct {
		mode, player string
		score        int
	}{
		{"survival", "alice", 50},
		{"survival", "bob", 90},
		{"arena", "carol", 30},
	} {
		if _, err := recorder.Record(run.mode, run.player, run.score); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	m := NewLeaderboardModel(recorder, 100, 30)
	if m.Tab() != topTabTitle {
		t.Fatalf("first tab = %q, expected %q", m.Tab(), topTabTitle)
	}
	if rows := m.Rows(); len(rows) != 3 || rows[0][1] != "bob" || rows[0][2] != "90" {
		t.Errorf("top table rows = %v", rows)
	}

	// Modes are listed by ID: arena, then survival
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab() != "Arena Mode" {
		t.Fatalf("second tab = %q", m.Tab())
	}
	if rows := m.Rows(); len(rows) != 1 || rows[0][1] != "carol" {
		t.Errorf("arena rows = %v", rows)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if rows := m.Rows(); len(rows) != 2 || rows[0][1] != "bob" || rows[1][1] != "alice" {
		t.Errorf("survival rows = %v", rows)
	}

	// Wraps back to the first tab
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Tab() != topTabTitle {
		t.Errorf("tab after wrap = %q", m.Tab())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Tab() != "Survival Mode" {
		t.Errorf("previous tab = %q", m.Tab())
	}
}

func TestLeaderboardWithoutHistory(t *testing.T) {
	m := NewLeaderboardModel(NewScoreRecorder(t.TempDir()+"/hs.txt", nil), 80, 24)
	if len(m.tabs) != 1 {
		t.Errorf("expected only the top-five tab, got %d tabs", len(m.tabs))
	}
	if len(m.Rows()) != 0 {
		t.Errorf("expected no rows, got %v", m.Rows())
	}
}
