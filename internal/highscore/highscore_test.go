package highscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("expected empty table, got %d entries", table.Len())
	}
}

func TestLoadStopsAtMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	content := "alice 50\nbob 70\nbroken line here\ncarol 90\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := table.Entries()
	expected := []Entry{{"bob", 70}, {"alice", 50}}
	if len(got) != len(expected) {
		t.Fatalf("expected %d entries, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("entry %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestLoadNonNumericScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("alice 50\nbob lots\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", table.Len())
	}
}

func TestRecord(t *testing.T) {
	table := &Table{}

	scores := []struct {
		name  string
		score int
		rank  int
	}{
		{"a", 30, 1},
		{"b", 50, 1},
		{"c", 10, 3},
		{"d", 40, 2},
		{"e", 20, 4},
		{"f", 5, 0},  // Table full, lower than everything
		{"g", 45, 2}, // Evicts the lowest
		{"h", 10, 0}, // Equal to the lowest is not enough
	}

	for _, s := range scores {
		if rank := table.Record(s.name, s.score); rank != s.rank {
			t.Errorf("Record(%s, %d) rank = %d, expected %d", s.name, s.score, rank, s.rank)
		}
	}

	got := table.Entries()
	expected := []Entry{{"b", 50}, {"g", 45}, {"d", 40}, {"a", 30}, {"e", 20}}
	if len(got) != Capacity {
		t.Fatalf("expected %d entries, got %d", Capacity, len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("entry %d = %v, expected %v", i, got[i], expected[i])
		}
	}
}

func TestRecordTieKeepsOlderFirst(t *testing.T) {
	table := &Table{}
	table.Record("first", 10)
	if rank := table.Record("second", 10); rank != 2 {
		t.Errorf("tied score rank = %d, expected 2", rank)
	}
	if table.Entries()[0].Name != "first" {
		t.Error("older entry should stay ahead on ties")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.txt")

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	table.Record("alice", 120)
	table.Record("bob smith", 80)
	if err := table.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "alice 120\nbob_smith 80\n" {
		t.Errorf("unexpected file content: %q", data)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Len() != 2 || reloaded.Entries()[1].Name != "bob_smith" {
		t.Errorf("reloaded table mismatch: %v", reloaded.Entries())
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"alice", "alice"},
		{"", DefaultName},
		{"   ", DefaultName},
		{"two words", "two_words"},
		{"averyveryverylongname", "averyveryverylo"},
		{" \tpadded\n", "padded"},
	}

	for _, tc := range tests {
		if got := SanitizeName(tc.in); got != tc.expected {
			t.Errorf("SanitizeName(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
