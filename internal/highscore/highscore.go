// Package highscore persists the local top-five table as a plain text file,
// one "name score" pair per line, best score first.
package highscore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Capacity is the number of entries kept in the table.
const Capacity = 5

// MaxNameLen is the longest name stored; longer names are truncated.
const MaxNameLen = 15

// DefaultName is used when a player has no usable name.
const DefaultName = "Player"

// DefaultFile is the table's file name when no path is configured.
const DefaultFile = "highscores.txt"

// Entry is one row of the table.
type Entry struct {
	Name  string
	Score int
}

// Table is an ordered highscore list backed by a file.
type Table struct {
	path    string
	entries []Entry
}

// Load reads the table at path. A missing file yields an empty table.
// Reading stops at the first malformed line; entries before it are kept.
func Load(path string) (*Table, error) {
	t := &Table{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read highscores: %w", err)
	}

	t.entries = parse(bytes.NewReader(data))
	t.sort()
	if len(t.entries) > Capacity {
		t.entries = t.entries[:Capacity]
	}
	return t, nil
}

func parse(r io.Reader) []Entry {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			break
		}
		score, err := strconv.Atoi(fields[1])
		if err != nil {
			break
		}
		entries = append(entries, Entry{Name: SanitizeName(fields[0]), Score: score})
	}
	return entries
}

// Path returns the file the table is saved to.
func (t *Table) Path() string {
	return t.path
}

// Entries returns a copy of the entries, best first.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether score would enter the table.
func (t *Table) Qualifies(score int) bool {
	if len(t.entries) < Capacity {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Record inserts a score and keeps the best Capacity entries.
// It returns the 1-based rank, or 0 if the score did not make the table.
func (t *Table) Record(name string, score int) int {
	if !t.Qualifies(score) {
		return 0
	}

	e := Entry{Name: SanitizeName(name), Score: score}

	// Ties keep the older entry ahead
	pos := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Score < score
	})
	t.entries = append(t.entries, Entry{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = e

	if len(t.entries) > Capacity {
		t.entries = t.entries[:Capacity]
	}
	return pos + 1
}

// Save writes the table to its path, creating parent directories as needed.
func (t *Table) Save() error {
	if dir := filepath.Dir(t.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create highscore directory: %w", err)
		}
	}

	var buf bytes.Buffer
	for _, e := range t.entries {
		fmt.Fprintf(&buf, "%s %d\n", e.Name, e.Score)
	}

	if err := os.WriteFile(t.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write highscores: %w", err)
	}
	return nil
}

func (t *Table) sort() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})
}

// SanitizeName turns arbitrary input into a single whitespace-free token of
// at most MaxNameLen runes, so the file stays parseable.
func SanitizeName(name string) string {
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		return DefaultName
	}
	if r := []rune(name); len(r) > MaxNameLen {
		name = string(r[:MaxNameLen])
	}
	return name
}
