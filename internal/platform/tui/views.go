package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/monster-arena/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// controlsHelp lists the play controls shown on the Controls screen.
var controlsHelp = [][2]string{
	{"W A S D / Arrows", "Move"},
	{"Space", "Attack"},
	{"P", "Pause"},
	{"Enter", "Confirm"},
	{"Esc", "Back"},
	{"Ctrl+S", "Screenshot"},
	{"Ctrl+C", "Quit"},
}

// menuView renders the main menu.
func menuView(items []session.MenuItem, cursor, width, height int) string {
	var b strings.Builder

	top := max((height-len(items)-8)/2, 1)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(titleStyle.Render(centerText("M O N S T E R   A R E N A", width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Survive the monsters", width)))
	b.WriteString("\n\n")

	for i, item := range items {
		line := "  " + item.Label + "  "
		if i == cursor {
			line = "> " + item.Label + " <"
			b.WriteString(selectedStyle.Render(centerText(line, width)))
		} else {
			b.WriteString(centerText(line, width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Q: Quit", width)))
	b.WriteString("\n")

	return b.String()
}

// controlsView renders the Controls screen.
func controlsView(width, height int) string {
	var b strings.Builder

	top := max((height-len(controlsHelp)-6)/2, 1)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(titleStyle.Render(centerText("CONTROLS", width)))
	b.WriteString("\n\n")

	for _, c := range controlsHelp {
		line := fmt.Sprintf("%-18s %s", c[0], c[1])
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Esc: Back", width)))
	b.WriteString("\n")

	return b.String()
}

// gameOverView renders the summary shown after a run ends.
func gameOverView(title string, score, rank int, player string, recordErr error, width, height int) string {
	var b strings.Builder

	top := max((height-10)/2, 1)
	b.WriteString(strings.Repeat("\n", top))

	b.WriteString(titleStyle.Render(centerText("GAME OVER", width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText(title, width)))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render(centerText(fmt.Sprintf("%s scored %d", player, score), width)))
	b.WriteString("\n")

	switch {
	case recordErr != nil:
		b.WriteString(dimStyle.Render(centerText("Score not saved: "+recordErr.Error(), width)))
	case rank > 0:
		b.WriteString(selectedStyle.Render(centerText(fmt.Sprintf("New highscore! Rank #%d", rank), width)))
	}
	b.WriteString("\n\n")

	b.WriteString(dimStyle.Render(centerText("Press ENTER to return to the menu", width)))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
