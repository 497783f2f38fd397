package arena

import (
	"fmt"

	"github.com/vovakirdan/monster-arena/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	BasicChar  = 'm'
	FastChar   = 'f'
	TankChar   = 'T'
	BonusChar  = '+'
)

// Render draws the arena into dst: a HUD line on top and the world scaled
// into a bordered playfield below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world
	if w == nil || dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(field)

	for _, b := range w.bonuses {
		if b.Active {
			x, y := g.project(field, b.Pos)
			dst.SetColored(x, y, BonusChar, core.ColorBrightGreen)
		}
	}

	for _, m := range w.monsters {
		if !m.Alive {
			continue
		}
		x, y := g.project(field, m.Pos)
		ch, color := monsterGlyph(m.Type)
		if m.Hit {
			color = core.ColorBrightRed
		}
		dst.SetColored(x, y, ch, color)
	}

	px, py := g.project(field, w.player.Pos)
	playerColor := core.ColorBrightWhite
	if g.hitFlash > 0 {
		playerColor = core.ColorRed
	}
	dst.SetColored(px, py, PlayerChar, playerColor)

	g.drawHUD(dst)

	if w.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if w.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  ENTER to return", w.score))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world

	hpColor := core.ColorGreen
	switch {
	case w.player.Health <= w.cfg.Player.MaxHealth/4:
		hpColor = core.ColorRed
	case w.player.Health <= w.cfg.Player.MaxHealth/2:
		hpColor = core.ColorYellow
	}
	hp := fmt.Sprintf(" HP: %d ", w.player.Health)
	dst.DrawTextColored(1, 0, hp, hpColor)

	score := fmt.Sprintf(" Score: %d ", w.score)
	dst.DrawTextColored(2+len(hp), 0, score, core.ColorBrightYellow)

	info := fmt.Sprintf(" %s | Spawn %.2fs | Monsters %d ", g.title, w.spawnInterval, w.LiveMonsters())
	dst.DrawTextColored(dst.Width()-len(info)-1, 0, info, core.ColorGray)
}

// project maps a world position to a cell inside the playfield border.
func (g *Game) project(field core.Rect, pos core.Vec2) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	wc := g.world.cfg.World

	fx := core.ClampF(pos.X/wc.Width, 0, 1)
	fy := core.ClampF(pos.Y/wc.Height, 0, 1)

	x := field.X + 1 + int(fx*float64(innerW-1)+0.5)
	y := field.Y + 1 + int(fy*float64(innerH-1)+0.5)
	return x, y
}

func monsterGlyph(t MonsterType) (rune, core.Color) {
	switch t {
	case MonsterFast:
		return FastChar, core.ColorYellow
	case MonsterTank:
		return TankChar, core.ColorMagenta
	default:
		return BasicChar, core.ColorGreen
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
