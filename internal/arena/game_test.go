package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/monster-arena/internal/config"
	"github.com/vovakirdan/monster-arena/internal/core"
	"github.com/vovakirdan/monster-arena/internal/registry"
)

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeSurvival, ModeArena} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}

	g, err := registry.Create(ModeArena)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.Title() != "Arena Mode" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Arena Mode")
	}
}

func TestArenaModeKeepsSpawnIntervalFixed(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Monsters.ContactDamage = 0

	survival := New(ModeSurvival)
	survival.ResetWith(cfg, 1)

	arenaCfg := cfg
	arenaCfg.Difficulty.Enabled = false
	arena := New(ModeArena)
	arena.ResetWith(arenaCfg, 1)

	for i := 0; i < 600; i++ {
		survival.Step(testDT, core.NewInputFrame())
		arena.Step(testDT, core.NewInputFrame())
	}

	if got := arena.World().SpawnInterval(); got != cfg.Difficulty.InitialInterval {
		t.Errorf("arena spawn interval = %f, expected %f", got, cfg.Difficulty.InitialInterval)
	}
	if got := survival.World().SpawnInterval(); got >= cfg.Difficulty.InitialInterval {
		t.Errorf("survival spawn interval should shrink, got %f", got)
	}
}

func TestResetDisablesDifficultyForArena(t *testing.T) {
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New(ModeArena)
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.World().Config().Difficulty.Enabled {
		t.Error("arena mode should run without spawn progression")
	}
	if g.State().Health != g.World().Config().Player.MaxHealth {
		t.Error("reset game should start at full health")
	}
}

func TestHitFlash(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	cfg.Monsters.InitialAttackCooldown = 0
	g := New(ModeSurvival)
	g.ResetWith(cfg, 1)
	w := g.World()
	w.addMonster(Monster{Pos: w.player.Pos, Health: 25, Alive: true})

	g.Step(testDT, core.NewInputFrame())
	if g.hitFlash != hitFlashDuration {
		t.Fatalf("hitFlash = %f, expected %f", g.hitFlash, hitFlashDuration)
	}

	for i := 0; i < 20; i++ {
		g.Step(testDT, core.NewInputFrame())
	}
	if g.hitFlash != 0 {
		t.Errorf("hitFlash should fade out, got %f", g.hitFlash)
	}
}

func TestRender(t *testing.T) {
	cfg := config.DefaultArenaConfig()
	g := New(ModeSurvival)
	g.ResetWith(cfg, 1)
	g.World().spawnBonus(core.V(0, 0))
	g.World().addMonster(Monster{Pos: core.V(800, 600), Health: 40, Alive: true, Type: MonsterTank})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"HP: 100", "Score: 0", "Survival Mode", "@", "T", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}

	// Bonus at the world origin lands in the top-left inner cell
	if got := screen.Get(1, 2); got != BonusChar {
		t.Errorf("cell (1,2) = %q, expected %q", got, BonusChar)
	}
	if got := screen.Get(78, 22); got != TankChar {
		t.Errorf("cell (78,22) = %q, expected %q", got, TankChar)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := New(ModeSurvival)
	g.ResetWith(config.DefaultArenaConfig(), 1)
	screen := core.NewScreen(80, 24)

	g.Step(testDT, core.FrameOf(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	g.Step(testDT, core.FrameOf(core.ActionPause))
	g.World().player.Health = 0
	g.Step(testDT, core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}
