// Package arena implements the monster-arena simulation: a player dodging
// and fighting monsters that spawn ever faster, collecting health bonuses.
package arena

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/monster-arena/internal/config"
	"github.com/vovakirdan/monster-arena/internal/core"
)

// World holds the complete state of one arena session.
// It is owned by a single goroutine; Advance is not safe for concurrent use.
type World struct {
	cfg        config.ArenaConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player   Player
	monsters []Monster // Fixed capacity, dead entries stay in place
	bonuses  []Bonus   // Fixed capacity, expired entries stay in place
	score    int

	attackCooldown        float64
	monsterAttackCooldown float64
	spawnTimer            float64
	spawnInterval         float64
	difficultyTimer       float64
	bonusTimer            float64

	paused   bool
	gameOver bool
	events   []core.Event
}

// NewWorld creates a world ready to play.
func NewWorld(cfg config.ArenaConfig, seed int64) *World {
	w := &World{}
	w.Reset(cfg, seed)
	return w
}

// Reset clears all entities, counters and timers and reseeds the RNG.
func (w *World) Reset(cfg config.ArenaConfig, seed int64) {
	w.cfg = cfg
	w.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	w.rng = rand.New(rand.NewSource(seed))

	w.player = Player{
		Pos:    core.V(cfg.World.Width/2, cfg.World.Height/2),
		Health: cfg.Player.MaxHealth,
		Alive:  true,
	}
	w.monsters = make([]Monster, 0, cfg.Monsters.Max)
	w.bonuses = make([]Bonus, 0, cfg.Bonuses.Max)
	w.score = 0

	w.attackCooldown = 0
	w.monsterAttackCooldown = cfg.Monsters.InitialAttackCooldown
	w.spawnTimer = 0
	w.difficultyTimer = 0
	w.spawnInterval = w.difficulty.SpawnInterval(0)
	w.bonusTimer = 0

	w.paused = false
	w.gameOver = false
	w.events = nil
}

// Advance moves the simulation forward by dt seconds.
func (w *World) Advance(dt float64, in core.InputFrame) core.StepResult {
	w.events = nil

	if w.gameOver {
		return w.result()
	}

	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		return w.result()
	}

	// Death is detected on the tick after health reaches zero.
	if w.player.Health <= 0 {
		w.player.Alive = false
		w.gameOver = true
		w.emit(core.EventGameOver, w.player.Pos)
		return w.result()
	}

	dt = math.Max(0, dt)

	w.movePlayer(dt, in)
	w.tickTimers(dt)
	w.spawn()
	w.updateBonuses(dt)
	w.updateMonsters(dt, in)

	return w.result()
}

// movePlayer applies held direction keys. Axes are independent, so
// diagonal movement is faster than axis-aligned movement.
func (w *World) movePlayer(dt float64, in core.InputFrame) {
	step := w.cfg.Player.Speed * dt
	if in.Has(core.ActionMoveUp) {
		w.player.Pos.Y -= step
	}
	if in.Has(core.ActionMoveDown) {
		w.player.Pos.Y += step
	}
	if in.Has(core.ActionMoveLeft) {
		w.player.Pos.X -= step
	}
	if in.Has(core.ActionMoveRight) {
		w.player.Pos.X += step
	}

	if w.cfg.Player.Confine {
		w.player.Pos.X = core.ClampF(w.player.Pos.X, 0, w.cfg.World.Width)
		w.player.Pos.Y = core.ClampF(w.player.Pos.Y, 0, w.cfg.World.Height)
	}
}

func (w *World) tickTimers(dt float64) {
	w.attackCooldown = math.Max(0, w.attackCooldown-dt)
	w.monsterAttackCooldown = math.Max(0, w.monsterAttackCooldown-dt)
	w.spawnTimer += dt
	w.difficultyTimer += dt
	w.spawnInterval = w.difficulty.SpawnInterval(w.difficultyTimer)
	w.bonusTimer += dt
}

// spawn creates at most one monster and at most one random bonus per tick.
func (w *World) spawn() {
	if w.spawnTimer >= w.spawnInterval {
		w.spawnTimer = 0
		w.spawnMonster()
	}

	if w.bonusTimer >= w.cfg.Bonuses.Interval {
		w.bonusTimer = 0
		w.spawnBonus(w.randomPos())
	}
}

// spawnMonster places a monster of a weighted-random type at a random position.
func (w *World) spawnMonster() bool {
	t := w.rollMonsterType()
	return w.addMonster(Monster{
		Pos:    w.randomPos(),
		Health: statsFor(w.cfg.Monsters, t).Health,
		Alive:  true,
		Type:   t,
	})
}

// addMonster appends m unless the monster capacity is exhausted.
func (w *World) addMonster(m Monster) bool {
	if len(w.monsters) >= w.cfg.Monsters.Max {
		return false
	}
	w.monsters = append(w.monsters, m)
	return true
}

// spawnBonus places a fresh bonus at pos unless the capacity is exhausted.
func (w *World) spawnBonus(pos core.Vec2) bool {
	if len(w.bonuses) >= w.cfg.Bonuses.Max {
		return false
	}
	w.bonuses = append(w.bonuses, Bonus{
		Pos:    pos,
		Active: true,
		Timer:  w.cfg.Bonuses.Lifetime,
	})
	return true
}

// rollMonsterType draws a type using the configured spawn weights
// (60% Basic, 30% Fast, 10% Tank by default).
func (w *World) rollMonsterType() MonsterType {
	basic := w.cfg.Monsters.Basic.Weight
	fast := w.cfg.Monsters.Fast.Weight
	total := basic + fast + w.cfg.Monsters.Tank.Weight
	if total <= 0 {
		return MonsterBasic
	}

	r := w.rng.Intn(total)
	switch {
	case r < basic:
		return MonsterBasic
	case r < basic+fast:
		return MonsterFast
	default:
		return MonsterTank
	}
}

func (w *World) randomPos() core.Vec2 {
	return core.V(w.rng.Float64()*w.cfg.World.Width, w.rng.Float64()*w.cfg.World.Height)
}

func (w *World) playerCircle() core.Circle {
	return core.Circle{Center: w.player.Pos, Radius: w.cfg.PlayerRadius()}
}

// updateBonuses expires old bonuses and applies pickups.
func (w *World) updateBonuses(dt float64) {
	pc := w.playerCircle()
	radius := w.cfg.BonusRadius()

	for i := range w.bonuses {
		b := &w.bonuses[i]
		if !b.Active {
			continue
		}

		b.Timer -= dt
		if b.Timer <= 0 {
			b.Active = false
			continue
		}

		if core.CirclesOverlap(pc, core.Circle{Center: b.Pos, Radius: radius}) {
			w.player.Health = core.Clamp(w.player.Health+w.cfg.Bonuses.Heal, 0, w.cfg.Player.MaxHealth)
			b.Active = false
			w.emit(core.EventBonusPickup, b.Pos)
		}
	}
}

// updateMonsters runs chase AI, combat, knockback and death for every live monster.
func (w *World) updateMonsters(dt float64, in core.InputFrame) {
	radius := w.cfg.MonsterRadius()
	attacking := in.Has(core.ActionAttack)

	for i := range w.monsters {
		m := &w.monsters[i]
		if !m.Alive {
			continue
		}

		// Knockback supersedes chasing.
		if !m.Hit {
			w.chase(m, dt)
		}

		touching := core.CirclesOverlap(w.playerCircle(), core.Circle{Center: m.Pos, Radius: radius})

		// One global cooldown: only one monster lands a hit per period.
		if touching && w.monsterAttackCooldown <= 0 {
			w.player.Health = core.Clamp(w.player.Health-w.cfg.Monsters.ContactDamage, 0, w.cfg.Player.MaxHealth)
			w.monsterAttackCooldown = w.cfg.Monsters.AttackCooldown
			w.emit(core.EventPlayerHit, w.player.Pos)
		}

		if touching && attacking && w.attackCooldown <= 0 {
			m.Health -= w.cfg.Combat.Damage
			w.attackCooldown = w.cfg.Combat.Cooldown
			m.Hit = true
			m.HitTimer = w.cfg.Combat.KnockbackDuration
			m.KnockbackDir = m.Pos.Sub(w.player.Pos).Normalize()
			w.emit(core.EventMonsterHit, m.Pos)
		}

		if m.Hit {
			m.Pos = m.Pos.Add(m.KnockbackDir.Scale(w.cfg.Combat.KnockbackSpeed * dt))
			m.HitTimer -= dt
			if m.HitTimer <= 0 {
				m.Hit = false
			}
		}

		if m.Health <= 0 && m.kill() {
			w.score += w.cfg.Combat.KillReward
			w.spawnBonus(m.Pos)
			w.emit(core.EventMonsterKilled, m.Pos)
		}
	}
}

// chase moves m toward the player at its type's speed. A monster standing
// exactly on the player does not move.
func (w *World) chase(m *Monster, dt float64) {
	dir := w.player.Pos.Sub(m.Pos)
	if dir.IsZero() {
		return
	}
	speed := statsFor(w.cfg.Monsters, m.Type).Speed
	m.Pos = m.Pos.Add(dir.Normalize().Scale(speed * dt))
}

func (w *World) emit(kind core.EventKind, pos core.Vec2) {
	w.events = append(w.events, core.Event{Kind: kind, Pos: pos})
}

func (w *World) result() core.StepResult {
	return core.StepResult{State: w.State(), Events: w.events}
}

// State returns the summary the platform needs.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		Health:   w.player.Health,
		GameOver: w.gameOver,
		Paused:   w.paused,
	}
}

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Monsters returns every monster slot, dead ones included. Callers must not modify it.
func (w *World) Monsters() []Monster { return w.monsters }

// Bonuses returns every bonus slot, expired ones included. Callers must not modify it.
func (w *World) Bonuses() []Bonus { return w.bonuses }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// SpawnInterval returns the current seconds between monster spawns.
func (w *World) SpawnInterval() float64 { return w.spawnInterval }

// Elapsed returns the seconds of unpaused play since the last reset.
func (w *World) Elapsed() float64 { return w.difficultyTimer }

// Config returns the configuration the world was reset with.
func (w *World) Config() config.ArenaConfig { return w.cfg }

// LiveMonsters counts monsters that are still alive.
func (w *World) LiveMonsters() int {
	n := 0
	for _, m := range w.monsters {
		if m.Alive {
			n++
		}
	}
	return n
}
