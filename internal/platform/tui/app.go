package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-arena/internal/core"
	"github.com/vovakirdan/monster-arena/internal/highscore"
	"github.com/vovakirdan/monster-arena/internal/registry"
	"github.com/vovakirdan/monster-arena/internal/session"
)

// AppOptions configures an AppModel.
type AppOptions struct {
	Runtime    core.RuntimeConfig // TickRate is the frame rate; Seed 0 picks a fresh seed per run
	Player     string             // Name recorded with scores
	StartMode  string             // Mode ID to start in directly; empty shows the menu
	HoldWindow time.Duration
	Recorder   *ScoreRecorder // Optional
	Logger     *log.Logger    // Optional
}

// AppModel drives one player's session: menu, info screens, play and game over.
type AppModel struct {
	opts     AppOptions
	runtime  core.RuntimeConfig
	machine  *session.Machine
	keys     *KeyMapper
	held     *HoldTracker
	clock    *frameClock
	logger   *log.Logger
	screen   *core.Screen
	board    LeaderboardModel
	game     registry.Game
	width    int
	height   int
	tickGen  int
	quitting bool

	// Outcome of the last run, shown on the game over screen
	lastScore int
	lastRank  int
	recordErr error
}

// NewAppModel creates the session model. With a StartMode the first run
// begins immediately.
func NewAppModel(opts AppOptions) AppModel {
	rt := opts.Runtime
	def := core.DefaultConfig()
	if rt.TickRate <= 0 {
		rt.TickRate = def.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	opts.Player = highscore.SanitizeName(opts.Player)

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := AppModel{
		opts:    opts,
		runtime: rt,
		machine: session.New(),
		keys:    NewKeyMapper(),
		held:    NewHoldTracker(opts.HoldWindow),
		clock:   newFrameClock(rt.TickRate),
		logger:  logger,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}

	if opts.StartMode != "" {
		if state, ok := modeState(opts.StartMode); ok && m.machine.Start(state) == nil {
			m.startRun()
		}
	}
	return m
}

// modeState maps a mode ID to its session state.
func modeState(mode string) (session.State, bool) {
	switch mode {
	case "survival":
		return session.StateSurvival, true
	case "arena":
		return session.StateArena, true
	}
	return session.StateMainMenu, false
}

// stateMode maps a play state to its mode ID.
func stateMode(s session.State) string {
	if s == session.StateArena {
		return "arena"
	}
	return "survival"
}

// Init starts the frame loop if a run is already in progress.
func (m AppModel) Init() tea.Cmd {
	if m.machine.State().IsPlaying() {
		return tickCmd(m.runtime.TickRate, m.tickGen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.machine.State() == session.StateLeaderboard {
			m.board, _ = m.board.Update(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey dispatches a key press according to the current state.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		return m.quit()
	}

	switch m.machine.State() {
	case session.StateMainMenu:
		return m.handleMenuKey(msg)

	case session.StateControls:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionBack:
			m.transition(m.machine.Back())
		case MenuActionQuit:
			return m.quit()
		}

	case session.StateLeaderboard:
		switch {
		case action == core.ActionBack:
			m.transition(m.machine.Back())
		case action == core.ActionQuit:
			return m.quit()
		default:
			var cmd tea.Cmd
			m.board, cmd = m.board.Update(msg)
			return m, cmd
		}

	case session.StateSurvival, session.StateArena:
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			return m, nil
		}
		if action != core.ActionQuit {
			m.held.Press(action, time.Now())
		}

	case session.StateGameOver:
		switch action {
		case core.ActionConfirm:
			m.transition(m.machine.Confirm())
			m.game = nil
		case core.ActionQuit:
			return m.quit()
		}
	}

	return m, nil
}

func (m AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		m.machine.CursorUp()
	case MenuActionDown:
		m.machine.CursorDown()
	case MenuActionQuit:
		return m.quit()
	case MenuActionSelect:
		next, err := m.machine.Select()
		m.transition(err)
		switch {
		case next == session.StateExit:
			return m.quit()
		case next == session.StateLeaderboard:
			m.board = NewLeaderboardModel(m.opts.Recorder, m.width, m.height)
		case next.IsPlaying():
			return m, m.startRun()
		}
	}
	return m, nil
}

// startRun creates and resets the game for the current play state.
func (m *AppModel) startRun() tea.Cmd {
	mode := stateMode(m.machine.State())
	game, err := registry.Create(mode)
	if err != nil {
		m.logger.Error("cannot create game", "mode", mode, "error", err)
		return nil
	}

	rt := m.runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	game.Reset(rt)

	m.game = game
	m.held.Reset()
	m.clock.reset()
	m.lastScore, m.lastRank, m.recordErr = 0, 0, nil
	m.tickGen++

	m.logger.Info("run started", "mode", mode, "player", m.opts.Player, "seed", rt.Seed)
	return tickCmd(m.runtime.TickRate, m.tickGen)
}

// handleTick advances the simulation by the measured frame time.
func (m AppModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.machine.State().IsPlaying() || m.game == nil {
		return m, nil
	}

	dt := m.clock.delta(msg.Time)
	result := m.game.Step(dt, m.held.Frame(msg.Time))

	if result.Has(core.EventGameOver) {
		m.finishRun(result.State.Score)
		return m, nil
	}

	return m, tickCmd(m.runtime.TickRate, m.tickGen)
}

// finishRun records the score once and shows the game over screen.
func (m *AppModel) finishRun(score int) {
	mode := m.game.ID()
	m.transition(m.machine.EndGame())
	m.lastScore = score

	if m.opts.Recorder != nil {
		m.lastRank, m.recordErr = m.opts.Recorder.Record(mode, m.opts.Player, score)
		if m.recordErr != nil {
			m.logger.Error("cannot record score", "mode", mode, "error", m.recordErr)
		}
	}

	m.logger.Info("run finished", "mode", mode, "player", m.opts.Player, "score", score, "rank", m.lastRank)
}

func (m *AppModel) transition(err error) {
	if err != nil {
		m.logger.Warn("ignored transition", "error", err)
		return
	}
	m.logger.Debug("state", "now", m.machine.State())
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot saves the current play screen to a text file.
func (m *AppModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.machine.State() {
	case session.StateControls:
		return controlsView(m.width, m.height)
	case session.StateLeaderboard:
		return m.board.View()
	case session.StateSurvival, session.StateArena:
		if m.game == nil {
			return ""
		}
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	case session.StateGameOver:
		title := ""
		if m.game != nil {
			title = m.game.Title()
		}
		return gameOverView(title, m.lastScore, m.lastRank, m.opts.Player, m.recordErr, m.width, m.height)
	default:
		return menuView(m.machine.Items(), m.machine.Cursor(), m.width, m.height)
	}
}

// State returns the current session state.
func (m AppModel) State() session.State {
	return m.machine.State()
}

// Game returns the game of the current run, or nil outside play.
func (m AppModel) Game() registry.Game {
	return m.game
}

// LastScore returns the score and highscore rank of the last finished run.
func (m AppModel) LastScore() (score, rank int) {
	return m.lastScore, m.lastRank
}

// Player returns the name scores are recorded under.
func (m AppModel) Player() string {
	return m.opts.Player
}

// Run starts a full-screen session on the local terminal.
func Run(opts AppOptions) error {
	p := tea.NewProgram(
		NewAppModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
