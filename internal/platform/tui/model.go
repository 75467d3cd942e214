package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/loop"
)

// Scene is the top-level state of the application.
type Scene int

const (
	SceneMenu Scene = iota
	ScenePlaying
	ScenePaused
	SceneGameOver
)

// String returns the name of the scene.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case ScenePlaying:
		return "playing"
	case ScenePaused:
		return "paused"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

var (
	menuItems  = []string{"Start Game", "Exit"}
	pauseItems = []string{"Continue", "Quit"}
)

// Model is the Bubble Tea model that drives one player's game.
// It owns the session and the tick driver; the session is replaced on
// every start and dropped when leaving to the menu.
type Model struct {
	cfg    config.Config
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	clock  func() time.Time

	scene       Scene
	menuCursor  int
	pauseCursor int

	session *snake.Session
	driver  *loop.Driver
	screen  *core.Screen

	width    int
	height   int
	tooSmall bool
	quitting bool
	err      error
}

// NewModel creates a model showing the main menu. A nil logger discards output.
func NewModel(cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		cfg:    cfg,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		clock:  time.Now,
		screen: core.NewScreen(0, 0),
		// Nothing fits until the first window size arrives.
		tooSmall: true,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey routes keyboard input to the current scene.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.scene {
	case SceneMenu:
		return m.handleMenuKey(msg)
	case ScenePlaying:
		return m.handlePlayingKey(msg)
	case ScenePaused:
		return m.handlePausedKey(msg)
	case SceneGameOver:
		return m.handleGameOverKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.menuCursor = core.Wrap(m.menuCursor-1, len(menuItems))
	case key.Matches(msg, m.keys.Down):
		m.menuCursor = core.Wrap(m.menuCursor+1, len(menuItems))
	case key.Matches(msg, m.keys.Select):
		if m.menuCursor == 0 {
			return m.startGame()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Pause) {
		m.pauseCursor = 0
		m.setScene(ScenePaused)
		return m, nil
	}

	if d, ok := m.keys.Turn(msg); ok {
		m.session.RequestTurn(d)
		m.logger.Debug("turn requested", "direction", d, "tick", m.session.Ticks())
	}
	return m, nil
}

func (m Model) handlePausedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.pauseCursor = core.Wrap(m.pauseCursor-1, len(pauseItems))
	case key.Matches(msg, m.keys.Down):
		m.pauseCursor = core.Wrap(m.pauseCursor+1, len(pauseItems))
	case key.Matches(msg, m.keys.Pause):
		m.resume()
	case key.Matches(msg, m.keys.Select):
		if m.pauseCursor == 0 {
			m.resume()
		} else {
			m.toMenu()
		}
	}
	return m, nil
}

func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Restart):
		return m.startGame()
	case key.Matches(msg, m.keys.Back):
		m.toMenu()
	}
	return m, nil
}

// startGame replaces the session with a fresh one and starts playing.
func (m Model) startGame() (tea.Model, tea.Cmd) {
	opts, err := m.cfg.SessionOptions()
	if err != nil {
		return m.fail(err)
	}
	session, err := snake.NewSession(opts)
	if err != nil {
		return m.fail(err)
	}
	driver, err := loop.NewDriver(m.cfg.TickRate)
	if err != nil {
		return m.fail(err)
	}

	m.session = session
	m.driver = driver
	m.driver.Start(m.clock())
	m.logger.Info("game started", "seed", session.Seed(), "tick_rate", m.cfg.TickRate,
		"grid", fmt.Sprintf("%dx%d", opts.Grid.Width, opts.Grid.Height))
	m.setScene(ScenePlaying)
	return m, nil
}

// fail records a fatal error and stops the program.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("cannot start game", "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// resume continues a paused game. Time spent paused is not owed as ticks.
func (m *Model) resume() {
	m.driver.Start(m.clock())
	m.setScene(ScenePlaying)
}

// toMenu drops the session and shows the main menu.
func (m *Model) toMenu() {
	m.session = nil
	m.driver = nil
	m.menuCursor = 0
	m.setScene(SceneMenu)
}

func (m *Model) setScene(s Scene) {
	if m.scene == s {
		return
	}
	m.logger.Debug("scene changed", "from", m.scene, "to", s)
	m.scene = s
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	// The last row holds the help line.
	m.screen.Resize(msg.Width, max(0, msg.Height-1))

	wasSmall := m.tooSmall
	m.tooSmall = !m.fits()
	if wasSmall && !m.tooSmall && m.scene == ScenePlaying {
		m.driver.Start(m.clock())
	}
	return m, nil
}

// fits reports whether the board and HUD fit on the screen.
func (m Model) fits() bool {
	w, h := snake.RequiredSize(m.cfg.GridSize())
	return m.screen.Width() >= w && m.screen.Height() >= h
}

// handleFrame runs the ticks due at now. Ticks are suspended outside the
// playing scene and while the window is too small to show the board.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.scene == ScenePlaying && !m.tooSmall {
		m.driver.Advance(now, m.step)
		if m.session.Over() {
			m.logger.Info("game over", "length", m.session.Snake().Len(),
				"eaten", m.session.Eaten(), "ticks", m.session.Ticks())
			m.setScene(SceneGameOver)
		}
	}
	return m, frameCmd(m.cfg.FrameRate)
}

// step advances the session by one tick.
func (m Model) step() {
	switch outcome := m.session.Tick(); outcome {
	case snake.OutcomeAteFood:
		m.logger.Debug("food eaten", "length", m.session.Snake().Len(), "food", m.session.Food().Pos)
	case snake.OutcomeAteSelf:
		m.logger.Debug("snake ran into itself", "head", m.session.Snake().Head())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys.helpFor(m.scene))
	if m.scene == SceneMenu {
		return menuView("S N A K E", menuItems, m.menuCursor, m.width, m.height, footer)
	}

	if m.tooSmall {
		w, h := snake.RequiredSize(m.session.Grid())
		msg := warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", w, h+1, m.width, m.height))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.session.Render(m.screen)
	switch m.scene {
	case ScenePaused:
		drawOverlay(m.screen, append([]string{"PAUSED", ""}, pauseItems...), m.pauseCursor+2)
	case SceneGameOver:
		drawOverlay(m.screen, []string{
			"GAME OVER",
			fmt.Sprintf("Length: %d", m.session.Snake().Len()),
			"",
			"R: restart  Esc: menu",
		}, -1)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Scene returns the current scene.
func (m Model) Scene() Scene {
	return m.scene
}

// Session returns the running session, or nil outside a game.
func (m Model) Session() *snake.Session {
	return m.session
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given config.
func Run(cfg config.Config, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
