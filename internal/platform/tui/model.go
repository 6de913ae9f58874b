package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricker/internal/core"
	"github.com/vovakirdan/tui-bricker/internal/registry"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

// Options configures a Model. Zero fields get defaults.
type Options struct {
	Store   *storage.Store
	Runtime core.RuntimeConfig
	Painter *Painter
	Logger  *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	painter    *Painter
	log        *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	showHelp   bool
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	recorded   bool // Whether the finished round has been stored
	newBest    bool // The finished round beat the stored high score
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = newSeed()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	painter := opts.Painter
	if painter == nil {
		painter = NewPainter(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		painter:    painter,
		log:        logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

func newSeed() uint64 {
	return uint64(time.Now().UnixNano()) //#nosec G115 -- any bits make a seed
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is picked up on the first tick (value receiver)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.resizeScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.gameState.GameOver {
			m.quitting = true
			return m, tea.Quit
		}
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The field is drawn scaled,
// so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

func (m *Model) resizeScreen() {
	h := m.config.ScreenH
	if m.showHelp {
		h -= helpRows
	}
	m.screen.Resize(m.config.ScreenW, max(h, 0))
}

// helpRows is the height reserved for the full help view.
const helpRows = 4

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = newSeed()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorded = false
		m.newBest = false
		m.inputFrame.Clear()
		m.log.Debug("round restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.LifeLost {
		m.log.Debug("life lost", "lives", m.gameState.Lives)
	}

	if m.gameState.GameOver && !m.recorded {
		m.record()
		m.recorded = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record stores the finished round. Storage errors are logged and the game goes on.
func (m *Model) record() {
	st := m.gameState
	outcome := "lost"
	if st.Won {
		outcome = "won"
	}
	m.log.Info("round finished", "outcome", outcome, "score", st.Score, "bricks_left", st.BricksLeft)

	if m.store == nil {
		return
	}
	if st.Score > 0 {
		high, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.log.Warn("could not read high score", "error", err)
		} else if st.Score > high {
			m.newBest = true
			m.log.Info("new high score", "score", st.Score, "previous", high)
		}
		if _, err := m.store.SaveScore(m.game.ID(), st.Score); err != nil {
			m.log.Warn("could not save score", "error", err)
		}
	}
	_, err := m.store.SaveRound(storage.Round{
		Outcome:     outcome,
		Score:       st.Score,
		BricksTotal: st.BricksTotal,
		BricksLeft:  st.BricksLeft,
		LivesLeft:   st.Lives,
		Ticks:       st.Ticks,
	})
	if err != nil {
		m.log.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("no home directory for screenshots", "error", err)
		return
	}
	dir := filepath.Join(home, ".bricker", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.newBest && m.gameState.GameOver {
		m.screen.DrawTextCentered(m.screen.Height()-2, "New high score!")
	}
	out := m.painter.Paint(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player left.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
