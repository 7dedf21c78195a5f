package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/game"
	"github.com/vovakirdan/tui-cupcake/internal/systems"
)

// World view size in cells for a 500x500 pixel world.
const (
	worldCols  = 50
	worldRows  = 25
	debugWidth = 44
)

// Options configure the game screen.
type Options struct {
	Debug bool // Show the debug panel
	Width int  // Initial terminal width, 0 if unknown
}

// Model is the Bubble Tea model running the game.
type Model struct {
	sched      *systems.Scheduler
	ctx        *game.Context
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	screen     *core.Screen
	inputFrame core.InputFrame
	interval   time.Duration
	gameState  core.GameState
	lastCue    string
	debug      bool
	width      int
	quitting   bool
}

// NewModel creates a Bubble Tea model driving the scheduler.
func NewModel(sched *systems.Scheduler, opts Options) Model {
	ctx := sched.Context()
	keys := NewKeyMap(ctx.Config.Keys)

	return Model{
		sched:      sched,
		ctx:        ctx,
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       help.New(),
		screen:     core.NewScreen(worldCols, worldRows),
		inputFrame: core.NewInputFrame(),
		interval:   ctx.Config.TickInterval(),
		gameState:  ctx.Snapshot(),
		debug:      opts.Debug,
		width:      opts.Width,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Debug) {
		m.debug = !m.debug
		return m, nil
	}
	if m.mapper.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.mapper.Release(&m.inputFrame, now)

	result := m.sched.Step(m.inputFrame)
	m.gameState = result.State
	if result.Ran {
		for _, cue := range m.ctx.Cues() {
			m.lastCue = cue.Sound
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.interval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.ctx)
	world := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(RenderScreen(m.screen))

	view := world
	if m.debug {
		panel := RenderDebug(m.ctx.Debug(), debugWidth)
		if m.width == 0 || m.width >= lipgloss.Width(world)+debugWidth+2 {
			view = lipgloss.JoinHorizontal(lipgloss.Top, world, " ", panel)
		} else {
			view = lipgloss.JoinVertical(lipgloss.Left, world, panel)
		}
	}

	var b strings.Builder
	b.WriteString(view)
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) statusLine() string {
	parts := []string{m.gameState.Scene}
	if m.gameState.Paused {
		parts = append(parts, "paused")
	}
	if m.lastCue != "" {
		parts = append(parts, "♪ "+m.lastCue)
	}
	return labelStyle.Render(strings.Join(parts, " · "))
}

// Run starts the Bubble Tea program with the given scheduler.
func Run(sched *systems.Scheduler, opts Options) error {
	model := NewModel(sched, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
