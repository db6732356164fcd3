// Package tui renders the universe in a terminal with bubbletea.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"bitlife/internal/config"
	"bitlife/internal/frame"
)

const (
	frameInterval   = time.Second / 30
	historyCapacity = 120
	gridLeft        = 1
	gridTop         = 2
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	gridStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statsStyle  = lipgloss.NewStyle().Padding(0, 2).Width(44)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// TickMsg drives one frame.
type TickMsg time.Time

// Model is the bubbletea model. The grid is redrawn from a fresh view on
// every tick.
type Model struct {
	ctrl     *frame.Controller
	log      *slog.Logger
	blocks   *blockRenderer
	grid     string
	history  []float64
	showHelp bool
}

// NewModel wraps ctrl.
func NewModel(ctrl *frame.Controller, log *slog.Logger) Model {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		ctrl:     ctrl,
		log:      log,
		blocks:   &blockRenderer{},
		history:  make([]float64, 0, historyCapacity),
		showHelp: true,
	}
	m.grid = m.blocks.Render(ctrl.View())
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

// Update handles keys, mouse clicks and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "tab":
			m.log.Debug("terminal view has a single renderer")
		default:
			if len(msg.Runes) != 1 && key != " " {
				break
			}
			r := ' '
			if len(msg.Runes) == 1 {
				r = msg.Runes[0]
			}
			a := frame.ActionForRune(r)
			if a == frame.ActionQuit {
				return m, tea.Quit
			}
			m.ctrl.Apply(a)
		}
		m.grid = m.blocks.Render(m.ctrl.View())
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		x, y := msg.X-gridLeft, msg.Y-gridTop
		size := m.ctrl.Size()
		if x < 0 || y < 0 || x >= size.W || 2*y >= size.H {
			break
		}
		row, col := cellAt(x, y)
		mod := frame.ModNone
		switch {
		case msg.Ctrl:
			mod = frame.ModCtrl
		case msg.Shift:
			mod = frame.ModShift
		}
		m.ctrl.Click(row, col, mod)
		m.grid = m.blocks.Render(m.ctrl.View())
	case TickMsg:
		if m.ctrl.Advance() {
			m.history = append(m.history, float64(m.ctrl.Stats().Population))
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
		}
		m.ctrl.Render()
		m.grid = m.blocks.Render(m.ctrl.View())
		return m, tick()
	}
	return m, nil
}

// View renders the grid beside the statistics panel.
func (m Model) View() string {
	st := m.ctrl.Stats()
	size := m.ctrl.Size()

	var s strings.Builder
	status := runStyle.Render("RUNNING")
	if st.Paused {
		status = pausedStyle.Render("PAUSED")
	}
	s.WriteString(labelStyle.Render("Status") + status + "\n")
	s.WriteString(labelStyle.Render("Size") + valueStyle.Render(fmt.Sprintf("%dx%d", size.W, size.H)) + "\n")
	s.WriteString(labelStyle.Render("Generation") + valueStyle.Render(fmt.Sprint(st.Generation)) + "\n")
	s.WriteString(labelStyle.Render("Population") + valueStyle.Render(fmt.Sprint(st.Population)) + "\n")
	s.WriteString(labelStyle.Render("Ticks") + valueStyle.Render(fmt.Sprint(st.Ticks)) + "\n")
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(6), asciigraph.Width(36), asciigraph.Caption("Population"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.showHelp {
		s.WriteString(helpStyle.Render("space pause  n step  r reset  c clear\n+/- ticks  click toggle\nshift-click glider  ctrl-click pulsar\n? help  q quit"))
	}

	header := headerStyle.Render("bitlife")
	body := lipgloss.JoinHorizontal(lipgloss.Top, gridStyle.Render(m.grid), statsStyle.Render(s.String()))
	return header + "\n" + body
}

// Run starts the terminal program and blocks until it exits.
func Run(cfg *config.Config, log *slog.Logger) error {
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}
	opts := []frame.Option{frame.WithLogger(log)}
	if cfg.GPS > 0 {
		opts = append(opts, frame.WithPacing(cfg.GPS))
	}
	m := NewModel(frame.New(engine, nil, opts...), log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
