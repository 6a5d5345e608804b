// ============================================================================
// roteiro - Itinerary language toolkit
// ============================================================================
//
// Package:     viewer
// Description: Bubbletea model for browsing an interpreted itinerary
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package viewer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/roteiro/foundation/roteiro/evaluator"
	"github.com/msto63/roteiro/foundation/utils/stringx"
	"github.com/msto63/roteiro/internal/report"
)

const (
	headerHeight = 3
	footerHeight = 3
	loadTimeout  = 10 * time.Second
)

// Interpreter turns itinerary source into a trip state
type Interpreter interface {
	Interpret(ctx context.Context, source string) (*evaluator.TripState, error)
}

// Config holds viewer configuration
type Config struct {
	Path        string
	Interpreter Interpreter
}

// Model is the Bubbletea model for the viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Trip state
	trip     *evaluator.TripState
	loadedAt time.Time
	loads    int

	// Configuration
	path        string
	interpreter Interpreter
	readFile    func(string) ([]byte, error)
}

// New creates a new viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		loading:     true,
		spinner:     sp,
		path:        cfg.Path,
		interpreter: cfg.Interpreter,
		readFile:    os.ReadFile,
	}
}

// Init starts the spinner and the first load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTrip)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tripLoadedMsg:
		m.loading = false
		m.loads++
		m.err = msg.err
		if msg.err == nil {
			m.trip = msg.trip
			m.loadedAt = msg.loadedAt
		}
		m.updateViewportContent()

	case reloadMsg:
		m.loading = true
		cmds = append(cmds, m.spinner.Tick, m.loadTrip)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "r":
			return m, func() tea.Msg { return reloadMsg{} }
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// loadTrip reads and interprets the source file
func (m Model) loadTrip() tea.Msg {
	if m.interpreter == nil {
		return tripLoadedMsg{err: fmt.Errorf("no interpreter configured")}
	}

	data, err := m.readFile(m.path)
	if err != nil {
		return tripLoadedMsg{err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	trip, err := m.interpreter.Interpret(ctx, string(data))
	return tripLoadedMsg{trip: trip, loadedAt: time.Now(), err: err}
}

// updateViewportContent re-renders the report into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderBody())
}

func (m Model) renderBody() string {
	if m.err != nil {
		var b strings.Builder
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		if m.trip != nil {
			b.WriteString("\n")
			b.WriteString(HelpStyle.Render("  showing the last valid itinerary"))
			b.WriteString("\n")
			b.WriteString(report.NewStyledRenderer(m.reportWidth()).Body(m.trip))
		}
		return b.String()
	}
	if m.trip == nil {
		return ""
	}
	return report.NewStyledRenderer(m.reportWidth()).Body(m.trip)
}

func (m Model) reportWidth() int {
	if m.width <= 8 {
		return 0
	}
	return m.width - 4
}

// View renders the model
func (m Model) View() string {
	if !m.ready {
		return fmt.Sprintf("\n  %s Loading %s...\n", m.spinner.View(), m.path)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderStatusBar(),
		m.renderHelpBar(),
	)
}

func (m Model) renderHeader() string {
	destination := report.NotAvailable
	period := ""
	if m.trip != nil {
		destination = report.DestinationLine(m.trip)
		period = report.PeriodLine(m.trip)
	}

	title := LogoStyle.Render(Logo) + "  " + HeaderStyle.Render(destination)
	if m.loading {
		title += " " + m.spinner.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubHeaderStyle.Render(period), "")
}

func (m Model) renderStatusBar() string {
	var budget string
	if m.trip != nil {
		summary := report.Summarize(m.trip)
		text := fmt.Sprintf("$%d / $%d USD", summary.TotalCusto, summary.Budget)
		if summary.OverBudget {
			budget = StatusOverStyle.Render(text + fmt.Sprintf(" (+$%d)", summary.Overrun()))
		} else {
			budget = StatusOKStyle.Render(text)
		}
	}

	file := stringx.Truncate(m.path, 40, "...")
	loaded := ""
	if !m.loadedAt.IsZero() {
		loaded = "loaded " + m.loadedAt.Format("15:04:05")
	}

	parts := []string{file, budget, loaded}
	var nonEmpty []string
	for _, p := range parts {
		if stringx.IsNotBlank(p) {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return StatusBarStyle.Width(m.width).Render(strings.Join(nonEmpty, "  │  "))
}

func (m Model) renderHelpBar() string {
	hints := []string{
		RenderKeyHint("↑/↓", "scroll"),
		RenderKeyHint("pgup/pgdn", "page"),
		RenderKeyHint("r", "reload"),
		RenderKeyHint("q", "quit"),
	}
	return HelpStyle.Render(strings.Join(hints, "  "))
}

// Run starts the viewer
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
