// Package tui is a terminal keypad for a calculator service.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calcpad/internal/domain"
	"calcpad/internal/services/calculator"
)

var (
	previousStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	displayStyle  = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Align(lipgloss.Right)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginTop(1)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

const (
	minDisplayWidth = 24
	maxHistoryRows  = 10
)

// Model is the bubbletea model for the keypad.
type Model struct {
	calc   domain.CalculatorService
	keys   keyMap
	help   help.Model
	cursor int
	status string
	width  int
}

// New returns a Model driving calc.
func New(calc domain.CalculatorService) Model {
	return Model{
		calc: calc,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Run starts the full-screen keypad and blocks until the user quits.
func Run(calc domain.CalculatorService, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(calc), opts...).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Evaluate):
			m.press(domain.Key{Kind: domain.KeyEquals})
		case key.Matches(msg, m.keys.Clear):
			m.press(domain.Key{Kind: domain.KeyClear})
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Use):
			if err := m.calc.SelectIndex(m.cursor); err != nil {
				m.status = "history is empty"
			}
		case key.Matches(msg, m.keys.ClearHistory):
			m.calc.ClearHistory()
			m.cursor = 0
		case msg.Type == tea.KeyRunes:
			m.typeRunes(msg.Runes)
		}
	}
	return m, nil
}

func (m *Model) typeRunes(runes []rune) {
	keys, err := calculator.Keys(string(runes))
	if err != nil {
		m.status = err.Error()
		return
	}
	for _, k := range keys {
		m.press(k)
	}
}

func (m *Model) press(k domain.Key) {
	if err := m.calc.Press(k); err != nil {
		m.status = err.Error()
		return
	}
	if k.Kind == domain.KeyEquals {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	n := min(len(m.calc.History()), maxHistoryRows)
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

func (m Model) View() string {
	snap := m.calc.Snapshot()

	width := max(minDisplayWidth, lipgloss.Width(snap.Expression)+4, lipgloss.Width(snap.PreviousResult)+4)
	if m.width > 0 {
		width = max(width, min(m.width-2, 48))
	}

	var b strings.Builder
	screen := lipgloss.JoinVertical(lipgloss.Right,
		previousStyle.Render(snap.PreviousResult),
		snap.Expression,
	)
	b.WriteString(displayStyle.Width(width).Render(screen))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n")
	if len(snap.History) == 0 {
		b.WriteString(itemStyle.Render(previousStyle.Render("(empty)")))
		b.WriteString("\n")
	}
	for i, e := range snap.History {
		if i == maxHistoryRows {
			b.WriteString(itemStyle.Render(previousStyle.Render(fmt.Sprintf("… %d more", len(snap.History)-i))))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("%s = %s", e.Expression, e.Result)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
