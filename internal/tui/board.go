// Package tui renders the workflow board as a read-only terminal UI.
// Columns come from the project document; hunt cards sit under the column
// whose roles include their current phase.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/specfirst/hunt/internal/config"
	"github.com/specfirst/hunt/internal/hunt"
	"github.com/specfirst/hunt/internal/workflow"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(24)

	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("12"))

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	ownerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	completedCardStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Strikethrough(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// keyMap defines the board's key bindings.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Quit}}
}

var defaultKeys = keyMap{
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous column")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the board's bubbletea model.
type Model struct {
	doc    *config.Document
	owners map[string]string
	focus  int
	width  int
	keys   keyMap
	help   help.Model
}

// NewModel builds a board model from the project document. Column ownership
// is derived once; the board is read-only.
func NewModel(doc *config.Document) Model {
	owners, err := workflow.MapMembersToColumns(doc.TeamSize, doc.Members)
	if err != nil {
		owners = map[string]string{}
	}
	return Model{
		doc:    doc,
		owners: owners,
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.focus > 0 {
				m.focus--
			}
		case key.Matches(msg, m.keys.Right):
			if m.focus < len(m.doc.Workflow.Columns)-1 {
				m.focus++
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	rendered := make([]string, 0, len(m.doc.Workflow.Columns))
	for i, col := range m.doc.Workflow.Columns {
		style := columnStyle
		if i == m.focus {
			style = focusedColumnStyle
		}
		rendered = append(rendered, style.Render(m.renderColumn(col)))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return board + "\n" + m.help.View(m.keys) + "\n"
}

// renderColumn renders one column's title, owner, and cards.
func (m Model) renderColumn(col workflow.Column) string {
	var b strings.Builder
	b.WriteString(columnTitleStyle.Render(col.Name))
	b.WriteString("\n")

	if owner, ok := m.owners[col.ID]; ok {
		b.WriteString(ownerStyle.Render("@" + owner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cards := m.cardsFor(col)
	if len(cards) == 0 {
		b.WriteString(emptyStyle.Render("(empty)"))
		return b.String()
	}
	for i, card := range cards {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(card)
	}
	return b.String()
}

// cardsFor returns the rendered hunt cards belonging to a column: active
// hunts whose phase is in the column's role list, and completed hunts in
// the roleless done column.
func (m Model) cardsFor(col workflow.Column) []string {
	var cards []string
	for _, h := range m.doc.Hunts {
		switch {
		case h.Status == hunt.Completed && len(col.Roles) == 0:
			cards = append(cards, completedCardStyle.Render(h.Feature))
		case h.Status == hunt.InProgress && columnHasRole(col, h.CurrentPhase):
			cards = append(cards, cardStyle.Render(h.Feature))
		}
	}
	return cards
}

func columnHasRole(col workflow.Column, roleID string) bool {
	for _, r := range col.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
