package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"msgbag/internal/bag"
)

type browseModel struct {
	bag      *bag.Bag
	template string

	keys     []string // keys currently shown, filtered
	cursor   int
	filter   textinput.Model
	filterOn bool
	width    int
	height   int
}

// NewBrowseModel returns a Bubble Tea model that lets the user walk a bag's
// keys and read their formatted messages. '/' opens a wildcard filter using
// the bag's own pattern rules; 'q' or ctrl+c quits.
func NewBrowseModel(b *bag.Bag, template string) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "pattern, e.g. items.*"
	ti.Prompt = "/"
	ti.CharLimit = 120

	return &browseModel{
		bag:      b,
		template: template,
		keys:     b.Keys(),
		filter:   ti,
		width:    80,
		height:   24,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		if m.filterOn {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.keys)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = max(0, len(m.keys)-1)
		case "/":
			m.filterOn = true
			m.filter.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterOn = false
		m.filter.Blur()
		m.applyFilter(m.filter.Value())
		return m, nil
	case "esc":
		m.filterOn = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter("")
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *browseModel) applyFilter(pattern string) {
	if pattern == "" {
		m.keys = m.bag.Keys()
	} else {
		m.keys = m.keys[:0]
		for _, key := range m.bag.Keys() {
			if bag.MatchKey(pattern, key) {
				m.keys = append(m.keys, key)
			}
		}
	}
	if m.cursor >= len(m.keys) {
		m.cursor = max(0, len(m.keys)-1)
	}
}

func (m *browseModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var b strings.Builder
	header := fmt.Sprintf("msgbag: %d messages, %d keys", m.bag.Count(), len(m.bag.Keys()))
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	if m.filterOn {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	} else if v := m.filter.Value(); v != "" {
		b.WriteString(dimStyle.Render("filter: " + v))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.keys) == 0 {
		b.WriteString(dimStyle.Render("no keys match"))
		b.WriteString("\n")
		return b.String()
	}

	listWidth := m.width/3 - 1
	if listWidth < 16 {
		listWidth = 16
	}
	rows := m.height - 5
	if rows < 3 {
		rows = 3
	}

	msgs := m.bag.Get(m.keys[m.cursor], m.template).Messages
	for i := 0; i < rows; i++ {
		left := ""
		if i < len(m.keys) {
			label := fmt.Sprintf("%s (%d)", m.keys[i], len(m.bag.Get(m.keys[i]).Messages))
			label = runewidth.Truncate(label, listWidth-2, "…")
			if i == m.cursor {
				left = "> " + label
			} else {
				left = "  " + label
			}
		}
		right := ""
		if i < len(msgs) {
			right = "- " + runewidth.Truncate(msgs[i], m.width-listWidth-6, "…")
		}
		// Pad before styling: ANSI escapes must not count as width.
		left = runewidth.FillRight(left, listWidth)
		if i == m.cursor {
			left = selectedStyle.Render(left)
		}
		b.WriteString(left)
		b.WriteString("  ")
		b.WriteString(right)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("j/k move, / filter, q quit"))
	return b.String()
}

// Browse runs the interactive browser until the user quits.
func Browse(b *bag.Bag, template string) error {
	p := tea.NewProgram(NewBrowseModel(b, template), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
