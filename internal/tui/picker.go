// Package tui implements the built-in terminal picker used when no external
// chooser command is configured.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230")).
	Padding(0, 1)

// choiceItem implements list.Item for a plain string option.
type choiceItem string

func (c choiceItem) Title() string       { return string(c) }
func (c choiceItem) Description() string { return "" }
func (c choiceItem) FilterValue() string { return string(c) }

type pickModel struct {
	list   list.Model
	choice string
	done   bool
}

func newPickModel(title string, options []string) pickModel {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = choiceItem(o)
	}
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return pickModel{list: l}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// While the filter input is focused, every key belongs to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.choice = string(item)
			}
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	return m.list.View()
}

// Pick shows a full-screen single-choice list and returns the selected
// option. Dismissing the picker (q, esc, ctrl+c) returns the empty string
// with a nil error, as does an empty option set.
func Pick(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	p := tea.NewProgram(newPickModel(title, options), tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: picker: %w", err)
	}
	m, ok := result.(pickModel)
	if !ok {
		return "", nil
	}
	return m.choice, nil
}
