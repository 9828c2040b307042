package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			m.setFocus((m.focused + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case "[":
			m.yearIndex = (m.yearIndex + len(m.years) - 1) % len(m.years)
			m.recompute()
			return m, nil

		case "]":
			m.yearIndex = (m.yearIndex + 1) % len(m.years)
			m.recompute()
			return m, nil
		}
	}

	// Everything else goes to the focused field; recompute so the
	// comparison tracks each keystroke.
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.recompute()
	return m, cmd
}

// setFocus moves focus to the given field.
func (m *Model) setFocus(index int) {
	m.inputs[m.focused].Blur()
	m.focused = index
	m.inputs[m.focused].Focus()
}
