package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleAddTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewDashboard
		m.addInput.Blur()
		m.addInput.SetValue("")
		m.Status = StatusBar{Text: "back to dashboard", IsError: false}
		return m, nil
	case "enter":
		cmd := m.addTask(m.addInput.Value())
		m.addInput.SetValue("")
		m.CurrentView = ViewDashboard
		m.addInput.Blur()
		return m, cmd
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyRunes {
		m.addInput.SetValue(m.addInput.Value() + string(msg.Runes))
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}
