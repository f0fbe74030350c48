package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dashd/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	}
	if msg.Type == tea.KeyRunes {
		m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
		m.Palette.Input = m.commandInput.Value()
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	_ = cmd
	m.Palette.Input = m.commandInput.Value()
	return m, nil
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var pending tea.Cmd
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			pending = m.addTask(a.Name)
			return commands.Result{Message: fmt.Sprintf("added: %s", a.Name)}, nil
		},
		Done: func(a commands.DoneArgs) (commands.Result, error) {
			task, persist, ok := m.markTaskDone(a.Ref)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("no task matches %q", a.Ref),
				}
			}
			pending = persist
			return commands.Result{Message: fmt.Sprintf("done: %s", task.Name)}, nil
		},
		Deadline: func(a commands.DeadlineArgs) (commands.Result, error) {
			when, parseErr := parseWhen(a.When, m.clock())
			if parseErr != nil {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: parseErr.Error(),
				}
			}
			task, persist, ok := m.setTaskDeadline(a.Ref, when)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("no task matches %q", a.Ref),
				}
			}
			pending = persist
			return commands.Result{Message: fmt.Sprintf("deadline set: %s -> %s", task.Name, when.Format("2006-01-02"))}, nil
		},
		Hide: func(commands.PanelArgs) (commands.Result, error) {
			pending = m.hideStats()
			return commands.Result{Message: "progress panel hidden"}, nil
		},
		Show: func(commands.PanelArgs) (commands.Result, error) {
			pending = m.showStats()
			return commands.Result{Message: "progress panel shown"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m, nil
	}

	m.Status = StatusBar{Text: res.Message, IsError: false}
	m.notify("Command", res.Message, "info")
	return m, pending
}
