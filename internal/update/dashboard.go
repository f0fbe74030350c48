package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dashd/internal/lazyload"
	"dashd/internal/model"
	"dashd/internal/state"
	"dashd/internal/storage"
	"dashd/internal/views"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.Store.Snapshot().Tasks
	switch msg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.syncSelectedTaskToCursor()
	case "down", "j":
		if m.Cursor < len(tasks)-1 {
			m.Cursor++
		}
		m.syncSelectedTaskToCursor()
	case " ":
		cmd := m.toggleTaskAtCursor()
		return m, cmd
	}
	return m, nil
}

func (m *Model) toggleTaskAtCursor() tea.Cmd {
	tasks := m.Store.Snapshot().Tasks
	if m.Cursor < 0 || m.Cursor >= len(tasks) {
		return nil
	}
	var toggled model.Task
	idx := m.Cursor
	m.Store.Apply(func(s state.Snapshot) state.Snapshot {
		next := make([]model.Task, len(s.Tasks))
		copy(next, s.Tasks)
		next[idx].Done = !next[idx].Done
		toggled = next[idx]
		return s.WithTasks(next)
	})
	if toggled.Done {
		m.Status = StatusBar{Text: fmt.Sprintf("done: %s", toggled.Name), IsError: false}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("reopened: %s", toggled.Name), IsError: false}
	}
	return m.persistTaskCmd(toggled, false)
}

func (m *Model) addTask(name string) tea.Cmd {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}
	now := m.clock()
	task := model.Task{
		ID:        fmt.Sprintf("task-%d", now.UnixNano()),
		Name:      trimmed,
		CreatedAt: now,
	}
	m.Store.Apply(func(s state.Snapshot) state.Snapshot {
		next := make([]model.Task, 0, len(s.Tasks)+1)
		next = append(next, s.Tasks...)
		next = append(next, task)
		return s.WithTasks(next)
	})
	m.Cursor = len(m.Store.Snapshot().Tasks) - 1
	m.syncSelectedTaskToCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("added: %s", trimmed), IsError: false}
	return m.persistTaskCmd(task, true)
}

func (m *Model) markTaskDone(ref string) (model.Task, tea.Cmd, bool) {
	target, ok := m.findTask(ref)
	if !ok {
		return model.Task{}, nil, false
	}
	var updated model.Task
	m.Store.Apply(func(s state.Snapshot) state.Snapshot {
		next := make([]model.Task, len(s.Tasks))
		copy(next, s.Tasks)
		for i := range next {
			if next[i].ID == target.ID {
				next[i].Done = true
				updated = next[i]
			}
		}
		return s.WithTasks(next)
	})
	return updated, m.persistTaskCmd(updated, false), true
}

func (m *Model) setTaskDeadline(ref string, when time.Time) (model.Task, tea.Cmd, bool) {
	target, ok := m.findTask(ref)
	if !ok {
		return model.Task{}, nil, false
	}
	var updated model.Task
	m.Store.Apply(func(s state.Snapshot) state.Snapshot {
		next := make([]model.Task, len(s.Tasks))
		copy(next, s.Tasks)
		for i := range next {
			if next[i].ID == target.ID {
				deadline := when
				next[i].Deadline = &deadline
				updated = next[i]
			}
		}
		return s.WithTasks(next)
	})
	return updated, m.persistTaskCmd(updated, false), true
}

// findTask resolves a palette reference: exact ID first, then a unique
// case-insensitive name prefix.
func (m Model) findTask(ref string) (model.Task, bool) {
	tasks := m.Store.Snapshot().Tasks
	for _, t := range tasks {
		if t.ID == ref {
			return t, true
		}
	}
	lowered := strings.ToLower(strings.TrimSpace(ref))
	var found model.Task
	matches := 0
	for _, t := range tasks {
		if strings.HasPrefix(strings.ToLower(t.Name), lowered) {
			found = t
			matches++
		}
	}
	if matches == 1 {
		return found, true
	}
	return model.Task{}, false
}

func (m *Model) hideStats() tea.Cmd {
	m.Visibility.Hide()
	m.UndoNotice = m.undoBox.take()
	m.Status = StatusBar{Text: "progress panel hidden", IsError: false}
	m.notify("Visibility", "progress panel hidden", "info")
	return m.persistSettingsCmd()
}

func (m *Model) showStats() tea.Cmd {
	m.Visibility.Show()
	m.UndoNotice = nil
	m.Status = StatusBar{Text: "progress panel shown", IsError: false}
	return m.persistSettingsCmd()
}

func (m *Model) undoHide() tea.Cmd {
	if m.UndoNotice == nil {
		return nil
	}
	m.UndoNotice.Undo()
	m.UndoNotice = nil
	m.Status = StatusBar{Text: "progress panel restored", IsError: false}
	return m.persistSettingsCmd()
}

func (m *Model) retryLoad() tea.Cmd {
	if m.loadTasks == nil || m.TasksFuture == nil {
		return nil
	}
	if m.TasksFuture.State() != lazyload.StateFailed {
		return nil
	}
	m.TasksFuture = lazyload.Begin(context.Background(), m.loadTasks)
	m.Status = StatusBar{Text: "retrying task load", IsError: false}
	return tea.Batch(waitForTasksCmd(m.TasksFuture), m.loadSpinner.Tick)
}

func (m Model) persistSettingsCmd() tea.Cmd {
	if m.Repo == nil {
		return nil
	}
	repo := m.Repo
	snap := m.Store.Snapshot()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := repo.SaveSettings(ctx, storage.Settings{
			UserName:        snap.Name,
			EmojiStyle:      snap.EmojiStyle,
			ShowProgressBar: snap.Settings.ShowProgressBar,
			EnableGlow:      snap.Settings.EnableGlow,
		})
		if err != nil {
			return AppErrorMsg{Err: fmt.Errorf("save settings: %w", err)}
		}
		return nil
	}
}

func (m Model) persistTaskCmd(t model.Task, create bool) tea.Cmd {
	if m.Repo == nil {
		return nil
	}
	repo := m.Repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		row := storage.Task{
			ID:        t.ID,
			Name:      t.Name,
			Done:      t.Done,
			Deadline:  t.Deadline,
			CreatedAt: t.CreatedAt,
		}
		var err error
		if create {
			err = repo.CreateTask(ctx, row)
		} else {
			err = repo.UpdateTask(ctx, row)
		}
		if err != nil {
			return AppErrorMsg{Err: fmt.Errorf("persist task %s: %w", t.ID, err)}
		}
		return nil
	}
}

func (m Model) renderTasksPane(now time.Time) string {
	loadState := "ready"
	errText := ""
	if m.TasksFuture != nil {
		loadState = string(m.TasksFuture.State())
		if err := m.TasksFuture.Err(); err != nil {
			errText = err.Error()
		}
	}

	tasks := m.Store.Snapshot().Tasks
	items := make([]views.TaskItemData, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, views.TaskItemData{
			ID:            t.ID,
			Name:          t.Name,
			Done:          t.Done,
			DeadlineLabel: deadlineLabel(t.Deadline, now),
			DueToday:      t.DueOn(now),
		})
	}

	return views.RenderTasksPanel(views.TasksPanelData{
		LoadState:   loadState,
		SpinnerView: m.loadSpinner.View(),
		ErrorText:   errText,
		Items:       items,
		SelectedID:  m.SelectedTaskID,
		ShowAddHint: !m.Compact,
	})
}

func (m Model) renderNotificationPane() string {
	sections := make([]string, 0, 2)
	if m.UndoNotice != nil {
		sections = append(sections, views.RenderUndoNotice(views.UndoNoticeData{
			Message: m.UndoNotice.Message,
			UndoKey: m.Keys.Undo,
		}))
	}
	if len(m.Notifications) > 0 {
		n := m.Notifications[len(m.Notifications)-1]
		sections = append(sections, strings.TrimSpace(views.RenderNotification(n.Level, n.Body)))
	}
	return strings.TrimSpace(strings.Join(sections, "\n"))
}

func (m Model) renderFooter() string {
	base := fmt.Sprintf("keys: [j/k]move [space]toggle [%s]hide [%s]show [%s]undo [/]cmd [%s]help [%s]quit",
		m.Keys.HideStats, m.Keys.ShowStats, m.Keys.Undo, m.Keys.Help, m.Keys.Quit)
	if m.Compact {
		return base
	}
	return fmt.Sprintf("keys: [%s]add ", m.Keys.AddTask) + strings.TrimPrefix(base, "keys: ")
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return strings.Join([]string{
		"help:",
		"j/k or arrows  move cursor",
		"space          toggle task done",
		"a              add a task",
		"h / s          hide / show progress panel",
		"u              undo last hide",
		"r              retry task load",
		"/              command palette (add, done, deadline, hide, show)",
		"q              quit",
	}, "\n")
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    time.Now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
