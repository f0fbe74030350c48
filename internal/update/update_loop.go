package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"dashd/internal/lazyload"
	"dashd/internal/model"
	"dashd/internal/phrase"
	"dashd/internal/refresh"
	"dashd/internal/state"
	"dashd/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 3)
	if m.TasksFuture != nil {
		cmds = append(cmds, waitForTasksCmd(m.TasksFuture), m.loadSpinner.Tick)
	}
	if m.Engine != nil {
		now := m.clock()
		_ = m.Engine.Schedule(refresh.Event{Kind: refresh.KindMidnight, TriggerAt: refresh.NextMidnight(now)})
		_ = m.Engine.Schedule(refresh.Event{Kind: refresh.KindProbe, TriggerAt: now.Add(time.Second)})
		cmds = append(cmds, waitForRefreshCmd(m.Engine.C()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.CurrentView == ViewAddTask {
			return m.handleAddTaskKey(typed)
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.AddTask:
			if m.Compact {
				m.Status = StatusBar{Text: "add task is unavailable in compact layout", IsError: false}
				return m, nil
			}
			m.CurrentView = ViewAddTask
			m.addInput.Focus()
			m.addInput.SetValue("")
			return m, nil
		case m.Keys.HideStats:
			cmd := m.hideStats()
			return m, cmd
		case m.Keys.ShowStats:
			cmd := m.showStats()
			return m, cmd
		case m.Keys.Undo:
			cmd := m.undoHide()
			return m, cmd
		case m.Keys.Retry:
			cmd := m.retryLoad()
			return m, cmd
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		return m.handleDashboardKey(typed)

	case spinner.TickMsg:
		if m.loadPending() {
			var cmd tea.Cmd
			m.loadSpinner, cmd = m.loadSpinner.Update(typed)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Compact = typed.Width > 0 && typed.Width < m.cfg.CompactWidth
		return m, nil

	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewAddTask {
				m.addInput.Focus()
			}
		}
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil

	case TasksLoadedMsg:
		m.Store.Apply(func(s state.Snapshot) state.Snapshot {
			return s.WithTasks(typed.Tasks)
		})
		m.Cursor = 0
		m.syncSelectedTaskToCursor()
		m.Status = StatusBar{Text: fmt.Sprintf("loaded %d tasks", len(typed.Tasks)), IsError: false}
		return m, nil

	case TasksLoadFailedMsg:
		m.LastError = typed.Err
		m.Status = StatusBar{Text: fmt.Sprintf("task load failed: %v", typed.Err), IsError: true}
		m.notify("Load", m.Status.Text, "error")
		return m, nil

	case RefreshMsg:
		return m.handleRefreshEvent(typed.Event)

	case ConnectivityMsg:
		if m.Online != typed.Online {
			m.notify("Connectivity", views.RenderConnectivityBadge(typed.Online), "info")
		}
		m.Online = typed.Online
		return m, nil
	}

	return m, nil
}

func (m Model) handleRefreshEvent(ev refresh.Event) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	switch ev.Kind {
	case refresh.KindMidnight:
		m.Memo.Invalidate()
		m.notify("Refresh", "new day, due-today list recomputed", "info")
		if m.Engine != nil {
			_ = m.Engine.Schedule(refresh.Event{Kind: refresh.KindMidnight, TriggerAt: refresh.NextMidnight(m.clock())})
		}
	case refresh.KindProbe:
		cmds = append(cmds, probeCmd(m.prober))
		if m.Engine != nil {
			interval := time.Duration(m.cfg.ProbeIntervalSec) * time.Second
			_ = m.Engine.Schedule(refresh.Event{Kind: refresh.KindProbe, TriggerAt: m.clock().Add(interval)})
		}
	}
	if m.Engine != nil {
		cmds = append(cmds, waitForRefreshCmd(m.Engine.C()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	now := m.clock()
	snap := m.Store.Snapshot()
	derived := m.Memo.Aggregate(snap.Tasks, snap.Version, now)
	greeting := phrase.Greet(now.Hour())
	motivation := phrase.Motivate(derived.CompletedPercentage)

	who := greeting
	if snap.Name != "" {
		who = fmt.Sprintf("%s, %s", greeting, snap.Name)
	}
	header := fmt.Sprintf("dashd | %s | %s", who, views.RenderConnectivityBadge(m.Online))

	leftPane := ""
	switch m.CurrentView {
	case ViewAddTask:
		leftPane = views.RenderAddTaskPanel(views.AddTaskPanelData{InputView: m.addInput.View()})
	default:
		leftPane = m.renderTasksPane(now)
	}

	rightSections := []string{
		views.RenderStatsPanel(views.StatsPanelData{
			Visible:        snap.Settings.ShowProgressBar,
			ProgressView:   m.statsBar.ViewAs(derived.CompletedPercentage / 100),
			Percentage:     derived.CompletedPercentage,
			CompletedCount: derived.CompletedCount,
			TotalTasks:     len(snap.Tasks),
			Motivation:     motivation,
		}),
		views.RenderDueTodayPanel(views.DueTodayPanelData{Names: derived.DueTodayNames}),
		views.RenderMarkdown(views.DailyBrief(greeting, snap.Name, derived.DueTodayNames, motivation)),
		views.RenderCommandPalette(m.Palette.Active, m.Palette.Input),
		m.renderHelpIfVisible(),
	}
	rightPane := joinSections(rightSections)

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:       header,
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: m.renderNotificationPane(),
		Footer:       m.renderFooter(),
		Glow:         snap.Settings.EnableGlow,
	})
}

func (m Model) loadPending() bool {
	return m.TasksFuture != nil && m.TasksFuture.State() == lazyload.StatePending
}

func joinSections(sections []string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, strings.TrimSpace(s))
		}
	}
	return strings.Join(kept, "\n\n")
}

func waitForTasksCmd(f *lazyload.Future[[]model.Task]) tea.Cmd {
	return func() tea.Msg {
		<-f.Done()
		if err := f.Err(); err != nil {
			return TasksLoadFailedMsg{Err: err}
		}
		return TasksLoadedMsg{Tasks: f.Value()}
	}
}

func waitForRefreshCmd(ch <-chan refresh.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshMsg{Event: ev}
	}
}

func probeCmd(p ConnectivityProber) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return ConnectivityMsg{Online: p.Online(ctx)}
	}
}
