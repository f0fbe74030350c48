package views

import (
	"fmt"
	"strings"
)

type StatsPanelData struct {
	Visible        bool
	ProgressView   string
	Percentage     float64
	CompletedCount int
	TotalTasks     int
	Motivation     string
}

type TaskItemData struct {
	ID            string
	Name          string
	Done          bool
	DeadlineLabel string
	DueToday      bool
}

type TasksPanelData struct {
	LoadState   string
	SpinnerView string
	ErrorText   string
	Items       []TaskItemData
	SelectedID  string
	ShowAddHint bool
}

type DueTodayPanelData struct {
	Names []string
}

type AddTaskPanelData struct {
	InputView string
}

type UndoNoticeData struct {
	Message string
	UndoKey string
}

func RenderStatsPanel(data StatsPanelData) string {
	if !data.Visible {
		return ""
	}
	var b strings.Builder
	b.WriteString("progress:\n")
	if data.TotalTasks == 0 {
		b.WriteString("(no tasks yet)\n")
	} else {
		b.WriteString(data.ProgressView + "\n")
		b.WriteString(fmt.Sprintf("%d of %d tasks done (%.0f%%)\n", data.CompletedCount, data.TotalTasks, data.Percentage))
	}
	b.WriteString(data.Motivation)
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	switch data.LoadState {
	case "pending":
		b.WriteString(data.SpinnerView + " loading tasks...")
		return strings.TrimSpace(b.String())
	case "failed":
		b.WriteString(fmt.Sprintf("error: could not load tasks: %s\n", data.ErrorText))
		b.WriteString("press [r] to retry")
		return strings.TrimSpace(b.String())
	}

	if data.ShowAddHint {
		b.WriteString("actions: [j/k]move [space]toggle [a]add [h]hide-stats [/]cmd\n")
	} else {
		b.WriteString("actions: [j/k]move [space]toggle [h]hide-stats [/]cmd\n")
	}
	if len(data.Items) == 0 {
		b.WriteString("(no tasks yet)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if data.SelectedID == item.ID {
			cursor = ">"
		}
		check := "[ ]"
		if item.Done {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s %s", cursor, check, item.Name))
		if item.DeadlineLabel != "" {
			b.WriteString(" due:" + item.DeadlineLabel)
		}
		if item.DueToday {
			b.WriteString(" (today)")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderDueTodayPanel(data DueTodayPanelData) string {
	if len(data.Names) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("due today (%d):\n", len(data.Names)))
	for _, name := range data.Names {
		b.WriteString("- " + name + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderAddTaskPanel(data AddTaskPanelData) string {
	var b strings.Builder
	b.WriteString("add task:\n")
	b.WriteString(data.InputView + "\n")
	b.WriteString("keys: [enter]save [esc]back")
	return strings.TrimSpace(b.String())
}

// DailyBrief builds the markdown summary shown in the right pane; callers
// run it through RenderMarkdown.
func DailyBrief(greeting, name string, dueToday []string, motivation string) string {
	var b strings.Builder
	if name != "" {
		b.WriteString(fmt.Sprintf("# %s, %s\n\n", greeting, name))
	} else {
		b.WriteString(fmt.Sprintf("# %s\n\n", greeting))
	}
	if len(dueToday) > 0 {
		b.WriteString("**Due today:**\n\n")
		for _, n := range dueToday {
			b.WriteString("- " + n + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("_" + motivation + "_\n")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderUndoNotice(data UndoNoticeData) string {
	if strings.TrimSpace(data.Message) == "" {
		return ""
	}
	return fmt.Sprintf("%s press [%s] to undo", data.Message, data.UndoKey)
}

func RenderConnectivityBadge(online bool) string {
	if online {
		return "online"
	}
	return "offline"
}
