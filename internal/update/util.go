package update

import (
	"fmt"
	"strings"
	"time"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func deadlineLabel(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return ""
	}
	d := deadline.In(now.Location())
	ny, nm, nd := now.Date()
	dy, dm, dd := d.Date()
	if ny == dy && nm == dm && nd == dd {
		return "today"
	}
	return d.Format("2006-01-02")
}

// parseWhen resolves a palette deadline argument to an end-of-day instant.
func parseWhen(raw string, now time.Time) (time.Time, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	endOfDay := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 23, 59, 0, 0, t.Location())
	}
	switch trimmed {
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q (use today, tomorrow or YYYY-MM-DD)", raw)
	}
	return endOfDay(parsed), nil
}
