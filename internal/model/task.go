package model

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingID   = errors.New("model: task id is required")
	ErrMissingName = errors.New("model: task name is required")
)

type Task struct {
	ID        string
	Name      string
	Done      bool
	Deadline  *time.Time
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrMissingName
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// DueOn reports whether the task counts as due on the calendar day of the
// given instant: it has a deadline, is not done, and the deadline falls on
// the same calendar date as day, evaluated in day's location with the time
// of day stripped.
func (t Task) DueOn(day time.Time) bool {
	if t.Done || t.Deadline == nil {
		return false
	}
	return sameCalendarDay(*t.Deadline, day)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
