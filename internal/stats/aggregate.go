package stats

import (
	"sync"
	"time"

	"dashd/internal/model"
)

// DerivedStats is ephemeral: recomputed from the task collection, never
// persisted.
type DerivedStats struct {
	CompletedCount      int
	CompletedPercentage float64
	DueTodayCount       int
	DueTodayNames       []string
}

// Aggregate derives completion statistics and the due-today set from the
// task collection in a single pass. Empty input yields zero percentage.
// DueTodayNames preserves the relative order of tasks.
func Aggregate(tasks []model.Task, now time.Time) DerivedStats {
	var out DerivedStats
	for _, t := range tasks {
		if t.Done {
			out.CompletedCount++
		}
		if t.DueOn(now) {
			out.DueTodayCount++
			out.DueTodayNames = append(out.DueTodayNames, t.Name)
		}
	}
	if len(tasks) > 0 {
		out.CompletedPercentage = 100 * float64(out.CompletedCount) / float64(len(tasks))
	}
	return out
}

// Memo caches the last Aggregate result, keyed by the state store's task
// version and the calendar date of now. The due-today set depends on the
// date, so a cached value survives within a day and expires at rollover.
type Memo struct {
	mu      sync.Mutex
	valid   bool
	version uint64
	year    int
	month   time.Month
	day     int
	cached  DerivedStats
}

func (m *Memo) Aggregate(tasks []model.Task, version uint64, now time.Time) DerivedStats {
	y, mo, d := now.Date()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.version == version && m.year == y && m.month == mo && m.day == d {
		return m.cached
	}
	m.cached = Aggregate(tasks, now)
	m.valid = true
	m.version = version
	m.year, m.month, m.day = y, mo, d
	return m.cached
}

// Invalidate drops the cached value so the next Aggregate recomputes.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	m.valid = false
	m.mu.Unlock()
}
