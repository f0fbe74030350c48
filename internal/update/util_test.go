package update

import (
	"testing"
	"time"
)

func TestParseWhen(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	got, err := parseWhen("today", now)
	if err != nil {
		t.Fatalf("parse today: %v", err)
	}
	if got.Day() != 30 || got.Hour() != 23 || got.Minute() != 59 {
		t.Fatalf("unexpected today deadline: %v", got)
	}

	got, err = parseWhen("Tomorrow", now)
	if err != nil {
		t.Fatalf("parse tomorrow: %v", err)
	}
	if got.Day() != 31 {
		t.Fatalf("unexpected tomorrow deadline: %v", got)
	}

	got, err = parseWhen("2026-09-15", now)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if got.Month() != time.September || got.Day() != 15 {
		t.Fatalf("unexpected date deadline: %v", got)
	}

	if _, err = parseWhen("next full moon", now); err == nil {
		t.Fatal("expected error for unrecognized date")
	}
}

func TestDeadlineLabel(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	later := time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)

	if got := deadlineLabel(nil, now); got != "" {
		t.Fatalf("expected empty label for nil deadline, got %q", got)
	}
	if got := deadlineLabel(&today, now); got != "today" {
		t.Fatalf("expected today label, got %q", got)
	}
	if got := deadlineLabel(&later, now); got != "2026-09-02" {
		t.Fatalf("expected date label, got %q", got)
	}
}
