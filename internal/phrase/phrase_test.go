package phrase

import "testing"

func TestGreetExhaustiveOverDay(t *testing.T) {
	for hour := 0; hour <= 23; hour++ {
		var want string
		switch {
		case hour >= 5 && hour < 12:
			want = "Good morning"
		case hour > 12 && hour < 18:
			want = "Good afternoon"
		default:
			want = "Good evening"
		}
		if got := Greet(hour); got != want {
			t.Fatalf("Greet(%d) = %q, want %q", hour, got, want)
		}
	}
}

func TestGreetNoonBoundary(t *testing.T) {
	// Noon sits in neither the morning nor the afternoon range and
	// resolves to evening.
	if got := Greet(12); got != "Good evening" {
		t.Fatalf("Greet(12) = %q, want %q", got, "Good evening")
	}
	if got := Greet(11); got != "Good morning" {
		t.Fatalf("Greet(11) = %q, want %q", got, "Good morning")
	}
	if got := Greet(13); got != "Good afternoon" {
		t.Fatalf("Greet(13) = %q, want %q", got, "Good afternoon")
	}
}

func TestMotivateLadder(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "No tasks completed yet. Keep going!"},
		{100, "Congratulations! All tasks completed!"},
		{80, "Almost there!"},
		{75, "Almost there!"},
		{50, "You're halfway there! Keep it up!"},
		{60, "You're halfway there! Keep it up!"},
		{25, "You're making good progress!"},
		{40, "You're making good progress!"},
		{10, "You're just getting started."},
	}
	for _, tc := range cases {
		if got := Motivate(tc.pct); got != tc.want {
			t.Fatalf("Motivate(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
