// Package phrase selects the dashboard's greeting and motivational text.
package phrase

// Greet maps an hour of day (0-23) to a greeting. Hour 12 exactly falls
// through to "Good evening"; this matches the shipped behavior and is kept
// deliberately rather than widened to the afternoon range.
func Greet(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good morning"
	case hour > 12 && hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Motivate maps a completion percentage to a motivational phrase. The
// thresholds form an ordered ladder; the first match wins.
func Motivate(pct float64) string {
	switch {
	case pct == 0:
		return "No tasks completed yet. Keep going!"
	case pct == 100:
		return "Congratulations! All tasks completed!"
	case pct >= 75:
		return "Almost there!"
	case pct >= 50:
		return "You're halfway there! Keep it up!"
	case pct >= 25:
		return "You're making good progress!"
	default:
		return "You're just getting started."
	}
}
