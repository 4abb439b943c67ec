package utils

import (
	"fmt"
	"time"
)

// TimeAgo formats the distance between t and now the way the dashboard
// shows it, e.g. "5 min ago", "1 hour ago", "3 days ago"
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	}

	if d < time.Hour {
		return fmt.Sprintf("%d min ago", int(d/time.Minute))
	}

	if d < 24*time.Hour {
		return plural(int(d/time.Hour), "hour")
	}

	return plural(int(d/(24*time.Hour)), "day")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
