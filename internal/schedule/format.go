package schedule

import (
	"strings"
	"time"
)

// FormatTarget renders now+d as a 12-hour clock reading such as "3:04pm".
// A target on a later calendar day gets a " (tomorrow)" qualifier.
func FormatTarget(d time.Duration, now time.Time) string {
	target := now.Add(d)
	out := strings.TrimSpace(target.Format("3:04pm"))
	if !sameDay(target, now) {
		out += " (tomorrow)"
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
