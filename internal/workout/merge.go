package workout

// MergeRegenerated unions a freshly generated plan with the previously stored
// one. A prior day that is completed or dated on/before today is kept verbatim;
// every other date takes the new plan's content; dates only the prior plan has
// are appended. The result is normalized.
func MergeRegenerated(prev, next Plan, today string) Plan {
	prev = NormalizePlan(prev)
	next = NormalizePlan(next)

	locked := make(map[string]DayWorkout, len(prev.DailyWorkouts))
	for _, d := range prev.DailyWorkouts {
		if d.Completed || d.Date <= today {
			locked[d.Date] = d
		}
	}

	seen := make(map[string]struct{}, len(next.DailyWorkouts))
	days := make([]DayWorkout, 0, len(next.DailyWorkouts)+len(prev.DailyWorkouts))
	for _, d := range next.DailyWorkouts {
		seen[d.Date] = struct{}{}
		if old, ok := locked[d.Date]; ok {
			days = append(days, old)
			continue
		}
		days = append(days, d)
	}
	for _, d := range prev.DailyWorkouts {
		if _, ok := seen[d.Date]; !ok {
			days = append(days, d)
		}
	}

	out := next
	if out.ID == "" {
		out.ID = prev.ID
	}
	out.DailyWorkouts = days
	return NormalizePlan(out)
}

// Locked reports whether a regeneration must leave d untouched.
func Locked(d DayWorkout, today string) bool {
	return d.Completed || d.Date <= today
}
