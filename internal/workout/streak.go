package workout

// Reward constants.
const (
	EnergyPerDay       = 10
	EnergyPerStreakDay = 2
	MaxStreakBonusDays = 7
	// RewardWindowDays bounds how far back a newly completed day still pays out.
	RewardWindowDays = 7
)

// Streak counts consecutive complete days ending today, or yesterday when today
// is not complete yet. Days flagged with a streak saver are skipped without
// counting; an incomplete, rest or missing day ends the chain.
func Streak(days []DayWorkout, today string) int {
	cur, err := ParseDate(today)
	if err != nil || len(days) == 0 {
		return 0
	}

	byDate := make(map[string]DayWorkout, len(days))
	earliest := days[0].Date
	for _, d := range days {
		byDate[d.Date] = d
		if d.Date < earliest {
			earliest = d.Date
		}
	}

	if d, ok := byDate[today]; !ok || !d.CompleteForStreak() {
		cur = cur.AddDate(0, 0, -1)
	}

	n := 0
	for date := FormatDate(cur); date >= earliest; date = FormatDate(cur) {
		d, ok := byDate[date]
		switch {
		case ok && d.CompleteForStreak():
			n++
		case ok && d.StreakSaver:
		default:
			return n
		}
		cur = cur.AddDate(0, 0, -1)
	}
	return n
}

// RewardDates lists the complete days of p within RewardWindowDays up to
// today. Each date pays out only the first time it is seen; the caller keeps
// the ledger.
func RewardDates(p Plan, today string) []string {
	from, err := AddDays(today, -(RewardWindowDays - 1))
	if err != nil {
		return nil
	}

	var dates []string
	for _, d := range p.DailyWorkouts {
		if d.Date > today || d.Date < from || !d.CompleteForStreak() {
			continue
		}
		dates = append(dates, d.Date)
	}
	return dates
}

// StreakBonus is the one-off bonus added to a reward for a streak of n days.
func StreakBonus(n int) int64 {
	if n > MaxStreakBonusDays {
		n = MaxStreakBonusDays
	}
	return int64(n * EnergyPerStreakDay)
}

// Reward prices paid newly rewarded days at the given streak.
func Reward(paid, streak int) int64 {
	if paid <= 0 {
		return 0
	}
	return int64(paid*EnergyPerDay) + StreakBonus(streak)
}
