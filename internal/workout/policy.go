package workout

import (
	"fmt"
	"strings"
)

// Policy is the product policy for day types: how many types a day may carry
// and how many rest days a week may hold. It is the only place these rules live.
type Policy struct {
	MaxTypes       int // per day; <= 0 means 4
	MaxRestPerWeek int // per ISO week; <= 0 disables the cap
}

// DefaultPolicy allows four types per day and two rest days per week.
var DefaultPolicy = Policy{MaxTypes: 4, MaxRestPerWeek: 2}

func (p Policy) maxTypes() int {
	if p.MaxTypes <= 0 {
		return 4
	}
	return p.MaxTypes
}

// MergeType merges t into the day's type set. restInWeek is the number of other
// rest days in the day's ISO week.
//
// Adding rest collapses the day to [rest] and drops its exercises. Adding any
// other type to a rest day replaces rest. Duplicates are ignored.
func (p Policy) MergeType(d DayWorkout, t Type, restInWeek int) (DayWorkout, error) {
	t = Type(strings.ToLower(strings.TrimSpace(string(t))))
	if t == "" {
		return d, ErrEmptyType
	}
	d = p.normalizeDay(d)

	if t == TypeRest {
		if d.IsRest() {
			return d, nil
		}
		if p.MaxRestPerWeek > 0 && restInWeek >= p.MaxRestPerWeek {
			return d, ErrRestLimit
		}
		d.Types = []Type{TypeRest}
		d.Workouts = []Exercise{}
		d.AlternativeWorkouts = []Exercise{}
		d.CompletedTypes = []Type{}
		d.Completed = false
		return d, nil
	}

	if d.IsRest() {
		d.Types = []Type{t}
		d.CompletedTypes = []Type{}
		d.Completed = false
		return d, nil
	}
	if d.HasType(t) {
		return d, nil
	}
	if len(d.Types) >= p.maxTypes() {
		return d, ErrTypeLimit
	}
	d.Types = append(append([]Type{}, d.Types...), t)
	return p.normalizeDay(d), nil
}

// Admit checks a whole day about to be stored among days. A rest day carries
// no exercises and must fit under the weekly rest cap.
func (p Policy) Admit(d DayWorkout, days []DayWorkout) (DayWorkout, error) {
	d = p.normalizeDay(d)
	if !d.IsRest() {
		return d, nil
	}
	if len(d.Workouts) > 0 || len(d.AlternativeWorkouts) > 0 {
		return d, fmt.Errorf("%s: %w", d.Date, ErrRestExercises)
	}
	if p.MaxRestPerWeek > 0 && !d.StreakSaver && RestDaysInWeek(days, d.Date) >= p.MaxRestPerWeek {
		return d, fmt.Errorf("%s: %w", d.Date, ErrRestLimit)
	}
	return d, nil
}

// RestDaysInWeek counts rest days sharing date's ISO week, excluding date itself.
// Days bridged by a streak saver are placeholders and do not count.
func RestDaysInWeek(days []DayWorkout, date string) int {
	ref, err := ParseDate(date)
	if err != nil {
		return 0
	}
	y, w := ref.ISOWeek()
	n := 0
	for _, d := range days {
		if d.Date == date || !d.IsRest() || d.StreakSaver {
			continue
		}
		t, err := ParseDate(d.Date)
		if err != nil {
			continue
		}
		if dy, dw := t.ISOWeek(); dy == y && dw == w {
			n++
		}
	}
	return n
}
