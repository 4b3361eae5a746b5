package workout

import (
	"fmt"
	"sort"
	"strings"
)

// NormalizeDay enforces the day invariants: types are trimmed, lower-cased and
// de-duplicated; rest is exclusive; at most MaxTypes remain; completed types are
// a subset of types; Completed reflects completedTypes when types are present.
// Nil slices become empty so that JSON round-trips are exact.
func NormalizeDay(d DayWorkout) DayWorkout {
	return DefaultPolicy.normalizeDay(d)
}

func (p Policy) normalizeDay(d DayWorkout) DayWorkout {
	out := d
	out.Types = p.cleanTypes(d.Types)

	done := make([]Type, 0, len(d.CompletedTypes))
	for _, t := range cleanTypeList(d.CompletedTypes) {
		if containsType(out.Types, t) {
			done = append(done, t)
		}
	}
	out.CompletedTypes = done
	if len(out.Types) > 0 {
		out.Completed = len(out.CompletedTypes) == len(out.Types)
	}

	out.Workouts = normalizeExercises(d.Workouts)
	out.AlternativeWorkouts = normalizeExercises(d.AlternativeWorkouts)
	return out
}

// cleanTypes applies the rest exclusivity and cap rules to a type list.
func (p Policy) cleanTypes(ts []Type) []Type {
	out := cleanTypeList(ts)
	if containsType(out, TypeRest) {
		return []Type{TypeRest}
	}
	if limit := p.maxTypes(); len(out) > limit {
		out = out[:limit]
	}
	return out
}

func cleanTypeList(ts []Type) []Type {
	out := make([]Type, 0, len(ts))
	for _, t := range ts {
		t = Type(strings.ToLower(strings.TrimSpace(string(t))))
		if t == "" || containsType(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func normalizeExercises(es []Exercise) []Exercise {
	out := make([]Exercise, len(es))
	for i, e := range es {
		if e.MuscleGroups == nil {
			e.MuscleGroups = []string{}
		}
		if e.Equipment == nil {
			e.Equipment = []string{}
		}
		out[i] = e
	}
	return out
}

// NormalizePlan normalizes every day, keeps the last entry per date, sorts by
// date and recomputes the plan bounds.
func NormalizePlan(p Plan) Plan {
	return DefaultPolicy.NormalizePlan(p)
}

// NormalizePlan is NormalizePlan under a specific policy.
func (pol Policy) NormalizePlan(p Plan) Plan {
	out := p

	byDate := make(map[string]int, len(p.DailyWorkouts))
	days := make([]DayWorkout, 0, len(p.DailyWorkouts))
	for _, d := range p.DailyWorkouts {
		d = pol.normalizeDay(d)
		if i, ok := byDate[d.Date]; ok {
			days[i] = d
			continue
		}
		byDate[d.Date] = len(days)
		days = append(days, d)
	}
	sortDays(days)
	out.DailyWorkouts = days
	out.TotalDays = len(days)
	if len(days) > 0 {
		out.StartDate = days[0].Date
		out.EndDate = days[len(days)-1].Date
	}

	ws := make([]string, 7)
	copy(ws, p.WeeklyStructure)
	out.WeeklyStructure = ws
	return out
}

// ValidatePlan reports the first day whose date is not an ISO date.
func ValidatePlan(p Plan) error {
	for i, d := range p.DailyWorkouts {
		if _, err := ParseDate(d.Date); err != nil {
			return fmt.Errorf("day[%d]: %w", i, err)
		}
	}
	return nil
}

func sortDays(days []DayWorkout) {
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date < days[j].Date })
}
