// Package workout holds the calendar domain: plans, days, the type policy,
// merge-on-regenerate and streak rules. Everything here is pure; storage and
// transport live elsewhere.
package workout

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for all day keys.
const DateLayout = "2006-01-02"

// Type classifies a day's training focus.
type Type string

// Known workout types. Unknown non-empty tags are kept as free-form types.
const (
	TypeStrength    Type = "strength"
	TypeCardio      Type = "cardio"
	TypeHIIT        Type = "hiit"
	TypeFlexibility Type = "flexibility"
	TypeMobility    Type = "mobility"
	TypeYoga        Type = "yoga"
	TypeMixed       Type = "mixed"
	TypeRest        Type = "rest"
)

// Domain errors returned by calendar operations.
var (
	ErrDayNotFound   = errors.New("day not found")
	ErrDayExists     = errors.New("day already exists")
	ErrInvalidDate   = errors.New("invalid date")
	ErrTypeLimit     = errors.New("too many workout types for one day")
	ErrRestLimit     = errors.New("weekly rest day limit reached")
	ErrEmptyType     = errors.New("empty workout type")
	ErrRestExercises = errors.New("rest days carry no exercises")
)

// Exercise is a single prescribed movement. It has no identity beyond its position.
type Exercise struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	Duration     string   `json:"duration"`
	Reps         string   `json:"reps"`
	MuscleGroups []string `json:"muscleGroups"`
	Equipment    []string `json:"equipment"`
	Sets         *int     `json:"sets,omitempty"`
	Rest         string   `json:"rest,omitempty"`
}

// Minutes returns the best-effort parsed duration of the exercise.
func (e Exercise) Minutes() int { return ParseMinutes(e.Duration) }

// DayWorkout is one calendar date's prescribed exercises or rest designation.
type DayWorkout struct {
	Date                string     `json:"date"`
	Types               []Type     `json:"types"`
	Workouts            []Exercise `json:"workouts"`
	AlternativeWorkouts []Exercise `json:"alternativeWorkouts"`
	Completed           bool       `json:"completed"`
	CompletedTypes      []Type     `json:"completedTypes"`
	// StreakSaver marks a day bridged by a consumed streak saver.
	StreakSaver bool `json:"streakSaver,omitempty"`
}

// IsRest reports whether the day is a rest day.
func (d DayWorkout) IsRest() bool {
	return len(d.Types) == 1 && d.Types[0] == TypeRest
}

// HasType reports whether t is one of the day's types.
func (d DayWorkout) HasType(t Type) bool { return containsType(d.Types, t) }

// CompleteForStreak reports whether the day counts toward a streak: at least
// one non-rest type and every type completed.
func (d DayWorkout) CompleteForStreak() bool {
	nonRest := false
	for _, t := range d.Types {
		if t != TypeRest {
			nonRest = true
		}
		if !containsType(d.CompletedTypes, t) {
			return false
		}
	}
	return nonRest
}

// Minutes sums the parsed durations of the day's main workouts.
func (d DayWorkout) Minutes() int {
	total := 0
	for _, e := range d.Workouts {
		total += e.Minutes()
	}
	return total
}

// Plan is a generated multi-day workout plan.
type Plan struct {
	ID              string       `json:"id"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	TotalDays       int          `json:"totalDays"`
	WeeklyStructure []string     `json:"weeklyStructure"`
	DailyWorkouts   []DayWorkout `json:"dailyWorkouts"`
}

// Day returns the day stored under date.
func (p Plan) Day(date string) (DayWorkout, bool) {
	for _, d := range p.DailyWorkouts {
		if d.Date == date {
			return d, true
		}
	}
	return DayWorkout{}, false
}

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate formats t as an ISO calendar date in t's location.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// Today returns now's calendar date.
func Today(now time.Time) string { return FormatDate(now) }

// AddDays shifts an ISO date by n days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

func containsType(ts []Type, t Type) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
