package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/workout"
)

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("want string or number, got %s", b)
	}
	*f = flexString(n.String())
	return nil
}

// flexInt accepts a JSON number or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var s flexString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(s)))
	if err != nil {
		return fmt.Errorf("want integer, got %q", string(s))
	}
	*f = flexInt(n)
	return nil
}

type rawExercise struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Difficulty   string     `json:"difficulty"`
	Duration     flexString `json:"duration"`
	Reps         flexString `json:"reps"`
	MuscleGroups []string   `json:"muscleGroups"`
	Equipment    []string   `json:"equipment"`
	Sets         *flexInt   `json:"sets"`
	Rest         flexString `json:"rest"`
}

type rawDay struct {
	Date                string        `json:"date"`
	Types               []string      `json:"types"`
	Type                string        `json:"type"`
	Workouts            []rawExercise `json:"workouts"`
	AlternativeWorkouts []rawExercise `json:"alternativeWorkouts"`
}

type rawPlan struct {
	ID              string   `json:"id"`
	WeeklyStructure []string `json:"weeklyStructure"`
	DailyWorkouts   []rawDay `json:"dailyWorkouts"`
}

// DecodePlan parses model output into a plan. Required fields fail closed:
// the plan needs at least one day, each day a valid date and a type, each
// non-rest day at least one exercise, and each exercise a name.
func DecodePlan(text string) (workout.Plan, error) {
	js, err := ExtractJSON(text)
	if err != nil {
		return workout.Plan{}, err
	}
	var rp rawPlan
	if err := json.Unmarshal([]byte(js), &rp); err != nil {
		return workout.Plan{}, fmt.Errorf("%w: %v", errs.ErrInvalidPlan, err)
	}
	if len(rp.DailyWorkouts) == 0 {
		return workout.Plan{}, fmt.Errorf("%w: no dailyWorkouts", errs.ErrInvalidPlan)
	}

	p := workout.Plan{ID: rp.ID, WeeklyStructure: rp.WeeklyStructure}
	for i, rd := range rp.DailyWorkouts {
		d, err := rd.toDay()
		if err != nil {
			return workout.Plan{}, fmt.Errorf("%w: day[%d]: %v", errs.ErrInvalidPlan, i, err)
		}
		p.DailyWorkouts = append(p.DailyWorkouts, d)
	}
	return workout.NormalizePlan(p), nil
}

// DecodeDay parses a single day. The model may omit the date; a different date
// is rejected.
func DecodeDay(text, date string) (workout.DayWorkout, error) {
	js, err := ExtractJSON(text)
	if err != nil {
		return workout.DayWorkout{}, err
	}
	var rd rawDay
	if err := json.Unmarshal([]byte(js), &rd); err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%w: %v", errs.ErrInvalidPlan, err)
	}
	switch rd.Date {
	case "":
		rd.Date = date
	case date:
	default:
		return workout.DayWorkout{}, fmt.Errorf("%w: got day %s, want %s", errs.ErrInvalidPlan, rd.Date, date)
	}
	d, err := rd.toDay()
	if err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%w: %v", errs.ErrInvalidPlan, err)
	}
	return d, nil
}

func (rd rawDay) toDay() (workout.DayWorkout, error) {
	if _, err := workout.ParseDate(rd.Date); err != nil {
		return workout.DayWorkout{}, err
	}
	names := rd.Types
	if len(names) == 0 && strings.TrimSpace(rd.Type) != "" {
		names = []string{rd.Type}
	}
	types := make([]workout.Type, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			types = append(types, workout.Type(n))
		}
	}
	if len(types) == 0 {
		types = append(types, workout.TypeMixed)
	}

	d := workout.DayWorkout{Date: rd.Date, Types: types}
	var err error
	if d.Workouts, err = toExercises(rd.Workouts); err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%s: %w", rd.Date, err)
	}
	if d.AlternativeWorkouts, err = toExercises(rd.AlternativeWorkouts); err != nil {
		return workout.DayWorkout{}, fmt.Errorf("%s: alternative %w", rd.Date, err)
	}
	d = workout.NormalizeDay(d)
	if d.IsRest() {
		d.Workouts, d.AlternativeWorkouts = []workout.Exercise{}, []workout.Exercise{}
	}
	if !d.IsRest() && len(d.Workouts) == 0 {
		return workout.DayWorkout{}, fmt.Errorf("%s: no workouts for %v", rd.Date, d.Types)
	}
	return d, nil
}

func toExercises(in []rawExercise) ([]workout.Exercise, error) {
	out := make([]workout.Exercise, 0, len(in))
	for i, re := range in {
		if strings.TrimSpace(re.Name) == "" {
			return nil, fmt.Errorf("exercise[%d]: missing name", i)
		}
		e := workout.Exercise{
			Name:         strings.TrimSpace(re.Name),
			Description:  re.Description,
			Difficulty:   re.Difficulty,
			Duration:     string(re.Duration),
			Reps:         string(re.Reps),
			MuscleGroups: re.MuscleGroups,
			Equipment:    re.Equipment,
			Rest:         string(re.Rest),
		}
		if re.Sets != nil {
			n := int(*re.Sets)
			e.Sets = &n
		}
		out = append(out, e)
	}
	return out, nil
}
