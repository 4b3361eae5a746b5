package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeRegenerated_KeepsCompletedAndPast(t *testing.T) {
	t.Parallel()

	prev := NormalizePlan(Plan{ID: "old", DailyWorkouts: []DayWorkout{
		day("2024-01-01", true, "strength"),
		day("2024-01-02", false, "cardio"),
		day("2024-01-05", false, "yoga"),
	}})
	next := Plan{ID: "new", DailyWorkouts: []DayWorkout{
		{Date: "2024-01-01", Types: []Type{"hiit"}, Workouts: []Exercise{{Name: "burpee"}}},
		{Date: "2024-01-02", Types: []Type{"hiit"}, Workouts: []Exercise{{Name: "sprint"}}},
		{Date: "2024-01-03", Types: []Type{"rest"}},
	}}

	got := MergeRegenerated(prev, next, "2024-01-01")

	require.Equal(t, "new", got.ID)
	require.Equal(t, 4, got.TotalDays)
	require.Equal(t, "2024-01-01", got.StartDate)
	require.Equal(t, "2024-01-05", got.EndDate)

	d1, _ := got.Day("2024-01-01")
	want1, _ := prev.Day("2024-01-01")
	if diff := cmp.Diff(want1, d1); diff != "" {
		t.Fatalf("completed past day changed (-want +got):\n%s", diff)
	}

	d2, _ := got.Day("2024-01-02")
	require.Equal(t, "sprint", d2.Workouts[0].Name, "future day adopts new content")

	d5, ok := got.Day("2024-01-05")
	require.True(t, ok, "prior-only date appended")
	require.Equal(t, []Type{TypeYoga}, d5.Types)
}

func TestMergeRegenerated_KeepsFutureCompletedDay(t *testing.T) {
	t.Parallel()

	prev := Plan{DailyWorkouts: []DayWorkout{day("2024-06-10", true, "cardio")}}
	next := Plan{DailyWorkouts: []DayWorkout{day("2024-06-10", false, "strength")}}

	got := MergeRegenerated(prev, next, "2024-06-01")
	d, _ := got.Day("2024-06-10")
	require.True(t, d.Completed)
	require.Equal(t, []Type{TypeCardio}, d.Types)
	require.Equal(t, "", got.ID)
}

func TestMergeRegenerated_PastIncompleteDayPreserved(t *testing.T) {
	t.Parallel()

	prev := Plan{DailyWorkouts: []DayWorkout{day("2024-01-01", false, "cardio")}}
	next := Plan{DailyWorkouts: []DayWorkout{day("2024-01-01", false, "strength")}}

	got := MergeRegenerated(prev, next, "2024-01-02")
	d, _ := got.Day("2024-01-01")
	require.Equal(t, []Type{TypeCardio}, d.Types)
	require.True(t, Locked(d, "2024-01-02"))
}

func TestStreak_Examples(t *testing.T) {
	t.Parallel()

	days := []DayWorkout{
		day("2024-01-01", true, "strength"),
		day("2024-01-02", true, "strength"),
		day("2024-01-03", false, "cardio"),
	}
	require.Equal(t, 2, Streak(days, "2024-01-03"))

	days[2] = day("2024-01-03", true, "cardio")
	require.Equal(t, 3, Streak(days, "2024-01-03"))

	require.Equal(t, 0, Streak(days, "2024-01-06"), "gap of missing days breaks the chain")
	require.Equal(t, 0, Streak(nil, "2024-01-03"))
	require.Equal(t, 0, Streak(days, "nope"))
}

func TestStreak_RestAndSaver(t *testing.T) {
	t.Parallel()

	rest := day("2024-01-02", false, "rest")
	days := []DayWorkout{
		day("2024-01-01", true, "strength"),
		rest,
		day("2024-01-03", true, "cardio"),
	}
	require.Equal(t, 1, Streak(days, "2024-01-03"), "unbridged rest day ends the chain")

	rest.StreakSaver = true
	days[1] = rest
	require.Equal(t, 2, Streak(days, "2024-01-03"), "bridged day is skipped, not counted")

	restDone := NormalizeDay(DayWorkout{Date: "2024-01-02", Types: []Type{TypeRest}, CompletedTypes: []Type{TypeRest}})
	require.False(t, restDone.CompleteForStreak())
}

func TestStreak_MonotoneAsTrailingDaysComplete(t *testing.T) {
	t.Parallel()

	dates := []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05"}
	days := make([]DayWorkout, len(dates))
	for i, d := range dates {
		days[i] = day(d, false, "strength")
	}

	last := Streak(days, "2024-05-05")
	require.Equal(t, 0, last)
	for i := len(days) - 1; i >= 0; i-- {
		days[i] = day(dates[i], true, "strength")
		got := Streak(days, "2024-05-05")
		require.GreaterOrEqual(t, got, last)
		require.Equal(t, len(days)-i, got)
		last = got
	}

	days[2] = day(dates[2], false, "strength")
	require.Equal(t, 2, Streak(days, "2024-05-05"), "first incomplete day resets the count")
}

func TestRewardDates(t *testing.T) {
	t.Parallel()

	p := Plan{DailyWorkouts: []DayWorkout{
		day("2023-12-20", true, "strength"),
		day("2024-01-01", true, "strength"),
		day("2024-01-02", false, "strength"),
		day("2024-01-03", true, "rest"),
		day("2024-01-04", true, "strength"),
	}}
	// 12-20 is outside the window, 01-02 incomplete, 01-03 rest, 01-04 in the future
	require.Equal(t, []string{"2024-01-01"}, RewardDates(p, "2024-01-03"))
	require.Nil(t, RewardDates(p, "2024-03-01"))
	require.Nil(t, RewardDates(p, "bad"))
}

func TestReward(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), Reward(0, 5))
	require.Equal(t, int64(EnergyPerDay+2*EnergyPerStreakDay), Reward(1, 2))
	require.Equal(t, int64(2*EnergyPerDay+MaxStreakBonusDays*EnergyPerStreakDay), Reward(2, 30))
}

func TestCalendar_InsertUpdateDelete(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{}, DefaultPolicy)
	require.NoError(t, c.Insert(day("2024-01-02", false, "cardio")))
	require.NoError(t, c.Insert(day("2024-01-01", false, "strength")))
	require.ErrorIs(t, c.Insert(day("2024-01-01", false, "yoga")), ErrDayExists)
	require.ErrorIs(t, c.Insert(DayWorkout{Date: "01/02/2024"}), ErrInvalidDate)

	p := c.Plan()
	require.Equal(t, "2024-01-01", p.StartDate)
	require.Equal(t, 2, p.TotalDays)

	upd := day("2024-01-02", true, "cardio")
	require.NoError(t, c.Update(upd))
	got, ok := c.Get("2024-01-02")
	require.True(t, ok)
	require.True(t, got.Completed)
	require.ErrorIs(t, c.Update(day("2024-02-01", false, "cardio")), ErrDayNotFound)

	require.NoError(t, c.Delete("2024-01-01"))
	require.ErrorIs(t, c.Delete("2024-01-01"), ErrDayNotFound)
	require.Len(t, c.Days(), 1)
}

func TestCalendar_MoveSwapsOccupiedTarget(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{DailyWorkouts: []DayWorkout{
		day("2024-01-01", true, "strength"),
		day("2024-01-02", false, "cardio"),
	}}, DefaultPolicy)

	require.NoError(t, c.Move("2024-01-01", "2024-01-02"))
	a, _ := c.Get("2024-01-01")
	b, _ := c.Get("2024-01-02")
	require.Equal(t, []Type{TypeCardio}, a.Types)
	require.Equal(t, []Type{TypeStrength}, b.Types)
	require.True(t, b.Completed)

	require.NoError(t, c.Move("2024-01-02", "2024-01-10"))
	_, ok := c.Get("2024-01-02")
	require.False(t, ok)
	require.Equal(t, "2024-01-10", c.Plan().EndDate)

	require.ErrorIs(t, c.Move("2024-03-01", "2024-03-02"), ErrDayNotFound)
	require.ErrorIs(t, c.Move("2024-01-01", "tomorrow"), ErrInvalidDate)
}

func TestCalendar_AddTypeAndRemoveExercise(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{}, DefaultPolicy)
	require.NoError(t, c.AddType("2024-01-01", "strength"))
	require.NoError(t, c.AddType("2024-01-01", "cardio"))
	d, _ := c.Get("2024-01-01")
	require.Equal(t, []Type{TypeStrength, TypeCardio}, d.Types)

	require.NoError(t, c.AddType("2024-01-02", "rest"))
	require.NoError(t, c.AddType("2024-01-03", "rest"))
	require.ErrorIs(t, c.AddType("2024-01-04", "rest"), ErrRestLimit)

	require.NoError(t, c.AddExercise("2024-01-01", Exercise{Name: "a"}))
	require.NoError(t, c.AddExercise("2024-01-01", Exercise{Name: "b"}))
	require.NoError(t, c.RemoveExercise("2024-01-01", 0))
	d, _ = c.Get("2024-01-01")
	require.Equal(t, "b", d.Workouts[0].Name)
	require.Error(t, c.RemoveExercise("2024-01-01", 5))
	require.NoError(t, c.RemoveExercise("2024-01-01", 0))
	_, ok := c.Get("2024-01-01")
	require.False(t, ok, "non-rest day without exercises is deleted")
}

func TestCalendar_ToggleCompletedAndSaver(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{DailyWorkouts: []DayWorkout{day("2024-01-01", false, "strength", "cardio")}}, DefaultPolicy)

	require.NoError(t, c.ToggleCompleted("2024-01-01", "strength"))
	d, _ := c.Get("2024-01-01")
	require.False(t, d.Completed)
	require.NoError(t, c.ToggleCompleted("2024-01-01", "cardio"))
	d, _ = c.Get("2024-01-01")
	require.True(t, d.Completed)
	require.NoError(t, c.ToggleCompleted("2024-01-01", ""))
	d, _ = c.Get("2024-01-01")
	require.False(t, d.Completed)
	require.Empty(t, d.CompletedTypes)
	require.Error(t, c.ToggleCompleted("2024-01-01", "yoga"))

	require.NoError(t, c.MarkStreakSaver("2024-01-02"))
	s, ok := c.Get("2024-01-02")
	require.True(t, ok)
	require.True(t, s.StreakSaver)
	require.True(t, s.IsRest())
}

func TestCalendar_WholeDayEditsFollowPolicy(t *testing.T) {
	t.Parallel()

	rest := func(date string) DayWorkout { return DayWorkout{Date: date, Types: []Type{TypeRest}} }
	c := NewCalendar(Plan{}, DefaultPolicy)

	// 2024-01-01 is a Monday; the ISO week runs to 01-07
	require.NoError(t, c.Insert(rest("2024-01-01")))
	require.NoError(t, c.Insert(rest("2024-01-02")))
	require.ErrorIs(t, c.Insert(rest("2024-01-03")), ErrRestLimit)
	require.ErrorIs(t, c.Upsert(rest("2024-01-04")), ErrRestLimit)
	require.NoError(t, c.Insert(rest("2024-01-08")), "next week has its own quota")

	require.ErrorIs(t, c.Insert(day("2024-01-10", false, TypeRest)), ErrRestExercises)
	require.ErrorIs(t, c.AddExercise("2024-01-01", Exercise{Name: "squat"}), ErrRestExercises)

	require.NoError(t, c.Insert(day("2024-01-05", false, TypeCardio)))
	require.ErrorIs(t, c.Update(rest("2024-01-05")), ErrRestLimit)
	require.NoError(t, c.Move("2024-01-08", "2024-01-09"))
	require.ErrorIs(t, c.Move("2024-01-09", "2024-01-06"), ErrRestLimit, "move may not overfill a week")
	require.NoError(t, c.Move("2024-01-02", "2024-01-05"), "swap inside a week keeps the count")

	var n int
	for _, d := range c.Days() {
		if d.IsRest() && d.Date <= "2024-01-07" {
			n++
		}
	}
	require.Equal(t, 2, n)
}

func TestCalendar_StreakSaverIsNotARestDay(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{}, DefaultPolicy)
	require.NoError(t, c.MarkStreakSaver("2024-01-01"))
	require.NoError(t, c.MarkStreakSaver("2024-01-02"))
	require.Zero(t, RestDaysInWeek(c.Days(), "2024-01-03"))

	require.NoError(t, c.AddType("2024-01-03", TypeRest))
	require.NoError(t, c.Insert(DayWorkout{Date: "2024-01-04", Types: []Type{TypeRest}}))
	require.ErrorIs(t, c.AddType("2024-01-05", TypeRest), ErrRestLimit)
}

func TestCalendar_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	c := NewCalendar(Plan{DailyWorkouts: []DayWorkout{day("2024-01-01", false, "strength")}}, DefaultPolicy)
	d, _ := c.Get("2024-01-01")
	d.Types[0] = TypeYoga
	d.Workouts[0].Name = "mutated"

	again, _ := c.Get("2024-01-01")
	require.Equal(t, TypeStrength, again.Types[0])
	require.Equal(t, "squat", again.Workouts[0].Name)
}
