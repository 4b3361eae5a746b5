package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/workout"
)

func newPlanSvc(t *testing.T, st *store, gen PlanGenerator, today string) *PlanServiceImpl {
	t.Helper()
	prog := newProgressSvc(t, st, today)
	s := NewPlanService(gen, prog, zaptest.NewLogger(t))
	s.now = clock(today)
	return s
}

func TestPlan_Generate_MergesWithStored(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	st.progress[u.ID] = model.Progress{WorkoutPlan: planOf(
		day("2024-01-01", true, workout.TypeStrength),
		day("2024-01-02", false, workout.TypeCardio),
	)}

	fresh := *planOf(
		day("2024-01-01", false, workout.TypeYoga),
		day("2024-01-02", false, workout.TypeHIIT),
		day("2024-01-03", false, workout.TypeMobility),
	)
	gen := &fakeGen{plan: fresh}
	s := newPlanSvc(t, st, gen, "2024-01-01")

	plan, res, err := s.Generate(context.Background(), u.ID, planner.PlanRequest{Days: 3})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.Version)

	d1, _ := plan.Day("2024-01-01")
	require.Equal(t, []workout.Type{workout.TypeStrength}, d1.Types, "completed day kept")
	require.True(t, d1.Completed)
	d2, _ := plan.Day("2024-01-02")
	require.Equal(t, []workout.Type{workout.TypeHIIT}, d2.Types, "future day replaced")
	require.Equal(t, 3, plan.TotalDays)
	require.Equal(t, 1, res.Streak)

	stored := st.progress[u.ID].WorkoutPlan
	require.Equal(t, plan.DailyWorkouts, stored.DailyWorkouts)
}

func TestPlan_Generate_NoStoredProgress(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	gen := &fakeGen{plan: *planOf(day("2024-01-02", false, workout.TypeCardio))}
	s := newPlanSvc(t, st, gen, "2024-01-01")

	plan, _, err := s.Generate(context.Background(), u.ID, planner.PlanRequest{Days: 1})
	require.NoError(t, err)
	require.Equal(t, "2024-01-02", plan.StartDate)

	gen.err = errs.ErrGenerationFailed
	_, _, err = s.Generate(context.Background(), u.ID, planner.PlanRequest{Days: 1})
	require.ErrorIs(t, err, errs.ErrGenerationFailed)
	require.Equal(t, 1, st.saveCalls, "failed generation leaves storage untouched")
}

func TestPlan_Generate_ConcurrentCallsShareOneGeneration(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	gen := &fakeGen{
		plan:    *planOf(day("2024-01-02", false, workout.TypeCardio)),
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := newPlanSvc(t, st, gen, "2024-01-01")

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	call := func() {
		defer wg.Done()
		_, _, err := s.Generate(context.Background(), u.ID, planner.PlanRequest{Days: 1})
		errCh <- err
	}
	wg.Add(2)
	go call()
	<-gen.started
	go call()
	time.Sleep(100 * time.Millisecond)
	close(gen.release)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), gen.calls.Load())
	require.Equal(t, 1, st.saveCalls)
}

func TestPlan_Generate_OverlappingRequestIsLocked(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	gen := &fakeGen{started: make(chan struct{}, 1), release: make(chan struct{})}
	s := newPlanSvc(t, st, gen, "2024-01-01")
	ctx := context.Background()

	type result struct {
		plan workout.Plan
		err  error
	}
	first := make(chan result, 1)
	go func() {
		plan, _, err := s.Generate(ctx, u.ID, planner.PlanRequest{StartDate: "2024-01-02", Days: 1})
		first <- result{plan, err}
	}()
	<-gen.started

	_, _, err := s.Generate(ctx, u.ID, planner.PlanRequest{StartDate: "2024-01-09", Days: 1})
	require.ErrorIs(t, err, errs.ErrLocked)
	_, _, err = s.RegenerateDay(ctx, u.ID, "2024-01-03", planner.Profile{})
	require.ErrorIs(t, err, errs.ErrLocked, "day regeneration waits for the plan too")

	close(gen.release)
	r := <-first
	require.NoError(t, r.err)
	require.Equal(t, "2024-01-02", r.plan.StartDate, "first caller gets its own request")

	plan, _, err := s.Generate(ctx, u.ID, planner.PlanRequest{StartDate: "2024-01-09", Days: 1})
	require.NoError(t, err)
	_, ok := plan.Day("2024-01-09")
	require.True(t, ok)
	require.Equal(t, int32(2), gen.calls.Load())
	require.Equal(t, "2024-01-09", gen.reqs[1].StartDate)
}

func TestPlan_Generate_CancelledCallerDoesNotFailOthers(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	gen := &fakeGen{started: make(chan struct{}, 1), release: make(chan struct{})}
	s := newPlanSvc(t, st, gen, "2024-01-01")
	req := planner.PlanRequest{StartDate: "2024-01-02", Days: 1}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, _, err := s.Generate(ctxA, u.ID, req)
		errA <- err
	}()
	<-gen.started

	errB := make(chan error, 1)
	go func() {
		_, _, err := s.Generate(context.Background(), u.ID, req)
		errB <- err
	}()
	time.Sleep(100 * time.Millisecond)

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)
	close(gen.release)
	require.NoError(t, <-errB)
	require.Equal(t, int32(1), gen.calls.Load())

	stored := st.progress[u.ID].WorkoutPlan
	require.NotNil(t, stored)
	require.Equal(t, "2024-01-02", stored.StartDate)
}

func TestPlan_RegenerateDay(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	st.progress[u.ID] = model.Progress{WorkoutPlan: planOf(
		day("2024-01-01", false, workout.TypeStrength),
		day("2024-01-02", false, workout.TypeCardio),
		day("2024-01-03", true, workout.TypeYoga),
	)}
	gen := &fakeGen{day: workout.DayWorkout{
		Types:    []workout.Type{workout.TypeHIIT},
		Workouts: []workout.Exercise{{Name: "burpees"}},
	}}
	s := newPlanSvc(t, st, gen, "2024-01-01")
	ctx := context.Background()

	for _, date := range []string{"2023-12-31", "2024-01-01", "2024-01-03"} {
		_, _, err := s.RegenerateDay(ctx, u.ID, date, planner.Profile{})
		require.ErrorIs(t, err, errs.ErrLocked, date)
	}
	require.Zero(t, gen.calls.Load(), "locked days never reach the model")

	_, _, err := s.RegenerateDay(ctx, u.ID, "soon", planner.Profile{})
	require.ErrorIs(t, err, errs.ErrValidation)

	plan, _, err := s.RegenerateDay(ctx, u.ID, "2024-01-02", planner.Profile{})
	require.NoError(t, err)
	d, ok := plan.Day("2024-01-02")
	require.True(t, ok)
	require.Equal(t, "burpees", d.Workouts[0].Name)
	require.Equal(t, 3, plan.TotalDays)

	plan, _, err = s.RegenerateDay(ctx, u.ID, "2024-01-05", planner.Profile{})
	require.NoError(t, err, "a free future date is filled")
	require.Equal(t, 4, plan.TotalDays)
}

func TestPlan_RegenerateDay_NoPlan(t *testing.T) {
	t.Parallel()
	st := newStore()
	u := st.addUser("alice", 0)
	s := newPlanSvc(t, st, &fakeGen{}, "2024-01-01")

	_, _, err := s.RegenerateDay(context.Background(), u.ID, "2024-01-02", planner.Profile{})
	require.True(t, errors.Is(err, errs.ErrNotFound))

	st.progress[u.ID] = model.Progress{AcceptedTerms: true}
	_, _, err = s.RegenerateDay(context.Background(), u.ID, "2024-01-02", planner.Profile{})
	require.ErrorIs(t, err, errs.ErrNotFound)
}
