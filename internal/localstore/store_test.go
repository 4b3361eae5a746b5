package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/fitplan/internal/events"
	"github.com/and161185/fitplan/internal/workout"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func openStore(t *testing.T, dir string, bus Publisher, c *clock) *Store {
	t.Helper()
	opts := []Option{WithLogger(zaptest.NewLogger(t))}
	if c != nil {
		opts = append(opts, WithClock(c.now))
	}
	s, err := Open(context.Background(), dir, bus, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

type session struct {
	Token string `json:"token"`
	User  string `json:"user"`
}

func TestStore_PutGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bus := events.NewBus(8)
	defer bus.Close()
	ch, cancel := bus.Subscribe(events.TopicKeyChanged)
	defer cancel()

	s := openStore(t, t.TempDir(), bus, nil)

	var got session
	require.ErrorIs(t, s.Get(ctx, KeySession, &got), ErrNotFound)

	require.NoError(t, s.Put(ctx, KeySession, session{Token: "t", User: "ann"}))
	require.Equal(t, events.KeyChanged(KeySession), <-ch)

	require.NoError(t, s.Get(ctx, KeySession, &got))
	require.Equal(t, session{Token: "t", User: "ann"}, got)

	require.NoError(t, s.Delete(ctx, KeySession))
	require.Equal(t, events.KeyChanged(KeySession), <-ch)
	require.ErrorIs(t, s.Get(ctx, KeySession, &got), ErrNotFound)
}

func TestStore_ExpiryPerKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := openStore(t, t.TempDir(), nil, c)

	require.NoError(t, s.Put(ctx, KeyQuestionnaire, map[string]int{"step": 3}))
	require.NoError(t, s.Put(ctx, KeyWorkoutPlan, workout.Plan{ID: "p"}))
	require.NoError(t, s.Put(ctx, "scratch", 1))

	c.t = c.t.Add(25 * time.Hour)

	var q map[string]int
	require.ErrorIs(t, s.Get(ctx, KeyQuestionnaire, &q), ErrNotFound, "questionnaire lives 24h")
	var n int
	require.ErrorIs(t, s.Get(ctx, "scratch", &n), ErrNotFound, "unknown keys live 24h")
	var p workout.Plan
	require.NoError(t, s.Get(ctx, KeyWorkoutPlan, &p), "plans live 30 days")

	c.t = c.t.Add(30 * 24 * time.Hour)
	require.ErrorIs(t, s.Get(ctx, KeyWorkoutPlan, &p), ErrNotFound)

	// expired rows are removed, not just hidden
	var rows int
	require.NoError(t, s.db.QueryRow(`SELECT count(*) FROM kv`).Scan(&rows))
	require.Zero(t, rows)
}

func TestTTL(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7*24*time.Hour, TTL(KeySession))
	require.Equal(t, 30*24*time.Hour, TTL(KeyAssessment))
	require.Equal(t, 7*24*time.Hour, TTL(KeyChatHistory))
	require.Equal(t, 24*time.Hour, TTL("whatever"))
}

func TestStore_UnreadableValueDropped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, t.TempDir(), nil, nil)

	for _, raw := range []string{`not json`, `{"timestamp":1}`, `{"data":"text","timestamp":1}`} {
		_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES ('account', ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value`, raw)
		require.NoError(t, err)

		var v struct{ Energy int }
		require.ErrorIs(t, s.Get(ctx, KeyAccount, &v), ErrNotFound, raw)

		var rows int
		require.NoError(t, s.db.QueryRow(`SELECT count(*) FROM kv WHERE key='account'`).Scan(&rows))
		require.Zero(t, rows, raw)
	}
}

func TestStore_PutRejectsUnencodable(t *testing.T) {
	t.Parallel()

	s := openStore(t, t.TempDir(), nil, nil)
	require.Error(t, s.Put(context.Background(), "bad", make(chan int)))
}

func TestStore_WorkoutPlanRoundTripIsNormalized(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, t.TempDir(), nil, nil)
	sets := 3
	in := workout.Plan{
		ID: "plan-1",
		DailyWorkouts: []workout.DayWorkout{
			{Date: "2026-03-03", Types: []workout.Type{"Cardio", "strength", "cardio"}},
			{Date: "2026-03-02", Types: []workout.Type{"rest", "yoga"}},
			{Date: "2026-03-04", Types: []workout.Type{"strength"}, Workouts: []workout.Exercise{
				{Name: "Squat", Sets: &sets, Duration: "10 min"},
			}},
		},
	}

	require.NoError(t, s.SaveWorkoutPlan(ctx, in))
	got, err := s.LoadWorkoutPlan(ctx)
	require.NoError(t, err)

	want := workout.NormalizePlan(in)
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "2026-03-02", got.StartDate)
	require.Equal(t, 3, got.TotalDays)
}

func TestStore_ClearRemovesAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := openStore(t, t.TempDir(), nil, nil)
	require.NoError(t, s.Put(ctx, KeySession, session{Token: "x"}))
	require.NoError(t, s.Put(ctx, KeyAccount, 1))
	require.NoError(t, s.Clear(ctx))

	var v session
	require.ErrorIs(t, s.Get(ctx, KeySession, &v), ErrNotFound)
}

func TestStore_WatchSeesOtherWriters(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bus := events.NewBus(32)
	defer bus.Close()
	ext, cancel := bus.Subscribe(events.TopicExternalChange)
	defer cancel()

	mine := openStore(t, dir, bus, nil)
	other := openStore(t, dir, nil, nil)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- mine.Watch(ctx) }()
	t.Cleanup(func() {
		stop()
		<-done
	})

	require.Eventually(t, func() bool {
		if err := other.Put(context.Background(), KeyWorkoutPlan, workout.Plan{ID: "remote"}); err != nil {
			return false
		}
		select {
		case <-ext:
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	var p workout.Plan
	require.NoError(t, mine.Get(context.Background(), KeyWorkoutPlan, &p))
	require.Equal(t, "remote", p.ID)
}
