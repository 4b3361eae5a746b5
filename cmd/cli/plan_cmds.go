package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/convert"
	"github.com/and161185/fitplan/internal/localstore"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/workout"
)

// resolveDate accepts "today", "tomorrow", "yesterday", "+N", "-N" or an ISO date.
func (a *app) resolveDate(s string) (string, error) {
	today := workout.Today(a.now())
	switch s {
	case "", "today":
		return today, nil
	case "tomorrow":
		return workout.AddDays(today, 1)
	case "yesterday":
		return workout.AddDays(today, -1)
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("bad relative date %q", s)
		}
		return workout.AddDays(today, n)
	}
	if _, err := workout.ParseDate(s); err != nil {
		return "", err
	}
	return s, nil
}

// calendar loads the local plan; a missing plan starts empty.
func (a *app) calendar(ctx context.Context) (*workout.Calendar, error) {
	p, err := a.store.LoadWorkoutPlan(ctx)
	if errors.Is(err, localstore.ErrNotFound) {
		p = workout.Plan{ID: "local-" + uuid.Must(uuid.NewV4()).String()}
	} else if err != nil {
		return nil, err
	}
	return workout.NewCalendar(p, workout.DefaultPolicy), nil
}

// edit applies fn to the local calendar, stores the result and schedules a push.
func (a *app) edit(ctx context.Context, fn func(c *workout.Calendar) error) (*workout.Calendar, error) {
	cal, err := a.calendar(ctx)
	if err != nil {
		return nil, err
	}
	if err := fn(cal); err != nil {
		return nil, err
	}
	if err := a.store.SaveWorkoutPlan(ctx, cal.Plan()); err != nil {
		return nil, err
	}
	a.changed()
	return cal, nil
}

func (a *app) profile(ctx context.Context) planner.Profile {
	var p planner.Profile
	_ = a.store.Get(ctx, localstore.KeyAssessment, &p)
	return p
}

var errNoPlan = errors.New("server returned no plan")

// storeRemotePlan keeps a server-produced plan locally without pushing it back.
func (a *app) storeRemotePlan(ctx context.Context, resp *pb.PlanResponse) (workout.Plan, error) {
	plan := convert.FromProtoPlan(resp.GetPlan())
	if plan == nil {
		return workout.Plan{}, errNoPlan
	}
	if err := a.store.SaveWorkoutPlan(ctx, *plan); err != nil {
		return workout.Plan{}, err
	}
	a.patchAccount(ctx, resp.GetSave().GetEnergy(), resp.GetSave().GetStreak())
	return *plan, nil
}

func generateCmd(a *app) *cobra.Command {
	var (
		days        int
		start       string
		profilePath string
		answers     map[string]string
		prof        planner.Profile
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan; completed and past days are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if profilePath != "" {
				b, err := os.ReadFile(profilePath)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(b, &prof); err != nil {
					return fmt.Errorf("profile %s: %w", profilePath, err)
				}
			} else if prof.FitnessLevel == "" && len(prof.Goals) == 0 {
				prof = a.profile(ctx)
			}
			startDate, err := a.resolveDate(start)
			if err != nil {
				return err
			}
			if err := a.store.Put(ctx, localstore.KeyAssessment, prof); err != nil {
				return err
			}
			if len(answers) > 0 {
				if err := a.store.Put(ctx, localstore.KeyQuestionnaire, answers); err != nil {
					return err
				}
			}

			rctx, cancel := a.rpcCtx(ctx)
			defer cancel()
			c, err := a.client(rctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, "generating plan...")
			resp, err := c.GeneratePlan(rctx, convert.ToProtoPlanRequest(planner.PlanRequest{
				Profile:   prof,
				Answers:   answers,
				StartDate: startDate,
				Days:      days,
			}))
			if err != nil {
				return err
			}
			plan, err := a.storeRemotePlan(ctx, resp)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, renderCalendar(plan.DailyWorkouts, workout.Today(a.now())))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&days, "days", planner.DefaultDays, "number of days to plan")
	f.StringVar(&start, "start", "today", "first day of the plan")
	f.StringVar(&profilePath, "profile", "", "profile JSON file")
	f.StringToStringVar(&answers, "answer", nil, "questionnaire answer id=value (repeatable)")
	f.StringVar(&prof.FitnessLevel, "level", "", "fitness level")
	f.StringSliceVar(&prof.Goals, "goals", nil, "goals")
	f.StringSliceVar(&prof.Equipment, "equipment", nil, "available equipment")
	f.StringSliceVar(&prof.Injuries, "injuries", nil, "injuries to work around")
	return cmd
}

func regenDayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regen-day DATE",
		Short: "Regenerate one future, incomplete day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			// local edits must reach the server before it rewrites the plan
			if err := a.sync.Flush(ctx); err != nil {
				return err
			}
			rctx, cancel := a.rpcCtx(ctx)
			defer cancel()
			c, err := a.client(rctx)
			if err != nil {
				return err
			}
			resp, err := c.RegenerateDay(rctx, &pb.RegenerateDayRequest{
				Date:    date,
				Profile: convert.ToProtoProfile(a.profile(ctx)),
			})
			if err != nil {
				return err
			}
			plan, err := a.storeRemotePlan(ctx, resp)
			if err != nil {
				return err
			}
			day, _ := plan.Day(date)
			fmt.Fprint(a.out, renderCalendar([]workout.DayWorkout{day}, workout.Today(a.now())))
			return nil
		},
	}
}

func showCmd(a *app) *cobra.Command {
	var (
		from string
		days int
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the local calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cal, err := a.calendar(cmd.Context())
			if err != nil {
				return err
			}
			start, err := a.resolveDate(from)
			if err != nil {
				return err
			}
			var shown []workout.DayWorkout
			for _, d := range cal.Days() {
				if d.Date < start {
					continue
				}
				if days > 0 && len(shown) == days {
					break
				}
				shown = append(shown, d)
			}
			if len(shown) == 0 {
				fmt.Fprintln(a.out, "no workouts scheduled")
				return nil
			}
			fmt.Fprint(a.out, renderCalendar(shown, workout.Today(a.now())))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "today", "first date to show")
	cmd.Flags().IntVar(&days, "days", 7, "number of scheduled days to show; 0 shows all")
	return cmd
}

func addCmd(a *app) *cobra.Command {
	var (
		typ  string
		ex   workout.Exercise
		sets int
	)
	cmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add a workout type and optionally an exercise to a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			if sets > 0 {
				ex.Sets = &sets
			}
			_, err = a.edit(cmd.Context(), func(c *workout.Calendar) error {
				if err := c.AddType(date, workout.Type(typ)); err != nil {
					return err
				}
				if ex.Name == "" {
					return nil
				}
				return c.AddExercise(date, ex)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "added %s on %s\n", typ, date)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&typ, "type", "t", string(workout.TypeStrength), "workout type")
	f.StringVarP(&ex.Name, "exercise", "e", "", "exercise name")
	f.StringVar(&ex.Duration, "duration", "", "exercise duration, e.g. 30 min")
	f.StringVar(&ex.Reps, "reps", "", "reps, e.g. 10-12")
	f.IntVar(&sets, "sets", 0, "sets")
	f.StringVar(&ex.Rest, "rest", "", "rest between sets")
	f.StringVar(&ex.Difficulty, "difficulty", "", "beginner, intermediate or advanced")
	return cmd
}

func moveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move a day; an occupied target swaps with it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			to, err := a.resolveDate(args[1])
			if err != nil {
				return err
			}
			if _, err := a.edit(cmd.Context(), func(c *workout.Calendar) error { return c.Move(from, to) }); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "moved %s -> %s\n", from, to)
			return nil
		},
	}
}

func addTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-type DATE TYPE",
		Short: "Merge a workout type into a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			cal, err := a.edit(cmd.Context(), func(c *workout.Calendar) error {
				return c.AddType(date, workout.Type(args[1]))
			})
			if err != nil {
				return err
			}
			d, _ := cal.Get(date)
			fmt.Fprintf(a.out, "%s: %s\n", date, joinTypes(d.Types))
			return nil
		},
	}
}

func rmExerciseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm-exercise DATE INDEX",
		Short: "Remove the INDEX-th exercise (1-based) from a day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil || idx < 1 {
				return fmt.Errorf("bad index %q", args[1])
			}
			cal, err := a.edit(cmd.Context(), func(c *workout.Calendar) error {
				return c.RemoveExercise(date, idx-1)
			})
			if err != nil {
				return err
			}
			if _, ok := cal.Get(date); !ok {
				fmt.Fprintf(a.out, "%s removed (no exercises left)\n", date)
				return nil
			}
			fmt.Fprintf(a.out, "removed exercise %d from %s\n", idx, date)
			return nil
		},
	}
}

func doneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done DATE [TYPE]",
		Short: "Toggle completion of a day or of one of its types",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			var t workout.Type
			if len(args) == 2 {
				t = workout.Type(strings.ToLower(args[1]))
			}
			cal, err := a.edit(cmd.Context(), func(c *workout.Calendar) error { return c.ToggleCompleted(date, t) })
			if err != nil {
				return err
			}
			d, _ := cal.Get(date)
			state := "not done"
			if d.Completed {
				state = "done"
			}
			fmt.Fprintf(a.out, "%s %s, streak %d\n", date, state, workout.Streak(cal.Days(), workout.Today(a.now())))
			return nil
		},
	}
}

func streakCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak from the local calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cal, err := a.calendar(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "streak: %d\n", workout.Streak(cal.Days(), workout.Today(a.now())))
			return nil
		},
	}
}
