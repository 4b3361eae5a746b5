package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/convert"
	"github.com/and161185/fitplan/internal/events"
	"github.com/and161185/fitplan/internal/localstore"
	"github.com/and161185/fitplan/internal/model"
)

// consents is the locally stored acceptance state.
type consents struct {
	Terms   bool `json:"terms"`
	Privacy bool `json:"privacy"`
}

// snapshotter builds the remote payload from the local store.
type snapshotter struct{ a *app }

func (s snapshotter) Snapshot(ctx context.Context) (*pb.Progress, error) {
	var p model.Progress
	plan, err := s.a.store.LoadWorkoutPlan(ctx)
	switch {
	case err == nil:
		p.WorkoutPlan = &plan
	case !errors.Is(err, localstore.ErrNotFound):
		return nil, err
	}
	p.AssessmentData = s.raw(ctx, localstore.KeyAssessment)
	p.QuestionnaireProgress = s.raw(ctx, localstore.KeyQuestionnaire)
	p.ChatHistory = s.raw(ctx, localstore.KeyChatHistory)
	var c consents
	if s.a.store.Get(ctx, localstore.KeyConsents, &c) == nil {
		p.AcceptedTerms, p.AcceptedPrivacy = c.Terms, c.Privacy
	}
	return convert.ToProtoProgress(p), nil
}

func (s snapshotter) raw(ctx context.Context, key string) json.RawMessage {
	var m json.RawMessage
	if s.a.store.Get(ctx, key, &m) != nil {
		return nil
	}
	return m
}

// pusher saves the payload on the server.
type pusher struct{ a *app }

func (p pusher) Push(ctx context.Context, pr *pb.Progress) error {
	c, err := p.a.client(ctx)
	if err != nil {
		return err
	}
	res, err := c.SaveProgress(ctx, &pb.SaveProgressRequest{Progress: pr})
	if err != nil {
		return err
	}
	p.a.patchAccount(ctx, res.GetEnergy(), res.GetStreak())
	p.a.log.Debug("progress saved", zap.Int64("version", res.GetVersion()))
	if res.GetEnergyAwarded() > 0 {
		msg := fmt.Sprintf("+%d energy (total %d, streak %d)", res.GetEnergyAwarded(), res.GetEnergy(), res.GetStreak())
		if res.GetDoubledEnergy() {
			msg += " x2"
		}
		fmt.Fprintln(p.a.out, msg)
	}
	return nil
}

// pull replaces local synced state with the server copy.
func (a *app) pull(ctx context.Context, c pb.FitPlanClient) error {
	resp, err := c.LoadProgress(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	p := convert.FromProtoStoredProgress(resp.GetProgress())
	if p.WorkoutPlan != nil {
		if err := a.store.SaveWorkoutPlan(ctx, *p.WorkoutPlan); err != nil {
			return err
		}
	}
	for key, raw := range map[string]json.RawMessage{
		localstore.KeyAssessment:    p.AssessmentData,
		localstore.KeyQuestionnaire: p.QuestionnaireProgress,
		localstore.KeyChatHistory:   p.ChatHistory,
	} {
		if len(raw) == 0 {
			continue
		}
		if err := a.store.Put(ctx, key, raw); err != nil {
			return err
		}
	}
	return a.store.Put(ctx, localstore.KeyConsents, consents{Terms: p.AcceptedTerms, Privacy: p.AcceptedPrivacy})
}

func syncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push local progress to the server now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			a.sync.Trigger()
			if err := a.sync.Flush(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "synced")
			return nil
		},
	}
}

func pullCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace local progress with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			if err := a.pull(ctx, c); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "pulled")
			return nil
		},
	}
}

func watchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync changes made by other fitplan processes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.session(cmd.Context()); err != nil {
				return err
			}
			ext, cancel := a.bus.Subscribe(events.TopicExternalChange)
			defer cancel()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error { return a.store.Watch(ctx) })
			g.Go(func() error { return a.sync.Run(ctx, a.bus) })
			g.Go(func() error {
				for {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case _, ok := <-ext:
						if !ok {
							return nil
						}
						fmt.Fprintln(a.out, "local data changed by another process; syncing")
					}
				}
			})
			fmt.Fprintf(a.out, "watching %s (Ctrl-C to stop)\n", a.store.Dir())
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
