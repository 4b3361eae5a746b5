package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/localstore"
)

// session is the cached login.
type session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
	UserID    string    `json:"userId"`
}

var errNoSession = errors.New("not logged in (run: fitplan login)")

func (a *app) session(ctx context.Context) (session, error) {
	var s session
	err := a.store.Get(ctx, localstore.KeySession, &s)
	if errors.Is(err, localstore.ErrNotFound) || (err == nil && (s.Token == "" || a.now().After(s.ExpiresAt))) {
		return session{}, errNoSession
	}
	return s, err
}

func (a *app) loggedIn(ctx context.Context) bool {
	_, err := a.session(ctx)
	return err == nil
}

// saveAccount caches the account in its protobuf JSON form.
func (a *app) saveAccount(ctx context.Context, acc *pb.Account) error {
	b, err := protojson.Marshal(acc)
	if err != nil {
		return err
	}
	return a.store.Put(ctx, localstore.KeyAccount, json.RawMessage(b))
}

func (a *app) cachedAccount(ctx context.Context) (*pb.Account, error) {
	var raw json.RawMessage
	if err := a.store.Get(ctx, localstore.KeyAccount, &raw); err != nil {
		return nil, err
	}
	acc := &pb.Account{}
	if err := protojson.Unmarshal(raw, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// patchAccount updates the cached balance after a save.
func (a *app) patchAccount(ctx context.Context, energy int64, streak int32) {
	acc, err := a.cachedAccount(ctx)
	if err != nil {
		return
	}
	acc.Energy, acc.Streak = energy, streak
	_ = a.saveAccount(ctx, acc)
}

func credentialsFlags(cmd *cobra.Command, user, pass *string) {
	cmd.Flags().StringVarP(user, "username", "u", "", "username")
	cmd.Flags().StringVarP(pass, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

func registerCmd(a *app) *cobra.Command {
	var user, pass string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.clientWithToken(ctx, "")
			if err != nil {
				return err
			}
			resp, err := c.Register(ctx, &pb.RegisterRequest{Username: user, Password: pass})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, resp.GetUserId())
			return nil
		},
	}
	credentialsFlags(cmd, &user, &pass)
	return cmd
}

func loginCmd(a *app) *cobra.Command {
	var user, pass string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and pull the stored calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.clientWithToken(ctx, "")
			if err != nil {
				return err
			}
			resp, err := c.Login(ctx, &pb.LoginRequest{Username: user, Password: pass})
			if err != nil {
				return err
			}
			acc := resp.GetAccount()
			sess := session{
				Token:     resp.GetAccessToken(),
				ExpiresAt: resp.GetExpiresAt().AsTime(),
				Username:  acc.GetUsername(),
				UserID:    acc.GetId(),
			}
			if err := a.store.Put(ctx, localstore.KeySession, sess); err != nil {
				return err
			}
			if err := a.saveAccount(ctx, acc); err != nil {
				return err
			}
			authed, err := a.clientWithToken(ctx, resp.GetAccessToken())
			if err != nil {
				return err
			}
			if err := a.pull(ctx, authed); err != nil {
				fmt.Fprintf(a.out, "warning: could not load saved progress: %s\n", describe(err))
			}
			fmt.Fprintf(a.out, "logged in as %s (energy %d, streak %d)\n",
				acc.GetUsername(), acc.GetEnergy(), acc.GetStreak())
			return nil
		},
	}
	credentialsFlags(cmd, &user, &pass)
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session and local data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "logged out")
			return nil
		},
	}
}

func meCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show account, balance and inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			acc, err := c.Me(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			if err := a.saveAccount(ctx, acc); err != nil {
				return err
			}
			fmt.Fprint(a.out, renderAccount(acc))
			return nil
		},
	}
}
