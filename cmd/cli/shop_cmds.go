package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/workout"
)

func (a *app) ownedItems(ctx context.Context) map[string]int64 {
	acc, err := a.cachedAccount(ctx)
	if err != nil {
		return nil
	}
	owned := make(map[string]int64, len(acc.GetInventory()))
	for _, it := range acc.GetInventory() {
		owned[it.GetSku()] = it.GetQuantity()
	}
	return owned
}

func shopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "List items for sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.clientWithToken(ctx, "")
			if err != nil {
				return err
			}
			resp, err := c.Catalog(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, renderCatalog(resp.GetItems(), a.ownedItems(ctx)))
			return nil
		},
	}
}

func buyCmd(a *app) *cobra.Command {
	var qty int64
	cmd := &cobra.Command{
		Use:   "buy SKU",
		Short: "Spend energy on an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			resp, err := c.Purchase(ctx, &pb.PurchaseRequest{Sku: args[0], Quantity: qty})
			if err != nil {
				return err
			}
			if err := a.saveAccount(ctx, resp.GetAccount()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "bought %s, energy left %d\n", args[0], resp.GetAccount().GetEnergy())
			return nil
		},
	}
	cmd.Flags().Int64VarP(&qty, "qty", "n", 1, "quantity")
	return cmd
}

func saveStreakCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save-streak DATE",
		Short: "Use a streak saver on a missed past day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.resolveDate(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			// the server marks its own copy, so it must have ours first
			if err := a.sync.Flush(ctx); err != nil {
				return err
			}
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			res, err := c.UseStreakSaver(ctx, &pb.UseStreakSaverRequest{Date: date})
			if err != nil {
				return err
			}
			cal, err := a.calendar(ctx)
			if err != nil {
				return err
			}
			if err := cal.MarkStreakSaver(date); err == nil {
				if err := a.store.SaveWorkoutPlan(ctx, cal.Plan()); err != nil {
					return err
				}
			}
			a.patchAccount(ctx, res.GetEnergy(), res.GetStreak())
			fmt.Fprintf(a.out, "streak saved on %s, streak %d\n", date, workout.Streak(cal.Days(), workout.Today(a.now())))
			return nil
		},
	}
}

func diagCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Server diagnostics (admins only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.rpcCtx(cmd.Context())
			defer cancel()
			c, err := a.client(ctx)
			if err != nil {
				return err
			}
			d, err := c.Diagnostics(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			if asJSON {
				printJSON(a.out, d)
				return nil
			}
			fmt.Fprint(a.out, renderDiagnostics(d))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON")
	return cmd
}
