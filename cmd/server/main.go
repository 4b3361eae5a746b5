// Command fitplan-server starts the fitplan gRPC server.
package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/config"
	"github.com/and161185/fitplan/internal/limiter"
	"github.com/and161185/fitplan/internal/migrate"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/repository/postgres"
	grpcserver "github.com/and161185/fitplan/internal/server/grpc"
	"github.com/and161185/fitplan/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const shutdownGrace = 5 * time.Second

// main loads configuration, runs migrations and serves until SIGINT/SIGTERM.
func main() {
	cfg, err := config.LoadServer(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("model", cfg.GenAIModel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func run(ctx context.Context, cfg config.Server, logger *zap.Logger) error {
	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		return err
	}

	db, err := postgres.New(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	// Repositories
	users := postgres.NewUserRepo(db)
	progressRepo := postgres.NewProgressRepo(db)
	inventory := postgres.NewInventoryRepo(db)
	lim := limiter.NewPG(db.Pool, cfg.Limiter)

	// Text model
	model, err := planner.NewGenAIModel(ctx, cfg.GenAIKey, cfg.GenAIModel, cfg.Temperature)
	if err != nil {
		return err
	}
	gen := planner.NewGenerator(model, logger.Named("planner"))

	// Services
	authSvc := service.NewAuthService(users, inventory, []byte(cfg.JWTKey), cfg.AccessTTL, lim)
	authSvc.SetAdmins(cfg.Admins...)
	progressSvc := service.NewProgressService(users, progressRepo, logger.Named("progress"))
	app := grpcserver.New(grpcserver.Services{
		Auth:     authSvc,
		Progress: progressSvc,
		Plans:    service.NewPlanService(gen, progressSvc, logger.Named("plans")),
		Shop:     service.NewShopService(users, inventory, progressSvc, logger.Named("shop")),
		Admin:    service.NewAdminService(users, progressRepo, version, model.Name()),
	})

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary([]byte(cfg.JWTKey), grpcserver.PublicMethods),
		),
	}
	if !cfg.Dev {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return err
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := grpc.NewServer(opts...)
	pb.RegisterFitPlanServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	hs.SetServingStatus(pb.FitPlan_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", lis.Addr().String()), zap.Bool("tls", !cfg.Dev))
		return s.Serve(lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		hs.Shutdown()
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			s.Stop()
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
