// Package grpcserver exposes the fitplan gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/convert"
	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/service"
)

// PublicMethods can be called without a bearer token.
var PublicMethods = map[string]bool{
	pb.FitPlan_Register_FullMethodName: true,
	pb.FitPlan_Login_FullMethodName:    true,
	pb.FitPlan_Catalog_FullMethodName:  true,
}

// Services groups the use cases served over gRPC.
type Services struct {
	Auth     service.AuthService
	Progress service.ProgressService
	Plans    service.PlanService
	Shop     service.ShopService
	Admin    service.AdminService
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedFitPlanServer
	svc Services
}

// New constructs a gRPC server with injected services.
func New(svc Services) *Server {
	return &Server{svc: svc}
}

func callerID(ctx context.Context) (uuid.UUID, error) {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	return id, nil
}

// --- Auth ---

// Register creates a new user account.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty username/password")
	}
	userID, err := s.svc.Auth.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, toStatus("register", err)
	}
	return &pb.RegisterResponse{UserId: userID}, nil
}

// Login authenticates a user and returns a token with the account snapshot.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tok, u, err := s.svc.Auth.LoginWithIP(ctx, req.GetUsername(), req.GetPassword(), remoteAddr(ctx))
	if err != nil {
		return nil, toStatus("login", err)
	}
	acc, err := s.svc.Auth.Me(ctx, u.ID)
	if err != nil {
		return nil, toStatus("login", err)
	}
	return &pb.LoginResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   timestamppb.New(tok.ExpiresAt),
		Account:     convert.ToProtoAccount(acc),
	}, nil
}

// Me returns the caller's account.
func (s *Server) Me(ctx context.Context, _ *emptypb.Empty) (*pb.Account, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	acc, err := s.svc.Auth.Me(ctx, uid)
	if err != nil {
		return nil, toStatus("me", err)
	}
	return convert.ToProtoAccount(acc), nil
}

// --- Progress ---

// SaveProgress stores the caller's payload.
func (s *Server) SaveProgress(ctx context.Context, req *pb.SaveProgressRequest) (*pb.SaveProgressResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Progress.Save(ctx, uid, convert.FromProtoProgress(req.GetProgress()))
	if err != nil {
		return nil, toStatus("save progress", err)
	}
	return convert.ToProtoSave(res), nil
}

// LoadProgress returns the caller's payload; a user who never saved gets an
// empty payload at version 0.
func (s *Server) LoadProgress(ctx context.Context, _ *emptypb.Empty) (*pb.LoadProgressResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Progress.Load(ctx, uid)
	if errors.Is(err, errs.ErrNotFound) {
		return &pb.LoadProgressResponse{Progress: &pb.Progress{}}, nil
	}
	if err != nil {
		return nil, toStatus("load progress", err)
	}
	return &pb.LoadProgressResponse{Progress: convert.ToProtoProgress(*p)}, nil
}

// --- Plans ---

// GeneratePlan builds a new plan and merges it into the stored calendar.
func (s *Server) GeneratePlan(ctx context.Context, req *pb.GeneratePlanRequest) (*pb.PlanResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	plan, res, err := s.svc.Plans.Generate(ctx, uid, convert.FromProtoPlanRequest(req))
	if err != nil {
		return nil, toStatus("generate plan", err)
	}
	return &pb.PlanResponse{Plan: convert.ToProtoPlan(&plan), Save: convert.ToProtoSave(res)}, nil
}

// RegenerateDay replaces one future day of the stored plan.
func (s *Server) RegenerateDay(ctx context.Context, req *pb.RegenerateDayRequest) (*pb.PlanResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetDate() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty date")
	}
	plan, res, err := s.svc.Plans.RegenerateDay(ctx, uid, req.GetDate(), convert.FromProtoProfile(req.GetProfile()))
	if err != nil {
		return nil, toStatus("regenerate day", err)
	}
	return &pb.PlanResponse{Plan: convert.ToProtoPlan(&plan), Save: convert.ToProtoSave(res)}, nil
}

// --- Shop ---

// Catalog lists items for sale.
func (s *Server) Catalog(context.Context, *emptypb.Empty) (*pb.CatalogResponse, error) {
	return &pb.CatalogResponse{Items: convert.ToProtoShopItems(s.svc.Shop.Catalog())}, nil
}

// Purchase buys items for energy; a zero quantity means one.
func (s *Server) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	qty := req.GetQuantity()
	if qty == 0 {
		qty = 1
	}
	acc, err := s.svc.Shop.Purchase(ctx, uid, req.GetSku(), qty)
	if err != nil {
		return nil, toStatus("purchase", err)
	}
	return &pb.PurchaseResponse{Account: convert.ToProtoAccount(acc)}, nil
}

// UseStreakSaver bridges a missed past day.
func (s *Server) UseStreakSaver(ctx context.Context, req *pb.UseStreakSaverRequest) (*pb.SaveProgressResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Shop.UseStreakSaver(ctx, uid, req.GetDate())
	if err != nil {
		return nil, toStatus("use streak saver", err)
	}
	return convert.ToProtoSave(res), nil
}

// --- Admin ---

// Diagnostics reports server state to admins.
func (s *Server) Diagnostics(ctx context.Context, _ *emptypb.Empty) (*pb.DiagnosticsResponse, error) {
	uid, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.svc.Admin.Diagnostics(ctx, uid)
	if err != nil {
		return nil, toStatus("diagnostics", err)
	}
	return convert.ToProtoDiagnostics(d), nil
}
