package grpcserver

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/convert"
	"github.com/and161185/fitplan/internal/errs"
	"github.com/and161185/fitplan/internal/model"
	"github.com/and161185/fitplan/internal/planner"
	"github.com/and161185/fitplan/internal/workout"
)

type fakeAuth struct {
	t  *testing.T
	id uuid.UUID
}

func (f *fakeAuth) Register(_ context.Context, username, _ string) (string, error) {
	if username == "taken" {
		return "", errs.ErrAlreadyExists
	}
	return f.id.String(), nil
}

func (f *fakeAuth) LoginWithIP(_ context.Context, _, password, ip string) (model.Tokens, model.User, error) {
	if ip == "" {
		f.t.Errorf("peer address not passed to login")
	}
	if password != "secret1" {
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}
	exp := time.Now().Add(time.Hour)
	tok := makeJWT(f.t, f.id.String(), testKey, jwt.SigningMethodHS256, time.Now(), time.Hour)
	return model.Tokens{AccessToken: tok, ExpiresAt: exp}, model.User{ID: f.id}, nil
}

func (f *fakeAuth) Me(_ context.Context, id uuid.UUID) (model.Account, error) {
	return model.Account{
		User:      model.User{ID: id, Username: "ann", Energy: 70, Avatar: "default"},
		Inventory: []model.InventoryItem{{SKU: "streak_saver", Quantity: 1}},
	}, nil
}

type fakeProgress struct {
	mu    sync.Mutex
	saved map[uuid.UUID]model.Progress
}

func (f *fakeProgress) Save(_ context.Context, id uuid.UUID, p model.Progress) (model.SaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.Version = f.saved[id].Version + 1
	f.saved[id] = p
	return model.SaveResult{Version: p.Version, Energy: 10, EnergyAwarded: 10}, nil
}

func (f *fakeProgress) SaveSpending(ctx context.Context, id uuid.UUID, p model.Progress, _ string) (model.SaveResult, error) {
	return f.Save(ctx, id, p)
}

func (f *fakeProgress) Load(_ context.Context, id uuid.UUID) (*model.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.saved[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

type fakePlans struct{}

func (fakePlans) Generate(_ context.Context, _ uuid.UUID, req planner.PlanRequest) (workout.Plan, model.SaveResult, error) {
	if req.Days < 0 {
		return workout.Plan{}, model.SaveResult{}, errs.ErrGenerationFailed
	}
	return workout.Plan{ID: "gen", StartDate: req.StartDate, TotalDays: req.Days}, model.SaveResult{Version: 1}, nil
}

func (fakePlans) RegenerateDay(_ context.Context, _ uuid.UUID, date string, _ planner.Profile) (workout.Plan, model.SaveResult, error) {
	if date <= "2026-01-01" {
		return workout.Plan{}, model.SaveResult{}, errs.ErrLocked
	}
	return workout.Plan{ID: "gen"}, model.SaveResult{Version: 2}, nil
}

type fakeShop struct{ lastQty int64 }

func (f *fakeShop) Catalog() []model.ShopItem {
	return []model.ShopItem{{SKU: "streak_saver", Price: 50, Consumable: true}}
}

func (f *fakeShop) Purchase(_ context.Context, id uuid.UUID, sku string, qty int64) (model.Account, error) {
	f.lastQty = qty
	if sku != "streak_saver" {
		return model.Account{}, errs.ErrValidation
	}
	if qty > 1 {
		return model.Account{}, errs.ErrInsufficientFunds
	}
	return model.Account{User: model.User{ID: id, Energy: 20}}, nil
}

func (f *fakeShop) UseStreakSaver(context.Context, uuid.UUID, string) (model.SaveResult, error) {
	return model.SaveResult{Version: 3, Streak: 4}, nil
}

type fakeAdmin struct{}

func (fakeAdmin) Diagnostics(context.Context, uuid.UUID) (model.Diagnostics, error) {
	return model.Diagnostics{}, errs.ErrForbidden
}

const bufSize = 1 << 20

func startBufGRPC(t *testing.T, srv *Server) pb.FitPlanClient {
	t.Helper()
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(zaptest.NewLogger(t)),
		AuthUnary(testKey, PublicMethods),
	))
	pb.RegisterFitPlanServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return pb.NewFitPlanClient(cc)
}

func newTestServer(t *testing.T) (*Server, *fakeShop) {
	shop := &fakeShop{}
	return New(Services{
		Auth:     &fakeAuth{t: t, id: uuid.Must(uuid.NewV4())},
		Progress: &fakeProgress{saved: map[uuid.UUID]model.Progress{}},
		Plans:    fakePlans{},
		Shop:     shop,
		Admin:    fakeAdmin{},
	}), shop
}

func withToken(ctx context.Context, tok string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
}

func TestServer_RegisterLoginMe(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := startBufGRPC(t, srv)
	ctx := context.Background()

	_, err := c.Register(ctx, &pb.RegisterRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Register(ctx, &pb.RegisterRequest{Username: "taken", Password: "secret1"})
	require.Equal(t, codes.AlreadyExists, status.Code(err))

	reg, err := c.Register(ctx, &pb.RegisterRequest{Username: "ann", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, reg.GetUserId())

	_, err = c.Login(ctx, &pb.LoginRequest{Username: "ann", Password: "nope"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	lg, err := c.Login(ctx, &pb.LoginRequest{Username: "ann", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, lg.GetAccessToken())
	require.NotNil(t, lg.GetExpiresAt())
	require.Equal(t, reg.GetUserId(), lg.GetAccount().GetId())
	require.Equal(t, int64(70), lg.GetAccount().GetEnergy())

	_, err = c.Me(ctx, &emptypb.Empty{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	me, err := c.Me(withToken(ctx, lg.GetAccessToken()), &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "ann", me.GetUsername())
	require.Len(t, me.GetInventory(), 1)
	require.True(t, proto.Equal(&pb.InventoryItem{Sku: "streak_saver", Quantity: 1}, me.GetInventory()[0]))
}

func login(t *testing.T, c pb.FitPlanClient) context.Context {
	t.Helper()
	lg, err := c.Login(context.Background(), &pb.LoginRequest{Username: "ann", Password: "secret1"})
	require.NoError(t, err)
	return withToken(context.Background(), lg.GetAccessToken())
}

func TestServer_ProgressRoundTrip(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := startBufGRPC(t, srv)
	ctx := login(t, c)

	empty, err := c.LoadProgress(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Zero(t, empty.GetProgress().GetVersion())
	require.Nil(t, empty.GetProgress().GetWorkoutPlan())

	plan := &workout.Plan{ID: "p", StartDate: "2026-03-02", DailyWorkouts: []workout.DayWorkout{
		{Date: "2026-03-02", Types: []workout.Type{workout.TypeRest}},
	}}
	res, err := c.SaveProgress(ctx, &pb.SaveProgressRequest{Progress: &pb.Progress{
		WorkoutPlan:   convert.ToProtoPlan(plan),
		AcceptedTerms: true,
		Version:       42,
	}})
	require.NoError(t, err)
	require.Equal(t, int64(1), res.GetVersion())
	require.Equal(t, int64(10), res.GetEnergyAwarded())

	got, err := c.LoadProgress(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, int64(1), got.GetProgress().GetVersion())
	require.True(t, got.GetProgress().GetAcceptedTerms())
	require.Equal(t, plan.ID, got.GetProgress().GetWorkoutPlan().GetId())
	require.Len(t, got.GetProgress().GetWorkoutPlan().GetDailyWorkouts(), 1)
}

func TestServer_Plans(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	c := startBufGRPC(t, srv)
	ctx := login(t, c)

	pr, err := c.GeneratePlan(ctx, &pb.GeneratePlanRequest{StartDate: "2026-03-02", Days: 14})
	require.NoError(t, err)
	require.Equal(t, int32(14), pr.GetPlan().GetTotalDays())
	require.Equal(t, int64(1), pr.GetSave().GetVersion())

	_, err = c.GeneratePlan(ctx, &pb.GeneratePlanRequest{Days: -1})
	require.Equal(t, codes.Unavailable, status.Code(err))

	_, err = c.RegenerateDay(ctx, &pb.RegenerateDayRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.RegenerateDay(ctx, &pb.RegenerateDayRequest{Date: "2025-12-31"})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	pr, err = c.RegenerateDay(ctx, &pb.RegenerateDayRequest{Date: "2026-05-01"})
	require.NoError(t, err)
	require.Equal(t, int64(2), pr.GetSave().GetVersion())
}

func TestServer_ShopAndAdmin(t *testing.T) {
	t.Parallel()

	srv, shop := newTestServer(t)
	c := startBufGRPC(t, srv)

	// catalog is public
	cat, err := c.Catalog(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, cat.GetItems(), 1)

	ctx := login(t, c)

	pr, err := c.Purchase(ctx, &pb.PurchaseRequest{Sku: "streak_saver"})
	require.NoError(t, err)
	require.Equal(t, int64(1), shop.lastQty)
	require.Equal(t, int64(20), pr.GetAccount().GetEnergy())

	_, err = c.Purchase(ctx, &pb.PurchaseRequest{Sku: "streak_saver", Quantity: 3})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = c.Purchase(ctx, &pb.PurchaseRequest{Sku: "unicorn"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	sv, err := c.UseStreakSaver(ctx, &pb.UseStreakSaverRequest{Date: "2026-01-01"})
	require.NoError(t, err)
	require.Equal(t, int32(4), sv.GetStreak())

	_, err = c.Diagnostics(ctx, &emptypb.Empty{})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestPublicMethods(t *testing.T) {
	t.Parallel()

	require.True(t, PublicMethods["/fitplan.v1.FitPlan/Login"])
	require.True(t, PublicMethods[pb.FitPlan_Catalog_FullMethodName])
	require.False(t, PublicMethods[pb.FitPlan_SaveProgress_FullMethodName])
	require.False(t, PublicMethods[pb.FitPlan_Diagnostics_FullMethodName])
}
