// Command fitplan is the command-line client: it keeps the workout calendar
// in a local store and syncs it with the fitplan server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/events"
	"github.com/and161185/fitplan/internal/localstore"
	"github.com/and161185/fitplan/internal/syncer"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// options are the persistent flags.
type options struct {
	addr     string
	caPath   string
	insecure bool
	plain    bool
	dataDir  string
	noSync   bool
	timeout  time.Duration
	verbose  bool
}

// dialer opens a client; token may be empty for public calls.
type dialer func(ctx context.Context, token string) (pb.FitPlanClient, io.Closer, error)

// app is the state shared by all commands of one invocation.
type app struct {
	opts  options
	out   io.Writer
	log   *zap.Logger
	now   func() time.Time
	dial  dialer
	bus   *events.Bus
	store *localstore.Store
	sync  *syncer.Debouncer

	syncOpts []syncer.Option

	mu     sync.Mutex
	conns  []io.Closer
	remote pb.FitPlanClient // dialed with the session token
}

func newApp(out io.Writer) *app {
	a := &app{out: out, log: zap.NewNop(), now: time.Now}
	a.dial = a.dialRemote
	return a
}

func defaultDataDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "fitplan")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fitplan")
}

// open prepares the local store and the debouncer for a command.
func (a *app) open(ctx context.Context) error {
	if a.opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.log = l
	}
	a.bus = events.NewBus(0)
	st, err := localstore.Open(ctx, a.opts.dataDir, a.bus, localstore.WithLogger(a.log.Named("store")))
	if err != nil {
		return err
	}
	a.store = st
	opts := append([]syncer.Option{
		syncer.WithLogger(a.log.Named("sync")),
		syncer.WithKeys(localstore.SyncedKeys...),
	}, a.syncOpts...)
	a.sync = syncer.New(snapshotter{a}, pusher{a}, opts...)
	return nil
}

// finish pushes pending local changes and releases resources. It is safe to
// call when open never ran.
func (a *app) finish(ctx context.Context) error {
	var err error
	if a.sync != nil {
		if !a.opts.noSync && a.sync.Pending() {
			fctx, cancel := a.rpcCtx(context.WithoutCancel(ctx))
			if ferr := a.sync.Flush(fctx); ferr != nil {
				fmt.Fprintf(a.out, "warning: changes saved locally, sync failed: %s\n", describe(ferr))
			}
			cancel()
		}
		a.sync.Close()
		a.sync = nil
	}
	a.mu.Lock()
	for _, c := range a.conns {
		_ = c.Close()
	}
	a.conns, a.remote = nil, nil
	a.mu.Unlock()
	if a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.bus != nil {
		a.bus.Close()
		a.bus = nil
	}
	_ = a.log.Sync()
	return err
}

func (a *app) rpcCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.opts.timeout)
}

// changed records a local edit of a synced key; the push happens when the
// command finishes.
func (a *app) changed() {
	if !a.opts.noSync {
		a.sync.Trigger()
	}
}

// client returns a connection authenticated with the stored session token.
func (a *app) client(ctx context.Context) (pb.FitPlanClient, error) {
	a.mu.Lock()
	c := a.remote
	a.mu.Unlock()
	if c != nil {
		return c, nil
	}
	sess, err := a.session(ctx)
	if err != nil {
		return nil, err
	}
	c, err = a.clientWithToken(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.remote = c
	a.mu.Unlock()
	return c, nil
}

func (a *app) clientWithToken(ctx context.Context, token string) (pb.FitPlanClient, error) {
	c, closer, err := a.dial(ctx, token)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.conns = append(a.conns, closer)
	a.mu.Unlock()
	return c, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fitplan",
		Short:         "Workout calendar client",
		Version:       fmt.Sprintf("%s (%s)", version, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
	}
	root.SetOut(a.out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.addr, "addr", "localhost:8443", "server address")
	pf.StringVar(&a.opts.caPath, "cacert", "", "CA certificate (PEM)")
	pf.BoolVar(&a.opts.insecure, "insecure", false, "skip certificate verification (dev)")
	pf.BoolVar(&a.opts.plain, "plaintext", false, "connect without TLS (dev server)")
	pf.StringVar(&a.opts.dataDir, "data-dir", defaultDataDir(), "local data directory")
	pf.BoolVar(&a.opts.noSync, "no-sync", false, "keep changes local")
	pf.DurationVar(&a.opts.timeout, "timeout", 60*time.Second, "RPC timeout")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		registerCmd(a), loginCmd(a), logoutCmd(a), meCmd(a),
		generateCmd(a), regenDayCmd(a), showCmd(a), addCmd(a), moveCmd(a),
		addTypeCmd(a), rmExerciseCmd(a), doneCmd(a), streakCmd(a),
		shopCmd(a), buyCmd(a), saveStreakCmd(a), diagCmd(a),
		syncCmd(a), pullCmd(a), watchCmd(a),
	)
	return root
}

// main runs the command tree and maps errors to exit codes.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, newApp(os.Stdout), os.Args[1:]); err != nil {
		fail(err)
	}
}

// run executes one command line and always releases the app.
func run(ctx context.Context, a *app, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if ferr := a.finish(ctx); err == nil {
		err = ferr
	}
	return err
}

func printJSON(w io.Writer, m proto.Message) {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(m)
	if err != nil {
		return
	}
	fmt.Fprintln(w, string(b))
}

// describe renders RPC errors without the transport noise.
func describe(err error) string {
	if s, ok := status.FromError(err); ok {
		return fmt.Sprintf("%s: %s", s.Code(), s.Message())
	}
	return err.Error()
}

func fail(err error) {
	if errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	fmt.Fprintln(os.Stderr, "error:", describe(err))
	os.Exit(1)
}
