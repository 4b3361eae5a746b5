package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	pb "github.com/and161185/fitplan/gen/go/fitplan/v1"
	"github.com/and161185/fitplan/internal/events"
)

// DefaultDelay is the quiet period before a push.
const DefaultDelay = 800 * time.Millisecond

// pushTimeout bounds a push started by the timer, which has no caller context.
const pushTimeout = 30 * time.Second

// ErrClosed is returned by Flush after Close.
var ErrClosed = errors.New("syncer: closed")

// Snapshotter builds the payload to push from local state.
type Snapshotter interface {
	Snapshot(ctx context.Context) (*pb.Progress, error)
}

// Pusher sends a payload to the server.
type Pusher interface {
	Push(ctx context.Context, p *pb.Progress) error
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithScheduler replaces the real timer.
func WithScheduler(s Scheduler) Option { return func(d *Debouncer) { d.sched = s } }

// WithDelay overrides DefaultDelay.
func WithDelay(delay time.Duration) Option { return func(d *Debouncer) { d.delay = delay } }

// WithLogger sets the logger used for dropped pushes.
func WithLogger(l *zap.Logger) Option { return func(d *Debouncer) { d.log = l } }

// WithKeys limits Run to changes of the listed local keys.
func WithKeys(keys ...string) Option {
	return func(d *Debouncer) {
		d.keys = make(map[string]bool, len(keys))
		for _, k := range keys {
			d.keys[k] = true
		}
	}
}

// Debouncer coalesces bursts of local changes into one push. A failed push is
// logged and dropped; the next change pushes the full state again.
type Debouncer struct {
	snap  Snapshotter
	push  Pusher
	sched Scheduler
	delay time.Duration
	log   *zap.Logger
	keys  map[string]bool

	mu      sync.Mutex
	timer   Timer
	pending bool
	closed  bool

	// pushMu keeps pushes ordered so an older snapshot never lands last.
	pushMu sync.Mutex
}

// New constructs a Debouncer.
func New(snap Snapshotter, push Pusher, opts ...Option) *Debouncer {
	d := &Debouncer{
		snap:  snap,
		push:  push,
		sched: RealScheduler{},
		delay: DefaultDelay,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Trigger marks state dirty and restarts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = true
	d.timer = d.sched.AfterFunc(d.delay, d.fire)
}

// Pending reports whether a push is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) fire() {
	if !d.take() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()
	if err := d.pushNow(ctx); err != nil {
		d.log.Warn("sync push dropped", zap.Error(err))
	}
}

// take clears the pending flag and reports whether there was work.
func (d *Debouncer) take() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || !d.pending {
		return false
	}
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return true
}

func (d *Debouncer) pushNow(ctx context.Context) error {
	d.pushMu.Lock()
	defer d.pushMu.Unlock()
	p, err := d.snap.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err := d.push.Push(ctx, p); err != nil {
		return err
	}
	d.log.Debug("sync pushed", zap.Bool("plan", p.WorkoutPlan != nil))
	return nil
}

// Flush pushes immediately when a change is pending and returns the push error.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	closed := d.closed
	d.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if !d.take() {
		return nil
	}
	return d.pushNow(ctx)
}

// Close stops the timer and waits for a push already in flight; pending
// changes are discarded.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.pushMu.Lock()
	d.pushMu.Unlock() //nolint:staticcheck // barrier only
}

// Run triggers on local key changes and external store changes until ctx is
// done, then flushes what is pending.
func (d *Debouncer) Run(ctx context.Context, bus *events.Bus) error {
	ch, cancel := bus.Subscribe(events.TopicKeyChanged, events.TopicExternalChange)
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			fctx, fcancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
			defer fcancel()
			if err := d.Flush(fctx); err != nil && !errors.Is(err, ErrClosed) {
				d.log.Warn("final sync push failed", zap.Error(err))
			}
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			if ev.Topic == events.TopicKeyChanged && d.keys != nil && !d.keys[ev.Key] {
				continue
			}
			d.Trigger()
		}
	}
}
