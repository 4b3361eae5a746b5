// Package localstore keeps client state in a SQLite file: the session, the
// account snapshot and the calendar. Values are wrapped in timestamped
// envelopes and expire per key.
package localstore

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/and161185/fitplan/internal/events"
	"github.com/and161185/fitplan/internal/workout"
)

// FileName is the database file inside the data directory.
const FileName = "fitplan.db"

// Keys.
const (
	KeySession       = "session"
	KeyAccount       = "account"
	KeyWorkoutPlan   = "workout_plan"
	KeyAssessment    = "assessment"
	KeyQuestionnaire = "questionnaire_progress"
	KeyChatHistory   = "chat_history"
	KeyConsents      = "consents"
)

// SyncedKeys are the keys whose changes are pushed to the server.
var SyncedKeys = []string{KeyWorkoutPlan, KeyAssessment, KeyQuestionnaire, KeyChatHistory, KeyConsents}

const defaultTTL = 24 * time.Hour

var ttls = map[string]time.Duration{
	KeySession:       7 * 24 * time.Hour,
	KeyAccount:       7 * 24 * time.Hour,
	KeyWorkoutPlan:   30 * 24 * time.Hour,
	KeyAssessment:    30 * 24 * time.Hour,
	KeyQuestionnaire: 24 * time.Hour,
	KeyChatHistory:   7 * 24 * time.Hour,
	KeyConsents:      365 * 24 * time.Hour,
}

// TTL returns how long a value under key stays valid.
func TTL(key string) time.Duration {
	if d, ok := ttls[key]; ok {
		return d
	}
	return defaultTTL
}

var (
	// ErrNotFound is returned for missing, expired or unreadable keys.
	ErrNotFound = errors.New("localstore: not found")
	// ErrCorrupt is returned when a written value does not read back intact.
	ErrCorrupt = errors.New("localstore: value did not round-trip")
)

// Publisher receives change notifications.
type Publisher interface {
	Publish(events.Event)
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Store is a key/value store over SQLite.
type Store struct {
	db   *sql.DB
	dir  string
	bus  Publisher
	log  *zap.Logger
	now  func() time.Time
	seen atomic.Int64 // data_version observed after our own writes
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option { return func(s *Store) { s.log = l } }

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// Open creates dir if needed and opens the store file inside it. bus may be nil.
func Open(ctx context.Context, dir string, bus Publisher, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, FileName)+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// one connection so PRAGMA data_version tells our writes from other processes'
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dir: dir, bus: bus, log: zap.NewNop(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	const ddl = `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init store: %w", err)
	}
	v, err := s.dataVersion(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.seen.Store(v)
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Dir is the data directory.
func (s *Store) Dir() string { return s.dir }

// Put stores v under key, then reads it back; a value that does not survive
// the round trip is removed and ErrCorrupt returned.
func (s *Store) Put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	env, err := json.Marshal(envelope{Data: data, Timestamp: s.now().UnixMilli()})
	if err != nil {
		return err
	}
	const q = `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value`
	if _, err := s.db.ExecContext(ctx, q, key, string(env)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	back, err := s.read(ctx, key)
	if err != nil || !sameJSON(back.Data, data) {
		s.log.Warn("local value failed verification", zap.String("key", key), zap.Error(err))
		_ = s.remove(ctx, key)
		return fmt.Errorf("%s: %w", key, ErrCorrupt)
	}
	s.markOwnWrite(ctx)
	s.publish(key)
	return nil
}

// Get decodes the value under key into v. Expired or unreadable entries are
// removed and reported as ErrNotFound.
func (s *Store) Get(ctx context.Context, key string, v any) error {
	env, err := s.read(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		s.log.Debug("dropping unreadable local value", zap.String("key", key), zap.Error(err))
		_ = s.remove(ctx, key)
		return ErrNotFound
	}
	age := s.now().Sub(time.UnixMilli(env.Timestamp))
	if age > TTL(key) {
		s.log.Debug("local value expired", zap.String("key", key), zap.Duration("age", age))
		_ = s.remove(ctx, key)
		return ErrNotFound
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		_ = s.remove(ctx, key)
		return ErrNotFound
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.remove(ctx, key); err != nil {
		return err
	}
	s.markOwnWrite(ctx)
	s.publish(key)
	return nil
}

// Clear removes every key.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return err
	}
	s.markOwnWrite(ctx)
	return nil
}

// SaveWorkoutPlan normalizes and stores p.
func (s *Store) SaveWorkoutPlan(ctx context.Context, p workout.Plan) error {
	return s.Put(ctx, KeyWorkoutPlan, workout.NormalizePlan(p))
}

// LoadWorkoutPlan returns the stored plan in normalized form.
func (s *Store) LoadWorkoutPlan(ctx context.Context) (workout.Plan, error) {
	var p workout.Plan
	if err := s.Get(ctx, KeyWorkoutPlan, &p); err != nil {
		return workout.Plan{}, err
	}
	return workout.NormalizePlan(p), nil
}

func (s *Store) read(ctx context.Context, key string) (envelope, error) {
	var raw string
	if err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key=?`, key).Scan(&raw); err != nil {
		return envelope{}, err
	}
	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return envelope{}, err
	}
	if len(env.Data) == 0 {
		return envelope{}, errors.New("empty envelope")
	}
	return env, nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key=?`, key)
	return err
}

func (s *Store) publish(key string) {
	if s.bus != nil {
		s.bus.Publish(events.KeyChanged(key))
	}
}

func sameJSON(a, b []byte) bool {
	var ca, cb bytes.Buffer
	if json.Compact(&ca, a) != nil || json.Compact(&cb, b) != nil {
		return false
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
