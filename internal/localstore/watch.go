package localstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/and161185/fitplan/internal/events"
)

// dataVersion changes whenever another connection commits to the file.
func (s *Store) dataVersion(ctx context.Context) (int64, error) {
	var v int64
	if err := s.db.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&v); err != nil {
		return 0, fmt.Errorf("data_version: %w", err)
	}
	return v, nil
}

func (s *Store) markOwnWrite(ctx context.Context) {
	if v, err := s.dataVersion(ctx); err == nil {
		s.seen.Store(v)
	}
}

// externallyChanged reports whether another process committed since we last looked.
func (s *Store) externallyChanged(ctx context.Context) bool {
	v, err := s.dataVersion(ctx)
	if err != nil {
		return false
	}
	return s.seen.Swap(v) != v
}

// Watch publishes events.ExternalChange when another process writes the store
// file. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	s.log.Debug("watching local store", zap.String("dir", s.dir))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasPrefix(filepath.Base(ev.Name), FileName) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if s.externallyChanged(ctx) && s.bus != nil {
				s.bus.Publish(events.ExternalChange())
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("store watcher error", zap.Error(err))
		}
	}
}
