package directory

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config holds directory store configuration.
type Config struct {
	// DatasetPath is the CSV dataset file. Empty means the built-in
	// seed roster is served and Reload is a no-op swap of the same data.
	DatasetPath string
}

// Store owns the current roster snapshot. Reads never block reloads:
// the snapshot is replaced, never mutated.
type Store struct {
	cfg      Config
	snapshot atomic.Pointer[Roster]
}

// New creates a Store and loads the initial snapshot.
//
// A missing dataset file is not fatal — the store starts with an empty
// roster (an empty directory is a valid answer for every tool). Any
// other load failure is returned so startup can refuse to serve
// corrupted data.
func New(cfg Config) (*Store, error) {
	s := &Store{cfg: cfg}
	roster, err := s.load()
	if err != nil {
		if err == ErrSourceUnavailable {
			log.Printf("WARNING: directory: dataset %s not found, serving empty roster", cfg.DatasetPath)
			roster = Roster{}
		} else {
			return nil, err
		}
	}
	s.snapshot.Store(&roster)
	return s, nil
}

func (s *Store) load() (Roster, error) {
	if s.cfg.DatasetPath == "" {
		return SeedRoster(), nil
	}
	return LoadCSV(s.cfg.DatasetPath)
}

// Snapshot returns the current roster. The returned slice is shared and
// must be treated as read-only; it stays consistent even if a reload
// happens while the caller iterates.
func (s *Store) Snapshot() Roster {
	return *s.snapshot.Load()
}

// Reload replaces the snapshot wholesale from the backing source.
// A missing source keeps the current snapshot in place.
func (s *Store) Reload() error {
	roster, err := s.load()
	if err != nil {
		return err
	}
	s.snapshot.Store(&roster)
	return nil
}

// Watch reloads the snapshot whenever the dataset file changes, until
// ctx is done. Events are debounced: editors produce bursts of writes
// and the roster should swap once per burst.
//
// Watcher setup failure degrades to a no-op (manual Reload still
// works); it is logged, not returned, because a live watcher is a
// convenience rather than a contract.
func (s *Store) Watch(ctx context.Context) {
	if s.cfg.DatasetPath == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("WARNING: directory: create watcher: %v", err)
		return
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.cfg.DatasetPath); err != nil {
		log.Printf("WARNING: directory: watch %s: %v", s.cfg.DatasetPath, err)
		return
	}

	debounce := time.NewTimer(time.Hour)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
			debounce.Reset(250 * time.Millisecond)
		case <-debounce.C:
			if err := s.Reload(); err != nil {
				log.Printf("WARNING: directory: reload after change: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("WARNING: directory: watcher: %v", err)
		}
	}
}
