package statestore

import (
	"sync"
	"time"

	"video-dashboard/internal/logging"
	"video-dashboard/internal/model"

	"github.com/rs/zerolog"
)

// DefaultQuietInterval is how long the saver waits after the last change
// before writing. Rapid successive edits collapse into one write.
const DefaultQuietInterval = time.Second

// Saver debounces state writes. The in-memory model is always authoritative;
// the saver only decides when a snapshot reaches disk. Close flushes whatever
// is still pending.
type Saver struct {
	path  string
	quiet time.Duration
	log   zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.AppData
	lastErr error
}

func NewSaver(path string, quiet time.Duration) *Saver {
	if quiet <= 0 {
		quiet = DefaultQuietInterval
	}
	return &Saver{
		path:  NormalizePath(path),
		quiet: quiet,
		log:   logging.Component("statestore"),
	}
}

// Mark records a new snapshot and (re)arms the debounce timer.
func (s *Saver) Mark(data model.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := data
	s.pending = &snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.flushPending)
}

func (s *Saver) flushPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked()
}

// Flush writes any pending snapshot immediately and returns the last write
// error, if any. Call before process exit.
func (s *Saver) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.writeLocked()
	return s.lastErr
}

func (s *Saver) writeLocked() {
	if s.pending == nil {
		return
	}
	data := *s.pending
	s.pending = nil
	if err := Save(s.path, data); err != nil {
		s.lastErr = err
		s.log.Debug().Err(err).Str("path", s.path).Msg("state save failed")
		return
	}
	s.lastErr = nil
	s.log.Debug().Str("path", s.path).Msg("state saved")
}
