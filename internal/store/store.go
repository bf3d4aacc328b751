package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/mcncl/jsonsmith/internal/errors"
)

// Keys under which blobs are kept in the backend.
const (
	HistoryKey   = "jsonsmith_history"
	FavoritesKey = "jsonsmith_favorites"
	SettingsKey  = "jsonsmith_settings"

	checkKey = "__storage_test__"
)

// Default limits used when no option overrides them.
const (
	DefaultHistoryLimit   = 50
	DefaultFavoritesLimit = 100
)

// Store keeps history, favorites and settings in a Backend. A Store is safe
// for concurrent use; the backend is shared with no other writer.
type Store struct {
	backend        Backend
	logger         *slog.Logger
	now            func() time.Time
	historyLimit   int
	favoritesLimit int

	mu     sync.Mutex
	lastID int64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable blobs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock sets the time source for IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithHistoryLimit sets the number of history entries kept.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.historyLimit = n
		}
	}
}

// WithFavoritesLimit sets the maximum number of favorites.
func WithFavoritesLimit(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.favoritesLimit = n
		}
	}
}

// New creates a Store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:        backend,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            time.Now,
		historyLimit:   DefaultHistoryLimit,
		favoritesLimit: DefaultFavoritesLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Info summarizes the store contents.
type Info struct {
	HistoryCount   int  `json:"history_count" yaml:"history_count"`
	FavoritesCount int  `json:"favorites_count" yaml:"favorites_count"`
	Available      bool `json:"available" yaml:"available"`
}

// Info reports entry counts and whether the backend accepts writes.
func (s *Store) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		HistoryCount:   len(s.history()),
		FavoritesCount: len(s.favorites()),
		Available:      s.available(),
	}
}

func (s *Store) available() bool {
	if err := s.backend.Set(checkKey, checkKey); err != nil {
		s.logger.Debug("store unavailable", "error", err)
		return false
	}
	if err := s.backend.Delete(checkKey); err != nil {
		s.logger.Debug("store unavailable", "error", err)
		return false
	}
	return true
}

// nextID returns the current time in milliseconds as a decimal string,
// bumped past the previous ID when the clock has not advanced.
func (s *Store) nextID() (string, int64) {
	ms := s.now().UnixMilli()
	id := ms
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10), ms
}

// load decodes the blob under key into dst. Missing blobs leave dst
// untouched; unreadable ones are logged and also leave dst untouched.
func (s *Store) load(key string, dst any) {
	blob, ok, err := s.backend.Get(key)
	if err != nil {
		s.logger.Warn("failed to load from store", "key", key, "error", err)
		return
	}
	if !ok || blob == "" {
		return
	}
	if err := json.Unmarshal([]byte(blob), dst); err != nil {
		s.logger.Warn("ignoring unreadable store entry", "key", key, "error", err)
	}
}

func notFound(what, id string) error {
	return errors.NewStorageError(fmt.Sprintf("%s '%s' not found", what, id), errors.ErrNotFound)
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.NewStorageError("failed to encode "+key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return errors.NewStorageError("failed to save "+key, err)
	}
	s.logger.Debug("saved store entry", "key", key, "bytes", len(data))
	return nil
}
