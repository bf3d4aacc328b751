package store

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/mcncl/jsonsmith/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock returns a fixed time that tests can move.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(t *testing.T, opts ...Option) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.UnixMilli(1_700_000_000_000)}
	opts = append([]Option{WithClock(clock.now)}, opts...)
	return New(NewMemoryBackend(), opts...), clock
}

func TestHistory_NewestFirst(t *testing.T) {
	s, clock := newTestStore(t)

	first, err := s.AddHistory(`{"a":1}`, "7.00 B")
	require.NoError(t, err)
	clock.t = clock.t.Add(time.Second)
	second, err := s.AddHistory(`[1]`, "3.00 B")
	require.NoError(t, err)

	history := s.History()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
	assert.Equal(t, "1700000000000", first.ID)
	assert.Equal(t, int64(1_700_000_000_000), first.Timestamp)
	assert.Equal(t, "7.00 B", first.Size)
}

func TestHistory_CappedAtLimit(t *testing.T) {
	s, _ := newTestStore(t, WithHistoryLimit(3))

	var ids []string
	for i := range 5 {
		entry, err := s.AddHistory(strconv.Itoa(i), "1.00 B")
		require.NoError(t, err)
		ids = append(ids, entry.ID)
	}

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "4", history[0].Content)
	assert.Equal(t, "2", history[2].Content)

	_, err := s.HistoryEntry(ids[0])
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestHistory_DefaultLimit(t *testing.T) {
	s, _ := newTestStore(t)
	for i := range DefaultHistoryLimit + 5 {
		_, err := s.AddHistory(strconv.Itoa(i), "1.00 B")
		require.NoError(t, err)
	}
	assert.Len(t, s.History(), DefaultHistoryLimit)
}

func TestHistory_UniqueIDsWithinSameMillisecond(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for range 10 {
		entry, err := s.AddHistory("x", "1.00 B")
		require.NoError(t, err)
		assert.False(t, seen[entry.ID], "duplicate id %s", entry.ID)
		seen[entry.ID] = true
	}
}

func TestHistory_GetDeleteClear(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.AddHistory("a", "1.00 B")
	require.NoError(t, err)
	b, err := s.AddHistory("b", "1.00 B")
	require.NoError(t, err)

	got, err := s.HistoryEntry(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	require.NoError(t, s.DeleteHistory(a.ID))
	_, err = s.HistoryEntry(a.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeStorage})

	// Unknown IDs are ignored
	require.NoError(t, s.DeleteHistory("missing"))
	assert.Len(t, s.History(), 1)

	require.NoError(t, s.ClearHistory())
	assert.Empty(t, s.History())
	_, err = s.HistoryEntry(b.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestFavorites_AddUpdateDelete(t *testing.T) {
	s, clock := newTestStore(t)

	fav, err := s.AddFavorite("config", `{"debug":true}`)
	require.NoError(t, err)
	clock.t = clock.t.Add(time.Second)
	other, err := s.AddFavorite("list", `[]`)
	require.NoError(t, err)

	favorites := s.Favorites()
	require.Len(t, favorites, 2)
	assert.Equal(t, other.ID, favorites[0].ID)

	clock.t = clock.t.Add(time.Minute)
	updated, err := s.UpdateFavorite(fav.ID, "config v2", `{"debug":false}`)
	require.NoError(t, err)
	assert.Equal(t, "config v2", updated.Name)
	assert.Equal(t, clock.t.UnixMilli(), updated.Timestamp)
	assert.Equal(t, fav.ID, updated.ID)

	got, err := s.Favorite(fav.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	// Updating does not reorder
	assert.Equal(t, fav.ID, s.Favorites()[1].ID)

	_, err = s.UpdateFavorite("missing", "x", "y")
	assert.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, s.DeleteFavorite(fav.ID))
	_, err = s.Favorite(fav.ID)
	assert.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, s.ClearFavorites())
	assert.Empty(t, s.Favorites())
}

func TestFavorites_LimitReached(t *testing.T) {
	s, _ := newTestStore(t, WithFavoritesLimit(2))

	_, err := s.AddFavorite("one", "1")
	require.NoError(t, err)
	_, err = s.AddFavorite("two", "2")
	require.NoError(t, err)

	_, err = s.AddFavorite("three", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrLimitReached)
	assert.Len(t, s.Favorites(), 2)
}

func TestSettings_DefaultsUpdateReset(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, DefaultSettings(), s.Settings())
	assert.Equal(t, Settings{Theme: ThemeDark, FontSize: 14, AutoFormat: false, IndentSize: 2}, DefaultSettings())

	light := ThemeLight
	indent := 4
	updated, err := s.UpdateSettings(SettingsUpdate{Theme: &light, IndentSize: &indent})
	require.NoError(t, err)
	assert.Equal(t, Settings{Theme: ThemeLight, FontSize: 14, AutoFormat: false, IndentSize: 4}, updated)
	assert.Equal(t, updated, s.Settings())

	require.NoError(t, s.ResetSettings())
	assert.Equal(t, DefaultSettings(), s.Settings())
}

func TestSettings_InvalidUpdate(t *testing.T) {
	s, _ := newTestStore(t)

	bad := Theme("neon")
	_, err := s.UpdateSettings(SettingsUpdate{Theme: &bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme must be")

	size := 0
	_, err = s.UpdateSettings(SettingsUpdate{FontSize: &size})
	require.Error(t, err)

	assert.Equal(t, DefaultSettings(), s.Settings())
}

func TestStore_CorruptBlobFallsBackAndLogs(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Set(SettingsKey, "{not json"))
	require.NoError(t, backend.Set(HistoryKey, "42"))

	var logs bytes.Buffer
	s := New(backend, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	assert.Equal(t, DefaultSettings(), s.Settings())
	assert.Empty(t, s.History())
	assert.Contains(t, logs.String(), "ignoring unreadable store entry")
	assert.Contains(t, logs.String(), SettingsKey)
}

func TestStore_Info(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.AddHistory("a", "1.00 B")
	require.NoError(t, err)
	_, err = s.AddFavorite("f", "1")
	require.NoError(t, err)
	_, err = s.AddFavorite("g", "2")
	require.NoError(t, err)

	assert.Equal(t, Info{HistoryCount: 1, FavoritesCount: 2, Available: true}, s.Info())
}

func TestStore_InfoUnavailable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent of the store path is a regular file, so writes fail
	s := New(NewFileBackend(filepath.Join(blocker, "store.json"), false))
	info := s.Info()
	assert.False(t, info.Available)
	assert.Zero(t, info.HistoryCount)

	_, err := s.AddHistory("a", "1.00 B")
	require.Error(t, err)
	assert.ErrorIs(t, err, &errors.AppError{Type: errors.ErrorTypeStorage})
}
