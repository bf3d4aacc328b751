package store

import "slices"

// HistoryEntry is a document processed earlier.
type HistoryEntry struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Size      string `json:"size"`
}

// AddHistory records content at the front of the history, dropping the
// oldest entries beyond the history limit.
func (s *Store) AddHistory(content, size string) (HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ts := s.nextID()
	entry := HistoryEntry{ID: id, Content: content, Timestamp: ts, Size: size}

	history := append([]HistoryEntry{entry}, s.history()...)
	if len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}
	if err := s.save(HistoryKey, history); err != nil {
		return HistoryEntry{}, err
	}
	return entry, nil
}

// History returns all entries, newest first.
func (s *Store) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history()
}

func (s *Store) history() []HistoryEntry {
	var history []HistoryEntry
	s.load(HistoryKey, &history)
	return history
}

// HistoryEntry returns the entry with the given ID.
func (s *Store) HistoryEntry(id string) (HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.history() {
		if entry.ID == id {
			return entry, nil
		}
	}
	return HistoryEntry{}, notFound("history entry", id)
}

// DeleteHistory removes the entry with the given ID. Deleting an unknown
// ID is not an error.
func (s *Store) DeleteHistory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := slices.DeleteFunc(s.history(), func(e HistoryEntry) bool { return e.ID == id })
	return s.save(HistoryKey, nonNil(history))
}

// ClearHistory removes every entry.
func (s *Store) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(HistoryKey, []HistoryEntry{})
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
