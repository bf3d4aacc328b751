package store

import (
	"fmt"
	"slices"

	"github.com/mcncl/jsonsmith/internal/errors"
)

// Favorite is a named document kept until deleted.
type Favorite struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// AddFavorite stores content under name at the front of the favorites.
// It fails with ErrLimitReached when the favorites limit is reached.
func (s *Store) AddFavorite(name, content string) (Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.favorites()
	if len(favorites) >= s.favoritesLimit {
		s.logger.Warn("maximum favorites limit reached", "limit", s.favoritesLimit)
		return Favorite{}, errors.NewStorageError(
			fmt.Sprintf("cannot keep more than %d favorites", s.favoritesLimit), errors.ErrLimitReached)
	}

	id, ts := s.nextID()
	fav := Favorite{ID: id, Name: name, Content: content, Timestamp: ts}
	if err := s.save(FavoritesKey, append([]Favorite{fav}, favorites...)); err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// Favorites returns all favorites, newest first.
func (s *Store) Favorites() []Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites()
}

func (s *Store) favorites() []Favorite {
	var favorites []Favorite
	s.load(FavoritesKey, &favorites)
	return favorites
}

// Favorite returns the favorite with the given ID.
func (s *Store) Favorite(id string) (Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.favorites() {
		if fav.ID == id {
			return fav, nil
		}
	}
	return Favorite{}, notFound("favorite", id)
}

// UpdateFavorite replaces the name and content of a favorite and refreshes
// its timestamp. Its position in the list does not change.
func (s *Store) UpdateFavorite(id, name, content string) (Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites := s.favorites()
	i := slices.IndexFunc(favorites, func(f Favorite) bool { return f.ID == id })
	if i < 0 {
		return Favorite{}, notFound("favorite", id)
	}
	favorites[i].Name = name
	favorites[i].Content = content
	favorites[i].Timestamp = s.now().UnixMilli()
	if err := s.save(FavoritesKey, favorites); err != nil {
		return Favorite{}, err
	}
	return favorites[i], nil
}

// DeleteFavorite removes the favorite with the given ID. Deleting an
// unknown ID is not an error.
func (s *Store) DeleteFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorites := slices.DeleteFunc(s.favorites(), func(f Favorite) bool { return f.ID == id })
	return s.save(FavoritesKey, nonNil(favorites))
}

// ClearFavorites removes every favorite.
func (s *Store) ClearFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(FavoritesKey, []Favorite{})
}
