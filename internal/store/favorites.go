package store

import "slices"

// Favorites returns a copy of the favorite shop IDs in toggle order.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...)
}

// IsFavorite reports whether the shop is in the favorites set.
func (s *Store) IsFavorite(shopID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.favorites, shopID)
}

// ToggleFavorite flips the shop's membership in the favorites set and
// persists the set immediately. Favorites work anonymously; they are
// independent of the session.
func (s *Store) ToggleFavorite(shopID string) {
	s.mu.Lock()
	if i := slices.Index(s.favorites, shopID); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
	} else {
		s.favorites = append(s.favorites, shopID)
	}
	persisted := append([]string(nil), s.favorites...)
	s.mu.Unlock()

	if err := s.local.SetFavorites(persisted); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
	}
	s.notify()
}
