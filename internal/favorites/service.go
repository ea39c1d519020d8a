package favorites

import (
	"log/slog"
	"sync"

	"carddex/internal/domain"
)

// Service owns the current user's favorite-card list. Every change
// rewrites the whole persisted record; there is no locking across the
// read-persist-update sequence, so overlapping toggles are last-write-wins.
// The mutex below only keeps concurrent readers memory-safe.
type Service struct {
	store  domain.Store
	logger *slog.Logger

	mu   sync.RWMutex
	user *domain.User
}

// NewService creates a new favorites service
func NewService(store domain.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Initialize loads the persisted user profile, creating and persisting
// a fresh one with no favorites on first run.
func (s *Service) Initialize() {
	if user, ok := s.store.GetUser(); ok {
		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
		s.logger.Debug("loaded user profile", "favorites", len(user.FavoriteIDs))
		return
	}

	s.logger.Debug("no stored user profile, creating one")
	user := &domain.User{FavoriteIDs: []string{}}
	if err := s.store.SaveUser(user); err != nil {
		s.logger.Error("failed to persist new user profile", "error", err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// ToggleFavorite flips membership of id in the favorite set: removes
// every occurrence if present, appends otherwise. The full record is
// persisted before the in-memory copy is swapped. Returns the new
// membership state.
func (s *Service) ToggleFavorite(id string) bool {
	s.mu.RLock()
	current := s.user
	s.mu.RUnlock()
	if current == nil {
		s.logger.Error("toggle before initialize", "id", id)
		return false
	}

	next := &domain.User{FavoriteIDs: make([]string, 0, len(current.FavoriteIDs)+1)}
	added := true
	for _, fid := range current.FavoriteIDs {
		if fid == id {
			added = false
			continue
		}
		next.FavoriteIDs = append(next.FavoriteIDs, fid)
	}
	if added {
		next.FavoriteIDs = append(next.FavoriteIDs, id)
	}

	if err := s.store.SaveUser(next); err != nil {
		s.logger.Error("failed to persist user profile", "error", err, "id", id)
	}

	s.mu.Lock()
	s.user = next
	s.mu.Unlock()

	s.logger.Debug("toggled favorite", "id", id, "favorited", added, "count", len(next.FavoriteIDs))
	return added
}

// IsFavorite reports whether id is currently a favorite
func (s *Service) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasFavorite(id)
}

// FavoriteIDs returns a snapshot of the favorite-card ids in insertion order
func (s *Service) FavoriteIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	ids := make([]string, len(s.user.FavoriteIDs))
	copy(ids, s.user.FavoriteIDs)
	return ids
}

// Reset deletes the persisted profile and reinitializes with an empty one
func (s *Service) Reset() {
	s.store.DeleteUser()
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.Initialize()
	s.logger.Info("reset user profile")
}
