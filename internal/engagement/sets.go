// Package engagement persists the three small personalization sets:
// favorited recipe ids, recently cooked recipe ids, and favorited
// creator handles. Each set is an ordered, deduplicated JSON list
// under its own key, newest entry first.
package engagement

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

const (
	FavoritesKey = "chefiq_favorites"
	HistoryKey   = "chefiq_history"
	CreatorsKey  = "chefiq_favorite_creators"
)

// Sets manages the engagement lists.
type Sets struct {
	mu  sync.Mutex
	kv  domain.KV
	log *logger.Logger
}

func NewSets(kv domain.KV, log *logger.Logger) *Sets {
	return &Sets{kv: kv, log: log}
}

// Favorites returns favorited recipe ids, most recently favorited
// first.
func (s *Sets) Favorites(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadList(ctx, FavoritesKey)
}

// IsFavorite reports whether a recipe id is favorited.
func (s *Sets) IsFavorite(ctx context.Context, id string) (bool, error) {
	list, err := s.Favorites(ctx)
	if err != nil {
		return false, err
	}
	for _, x := range list {
		if x == id {
			return true, nil
		}
	}
	return false, nil
}

// ToggleFavorite flips a recipe's favorite state and returns the new
// state. Favoriting moves the id to the front of the list.
func (s *Sets) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx, FavoritesKey)
	if err != nil {
		return false, err
	}
	filtered, removed := without(list, id)
	nowFav := !removed
	if nowFav {
		filtered = append([]string{id}, filtered...)
	}
	if err := kvstore.WriteJSON(ctx, s.kv, FavoritesKey, filtered); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}
	s.log.Debug("favorite %s -> %v (%d total)", id, nowFav, len(filtered))
	return nowFav, nil
}

// History returns recently cooked recipe ids, newest first.
func (s *Sets) History(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadList(ctx, HistoryKey)
}

// RecordHistory moves a recipe id to the front of the history list,
// deduplicating and enforcing the cap.
func (s *Sets) RecordHistory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx, HistoryKey)
	if err != nil {
		return err
	}
	filtered, _ := without(list, id)
	next := append([]string{id}, filtered...)
	if len(next) > domain.HistoryListCap {
		next = next[:domain.HistoryListCap]
	}
	if err := kvstore.WriteJSON(ctx, s.kv, HistoryKey, next); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// FavoriteCreators returns favorited creator handles in display form
// (leading @), newest first.
func (s *Sets) FavoriteCreators(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadList(ctx, CreatorsKey)
}

// IsCreatorFavorite reports whether a creator is favorited. The sigil
// is ignored when comparing.
func (s *Sets) IsCreatorFavorite(ctx context.Context, handle string) (bool, error) {
	list, err := s.FavoriteCreators(ctx)
	if err != nil {
		return false, err
	}
	clean := domain.CleanHandle(handle)
	for _, h := range list {
		if domain.CleanHandle(h) == clean {
			return true, nil
		}
	}
	return false, nil
}

// ToggleCreator flips a creator's favorite state and returns the new
// state. Handles are stored in display form regardless of how the
// caller spelled them.
func (s *Sets) ToggleCreator(ctx context.Context, handle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.loadList(ctx, CreatorsKey)
	if err != nil {
		return false, err
	}
	clean := domain.CleanHandle(handle)
	kept := make([]string, 0, len(list))
	removed := false
	for _, h := range list {
		if domain.CleanHandle(h) == clean {
			removed = true
			continue
		}
		kept = append(kept, h)
	}
	nowFav := !removed
	if nowFav {
		kept = append([]string{domain.DisplayHandle(clean)}, kept...)
	}
	if err := kvstore.WriteJSON(ctx, s.kv, CreatorsKey, kept); err != nil {
		return false, fmt.Errorf("save favorite creators: %w", err)
	}
	s.log.Debug("creator %s -> %v (%d total)", clean, nowFav, len(kept))
	return nowFav, nil
}

func (s *Sets) loadList(ctx context.Context, key string) ([]string, error) {
	list := []string{}
	if _, err := kvstore.ReadJSON(ctx, s.kv, key, &list); err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return list, nil
}

// without returns list minus every occurrence of x.
func without(list []string, x string) ([]string, bool) {
	out := make([]string, 0, len(list))
	removed := false
	for _, v := range list {
		if v == x {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out, removed
}
