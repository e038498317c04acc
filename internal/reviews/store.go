// Package reviews persists per-recipe star ratings. All bundles live
// in one JSON object blob keyed by recipe id.
package reviews

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

// Key is the storage key for the review map.
const Key = "chefiq_reviews_v1"

// Store manages review bundles.
type Store struct {
	mu  sync.Mutex
	kv  domain.KV
	log *logger.Logger
}

func NewStore(kv domain.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Bundle returns the stored review bundle for a recipe, or an empty
// bundle when none exists.
func (s *Store) Bundle(ctx context.Context, recipeID string) (domain.ReviewBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return domain.ReviewBundle{}, err
	}
	b, ok := all[recipeID]
	if !ok {
		return domain.ReviewBundle{Ratings: []domain.Review{}}, nil
	}
	return b, nil
}

// Submit records a new review for a recipe. Stars outside 1..5 are
// rejected with no state change. Text is trimmed and truncated to the
// review length cap. The newest review leads the list; the list is
// capped and the average recomputed on every submit.
func (s *Store) Submit(ctx context.Context, recipeID string, stars int, text string) (domain.ReviewBundle, error) {
	if stars < domain.MinStars || stars > domain.MaxStars {
		return domain.ReviewBundle{}, fmt.Errorf("stars must be %d to %d: %w",
			domain.MinStars, domain.MaxStars, domain.ErrValidation)
	}
	text = strings.TrimSpace(text)
	// The length cap counts characters, so multibyte text is not cut
	// short or split mid-rune.
	if r := []rune(text); len(r) > domain.ReviewTextMax {
		text = string(r[:domain.ReviewTextMax])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return domain.ReviewBundle{}, err
	}

	cur := all[recipeID]
	entry := domain.Review{Stars: stars, Text: text, TS: time.Now().UnixMilli()}
	list := append([]domain.Review{entry}, cur.Ratings...)
	if len(list) > domain.ReviewListCap {
		list = list[:domain.ReviewListCap]
	}
	updated := domain.ReviewBundle{
		Ratings: list,
		Avg:     domain.ComputeAvg(list),
		Count:   len(list),
	}
	all[recipeID] = updated

	if err := kvstore.WriteJSON(ctx, s.kv, Key, all); err != nil {
		return domain.ReviewBundle{}, fmt.Errorf("save reviews: %w", err)
	}
	s.log.Debug("review recorded for %s (stars=%d, count=%d, avg=%.1f)",
		recipeID, stars, updated.Count, updated.Avg)
	return updated, nil
}

// DisplayRating returns the average and count to show for a recipe.
// Recipes without stored reviews get a stable fallback in [4.0, 5.0]
// derived from the recipe id. The fallback is a display default only
// and is never written back to storage.
func (s *Store) DisplayRating(ctx context.Context, recipeID string) (avg float64, count int, err error) {
	b, err := s.Bundle(ctx, recipeID)
	if err != nil {
		return 0, 0, err
	}
	if b.Count > 0 {
		return b.Avg, b.Count, nil
	}
	return FallbackRating(recipeID), 0, nil
}

// FallbackRating derives a stable one-decimal rating in [4.0, 5.0]
// from the recipe id.
func FallbackRating(recipeID string) float64 {
	var h uint32
	for i := 0; i < len(recipeID); i++ {
		h = h*31 + uint32(recipeID[i])
	}
	return 4.0 + float64(h%11)/10.0
}

func (s *Store) load(ctx context.Context) (map[string]domain.ReviewBundle, error) {
	all := map[string]domain.ReviewBundle{}
	if _, err := kvstore.ReadJSON(ctx, s.kv, Key, &all); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return all, nil
}
