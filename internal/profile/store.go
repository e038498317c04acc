// Package profile persists the user's display name and creator points
// balance.
package profile

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

const (
	NameKey   = "chefiq_user_name"
	PointsKey = "chefiq_creator_points_v1"
)

// DefaultName is shown before the user has set a name.
const DefaultName = "Chef"

// PublishPoints is the fixed award for publishing a recipe.
const PublishPoints = 25

// Store manages the user profile values.
type Store struct {
	mu  sync.Mutex
	kv  domain.KV
	log *logger.Logger
}

func NewStore(kv domain.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Name returns the user's display name, or the default when unset.
func (s *Store) Name(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, NameKey)
	if err != nil {
		return "", fmt.Errorf("load name: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultName, nil
	}
	return raw, nil
}

// SetName stores the display name. An empty name resets to the
// default.
func (s *Store) SetName(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return s.kv.Delete(ctx, NameKey)
	}
	return s.kv.Set(ctx, NameKey, name)
}

// Points returns the creator points balance. The value is stored as a
// stringified integer; anything unparsable reads as zero.
func (s *Store) Points(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points(ctx)
}

// AddPoints credits points to the balance and returns the new total.
func (s *Store) AddPoints(ctx context.Context, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.points(ctx)
	if err != nil {
		return 0, err
	}
	next := cur + delta
	if err := s.kv.Set(ctx, PointsKey, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("save points: %w", err)
	}
	s.log.Debug("points %d + %d = %d", cur, delta, next)
	return next, nil
}

func (s *Store) points(ctx context.Context) (int, error) {
	raw, ok, err := s.kv.Get(ctx, PointsKey)
	if err != nil {
		return 0, fmt.Errorf("load points: %w", err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, nil
	}
	return n, nil
}
