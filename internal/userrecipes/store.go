// Package userrecipes persists recipes the user (or the one-time demo
// seed) has published, credited to creator handles.
package userrecipes

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

const (
	// Key is the storage key for the published recipe list.
	Key = "chefiq_user_recipes_v1"
	// SeedFlagKey marks the demo creator content as already seeded.
	SeedFlagKey = "chefiq_seed_sample_creators_v1"
)

// Store manages published user recipes.
type Store struct {
	mu  sync.Mutex
	kv  domain.KV
	log *logger.Logger
}

func NewStore(kv domain.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// List returns all published recipes, newest first.
func (s *Store) List(ctx context.Context) ([]domain.UserRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns one published recipe by id.
func (s *Store) Get(ctx context.Context, id string) (domain.UserRecipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return domain.UserRecipe{}, err
	}
	for _, r := range list {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.UserRecipe{}, fmt.Errorf("user recipe %s: %w", id, domain.ErrNotFound)
}

// Upsert inserts a recipe at the front of the list, or replaces an
// existing recipe with the same id in place.
func (s *Store) Upsert(ctx context.Context, r domain.UserRecipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == r.ID {
			list[i] = r
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]domain.UserRecipe{r}, list...)
	}
	if err := kvstore.WriteJSON(ctx, s.kv, Key, list); err != nil {
		return fmt.Errorf("save user recipes: %w", err)
	}
	s.log.Debug("user recipe %s upserted by %s (replaced=%v)", r.ID, r.CreatorHandle, replaced)
	return nil
}

// ByCreator returns all published recipes credited to the handle.
// Comparison ignores case; callers pass the handle in display form.
func (s *Store) ByCreator(ctx context.Context, handle string) ([]domain.UserRecipe, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(handle)
	var out []domain.UserRecipe
	for _, r := range list {
		if strings.ToLower(r.CreatorHandle) == want {
			out = append(out, r)
		}
	}
	return out, nil
}

// EnsureSampleCreatorsSeeded publishes the demo creator recipes once.
// Subsequent calls are no-ops guarded by a flag key.
func (s *Store) EnsureSampleCreatorsSeeded(ctx context.Context) error {
	if _, ok, err := s.kv.Get(ctx, SeedFlagKey); err != nil {
		return fmt.Errorf("read seed flag: %w", err)
	} else if ok {
		return nil
	}
	for _, r := range sampleRecipes() {
		if err := s.Upsert(ctx, r); err != nil {
			return err
		}
	}
	if err := s.kv.Set(ctx, SeedFlagKey, "1"); err != nil {
		return fmt.Errorf("set seed flag: %w", err)
	}
	s.log.Info("sample creator recipes seeded")
	return nil
}

func (s *Store) load(ctx context.Context) ([]domain.UserRecipe, error) {
	list := []domain.UserRecipe{}
	if _, err := kvstore.ReadJSON(ctx, s.kv, Key, &list); err != nil {
		return nil, fmt.Errorf("load user recipes: %w", err)
	}
	return list, nil
}

func sampleRecipes() []domain.UserRecipe {
	now := time.Now().UnixMilli()
	return []domain.UserRecipe{
		{
			Recipe: domain.Recipe{
				ID:          "ux_pizza_veg_med",
				Title:       "Vegan Mediterranean Pizza",
				Description: "Crispy crust with hummus base, olives, tomatoes, and arugula.",
				Ingredients: []string{
					"1 pizza dough (12-inch)",
					"1/2 cup hummus",
					"1/3 cup kalamata olives, sliced",
					"1/2 cup cherry tomatoes, halved",
					"1/4 red onion, thinly sliced",
					"Arugula, handful",
					"Olive oil, salt, pepper",
				},
				Steps: []string{
					"Preheat Mini Oven to 475°F with stone/steel if available.",
					"Stretch dough, spread hummus thinly.",
					"Top with olives, tomatoes, red onion; drizzle olive oil.",
					"Bake 8–12 min until edges are blistered.",
					"Top with arugula, season, slice and serve.",
				},
				Preset: "vegetarian",
				ApplianceSupport: map[domain.ApplianceKey][]string{
					domain.ApplianceMiniOven: {"Bake"},
				},
				Meta:      &domain.Meta{Total: 18, Active: 10, Difficulty: "Easy", Yield: "2–3 Servings"},
				CreatedAt: now,
			},
			CreatorHandle: "@pizza_poppy",
			AvgRating:     4.6,
			RatingsCount:  24,
		},
		{
			Recipe: domain.Recipe{
				ID:          "ux_wings_maple_smoke",
				Title:       "Smoky Maple Wings",
				Description: "Sweet heat with a crispy finish, perfect game-day snack.",
				Ingredients: []string{
					"2 lb chicken wings",
					"2 tbsp maple syrup",
					"1 tbsp smoked paprika",
					"1 tsp garlic powder",
					"1 tsp salt",
					"Black pepper",
				},
				Steps: []string{
					"Pat wings dry; toss with spices and salt.",
					"Air Fry 390°F for 18–22 min, turning once.",
					"Toss with warm maple syrup; air fry 2 more min.",
				},
				Preset: "poultry",
				ApplianceSupport: map[domain.ApplianceKey][]string{
					domain.ApplianceMiniOven: {"Air Fry"},
				},
				Meta:      &domain.Meta{Total: 28, Active: 10, Difficulty: "Easy", Yield: "4 Servings"},
				CreatedAt: now,
			},
			CreatorHandle: "@grillmaster_g",
			AvgRating:     4.7,
			RatingsCount:  31,
		},
	}
}
