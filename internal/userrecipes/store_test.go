package userrecipes

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

func newTestStore(t *testing.T) (*Store, domain.KV) {
	t.Helper()
	log := logger.New(logger.LevelOff, io.Discard)
	kv := kvstore.NewMemory(log)
	return NewStore(kv, log), kv
}

func rec(id, handle string) domain.UserRecipe {
	return domain.UserRecipe{
		Recipe:        domain.Recipe{ID: id, Title: "T " + id},
		CreatorHandle: handle,
	}
}

func TestUpsertPrependsAndReplaces(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, rec("a", "@x")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	s.Upsert(ctx, rec("b", "@x"))

	list, _ := s.List(ctx)
	if len(list) != 2 || list[0].ID != "b" {
		t.Fatalf("new recipe should lead the list: %+v", list)
	}

	// Replacing keeps position.
	updated := rec("a", "@y")
	updated.Title = "Renamed"
	s.Upsert(ctx, updated)
	list, _ = s.List(ctx)
	if len(list) != 2 {
		t.Fatalf("replace should not grow the list")
	}
	if list[1].Title != "Renamed" || list[1].CreatorHandle != "@y" {
		t.Fatalf("replace did not stick: %+v", list[1])
	}
}

func TestGetMissing(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestByCreatorIgnoresCase(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.Upsert(ctx, rec("a", "@Pizza_Poppy"))
	s.Upsert(ctx, rec("b", "@grill_guru"))

	got, err := s.ByCreator(ctx, "@pizza_poppy")
	if err != nil {
		t.Fatalf("by creator: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("case-insensitive match failed: %+v", got)
	}
}

func TestSeedRunsOnce(t *testing.T) {
	s, kv := newTestStore(t)
	ctx := context.Background()

	if err := s.EnsureSampleCreatorsSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	list, _ := s.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 seeded recipes, got %d", len(list))
	}
	if flag, ok, _ := kv.Get(ctx, SeedFlagKey); !ok || flag != "1" {
		t.Fatalf("seed flag not set")
	}

	byPoppy, _ := s.ByCreator(ctx, "@pizza_poppy")
	if len(byPoppy) != 1 {
		t.Fatalf("expected pizza_poppy seed recipe")
	}

	// Second run is a no-op even after the user edits the list.
	s.Upsert(ctx, rec("mine", "@me"))
	if err := s.EnsureSampleCreatorsSeeded(ctx); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	list, _ = s.List(ctx)
	if len(list) != 3 {
		t.Fatalf("reseed must not duplicate, got %d recipes", len(list))
	}
}
