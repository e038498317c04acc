package session

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hammamikhairi/chefiq/internal/catalog"
	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/engagement"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

func newTestTracker(t *testing.T) (*Tracker, *engagement.Sets, domain.KV) {
	t.Helper()
	log := logger.New(logger.LevelOff, io.Discard)
	kv := kvstore.NewMemory(log)
	sets := engagement.NewSets(kv, log)
	return NewTracker(kv, catalog.New(log), sets, log), sets, kv
}

func TestStartClampsAndPersists(t *testing.T) {
	tr, _, kv := newTestTracker(t)
	ctx := context.Background()

	s, err := tr.Start(ctx, "4", 99, "iQ Mini Oven", "Bake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.CurrentStep != s.TotalSteps-1 {
		t.Fatalf("initial step should clamp to last, got %d/%d", s.CurrentStep, s.TotalSteps)
	}
	if s.Title == "" || s.RecipeID != "4" {
		t.Fatalf("session missing recipe fields: %+v", s)
	}
	if _, ok, _ := kv.Get(ctx, Key); !ok {
		t.Fatalf("start must persist before returning")
	}

	s, err = tr.Start(ctx, "4", -3, "iQ Mini Oven", "Bake")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.CurrentStep != 0 {
		t.Fatalf("negative initial step should clamp to 0, got %d", s.CurrentStep)
	}
}

func TestStartUnknownRecipe(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	if _, err := tr.Start(context.Background(), "ghost", 0, "", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartOverwritesPriorSession(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	tr.Start(ctx, "1", 2, "iQ Mini Oven", "Roast")
	s, err := tr.Start(ctx, "2", 0, "iQ Mini Oven", "Air Fry")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	cur, err := tr.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur.RecipeID != "2" || cur.CurrentStep != s.CurrentStep {
		t.Fatalf("prior session should be discarded: %+v", cur)
	}
}

func TestAdvanceRetreatSaturate(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	s, _ := tr.Start(ctx, "4", 0, "iQ Mini Oven", "Bake")
	last := s.TotalSteps - 1

	for i := 0; i < last+5; i++ {
		if s, _ = tr.Advance(ctx); s.CurrentStep > last {
			t.Fatalf("step %d exceeded bounds", s.CurrentStep)
		}
	}
	if s.CurrentStep != last {
		t.Fatalf("advance should saturate at %d, got %d", last, s.CurrentStep)
	}

	for i := 0; i < last+5; i++ {
		if s, _ = tr.Retreat(ctx); s.CurrentStep < 0 {
			t.Fatalf("step %d below bounds", s.CurrentStep)
		}
	}
	if s.CurrentStep != 0 {
		t.Fatalf("retreat should saturate at 0, got %d", s.CurrentStep)
	}
}

func TestFinishRecordsHistoryAndClears(t *testing.T) {
	tr, sets, _ := newTestTracker(t)
	ctx := context.Background()

	tr.Start(ctx, "3", 0, "iQ Cooker", "Pressure Cook")
	if err := tr.Finish(ctx); err != nil {
		t.Fatalf("finish: %v", err)
	}

	hist, _ := sets.History(ctx)
	if len(hist) != 1 || hist[0] != "3" {
		t.Fatalf("finish should record history: %v", hist)
	}
	if _, err := tr.Current(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after finish, got %v", err)
	}
}

func TestExitSkipsHistory(t *testing.T) {
	tr, sets, _ := newTestTracker(t)
	ctx := context.Background()

	tr.Start(ctx, "3", 0, "iQ Cooker", "Pressure Cook")
	if err := tr.Exit(ctx); err != nil {
		t.Fatalf("exit: %v", err)
	}

	hist, _ := sets.History(ctx)
	if len(hist) != 0 {
		t.Fatalf("exit must not touch history: %v", hist)
	}
	if _, err := tr.Current(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after exit, got %v", err)
	}
}

func TestTransitionsRequireActiveSession(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	if _, err := tr.Advance(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("advance: expected ErrNoSession, got %v", err)
	}
	if _, err := tr.Retreat(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("retreat: expected ErrNoSession, got %v", err)
	}
	if err := tr.Finish(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("finish: expected ErrNoSession, got %v", err)
	}
	if err := tr.Exit(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("exit: expected ErrNoSession, got %v", err)
	}
}

func TestCorruptSessionReadsAsNone(t *testing.T) {
	tr, _, kv := newTestTracker(t)
	ctx := context.Background()

	kv.Set(ctx, Key, "{broken")
	if _, err := tr.Current(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("corrupt session should read as none, got %v", err)
	}
}

func TestOutOfBoundsStoredStepIsRepaired(t *testing.T) {
	tr, _, kv := newTestTracker(t)
	ctx := context.Background()

	kv.Set(ctx, Key, `{"id":"1","title":"T","currentStep":40,"totalSteps":3,"updatedAt":1}`)
	s, err := tr.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if s.CurrentStep != 2 {
		t.Fatalf("stored step should clamp to 2, got %d", s.CurrentStep)
	}
}

func TestStartFromPayloadRecipe(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ctx := context.Background()

	r := &domain.Recipe{ID: "ux_custom", Title: "Mine", Steps: []string{"a", "b"}}
	s, err := tr.StartRecipe(ctx, r, 1, "iQ Mini Oven", "Bake")
	if err != nil {
		t.Fatalf("start recipe: %v", err)
	}
	if s.RecipeID != "ux_custom" || s.TotalSteps != 2 || s.CurrentStep != 1 {
		t.Fatalf("payload session wrong: %+v", s)
	}
}
