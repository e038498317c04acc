// Package session tracks the single in-progress guided cooking
// session. Exactly zero or one session exists at a time; starting a
// new one discards the previous session unconditionally.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

// Key is the storage key for the singleton session record.
const Key = "chefiq_inprogress"

// HistoryRecorder receives the recipe id of a finished session.
type HistoryRecorder interface {
	RecordHistory(ctx context.Context, id string) error
}

// Tracker is the guided session state machine. Every transition
// persists before returning; there are no deferred writes.
type Tracker struct {
	mu       sync.Mutex
	kv       domain.KV
	resolver domain.RecipeResolver
	history  HistoryRecorder
	log      *logger.Logger
}

func NewTracker(kv domain.KV, resolver domain.RecipeResolver, history HistoryRecorder, log *logger.Logger) *Tracker {
	return &Tracker{kv: kv, resolver: resolver, history: history, log: log}
}

// Start begins a session for a catalog recipe id, replacing any
// existing session. initialStep is clamped into the valid range.
func (t *Tracker) Start(ctx context.Context, recipeID string, initialStep int, appliance, mode string) (domain.InProgress, error) {
	r, ok := t.resolver.Resolve(recipeID)
	if !ok {
		return domain.InProgress{}, fmt.Errorf("recipe %s: %w", recipeID, domain.ErrNotFound)
	}
	return t.StartRecipe(ctx, r, initialStep, appliance, mode)
}

// StartRecipe begins a session from a recipe payload directly, for
// recipes that live outside the catalog.
func (t *Tracker) StartRecipe(ctx context.Context, r *domain.Recipe, initialStep int, appliance, mode string) (domain.InProgress, error) {
	total := len(r.Steps)
	if total < 1 {
		total = 1
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	s := domain.InProgress{
		RecipeID:    r.ID,
		Title:       r.Title,
		CoverURI:    r.CoverURI,
		CurrentStep: clamp(initialStep, 0, total-1),
		TotalSteps:  total,
		Appliance:   appliance,
		Mode:        mode,
		UpdatedAt:   time.Now().UnixMilli(),
	}
	if err := t.persist(ctx, s); err != nil {
		return domain.InProgress{}, err
	}
	t.log.Info("session started: %s step %d/%d", s.RecipeID, s.CurrentStep+1, s.TotalSteps)
	return s, nil
}

// Current returns the active session, or ErrNoSession when none is
// stored. A missing record is a valid state, not a failure.
func (t *Tracker) Current(ctx context.Context) (domain.InProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.load(ctx)
}

// Advance moves to the next step, saturating at the last one.
func (t *Tracker) Advance(ctx context.Context) (domain.InProgress, error) {
	return t.shift(ctx, +1)
}

// Retreat moves to the previous step, saturating at the first one.
func (t *Tracker) Retreat(ctx context.Context) (domain.InProgress, error) {
	return t.shift(ctx, -1)
}

// Finish records the session's recipe into cooking history and clears
// the session.
func (t *Tracker) Finish(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.load(ctx)
	if err != nil {
		return err
	}
	if err := t.history.RecordHistory(ctx, s.RecipeID); err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	if err := t.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	t.log.Info("session finished: %s", s.RecipeID)
	return nil
}

// Exit clears the session without touching history.
func (t *Tracker) Exit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.load(ctx)
	if err != nil {
		return err
	}
	if err := t.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	t.log.Info("session exited: %s", s.RecipeID)
	return nil
}

func (t *Tracker) shift(ctx context.Context, delta int) (domain.InProgress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.load(ctx)
	if err != nil {
		return domain.InProgress{}, err
	}
	s.CurrentStep = clamp(s.CurrentStep+delta, 0, s.TotalSteps-1)
	s.UpdatedAt = time.Now().UnixMilli()
	if err := t.persist(ctx, s); err != nil {
		return domain.InProgress{}, err
	}
	return s, nil
}

func (t *Tracker) load(ctx context.Context) (domain.InProgress, error) {
	var s domain.InProgress
	found, err := kvstore.ReadJSON(ctx, t.kv, Key, &s)
	if err != nil {
		return domain.InProgress{}, fmt.Errorf("load session: %w", err)
	}
	if !found || s.RecipeID == "" {
		return domain.InProgress{}, domain.ErrNoSession
	}
	// Repair out-of-bounds records from older writers.
	if s.TotalSteps < 1 {
		s.TotalSteps = 1
	}
	s.CurrentStep = clamp(s.CurrentStep, 0, s.TotalSteps-1)
	return s, nil
}

func (t *Tracker) persist(ctx context.Context, s domain.InProgress) error {
	if err := kvstore.WriteJSON(ctx, t.kv, Key, s); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
