// Package drafts persists recipes under authoring. Drafts live as one
// JSON array blob; every mutation rewrites the whole list.
package drafts

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

// Key is the storage key for the draft list. The v2 suffix marks the
// structured item schema; v1 blobs fail decoding and read as empty.
const Key = "chefIQ_drafts_v2"

// Store manages the draft list.
type Store struct {
	mu  sync.Mutex
	kv  domain.KV
	log *logger.Logger
}

func NewStore(kv domain.KV, log *logger.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// List returns all drafts, most recently updated first.
func (s *Store) List(ctx context.Context) ([]domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Get returns one draft by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return domain.Draft{}, err
	}
	for _, d := range list {
		if d.ID == id {
			return d, nil
		}
	}
	return domain.Draft{}, fmt.Errorf("draft %s: %w", id, domain.ErrNotFound)
}

// Save upserts a draft. A draft without an id gets one assigned. New
// drafts go to the front of the list; existing drafts are replaced in
// place. The draft's lastUpdated is stamped on every save.
func (s *Store) Save(ctx context.Context, d domain.Draft) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return domain.Draft{}, err
	}

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.LastUpdated = time.Now().UnixMilli()

	replaced := false
	for i := range list {
		if list[i].ID == d.ID {
			list[i] = d
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]domain.Draft{d}, list...)
	}

	if err := kvstore.WriteJSON(ctx, s.kv, Key, list); err != nil {
		return domain.Draft{}, fmt.Errorf("save draft: %w", err)
	}
	s.log.Debug("draft %s saved (replaced=%v, %d total)", d.ID, replaced, len(list))
	return d, nil
}

// Delete removes a draft by id. Deleting an unknown id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, d := range list {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	if err := kvstore.WriteJSON(ctx, s.kv, Key, kept); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	s.log.Debug("draft %s deleted (%d remain)", id, len(kept))
	return nil
}

func (s *Store) load(ctx context.Context) ([]domain.Draft, error) {
	list := []domain.Draft{}
	if _, err := kvstore.ReadJSON(ctx, s.kv, Key, &list); err != nil {
		return nil, fmt.Errorf("load drafts: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].LastUpdated > list[j].LastUpdated
	})
	return list, nil
}
