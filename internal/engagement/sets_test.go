package engagement

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

func newTestSets(t *testing.T) (*Sets, domain.KV) {
	t.Helper()
	log := logger.New(logger.LevelOff, io.Discard)
	kv := kvstore.NewMemory(log)
	return NewSets(kv, log), kv
}

func TestToggleFavorite(t *testing.T) {
	s, _ := newTestSets(t)
	ctx := context.Background()

	nowFav, err := s.ToggleFavorite(ctx, "1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !nowFav {
		t.Fatalf("first toggle should favorite")
	}
	if fav, _ := s.IsFavorite(ctx, "1"); !fav {
		t.Fatalf("IsFavorite should report true")
	}

	nowFav, _ = s.ToggleFavorite(ctx, "1")
	if nowFav {
		t.Fatalf("second toggle should unfavorite")
	}
	list, _ := s.Favorites(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty favorites, got %v", list)
	}
}

func TestFavoriteOrderNewestFirst(t *testing.T) {
	s, _ := newTestSets(t)
	ctx := context.Background()

	s.ToggleFavorite(ctx, "a")
	s.ToggleFavorite(ctx, "b")
	s.ToggleFavorite(ctx, "c")

	list, _ := s.Favorites(ctx)
	want := []string{"c", "b", "a"}
	for i, id := range want {
		if list[i] != id {
			t.Fatalf("favorites[%d] = %q, want %q", i, list[i], id)
		}
	}
}

func TestRecordHistoryDedupsAndCaps(t *testing.T) {
	s, _ := newTestSets(t)
	ctx := context.Background()

	s.RecordHistory(ctx, "a")
	s.RecordHistory(ctx, "b")
	s.RecordHistory(ctx, "a")

	list, _ := s.History(ctx)
	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Fatalf("history dedup wrong: %v", list)
	}

	for i := 0; i < domain.HistoryListCap+10; i++ {
		s.RecordHistory(ctx, fmt.Sprintf("r%d", i))
	}
	list, _ = s.History(ctx)
	if len(list) != domain.HistoryListCap {
		t.Fatalf("history length = %d, want cap %d", len(list), domain.HistoryListCap)
	}
}

func TestToggleCreatorNormalizesSigil(t *testing.T) {
	s, _ := newTestSets(t)
	ctx := context.Background()

	nowFav, err := s.ToggleCreator(ctx, "grill_guru")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !nowFav {
		t.Fatalf("first toggle should favorite")
	}
	list, _ := s.FavoriteCreators(ctx)
	if len(list) != 1 || list[0] != "@grill_guru" {
		t.Fatalf("stored form should carry the sigil: %v", list)
	}

	// Sigil spelling must not matter for lookups or toggles.
	if fav, _ := s.IsCreatorFavorite(ctx, "@grill_guru"); !fav {
		t.Fatalf("sigil lookup failed")
	}
	if fav, _ := s.IsCreatorFavorite(ctx, "grill_guru"); !fav {
		t.Fatalf("bare lookup failed")
	}
	nowFav, _ = s.ToggleCreator(ctx, "@grill_guru")
	if nowFav {
		t.Fatalf("toggle with sigil should unfavorite")
	}
	list, _ = s.FavoriteCreators(ctx)
	if len(list) != 0 {
		t.Fatalf("expected empty creators, got %v", list)
	}
}

func TestSetsAreIndependent(t *testing.T) {
	s, kv := newTestSets(t)
	ctx := context.Background()

	s.ToggleFavorite(ctx, "1")
	s.RecordHistory(ctx, "2")
	s.ToggleCreator(ctx, "sous_sammy")

	for _, key := range []string{FavoritesKey, HistoryKey, CreatorsKey} {
		if _, ok, _ := kv.Get(ctx, key); !ok {
			t.Fatalf("key %s not written", key)
		}
	}
	favs, _ := s.Favorites(ctx)
	hist, _ := s.History(ctx)
	if len(favs) != 1 || len(hist) != 1 {
		t.Fatalf("sets leaked: favs=%v hist=%v", favs, hist)
	}
}

func TestCorruptListReadsEmpty(t *testing.T) {
	s, kv := newTestSets(t)
	ctx := context.Background()

	kv.Set(ctx, FavoritesKey, "not json")
	list, err := s.Favorites(ctx)
	if err != nil {
		t.Fatalf("favorites on corrupt blob: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("corrupt blob should read as empty, got %v", list)
	}
}
