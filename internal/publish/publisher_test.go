package publish

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/kvstore"
	"github.com/hammamikhairi/chefiq/internal/logger"
	"github.com/hammamikhairi/chefiq/internal/profile"
	"github.com/hammamikhairi/chefiq/internal/userrecipes"
)

type fixture struct {
	pub     *Publisher
	recipes *userrecipes.Store
	prof    *profile.Store
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logger.New(logger.LevelOff, io.Discard)
	kv := kvstore.NewMemory(log)
	recipes := userrecipes.NewStore(kv, log)
	prof := profile.NewStore(kv, log)
	return &fixture{
		pub:     New(recipes, prof, log, WithEndpoint(srv.URL)),
		recipes: recipes,
		prof:    prof,
	}
}

func validDraft() domain.Draft {
	return domain.Draft{
		ID:    "d1",
		Title: "  Weeknight Flatbread  ",
		Ingredients: []domain.DraftItem{
			{ID: "i1", Text: "dough"},
			{ID: "i2", Text: "   "},
			{ID: "i3", Text: " za'atar "},
		},
		Steps: []domain.DraftItem{
			{ID: "s1", Text: "stretch"},
			{ID: "s2", Text: "bake"},
		},
		ApplianceSupport: map[domain.ApplianceKey][]string{
			domain.ApplianceMiniOven: {"Bake"},
		},
		Preset: "vegetarian",
	}
}

func TestPublishPromotesAndCredits(t *testing.T) {
	var gotHeader, gotBody string
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Chefiq-Demo")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"ok":true}`))
	})
	ctx := context.Background()

	f.prof.SetName(ctx, "Sous Sammy")
	res, err := f.pub.Publish(ctx, validDraft())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if gotHeader != "MiniOvenRecipePublish" {
		t.Fatalf("demo header = %q", gotHeader)
	}
	if !strings.Contains(gotBody, "Weeknight Flatbread") {
		t.Fatalf("draft JSON not posted: %s", gotBody)
	}

	if res.Recipe.Title != "Weeknight Flatbread" {
		t.Fatalf("title not trimmed: %q", res.Recipe.Title)
	}
	if len(res.Recipe.Ingredients) != 2 || res.Recipe.Ingredients[1] != "za'atar" {
		t.Fatalf("items not flattened: %v", res.Recipe.Ingredients)
	}
	if res.Recipe.CreatorHandle != "@sous_sammy" {
		t.Fatalf("creator handle = %q", res.Recipe.CreatorHandle)
	}
	if res.Points != profile.PublishPoints {
		t.Fatalf("points = %d, want %d", res.Points, profile.PublishPoints)
	}
	if res.Response != `{"ok":true}` {
		t.Fatalf("response = %q", res.Response)
	}

	stored, err := f.recipes.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("promoted recipe not stored: %v", err)
	}
	if stored.CreatorHandle != "@sous_sammy" {
		t.Fatalf("stored handle = %q", stored.CreatorHandle)
	}
}

func TestPublishValidation(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("invalid draft must not reach the network")
	})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.Draft)
	}{
		{"empty title", func(d *domain.Draft) { d.Title = "   " }},
		{"no appliance", func(d *domain.Draft) { d.ApplianceSupport = nil }},
		{"no preset", func(d *domain.Draft) { d.Preset = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			if _, err := f.pub.Publish(ctx, d); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}

	// Rejected publishes leave no state behind.
	list, _ := f.recipes.List(ctx)
	if len(list) != 0 {
		t.Fatalf("validation failure must not promote: %v", list)
	}
	if n, _ := f.prof.Points(ctx); n != 0 {
		t.Fatalf("validation failure must not credit points: %d", n)
	}
}

func TestPublishHTTPFailure(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})
	ctx := context.Background()

	if _, err := f.pub.Publish(ctx, validDraft()); !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}

	// No partial promotion.
	list, _ := f.recipes.List(ctx)
	if len(list) != 0 {
		t.Fatalf("failed publish must not promote: %v", list)
	}
	if n, _ := f.prof.Points(ctx); n != 0 {
		t.Fatalf("failed publish must not credit points: %d", n)
	}
}

func TestPublishTruncatesLongResponse(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("z", previewLimit+500)))
	})

	res, err := f.pub.Publish(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.HasSuffix(res.Response, "…(truncated)") {
		t.Fatalf("long response should be clipped")
	}
	if len(res.Response) > previewLimit+len("\n…(truncated)") {
		t.Fatalf("response preview too long: %d", len(res.Response))
	}
}

func TestPublishClipsResponseByCharacters(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("é", previewLimit+1)))
	})

	res, err := f.pub.Publish(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	preview := strings.TrimSuffix(res.Response, "\n…(truncated)")
	if preview == res.Response {
		t.Fatalf("multibyte response should be clipped")
	}
	if got := utf8.RuneCountInString(preview); got != previewLimit {
		t.Fatalf("preview has %d chars, want %d", got, previewLimit)
	}
	if !utf8.ValidString(preview) {
		t.Fatalf("preview is not valid UTF-8")
	}
}

func TestPublishRepublishUpserts(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	ctx := context.Background()

	f.pub.Publish(ctx, validDraft())
	d := validDraft()
	d.Title = "Renamed Flatbread"
	if _, err := f.pub.Publish(ctx, d); err != nil {
		t.Fatalf("republish: %v", err)
	}

	list, _ := f.recipes.List(ctx)
	if len(list) != 1 {
		t.Fatalf("republish should upsert, got %d recipes", len(list))
	}
	if list[0].Title != "Renamed Flatbread" {
		t.Fatalf("republish did not replace: %q", list[0].Title)
	}
	// Points accrue per successful publish.
	if n, _ := f.prof.Points(ctx); n != 2*profile.PublishPoints {
		t.Fatalf("points = %d, want %d", n, 2*profile.PublishPoints)
	}
}
