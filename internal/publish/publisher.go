// Package publish posts a draft to the demo publish endpoint and, on
// success, promotes it into the published user recipe list and credits
// creator points.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/logger"
	"github.com/hammamikhairi/chefiq/internal/profile"
	"github.com/hammamikhairi/chefiq/internal/userrecipes"
)

// DefaultEndpoint echoes the posted JSON back, standing in for a real
// publish backend.
const DefaultEndpoint = "https://postman-echo.com/post"

// demoHeader tags outbound publish requests.
const demoHeader = "MiniOvenRecipePublish"

// previewLimit caps the response body kept for display.
const previewLimit = 2000

// Result is the outcome of a successful publish.
type Result struct {
	Recipe   domain.UserRecipe
	Points   int
	Response string
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithEndpoint overrides the publish URL.
func WithEndpoint(url string) Option {
	return func(p *Publisher) { p.endpoint = url }
}

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(p *Publisher) { p.http.Timeout = d }
}

// Publisher runs the publish flow.
type Publisher struct {
	endpoint string
	http     *http.Client
	recipes  *userrecipes.Store
	prof     *profile.Store
	log      *logger.Logger
}

func New(recipes *userrecipes.Store, prof *profile.Store, log *logger.Logger, opts ...Option) *Publisher {
	p := &Publisher{
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 20 * time.Second},
		recipes:  recipes,
		prof:     prof,
		log:      log,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Publish validates the draft, posts its JSON to the endpoint, and on
// HTTP success promotes it to a published user recipe plus a fixed
// points credit. Failures before or during the POST leave all local
// state untouched. The returned response body is truncated for
// display.
func (p *Publisher) Publish(ctx context.Context, d domain.Draft) (Result, error) {
	if err := validate(d); err != nil {
		return Result{}, err
	}

	body, err := json.Marshal(d)
	if err != nil {
		return Result{}, fmt.Errorf("marshal draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Chefiq-Demo", demoHeader)

	p.log.Debug("publish: POST %s (%d bytes)", p.endpoint, len(body))

	resp, err := p.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("publish request: %v: %w", err, domain.ErrNetwork)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read response: %v: %w", err, domain.ErrNetwork)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("publish %s: %w", resp.Status, domain.ErrNetwork)
	}

	name, err := p.prof.Name(ctx)
	if err != nil {
		return Result{}, err
	}
	ur := promote(d, handleForName(name))

	// Promote first, then credit points. Not a single transaction; a
	// crash in between leaves the recipe published without points.
	if err := p.recipes.Upsert(ctx, ur); err != nil {
		return Result{}, err
	}
	points, err := p.prof.AddPoints(ctx, profile.PublishPoints)
	if err != nil {
		return Result{}, err
	}

	p.log.Info("published %s as %s (+%d points)", ur.ID, ur.CreatorHandle, profile.PublishPoints)
	return Result{Recipe: ur, Points: points, Response: clip(string(respBody))}, nil
}

func validate(d domain.Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title required: %w", domain.ErrValidation)
	}
	if !d.SupportsAnyAppliance() {
		return fmt.Errorf("at least one appliance required: %w", domain.ErrValidation)
	}
	if d.Preset == "" {
		return fmt.Errorf("category required: %w", domain.ErrValidation)
	}
	return nil
}

// promote maps a draft onto a published recipe, flattening structured
// ingredient and step items to plain text.
func promote(d domain.Draft, handle string) domain.UserRecipe {
	return domain.UserRecipe{
		Recipe: domain.Recipe{
			ID:               d.ID,
			Title:            strings.TrimSpace(d.Title),
			Description:      d.Description,
			CoverURI:         d.CoverURI,
			Ingredients:      domain.FlattenItems(d.Ingredients),
			Steps:            domain.FlattenItems(d.Steps),
			ApplianceSupport: d.ApplianceSupport,
			Preset:           d.Preset,
			Meta:             d.Meta,
			CreatedAt:        time.Now().UnixMilli(),
			LastUpdated:      time.Now().UnixMilli(),
		},
		CreatorHandle: handle,
	}
}

// handleForName derives a creator handle from the display name:
// lowercased, spaces collapsed to underscores, sigil-prefixed.
func handleForName(name string) string {
	h := strings.ToLower(strings.TrimSpace(name))
	h = strings.Join(strings.Fields(h), "_")
	if h == "" {
		h = "chef"
	}
	return domain.DisplayHandle(h)
}

// clip counts characters rather than bytes so a multibyte response is
// never split mid-rune.
func clip(s string) string {
	r := []rune(s)
	if len(r) <= previewLimit {
		return s
	}
	return string(r[:previewLimit]) + "\n…(truncated)"
}
