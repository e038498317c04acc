// Package catalog holds the built-in recipe library: featured recipes,
// preset categories, display metadata, appliance modes, and creator
// attribution. The catalog is read-only and never mutated after
// construction, so lookups need no locking.
package catalog

import (
	"sort"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeResolver = (*Catalog)(nil)

// Catalog is the static recipe source.
type Catalog struct {
	featured []*domain.Recipe
	byPreset map[string][]*domain.Recipe
	byID     map[string]*domain.Recipe
	log      *logger.Logger
}

// New builds the catalog preloaded with the built-in library.
func New(log *logger.Logger) *Catalog {
	c := &Catalog{
		byPreset: make(map[string][]*domain.Recipe),
		byID:     make(map[string]*domain.Recipe),
		log:      log,
	}
	c.seed()
	log.Debug("catalog seeded: %d recipes, %d presets", len(c.byID), len(c.byPreset))
	return c
}

// Resolve returns a recipe by id, searching featured and preset
// recipes alike.
func (c *Catalog) Resolve(id string) (*domain.Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// Featured returns the home-screen featured recipes in display order.
func (c *Catalog) Featured() []*domain.Recipe {
	return c.featured
}

// ByPreset returns the recipes of one preset category, or nil for an
// unknown slug.
func (c *Catalog) ByPreset(slug string) []*domain.Recipe {
	return c.byPreset[slug]
}

// Presets returns all browseable categories in display order.
func (c *Catalog) Presets() []domain.Preset {
	return presets
}

// All returns every catalog recipe sorted by title.
func (c *Catalog) All() []*domain.Recipe {
	out := make([]*domain.Recipe, 0, len(c.byID))
	for _, r := range c.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// add registers a recipe under its id and optional preset slug.
func (c *Catalog) add(slug string, r *domain.Recipe) *domain.Recipe {
	if slug != "" {
		r.Preset = slug
		c.byPreset[slug] = append(c.byPreset[slug], r)
	}
	if _, dup := c.byID[r.ID]; !dup {
		c.byID[r.ID] = r
	}
	return r
}

var presets = []domain.Preset{
	{Slug: "poultry", Label: "Poultry"},
	{Slug: "meat", Label: "Meat"},
	{Slug: "seafood", Label: "Seafood"},
	{Slug: "vegetarian", Label: "Vegetarian"},
	{Slug: "pork", Label: "Pork"},
	{Slug: "beef", Label: "Beef"},
	{Slug: "grains", Label: "Grains"},
	{Slug: "eggs", Label: "Eggs"},
	{Slug: "stews", Label: "Stews"},
	{Slug: "pasta", Label: "Pasta"},
	{Slug: "soups", Label: "Soups"},
	{Slug: "fruit", Label: "Fruit"},
}
