package catalog

import (
	"github.com/hammamikhairi/chefiq/internal/domain"
)

// knownCreators is the demo creator roster. Order matters for the
// deterministic fallback pick.
var knownCreators = []string{
	"grill_guru",
	"pizza_poppy",
	"sous_sammy",
	"veggie_vibes",
	"sweet_tooth_sara",
	"midnight_snacker",
}

// recipeCreators pins specific recipe ids to creators so creator pages
// always have content.
var recipeCreators = map[string]string{
	"1": "grill_guru",
	"2": "grill_guru",
	"3": "sweet_tooth_sara",
	"4": "pizza_poppy",
	"5": "veggie_vibes",
	"6": "midnight_snacker",
	"7": "sous_sammy",
}

// hashPick maps a seed string onto one of the known creators. Same
// seed, same creator, across processes.
func hashPick(seed string) string {
	var h uint32
	for i := 0; i < len(seed); i++ {
		h = h*31 + uint32(seed[i])
	}
	return knownCreators[h%uint32(len(knownCreators))]
}

// CreatorFor returns the handle (without @) credited for a recipe id.
// Unmapped ids get a stable pseudo-random creator.
func CreatorFor(id string) string {
	if id == "" {
		return knownCreators[0]
	}
	if handle, ok := recipeCreators[id]; ok {
		return handle
	}
	return hashPick(id)
}

// RecipesByCreator returns all catalog recipes credited to the handle.
func (c *Catalog) RecipesByCreator(handle string) []*domain.Recipe {
	clean := domain.CleanHandle(handle)
	var out []*domain.Recipe
	for _, r := range c.All() {
		if CreatorFor(r.ID) == clean {
			out = append(out, r)
		}
	}
	return out
}

// SeedCreators is the default list shown under favorite home chefs
// before the user has favorited anyone.
func SeedCreators() []string {
	out := make([]string, len(knownCreators))
	for i, h := range knownCreators {
		out[i] = "@" + h
	}
	return out
}
