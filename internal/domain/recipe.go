// Package domain defines the core types and interfaces for the recipe app.
// All other packages depend on domain; domain depends on nothing.
package domain

// ApplianceKey identifies one of the two supported appliance types.
type ApplianceKey string

const (
	ApplianceMiniOven ApplianceKey = "minioven"
	ApplianceCooker   ApplianceKey = "cooker"
)

// Appliance pairs an appliance key with its display label.
type Appliance struct {
	Key   ApplianceKey
	Label string
}

// Meta holds display metadata for a recipe. Absent fields are filled
// with per-preset defaults at read time; fabricated defaults are never
// written back to storage.
type Meta struct {
	Difficulty string `json:"difficulty,omitempty"` // "Easy" | "Medium" | "Hard"
	Active     int    `json:"active,omitempty"`     // minutes of hands-on time
	Total      int    `json:"total,omitempty"`      // minutes wall-clock time
	Yield      string `json:"yield,omitempty"`      // e.g. "4 Servings", "8 Slices"
}

// Recipe is canonical cooking content. Ingredient and step order is
// semantically meaningful and must survive save/load round-trips.
type Recipe struct {
	ID               string                    `json:"id"`
	Title            string                    `json:"title"`
	Description      string                    `json:"description,omitempty"`
	CoverURI         string                    `json:"coverUri,omitempty"`
	Ingredients      []string                  `json:"ingredients"`
	Steps            []string                  `json:"steps"`
	ApplianceSupport map[ApplianceKey][]string `json:"applianceSupport,omitempty"`
	Preset           string                    `json:"preset,omitempty"`
	Meta             *Meta                     `json:"meta,omitempty"`
	CreatedAt        int64                     `json:"createdAt,omitempty"`
	LastUpdated      int64                     `json:"lastUpdated,omitempty"`
}

// Supports reports whether the recipe lists at least one mode for the
// given appliance.
func (r *Recipe) Supports(key ApplianceKey) bool {
	if r == nil || r.ApplianceSupport == nil {
		return false
	}
	return len(r.ApplianceSupport[key]) > 0
}

// UserRecipe is a published recipe credited to a creator handle.
// Created only by the publish flow or the one-time seeding routine.
type UserRecipe struct {
	Recipe
	CreatorHandle string  `json:"creatorHandle,omitempty"`
	AvgRating     float64 `json:"avgRating,omitempty"`
	RatingsCount  int     `json:"ratingsCount,omitempty"`
}

// Preset is a named recipe category used for catalog browsing.
type Preset struct {
	Slug  string
	Label string
}
