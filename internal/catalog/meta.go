package catalog

import "github.com/hammamikhairi/chefiq/internal/domain"

// metaByID carries authored time, difficulty and yield for the built-in
// library. Merged into each recipe at seed time.
var metaByID = map[string]domain.Meta{
	"1": {Difficulty: "Medium", Active: 15, Total: 35, Yield: "2 Servings"},
	"2": {Difficulty: "Easy", Active: 15, Total: 25, Yield: "4 Servings"},
	"3": {Difficulty: "Medium", Active: 20, Total: 240, Yield: "8 Servings"},
	"4": {Difficulty: "Easy", Active: 20, Total: 30, Yield: "8 Slices"},

	"poultry-1": {Difficulty: "Medium", Active: 25, Total: 70, Yield: "4 Servings"},
	"poultry-2": {Difficulty: "Easy", Active: 15, Total: 35, Yield: "4 Servings"},
	"poultry-3": {Difficulty: "Easy", Active: 15, Total: 120, Yield: "8 cups"},

	"seafood-2": {Difficulty: "Easy", Active: 10, Total: 20, Yield: "4 Servings"},
	"seafood-3": {Difficulty: "Medium", Active: 10, Total: 20, Yield: "4 Servings"},

	"vegetarian-2": {Difficulty: "Easy", Active: 15, Total: 35, Yield: "4 Servings"},
	"vegetarian-3": {Difficulty: "Medium", Active: 25, Total: 55, Yield: "4 Servings"},

	"pork-2": {Difficulty: "Medium", Active: 20, Total: 120, Yield: "6 Servings"},
	"pork-3": {Difficulty: "Medium", Active: 20, Total: 65, Yield: "6 Servings"},

	"beef-2": {Difficulty: "Medium", Active: 15, Total: 35, Yield: "2 Servings"},
	"beef-3": {Difficulty: "Easy", Active: 20, Total: 30, Yield: "4 Servings"},

	"grains-1": {Difficulty: "Easy", Active: 5, Total: 20, Yield: "4 cups"},
	"grains-2": {Difficulty: "Easy", Active: 5, Total: 75, Yield: "6 cups"},
	"grains-3": {Difficulty: "Easy", Active: 5, Total: 25, Yield: "4 cups"},

	"eggs-1": {Difficulty: "Easy", Active: 15, Total: 45, Yield: "12 Bites"},
	"eggs-2": {Difficulty: "Easy", Active: 5, Total: 12, Yield: "6 Eggs"},
	"eggs-3": {Difficulty: "Easy", Active: 10, Total: 25, Yield: "4 Servings"},

	"soups-1": {Difficulty: "Easy", Active: 15, Total: 35, Yield: "4 Servings"},
	"soups-2": {Difficulty: "Easy", Active: 25, Total: 55, Yield: "6 Servings"},
	"soups-3": {Difficulty: "Easy", Active: 20, Total: 50, Yield: "6 Servings"},

	"stews-1": {Difficulty: "Medium", Active: 25, Total: 120, Yield: "6 Servings"},
	"stews-2": {Difficulty: "Medium", Active: 25, Total: 60, Yield: "6 Servings"},
	"stews-3": {Difficulty: "Easy", Active: 15, Total: 45, Yield: "6 Servings"},

	"pasta-1": {Difficulty: "Easy", Active: 20, Total: 60, Yield: "8 Servings"},
	"pasta-2": {Difficulty: "Easy", Active: 10, Total: 25, Yield: "6 Servings"},
	"pasta-3": {Difficulty: "Medium", Active: 30, Total: 75, Yield: "8 Servings"},

	"fruit-1": {Difficulty: "Easy", Active: 10, Total: 20, Yield: "4 Servings"},
	"fruit-2": {Difficulty: "Easy", Active: 10, Total: 20, Yield: "4 Servings"},
	"fruit-3": {Difficulty: "Easy", Active: 15, Total: 40, Yield: "4 Servings"},
}

type presetMetaDefault struct {
	active     int
	total      int
	difficulty string
}

var metaByPreset = map[string]presetMetaDefault{
	"poultry":    {35, 45, "Easy"},
	"meat":       {40, 55, "Medium"},
	"seafood":    {15, 25, "Easy"},
	"vegetarian": {20, 30, "Easy"},
	"pork":       {30, 45, "Medium"},
	"grains":     {10, 20, "Easy"},
	"eggs":       {10, 15, "Easy"},
	"soups":      {20, 40, "Easy"},
	"stews":      {25, 60, "Medium"},
	"pasta":      {20, 30, "Easy"},
	"fruit":      {10, 15, "Easy"},
	"beef":       {25, 60, "Medium"},
}

// EffectiveMeta returns display metadata for any recipe, filling
// missing fields from per-preset defaults. The result is derived for
// display only and must never be written back to storage.
func EffectiveMeta(r *domain.Recipe) domain.Meta {
	d, ok := metaByPreset[r.Preset]
	if !ok {
		d = presetMetaDefault{20, 30, "Easy"}
	}
	out := domain.Meta{Difficulty: d.difficulty, Active: d.active, Total: d.total, Yield: "4 Servings"}
	if r.Meta == nil {
		return out
	}
	if r.Meta.Difficulty != "" {
		out.Difficulty = r.Meta.Difficulty
	}
	if r.Meta.Active > 0 {
		out.Active = r.Meta.Active
	}
	if r.Meta.Total > 0 {
		out.Total = r.Meta.Total
	}
	if r.Meta.Yield != "" {
		out.Yield = r.Meta.Yield
	}
	return out
}
