package catalog

import (
	"strings"

	"github.com/hammamikhairi/chefiq/internal/domain"
)

// Appliances lists the supported cooking appliances in display order.
var Appliances = []domain.Appliance{
	{Key: domain.ApplianceMiniOven, Label: "iQ Mini Oven"},
	{Key: domain.ApplianceCooker, Label: "iQ Cooker"},
}

// ApplianceLabel returns the display label for a key, or the key
// itself when unknown.
func ApplianceLabel(key domain.ApplianceKey) string {
	for _, a := range Appliances {
		if a.Key == key {
			return a.Label
		}
	}
	return string(key)
}

// ApplianceKeyFromLabel maps a stored appliance label or raw key back
// to its canonical key. Matching is loose because sessions persist the
// label, not the key.
func ApplianceKeyFromLabel(label string) (domain.ApplianceKey, bool) {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "mini"):
		return domain.ApplianceMiniOven, true
	case strings.Contains(l, "cooker"):
		return domain.ApplianceCooker, true
	}
	return "", false
}

var genericModeDefaults = map[domain.ApplianceKey]map[string]string{
	domain.ApplianceMiniOven: {
		"Air Fry":   "390°F · 6–10 min",
		"Bake":      "375–425°F · time varies",
		"Roast":     "300–400°F · until target doneness",
		"Broil":     "High · 2–6 min",
		"Proof":     "85–95°F · 45–90 min",
		"Reheat":    "325°F · 6–10 min",
		"Dehydrate": "135°F · 2–6 hr",
	},
	domain.ApplianceCooker: {
		"Pressure Cook": "High Pressure · 35–90 min",
		"Sear/Sauté":    "High · 3–8 min / batch",
		"Slow Cook":     "Low · 6–8 hr",
		"Steam":         "High Steam · 5–12 min",
		"Keep Warm":     "Warm · as needed",
	},
}

// recipeModeDefaults overrides the generic settings for recipes with
// tested time and temperature combinations.
var recipeModeDefaults = map[string]map[domain.ApplianceKey]map[string]string{
	"1": {
		domain.ApplianceMiniOven: {"Roast": "250°F · until 200–205°F & probe-tender"},
		domain.ApplianceCooker: {
			"Pressure Cook": "High Pressure · 70–90 min + natural release",
			"Slow Cook":     "Low · 8–10 hr",
		},
	},
	"2": {
		domain.ApplianceMiniOven: {
			"Air Fry": "390°F · 6–8 min (flip once)",
			"Bake":    "425°F · 10–12 min (flip once)",
			"Broil":   "High · 1–2 min finish (watch closely)",
		},
	},
	"3": {
		domain.ApplianceMiniOven: {"Roast": "275°F · to 200–205°F (wrap when ~165°F)"},
		domain.ApplianceCooker: {
			"Pressure Cook": "High Pressure · 60–90 min + natural release",
			"Slow Cook":     "Low · 8–10 hr",
		},
	},
	"4": {
		domain.ApplianceMiniOven: {
			"Air Fry": "390°F · 6–9 min",
			"Bake":    "475°F · 6–9 min (stone/steel preheated)",
			"Broil":   "High · 1–3 min finish",
			"Reheat":  "375°F · 4–6 min (on hot stone)",
		},
	},
}

// ModeSetting returns the suggested time and temperature line for a
// recipe, appliance and mode. Recipe-specific settings win over the
// generic table. Empty string when nothing applies.
func ModeSetting(recipeID, applianceLabel, mode string) string {
	key, ok := ApplianceKeyFromLabel(applianceLabel)
	if !ok || mode == "" {
		return ""
	}
	if byAppliance, ok := recipeModeDefaults[recipeID]; ok {
		if s := byAppliance[key][mode]; s != "" {
			return s
		}
	}
	return genericModeDefaults[key][mode]
}

// ModeTips returns cooking tips for an appliance label and mode.
func ModeTips(applianceLabel, mode string) []string {
	a := strings.ToLower(applianceLabel)
	m := strings.ToLower(mode)

	switch {
	case strings.Contains(a, "mini oven"):
		base := []string{
			"Use the recommended rack position; airflow matters.",
			"Preheat fully for best browning.",
		}
		switch m {
		case "air fry":
			return append(base,
				"Don't overcrowd; leave space for circulation.",
				"Flip or shake halfway for even crisping.")
		case "bake":
			return append(base,
				"Preheat a stone/steel 15+ min for pizza and breads.",
				"Avoid opening the door early; it dumps heat.")
		case "roast":
			return append(base,
				"Start high for browning, then drop temp if needed.",
				"Use a probe thermometer for proteins.")
		case "broil":
			return []string{
				"Keep food 4–6 inches from the element; watch closely.",
				"Dark pans speed browning; light pans slow it.",
			}
		case "proof":
			return []string{"Cover dough to prevent drying; lightly oil the bowl."}
		case "reheat":
			return []string{
				"Lower temps + a few minutes prevent drying.",
				"Reheat pizza on a hot stone for crisp bottoms.",
			}
		case "dehydrate":
			return []string{
				"Slice uniformly; thinner dries faster.",
				"Prop the door slightly if safe for extra airflow.",
			}
		}
		return base
	case strings.Contains(a, "cooker"):
		base := []string{
			"Ensure gasket and valve are seated before pressurizing.",
			"Add enough thin liquid (water/stock) to reach pressure.",
		}
		switch {
		case strings.Contains(m, "pressure"):
			return append(base,
				"Natural release for tough meats; quick release for delicate items.",
				"Add dairy thickeners after pressure cooking.")
		case strings.Contains(m, "sear"), strings.Contains(m, "sauté"):
			return []string{"Let the pot preheat; brown in batches to avoid steaming."}
		case strings.Contains(m, "slow"):
			return []string{"Keep the lid on; add fresh herbs/acid at the end for brightness."}
		case strings.Contains(m, "steam"):
			return []string{"Use a steamer rack; keep food above the liquid."}
		case strings.Contains(m, "warm"):
			return []string{"Cover and add a splash of liquid to prevent drying."}
		}
		return base
	}
	return nil
}
