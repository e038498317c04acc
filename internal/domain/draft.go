package domain

import (
	"encoding/json"
	"strings"
)

// DraftItem is one authored ingredient or step line. Depending on the
// entry point, stored items arrive either as plain strings or as
// {id, text} objects; decoding accepts both so only the canonical form
// exists past the store boundary.
type DraftItem struct {
	ID       string `json:"id,omitempty"`
	Text     string `json:"text"`
	PhotoURI string `json:"photoUri,omitempty"`
}

func (it *DraftItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*it = DraftItem{Text: s}
		return nil
	}

	type plain DraftItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*it = DraftItem(p)
	return nil
}

// Draft is a recipe under authoring, not yet published. A draft keeps
// the structured item shape; publishing flattens it to plain text.
type Draft struct {
	ID               string                    `json:"id"`
	Title            string                    `json:"title"`
	Description      string                    `json:"description,omitempty"`
	CoverURI         string                    `json:"coverUri,omitempty"`
	Ingredients      []DraftItem               `json:"ingredients"`
	Steps            []DraftItem               `json:"steps"`
	ApplianceSupport map[ApplianceKey][]string `json:"applianceSupport,omitempty"`
	Preset           string                    `json:"preset,omitempty"`
	Meta             *Meta                     `json:"meta,omitempty"`
	LastUpdated      int64                     `json:"lastUpdated"`
}

// Supports reports whether the draft flags at least one mode for the
// given appliance.
func (d *Draft) Supports(key ApplianceKey) bool {
	if d == nil || d.ApplianceSupport == nil {
		return false
	}
	return len(d.ApplianceSupport[key]) > 0
}

// SupportsAnyAppliance reports whether any appliance is flagged at all.
func (d *Draft) SupportsAnyAppliance() bool {
	return d.Supports(ApplianceMiniOven) || d.Supports(ApplianceCooker)
}

// FlattenItems reduces structured items to their trimmed text,
// dropping empty entries and preserving order.
func FlattenItems(items []DraftItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if text := strings.TrimSpace(it.Text); text != "" {
			out = append(out, text)
		}
	}
	return out
}
