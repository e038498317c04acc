package domain

import (
	"encoding/json"
	"testing"
)

func TestDraftItemDecodesStringOrObject(t *testing.T) {
	var d Draft
	raw := `{"id":"d","title":"T","ingredients":["flour",{"id":"i2","text":"water","photoUri":"p.jpg"}],"steps":[]}`
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(d.Ingredients) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(d.Ingredients))
	}
	if d.Ingredients[0].Text != "flour" {
		t.Fatalf("string item text = %q", d.Ingredients[0].Text)
	}
	if d.Ingredients[1].Text != "water" || d.Ingredients[1].PhotoURI != "p.jpg" {
		t.Fatalf("object item misread: %+v", d.Ingredients[1])
	}
}

func TestFlattenItems(t *testing.T) {
	items := []DraftItem{
		{Text: "  keep me  "},
		{Text: "   "},
		{Text: ""},
		{Text: "second"},
	}
	got := FlattenItems(items)
	if len(got) != 2 || got[0] != "keep me" || got[1] != "second" {
		t.Fatalf("FlattenItems = %v", got)
	}
}

func TestRecipeSupports(t *testing.T) {
	r := &Recipe{ApplianceSupport: map[ApplianceKey][]string{
		ApplianceMiniOven: {"Bake"},
		ApplianceCooker:   {},
	}}
	if !r.Supports(ApplianceMiniOven) {
		t.Fatalf("minioven should be supported")
	}
	if r.Supports(ApplianceCooker) {
		t.Fatalf("empty mode list means unsupported")
	}
	var nilRecipe *Recipe
	if nilRecipe.Supports(ApplianceMiniOven) {
		t.Fatalf("nil recipe supports nothing")
	}
}

func TestDraftSupportsAnyAppliance(t *testing.T) {
	d := &Draft{}
	if d.SupportsAnyAppliance() {
		t.Fatalf("empty draft supports nothing")
	}
	d.ApplianceSupport = map[ApplianceKey][]string{ApplianceCooker: {"Steam"}}
	if !d.SupportsAnyAppliance() {
		t.Fatalf("cooker-only draft should pass")
	}
}

func TestComputeAvg(t *testing.T) {
	tests := []struct {
		name  string
		stars []int
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []int{3}, 3},
		{"rounds up", []int{5, 4, 4}, 4.3},
		{"rounds half", []int{4, 3}, 3.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			list := make([]Review, len(tc.stars))
			for i, s := range tc.stars {
				list[i] = Review{Stars: s}
			}
			if got := ComputeAvg(list); got != tc.want {
				t.Fatalf("ComputeAvg = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInProgressStepEdges(t *testing.T) {
	s := InProgress{CurrentStep: 0, TotalSteps: 3}
	if !s.OnFirstStep() || s.OnLastStep() {
		t.Fatalf("step 0 of 3: first=%v last=%v", s.OnFirstStep(), s.OnLastStep())
	}
	s.CurrentStep = 2
	if s.OnFirstStep() || !s.OnLastStep() {
		t.Fatalf("step 2 of 3: first=%v last=%v", s.OnFirstStep(), s.OnLastStep())
	}
}

func TestHandleNormalization(t *testing.T) {
	if got := CleanHandle(" @pizza_poppy"); got != "pizza_poppy" {
		t.Fatalf("CleanHandle = %q", got)
	}
	if got := DisplayHandle("pizza_poppy"); got != "@pizza_poppy" {
		t.Fatalf("DisplayHandle = %q", got)
	}
	if got := DisplayHandle("@pizza_poppy"); got != "@pizza_poppy" {
		t.Fatalf("DisplayHandle idempotent = %q", got)
	}
}
