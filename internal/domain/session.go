package domain

// InProgress is the single active guided cooking session. Exactly zero
// or one exists at a time; starting a new session overwrites the
// previous one unconditionally.
type InProgress struct {
	RecipeID    string `json:"id"`
	Title       string `json:"title"`
	CoverURI    string `json:"coverUri,omitempty"`
	CurrentStep int    `json:"currentStep"`
	TotalSteps  int    `json:"totalSteps"`
	Appliance   string `json:"appliance,omitempty"` // display label, e.g. "iQ Mini Oven"
	Mode        string `json:"mode,omitempty"`      // e.g. "Air Fry"
	UpdatedAt   int64  `json:"updatedAt"`
}

// OnFirstStep reports whether the session is at step zero.
func (p *InProgress) OnFirstStep() bool { return p.CurrentStep == 0 }

// OnLastStep reports whether the session is at the final step.
func (p *InProgress) OnLastStep() bool { return p.CurrentStep >= p.TotalSteps-1 }
