package domain

import "math"

// Review limits.
const (
	MinStars       = 1
	MaxStars       = 5
	ReviewTextMax  = 150 // characters of optional review text
	ReviewListCap  = 50  // stored reviews per recipe, newest first
	HistoryListCap = 25  // recently-cooked ids, newest first
)

// Review is one submitted star rating with optional text.
type Review struct {
	Stars int    `json:"stars"`
	Text  string `json:"text,omitempty"`
	TS    int64  `json:"ts"`
}

// ReviewBundle is the per-recipe aggregate of individual reviews.
// Avg and Count are recomputed from Ratings on every mutation, never
// incrementally patched.
type ReviewBundle struct {
	Ratings []Review `json:"ratings"`
	Avg     float64  `json:"avg"`
	Count   int      `json:"count"`
}

// ComputeAvg returns the arithmetic mean of the stars rounded to one
// decimal, or 0 for an empty list.
func ComputeAvg(list []Review) float64 {
	if len(list) == 0 {
		return 0
	}
	sum := 0
	for _, r := range list {
		sum += r.Stars
	}
	return math.Round(float64(sum)/float64(len(list))*10) / 10
}
