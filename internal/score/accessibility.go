package score

import "math"

// AccessibilityObservation gathers the raw accessibility signals for one page.
type AccessibilityObservation struct {
	AriaElements  int
	ImagesWithAlt int
	TotalImages   int
	LabeledInputs int
	TotalInputs   int
	Headings      int
}

// AccessibilityScore is a weighted sum of three capped components: alt-text
// coverage (x3, 0 when the page has no images), input labeling coverage (x3,
// 0 when the page has no inputs) and aria attribute density (min(4, aria/5)).
// The result is rounded to one decimal. The component caps bound it at a
// theoretical max of 10; no further clamp is applied.
func AccessibilityScore(o AccessibilityObservation) float64 {
	var s float64

	if o.TotalImages > 0 {
		s += float64(o.ImagesWithAlt) / float64(o.TotalImages) * 3
	}
	if o.TotalInputs > 0 {
		s += float64(o.LabeledInputs) / float64(o.TotalInputs) * 3
	}
	if o.AriaElements > 0 {
		s += math.Min(4, float64(o.AriaElements)/5)
	}

	return math.Round(s*10) / 10
}
