// Package score contains the deterministic UX scoring heuristics. Everything
// here is a pure function of its observation inputs.
package score

// LayoutObservation counts the structural UI element categories present on a
// page, plus responsive-design marker elements.
type LayoutObservation struct {
	Navigation int
	Buttons    int
	Forms      int
	Tables     int
	Cards      int
	Modals     int
	Responsive int
}

// TotalElements sums the structural categories. Responsive markers are
// reported separately and do not count towards the layout score.
func (o LayoutObservation) TotalElements() int {
	return o.Navigation + o.Buttons + o.Forms + o.Tables + o.Cards + o.Modals
}

// LayoutScore is a coarse density heuristic: it rewards the presence of
// structural affordances, not design quality.
func LayoutScore(o LayoutObservation) int {
	return Clamp(o.TotalElements() / 2)
}

// Clamp bounds a score to the 1-10 scale.
func Clamp(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
