package score

// Signals is the measured signal set a scenario feeds into its rule table.
// Boolean observations are encoded as 0/1.
type Signals map[string]float64

// Op selects how a rule compares its signal against the threshold.
type Op string

const (
	// OpGreaterThan applies Delta once when the signal exceeds the threshold.
	OpGreaterThan Op = "gt"
	// OpLessThan applies Delta once when the signal is below the threshold.
	OpLessThan Op = "lt"
	// OpEquals applies Delta once when the signal equals the threshold.
	OpEquals Op = "eq"
	// OpPerUnit applies Delta once per unit of the signal value.
	OpPerUnit Op = "per-unit"
)

// Rule maps one measured signal to a score adjustment.
type Rule struct {
	Signal    string
	Op        Op
	Threshold float64
	Delta     int
}

// RuleSet is one scenario's scoring policy: a base score and the adjustments
// applied to it. Every rule is evaluated; there is no short-circuiting. Some
// scenarios only penalize while others also reward; that asymmetry is
// scenario policy, not a property of the interpreter.
type RuleSet struct {
	Base  int
	Rules []Rule
}

// Evaluate applies the rule set to the measured signals and clamps the
// outcome to the 1-10 scale. Missing signals read as zero.
func (rs RuleSet) Evaluate(signals Signals) int {
	total := rs.Base

	for _, r := range rs.Rules {
		v := signals[r.Signal]
		switch r.Op {
		case OpGreaterThan:
			if v > r.Threshold {
				total += r.Delta
			}
		case OpLessThan:
			if v < r.Threshold {
				total += r.Delta
			}
		case OpEquals:
			if v == r.Threshold {
				total += r.Delta
			}
		case OpPerUnit:
			total += r.Delta * int(v)
		}
	}

	return Clamp(total)
}
