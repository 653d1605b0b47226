// Package match compares typed input against a target passage.
package match

// Mark classifies a single passage position.
type Mark int

// Position classifications.
const (
	Pending Mark = iota
	Correct
	Incorrect
)

// CountRule selects how correct characters are counted.
type CountRule int

const (
	// CountInPlace counts every position where input matches the target,
	// regardless of earlier mistakes. Used for highlighting and scoring.
	CountInPlace CountRule = iota
	// CountLeadingRun counts correct characters from the start of input
	// up to the first mismatch. Used to advance encoding hints.
	CountLeadingRun
)

// Result holds the per-position classification of one comparison.
type Result struct {
	Marks   []Mark
	Correct int
	Errors  int
}

// Match classifies each target position against the input. Positions past
// the input are Pending; input past the target is ignored. The Correct
// count follows the given rule, Errors always counts in-place mismatches.
func Match(target, input []rune, rule CountRule) Result {
	res := Result{Marks: make([]Mark, len(target))}
	typed := len(input)
	if typed > len(target) {
		typed = len(target)
	}
	for i := 0; i < typed; i++ {
		if input[i] == target[i] {
			res.Marks[i] = Correct
		} else {
			res.Marks[i] = Incorrect
			res.Errors++
		}
	}
	switch rule {
	case CountLeadingRun:
		res.Correct = LeadingRun(target, input)
	default:
		res.Correct = typed - res.Errors
	}
	return res
}

// LeadingRun returns the number of consecutive correct characters from
// the start of input up to the first mismatch.
func LeadingRun(target, input []rune) int {
	n := len(input)
	if len(target) < n {
		n = len(target)
	}
	for i := 0; i < n; i++ {
		if input[i] != target[i] {
			return i
		}
	}
	return n
}
