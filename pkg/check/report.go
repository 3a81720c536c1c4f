package check

// Report is the outcome of a full gate run: one Result per check, in
// declaration order. It is built once by the evaluator and never mutated
// afterwards; callers only read it for output and exit-code selection.
type Report struct {
	Results []Result
}

// AllPassed returns true if every result in the report passed.
func (rep Report) AllPassed() bool {
	for _, r := range rep.Results {
		if !r.OK() {
			return false
		}
	}
	return true
}

// Failed returns the number of failed results.
func (rep Report) Failed() int {
	n := 0
	for _, r := range rep.Results {
		if !r.OK() {
			n++
		}
	}
	return n
}
