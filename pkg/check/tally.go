package check

// Tally is the running count of checks for one verification run.
// It is a value: Record returns an updated copy.
type Tally struct {
	Total    int
	Passed   int
	Warnings int
}

// Record counts r as one check.
func (t Tally) Record(r Result) Tally {
	t.Total++
	switch r.Status {
	case StatusOK:
		t.Passed++
	case StatusWarn:
		t.Warnings++
	}
	return t
}

// Failed returns the number of checks that did not pass, warnings included.
func (t Tally) Failed() int {
	return t.Total - t.Passed
}

// Complete reports whether every recorded check passed.
// An empty tally is not complete.
func (t Tally) Complete() bool {
	return t.Total > 0 && t.Passed == t.Total
}
