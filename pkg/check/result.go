package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	StatusWarn Status = "WARN" // artifact present but malformed; advisory
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "lib/module/index.js exists (812 bytes)"
	Status  Status   // OK, FAIL or WARN
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
