// Package summary turns a finished tally into a success rate, a severity
// band and the process exit code.
package summary

import (
	"fmt"

	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/output"
)

// Band classifies a success rate.
type Band int

const (
	Broken      Band = iota // below 75%
	Degraded                // 75% to 89%
	MinorIssues             // 90% to 99%
	Perfect                 // 100%
)

func (b Band) String() string {
	switch b {
	case Perfect:
		return "perfect"
	case MinorIssues:
		return "minor issues"
	case Degraded:
		return "degraded"
	default:
		return "broken"
	}
}

// BandFor returns the band for a rate in percent. Thresholds are checked
// from the top; the first match wins.
func BandFor(rate int) Band {
	switch {
	case rate == 100:
		return Perfect
	case rate >= 90:
		return MinorIssues
	case rate >= 75:
		return Degraded
	default:
		return Broken
	}
}

// Rate returns round(100 * passed / total), rounding halves up.
// An empty tally has rate 0.
func Rate(t check.Tally) int {
	if t.Total <= 0 {
		return 0
	}
	return (200*t.Passed + t.Total) / (2 * t.Total)
}

// Summary is the outcome of a verification run.
type Summary struct {
	Tally check.Tally
	Rate  int
	Band  Band
}

// Summarize derives the summary of t. A tally that rounds to 100% while
// some check failed is banded as MinorIssues, never Perfect.
func Summarize(t check.Tally) Summary {
	s := Summary{Tally: t, Rate: Rate(t)}
	s.Band = BandFor(s.Rate)
	if s.Band == Perfect && !t.Complete() {
		s.Band = MinorIssues
	}
	return s
}

// ExitCode is 0 only when every check passed.
func (s Summary) ExitCode() int {
	if s.Band == Perfect {
		return 0
	}
	return 1
}

// Tips are printed after an imperfect run.
var Tips = []string{
	`Run "npx bob build --clean" for a fresh build`,
	"Check that your src/index.tsx exports are correct",
	"Verify your Build Bob configuration in package.json",
	"For React Native components, import testing should be done in a React Native environment",
}

// Print writes the summary section. subject names what was verified,
// e.g. "Build Bob".
func (s Summary) Print(r *output.Reporter, subject string) {
	t := s.Tally
	r.Header("📊 Verification Summary")

	switch s.Band {
	case Perfect:
		r.Success(fmt.Sprintf("All checks passed! (%d/%d)", t.Passed, t.Total))
		r.Success(fmt.Sprintf("🎉 %s is working perfectly!", subject))
	case MinorIssues:
		r.Warning(fmt.Sprintf("Most checks passed (%d/%d - %d%%)", t.Passed, t.Total, s.Rate))
		r.Warning(fmt.Sprintf("%s is working well with minor issues.", subject))
	case Degraded:
		r.Warning(fmt.Sprintf("Some checks failed (%d/%d - %d%%)", t.Passed, t.Total, s.Rate))
		r.Warning(fmt.Sprintf("%s is mostly working, but there are some issues to address.", subject))
	default:
		r.Error(fmt.Sprintf("Many checks failed (%d/%d - %d%%)", t.Passed, t.Total, s.Rate))
		r.Error(fmt.Sprintf("%s has significant issues that need to be fixed.", subject))
	}

	if t.Warnings > 0 {
		r.Warning(fmt.Sprintf("%d of the failed checks were malformed artifacts (warnings)", t.Warnings))
	}
}

// PrintTips writes the tips section when the run was not perfect.
func (s Summary) PrintTips(r *output.Reporter) {
	if s.Band == Perfect {
		return
	}
	r.Header("💡 Tips")
	r.Info("To fix issues:")
	for _, tip := range Tips {
		r.Info("• " + tip)
	}
}
