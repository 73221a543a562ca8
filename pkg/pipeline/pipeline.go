// Package pipeline runs every verification check in order and folds the
// results into a tally. No check failure stops the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/check"
	"github.com/zestic/verify-build/pkg/contentcheck"
	"github.com/zestic/verify-build/pkg/manifestcheck"
	"github.com/zestic/verify-build/pkg/output"
	"github.com/zestic/verify-build/pkg/probe"
	"github.com/zestic/verify-build/pkg/sourcemapcheck"
	"github.com/zestic/verify-build/pkg/structcheck"
	"github.com/zestic/verify-build/pkg/summary"
	"github.com/zestic/verify-build/pkg/tscheck"
)

// DefaultSubject names the build tool in report headings.
const DefaultSubject = "Build Bob"

// Pipeline holds everything one verification run needs.
type Pipeline struct {
	Set           artifact.Set
	Probe         *probe.Probe
	Invoker       tscheck.Invoker
	Reporter      *output.Reporter
	Logger        *slog.Logger  // nil discards logs
	TypeCheckWait time.Duration // type checker timeout; 0 means tscheck.DefaultTimeout
	SkipTypeCheck bool          // record the type check as failed instead of running it
	NoTips        bool
	Subject       string // default: DefaultSubject
}

// Report is the outcome of a run.
type Report struct {
	Results []check.Result
	Summary summary.Summary
}

// ExitCode is the process exit code for the run.
func (r Report) ExitCode() int {
	return r.Summary.ExitCode()
}

type contextChecker interface {
	RunContext(ctx context.Context) check.Result
}

type section struct {
	title  string
	checks []check.Checker
}

// Run executes all sections, prints the summary and returns the report.
func (p *Pipeline) Run(ctx context.Context) Report {
	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("component", "pipeline")

	subject := p.Subject
	if subject == "" {
		subject = DefaultSubject
	}

	p.Reporter.Header(fmt.Sprintf("🔍 %s Verification Script", subject))

	var (
		tally   check.Tally
		results []check.Result
	)
	for i, s := range p.sections() {
		p.Reporter.Header(fmt.Sprintf("%d. %s", i+1, s.title))
		for _, c := range s.checks {
			r := runOne(ctx, c)
			tally = tally.Record(r)
			results = append(results, r)
			p.Reporter.Result(r)
			logger.Debug("check finished",
				"section", s.title, "name", r.Name, "status", r.Status,
				"total", tally.Total, "passed", tally.Passed)
		}
	}

	sum := summary.Summarize(tally)
	sum.Print(p.Reporter, subject)
	if !p.NoTips {
		sum.PrintTips(p.Reporter)
	}
	logger.Info("verification finished",
		"total", tally.Total, "passed", tally.Passed, "warnings", tally.Warnings,
		"rate", sum.Rate, "band", sum.Band.String())

	return Report{Results: results, Summary: sum}
}

func runOne(ctx context.Context, c check.Checker) check.Result {
	if cc, ok := c.(contextChecker); ok {
		return cc.RunContext(ctx)
	}
	return c.Run()
}

func (p *Pipeline) sections() []section {
	var dirs, files []artifact.Anchor
	for _, a := range p.Set.Anchors {
		if a.Kind == artifact.KindDirectory {
			dirs = append(dirs, a)
		} else {
			files = append(files, a)
		}
	}

	return []section{
		{"Checking Build Output Directory Structure", structcheck.Checks(dirs, p.Probe)},
		{"Checking Generated Files", structcheck.Checks(files, p.Probe)},
		{"Verifying File Content", contentcheck.Checks(p.Set.Contents, p.Probe)},
		{"Checking Source Maps", sourcemapcheck.Checks(p.Set.SourceMaps, p.Probe)},
		{"Testing Import Resolution", []check.Checker{contentcheck.ImportResolution(p.Set.ImportEntry, p.Probe)}},
		{"Validating TypeScript Declarations", []check.Checker{p.typeCheck()}},
		{"Checking Package.json Configuration", []check.Checker{&manifestcheck.Check{Rule: p.Set.Manifest, Probe: p.Probe}}},
	}
}

func (p *Pipeline) typeCheck() check.Checker {
	if p.SkipTypeCheck {
		return skipped{}
	}
	return &tscheck.Check{
		Args:    p.Set.TypeCheck.Args(),
		Timeout: p.TypeCheckWait,
		Invoker: p.Invoker,
	}
}

type skipped struct{}

func (skipped) Run() check.Result { return tscheck.Disabled() }
