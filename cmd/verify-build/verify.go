package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zestic/verify-build/pkg/artifact"
	"github.com/zestic/verify-build/pkg/output"
	"github.com/zestic/verify-build/pkg/pipeline"
	"github.com/zestic/verify-build/pkg/probe"
	"github.com/zestic/verify-build/pkg/tscheck"
)

// ErrVerificationFailed is returned when any check did not pass.
// The returned error causes main to exit with code 1.
var ErrVerificationFailed = errors.New("verification failed")

var (
	rootDir       string
	configPath    string
	tscTimeout    = tscheck.DefaultTimeout
	skipTypeCheck bool
	noTips        bool
	verbose       bool
)

func init() {
	rootCmd.Flags().StringVar(&rootDir, "root", "", "project directory containing lib/ and package.json (default: current directory)")
	rootCmd.Flags().StringVar(&configPath, "config", "", "expectation file (default: search for "+artifact.ConfigFileName+")")
	rootCmd.Flags().DurationVar(&tscTimeout, "tsc-timeout", tscheck.DefaultTimeout, "timeout for the type checker")
	rootCmd.Flags().BoolVar(&skipTypeCheck, "skip-typecheck", false, "do not run the type checker (the check is recorded as failed)")
	rootCmd.Flags().BoolVar(&noTips, "no-tips", false, "do not print tips after a failed run")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	start := rootDir
	if start == "" {
		start = "."
	}
	set, source, err := artifact.Resolve(start, configPath)
	if err != nil {
		return err
	}
	if source != "" {
		logger.Debug("loaded expectation set", "component", "config", "path", source)
	}

	p := &pipeline.Pipeline{
		Set:           set,
		Probe:         probe.New(rootDir),
		Invoker:       &tscheck.RealInvoker{Dir: rootDir},
		Reporter:      output.New(cmd.OutOrStdout()),
		Logger:        logger,
		TypeCheckWait: tscTimeout,
		SkipTypeCheck: skipTypeCheck,
		NoTips:        noTips,
	}

	report := p.Run(cmd.Context())
	if code := report.ExitCode(); code != 0 {
		return fmt.Errorf("%w: %d of %d checks passed", ErrVerificationFailed,
			report.Summary.Tally.Passed, report.Summary.Tally.Total)
	}
	return nil
}
