package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, ErrVerificationFailed) {
			fmt.Fprintf(os.Stderr, "verify-build: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "verify-build",
	Short: "Verify a packaged library build before publishing",
	Long: "verify-build inspects the output of the library packaging step " +
		"(lib/module, lib/typescript, sourcemaps, package.json) and type-checks " +
		"the generated declarations. It exits 0 only when every check passes.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runVerify,
}
