// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// twresolve loads a utility-CSS build configuration, expands its content
// patterns and emits the manifest consumed by the CSS build step.
//
// Usage:
//
//	twresolve validate -c tailwind.yaml
//	twresolve paths -c tailwind.yaml
//	twresolve safelist -c tailwind.yaml --classes scanned.txt
//	twresolve emit -c tailwind.yaml --out build/manifest.json
//	twresolve watch -c tailwind.yaml
//
// Exit codes:
//   - 0: success
//   - 1: the configuration is malformed or a command failed
//   - 2: usage error (unknown flag, bad flag value)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManuGH/twresolve/internal/config"
	"github.com/ManuGH/twresolve/internal/validate"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
// Metrics are flushed whatever the outcome, so failed runs are recorded too.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := newRootOptions()
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if ferr := opts.flushMetrics(); ferr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", ferr)
		if err == nil {
			return exitFailure
		}
	}
	if err == nil {
		return exitOK
	}

	var mce *config.MalformedConfigError
	switch {
	case errors.As(err, &mce):
		fmt.Fprintf(stderr, "Configuration error in %s:\n", displaySource(mce.Source))
		printConfigErrors(stderr, mce.Err)
		return exitFailure
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, root.UsageString())
		return exitUsage
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}

// printConfigErrors writes one line per violated invariant.
func printConfigErrors(w io.Writer, err error) {
	var verr validate.ValidationError
	if !errors.As(err, &verr) {
		fmt.Fprintf(w, "  %v\n", err)
		return
	}
	for _, e := range verr.Errors() {
		fmt.Fprintf(w, "  - %s: %s\n", e.Field, e.Message)
	}
}

func displaySource(source string) string {
	if source == "" {
		return "<input>"
	}
	return source
}
