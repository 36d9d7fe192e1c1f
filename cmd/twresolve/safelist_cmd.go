// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/twresolve/internal/config"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/spf13/cobra"
)

func newSafelistCmd(opts *rootOptions) *cobra.Command {
	var classesPath string

	cmd := &cobra.Command{
		Use:   "safelist",
		Short: "Merge scanned class names with the configured safelist",
		Long: `Read whitespace-separated class names produced by a content scan and print
the union with the configured safelist, one class per line, sorted.
Use "--classes -" to read from standard input.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			scanned, err := readClasses(cmd, classesPath)
			if err != nil {
				return err
			}

			merged := config.MergeSafelist(cfg, scanned)
			metrics.RecordSafelist(len(merged))

			out := cmd.OutOrStdout()
			for _, class := range merged {
				fmt.Fprintln(out, class)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&classesPath, "classes", "", "file with scanned class names (\"-\" for stdin)")
	return cmd
}

// readClasses returns the whitespace-separated class names in path.
// An empty path means nothing was scanned.
func readClasses(cmd *cobra.Command, path string) ([]string, error) {
	var data []byte
	var err error
	switch path {
	case "":
		return nil, nil
	case "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		// #nosec G304 -- path is provided by the operator
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read classes: %w", err)
	}
	return strings.Fields(string(data)), nil
}
