// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd(opts *rootOptions) *cobra.Command {
	var failOnEmpty bool

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the files matched by the content patterns",
		Long:  "Expand every content pattern and print the resulting files, one per line, sorted.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}

			exp, err := opts.resolver().Expand(ctx, cfg)
			if err != nil {
				return fmt.Errorf("resolve content: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, f := range exp.Files {
				fmt.Fprintln(out, f)
			}

			if failOnEmpty && len(exp.Warnings) > 0 {
				return fmt.Errorf("%d content pattern(s) matched no files", len(exp.Warnings))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnEmpty, "fail-on-empty", false, "exit non-zero if any content pattern matches no files")
	return cmd
}
