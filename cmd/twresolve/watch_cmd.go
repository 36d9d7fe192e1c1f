// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"time"

	"github.com/ManuGH/twresolve/internal/config"
	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var (
		outPath     string
		classesPath string
		debounce    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve whenever the configuration file changes",
		Long: `Load the configuration, then watch the file and re-resolve content patterns
after every change. A change that fails to load keeps the previous result.
With --out the manifest is rewritten after every successful reload.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			scanned, err := readClasses(cmd, classesPath)
			if err != nil {
				return err
			}

			holder := config.NewHolder(opts.configPath, opts.resolver(), config.WithDebounce(debounce))
			if err := holder.Reload(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			report := func(snap config.Snapshot) error {
				fmt.Fprintf(out, "%s: %d files, %d empty patterns\n",
					snap.LoadedAt.Format(time.RFC3339), len(snap.Files), len(snap.Warnings))
				if outPath == "" {
					return nil
				}
				return opts.emit(ctx, out, outPath, snap.Config, snap.Files, scanned)
			}
			if err := report(holder.Get()); err != nil {
				return err
			}

			updates := make(chan config.Snapshot, 1)
			holder.RegisterListener(updates)
			if err := holder.StartWatcher(ctx); err != nil {
				return err
			}
			defer holder.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case snap := <-updates:
					if err := report(snap); err != nil {
						logger := opts.log(ctx)
						logger.Error().Err(err).Str(xglog.FieldEvent, "cli.emit_failed").Msg("failed to write manifest after reload")
					}
				}
			}
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "rewrite this manifest after every reload")
	cmd.Flags().StringVar(&classesPath, "classes", "", "file with scanned class names (\"-\" for stdin)")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before reloading after a change")
	return cmd
}
