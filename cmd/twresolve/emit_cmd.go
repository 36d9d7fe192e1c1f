// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ManuGH/twresolve/internal/config"
	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/manifest"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/ManuGH/twresolve/internal/plugin"
	"github.com/spf13/cobra"
)

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var outPath, classesPath string

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write the build manifest",
		Long: `Resolve content patterns, merge the safelist with scanned classes and write
the JSON manifest for the CSS build step. Without --out the manifest is
printed to standard output; with --out the file is replaced atomically.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}
			scanned, err := readClasses(cmd, classesPath)
			if err != nil {
				return err
			}
			files, err := opts.resolver().ResolvePaths(ctx, cfg)
			if err != nil {
				return fmt.Errorf("resolve content: %w", err)
			}
			return opts.emit(ctx, cmd.OutOrStdout(), outPath, cfg, files, scanned)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "manifest destination (default: stdout)")
	cmd.Flags().StringVar(&classesPath, "classes", "", "file with scanned class names (\"-\" for stdin)")
	return cmd
}

// emit builds the manifest and writes it to outPath, or to stdout when outPath is empty.
func (o *rootOptions) emit(ctx context.Context, stdout io.Writer, outPath string, cfg config.Configuration, files, scanned []string) error {
	m := manifest.Build(cfg, files, scanned, plugin.Builtin())
	metrics.RecordSafelist(len(m.Classes))

	logger := o.log(ctx)
	for _, id := range m.UnknownPlugins() {
		logger.Debug().
			Str(xglog.FieldEvent, "plugin.unknown").
			Str(xglog.FieldPlugin, id).
			Msg("plugin not in registry, passing through")
	}

	if outPath == "" {
		return manifest.Encode(stdout, m)
	}
	if err := manifest.Write(ctx, outPath, m); err != nil {
		return err
	}
	logger.Info().
		Str(xglog.FieldEvent, "manifest.emitted").
		Str(xglog.FieldPath, outPath).
		Int(xglog.FieldFiles, len(m.Content)).
		Int(xglog.FieldClasses, len(m.Classes)).
		Msg("manifest written")
	return nil
}
