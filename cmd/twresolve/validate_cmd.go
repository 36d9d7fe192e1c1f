// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"

	"github.com/ManuGH/twresolve/internal/config"
	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/plugin"
	"github.com/ManuGH/twresolve/internal/theme"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		Long:  "Parse and validate the configuration without expanding content patterns.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := opts.loadConfig(ctx)
			if err != nil {
				return err
			}

			logger := opts.log(ctx)
			_, unknown := plugin.Builtin().Resolve(cfg.Plugins())
			for _, id := range unknown {
				logger.Debug().
					Str(xglog.FieldEvent, "plugin.unknown").
					Str(xglog.FieldPlugin, id).
					Msg("plugin not in registry, passing through")
			}
			for _, def := range cfg.Themes() {
				if def.Kind() == config.ThemeNamed && !theme.IsBuiltin(def.Name()) {
					logger.Debug().
						Str(xglog.FieldEvent, "theme.unknown").
						Str(xglog.FieldTheme, def.Name()).
						Msg("named theme is not a known builtin, passing through")
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d content patterns, %d safelisted classes, %d plugins, %d themes)\n",
				opts.configPath, len(cfg.ContentPatterns()), len(cfg.Safelist()), len(cfg.Plugins()), len(cfg.Themes()))
			return nil
		},
	}
}
