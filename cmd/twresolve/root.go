// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ManuGH/twresolve/internal/config"
	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/ManuGH/twresolve/internal/validate"
	"github.com/ManuGH/twresolve/internal/version"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "tailwind.yaml"

var errUsage = errors.New("usage error")

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	configPath      string
	root            string
	logLevel        string
	metricsTextfile string

	base   zerolog.Logger
	logger zerolog.Logger
}

func newRootOptions() *rootOptions {
	return &rootOptions{base: zerolog.Nop(), logger: zerolog.Nop()}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "twresolve",
		Short:         "Resolve utility-CSS build configuration",
		Long:          "Load a utility-CSS build configuration, expand its content patterns and emit the manifest used by the CSS build step.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the YAML or JSON configuration file")
	flags.StringVar(&opts.root, "root", "", "directory content patterns are resolved against (default: directory of the config file)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file when the command finishes")

	cmd.AddCommand(
		newValidateCmd(opts),
		newPathsCmd(opts),
		newSafelistCmd(opts),
		newEmitCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// setup configures logging and attaches a run ID to the command context.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	level, err := validate.ParseLogLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("%w: --log-level %q: %v", errUsage, o.logLevel, err)
	}

	// Library components log through the global logger on stderr.
	xglog.Configure(xglog.Config{Level: level.String(), Version: version.Version})

	// The watcher reloads on its own goroutine, so the writer must be synchronized.
	o.base = xglog.New(xglog.Config{
		Level:   level.String(),
		Output:  zerolog.SyncWriter(cmd.ErrOrStderr()),
		Version: version.Version,
	})
	o.logger = o.component("cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = xglog.ContextWithRunID(ctx, uuid.NewString())
	ctx = xglog.WithContext(ctx, o.logger).WithContext(ctx)
	cmd.SetContext(ctx)
	return nil
}

func (o *rootOptions) component(name string) zerolog.Logger {
	return o.base.With().Str(xglog.FieldComponent, name).Logger()
}

func (o *rootOptions) log(ctx context.Context) zerolog.Logger {
	return xglog.WithContext(ctx, o.logger)
}

// resolver returns a Resolver rooted at --root, or at the config file's
// directory when --root is not set.
func (o *rootOptions) resolver() *config.Resolver {
	root := o.root
	if root == "" {
		root = filepath.Dir(o.configPath)
	}
	return config.NewResolver(root, config.WithLogger(o.component("resolver")))
}

func (o *rootOptions) loadConfig(ctx context.Context) (config.Configuration, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return config.Configuration{}, err
	}
	logger := o.log(ctx)
	logger.Debug().
		Str(xglog.FieldEvent, "cli.config_loaded").
		Str(xglog.FieldConfigPath, o.configPath).
		Msg("configuration loaded")
	return cfg, nil
}

// flushMetrics writes the --metrics-textfile, if requested. It runs after
// every command, failed ones included.
func (o *rootOptions) flushMetrics() error {
	if o.metricsTextfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(o.metricsTextfile); err != nil {
		return err
	}
	o.logger.Debug().
		Str(xglog.FieldEvent, "cli.metrics_written").
		Str(xglog.FieldPath, o.metricsTextfile).
		Msg("metrics textfile written")
	return nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q takes no arguments, got %q", errUsage, cmd.CommandPath(), args)
	}
	return nil
}
