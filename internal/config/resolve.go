// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Resolver expands content patterns against the filesystem below a root.
type Resolver struct {
	root        string
	concurrency int
	logger      zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithConcurrency bounds the number of patterns expanded at once. Values < 1 mean 1.
func WithConcurrency(n int) ResolverOption {
	return func(r *Resolver) {
		if n < 1 {
			n = 1
		}
		r.concurrency = n
	}
}

// WithLogger replaces the component logger.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.logger = l }
}

// NewResolver returns a Resolver for patterns relative to root ("" means the
// working directory). The root is made absolute once, here.
func NewResolver(root string, opts ...ResolverOption) *Resolver {
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	r := &Resolver{
		root:        filepath.Clean(root),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      xglog.WithComponent("resolver"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the absolute directory patterns are resolved against.
func (r *Resolver) Root() string { return r.root }

// Expansion is the outcome of expanding every content pattern.
type Expansion struct {
	// Files is the sorted, duplicate-free union of matches minus exclusions.
	// Paths are slash-separated and relative to the root whatever the
	// spelling of the pattern that matched them.
	Files    []string
	Warnings []PathExpansionWarning
}

// ResolvePaths returns the set of files matched by cfg's content patterns.
func (r *Resolver) ResolvePaths(ctx context.Context, cfg Configuration) ([]string, error) {
	exp, err := r.Expand(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return exp.Files, nil
}

// Expand resolves every pattern concurrently and merges the results once all
// workers have finished, so the outcome does not depend on scheduling.
// Patterns matching nothing produce warnings, not errors.
func (r *Resolver) Expand(ctx context.Context, cfg Configuration) (Expansion, error) {
	start := time.Now()
	logger := xglog.WithContext(ctx, r.logger)
	patterns := cfg.contentPatterns

	results := make([][]string, len(patterns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, raw := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			matches, err := r.expandPattern(strings.TrimPrefix(strings.TrimSpace(raw), "!"))
			if err != nil {
				return fmt.Errorf("expand %q: %w", raw, err)
			}
			results[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Expansion{}, err
	}
	// errgroup only surfaces worker errors; a cancel after the last worker still counts.
	if err := ctx.Err(); err != nil {
		return Expansion{}, err
	}

	// Sets are keyed by absolute path so a file matched through a relative
	// and an absolute pattern is counted, and excluded, once.
	included := make(map[string]struct{})
	excluded := make(map[string]struct{})
	var warnings []PathExpansionWarning
	for i, raw := range patterns {
		if isExclusion(raw) {
			for _, m := range results[i] {
				excluded[m] = struct{}{}
			}
			continue
		}
		metrics.RecordPattern(len(results[i]))
		if len(results[i]) == 0 {
			w := PathExpansionWarning{Pattern: raw}
			warnings = append(warnings, w)
			logger.Warn().
				Str(xglog.FieldEvent, "content.pattern_empty").
				Str(xglog.FieldPattern, raw).
				Str(xglog.FieldRoot, r.root).
				Msg(w.String())
			continue
		}
		for _, m := range results[i] {
			included[m] = struct{}{}
		}
	}

	files := make([]string, 0, len(included))
	for abs := range included {
		if _, skip := excluded[abs]; skip {
			continue
		}
		files = append(files, r.display(abs))
	}
	sort.Strings(files)

	metrics.RecordResolution(len(files), time.Since(start))
	logger.Debug().
		Str(xglog.FieldEvent, "content.resolved").
		Int(xglog.FieldFiles, len(files)).
		Int(xglog.FieldWarnings, len(warnings)).
		Msg("content patterns resolved")

	return Expansion{Files: files, Warnings: warnings}, nil
}

// expandPattern returns the cleaned absolute paths of regular files matching pattern.
func (r *Resolver) expandPattern(pattern string) ([]string, error) {
	full := filepath.FromSlash(pattern)
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.root, full)
	}

	matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = filepath.Clean(m)
	}
	return matches, nil
}

// display renders an absolute path relative to the root, slash-separated.
// Files outside the root keep their "../" prefix; a path with no relative
// form (another volume) stays absolute.
func (r *Resolver) display(abs string) string {
	rel, err := filepath.Rel(r.root, abs)
	if err != nil {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}
