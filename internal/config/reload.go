// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	xglog "github.com/ManuGH/twresolve/internal/log"
	"github.com/ManuGH/twresolve/internal/metrics"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const defaultDebounce = 500 * time.Millisecond

// ErrWatcherStarted is returned by a second StartWatcher on the same Holder.
var ErrWatcherStarted = errors.New("config watcher already started")

// Snapshot pairs a configuration with the files it resolved to.
type Snapshot struct {
	Config   Configuration
	Files    []string
	Warnings []PathExpansionWarning
	LoadedAt time.Time
}

// Holder keeps the current Snapshot and replaces it atomically on reload.
// A failed reload leaves the previous snapshot in place.
type Holder struct {
	mu         sync.RWMutex
	current    Snapshot
	configPath string
	resolver   *Resolver
	logger     zerolog.Logger
	debounce   time.Duration

	watchMu  sync.Mutex
	watcher  *fsnotify.Watcher
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{} // non-nil once a watcher has started

	// Reload notifications
	listenersMu sync.RWMutex
	listeners   []chan<- Snapshot
}

// HolderOption configures a Holder.
type HolderOption func(*Holder)

// WithDebounce sets how long the watcher waits for writes to settle.
func WithDebounce(d time.Duration) HolderOption {
	return func(h *Holder) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// NewHolder creates a holder for the config file at configPath. A nil
// resolver resolves relative to the config file's directory. The first
// snapshot is produced by calling Reload.
func NewHolder(configPath string, resolver *Resolver, opts ...HolderOption) *Holder {
	if abs, err := filepath.Abs(configPath); err == nil {
		configPath = abs
	}
	h := &Holder{
		configPath: filepath.Clean(configPath),
		resolver:   resolver,
		logger:     xglog.WithComponent("config"),
		debounce:   defaultDebounce,
		stop:       make(chan struct{}),
	}
	if h.resolver == nil {
		h.resolver = NewResolver(filepath.Dir(h.configPath))
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get returns the current snapshot (thread-safe read).
func (h *Holder) Get() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload loads the config file, resolves its content and swaps the snapshot.
func (h *Holder) Reload(ctx context.Context) error {
	logger := xglog.WithContext(ctx, h.logger)
	logger.Debug().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	cfg, err := LoadFile(h.configPath)
	if err != nil {
		metrics.IncReload(false)
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration")
		return fmt.Errorf("load config: %w", err)
	}

	exp, err := h.resolver.Expand(ctx, cfg)
	if err != nil {
		metrics.IncReload(false)
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.resolve_failed").
			Msg("failed to resolve content patterns")
		return fmt.Errorf("resolve content: %w", err)
	}

	next := Snapshot{Config: cfg, Files: exp.Files, Warnings: exp.Warnings, LoadedAt: time.Now()}

	h.mu.Lock()
	prev := h.current
	h.current = next
	h.mu.Unlock()

	metrics.IncReload(true)
	h.notifyListeners(next)
	h.logChanges(logger, prev, next)
	return nil
}

// StartWatcher watches the config file and reloads on change until ctx is
// cancelled or Stop is called. The parent directory is watched so editors
// that replace the file by rename are picked up. A Holder runs at most one
// watcher; later calls return ErrWatcherStarted.
func (h *Holder) StartWatcher(ctx context.Context) error {
	h.watchMu.Lock()
	defer h.watchMu.Unlock()
	if h.done != nil {
		return ErrWatcherStarted
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(h.configPath)); err != nil {
		_ = watcher.Close() // Ignore close error in error path
		return fmt.Errorf("watch config directory: %w", err)
	}

	h.watcher = watcher
	h.done = make(chan struct{})

	h.logger.Info().
		Str(xglog.FieldEvent, "config.watcher_started").
		Str(xglog.FieldConfigPath, h.configPath).
		Msg("watching config file for changes")

	go h.watchLoop(ctx)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context) {
	defer close(h.done)
	defer func() { _ = h.watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return
		case <-h.stop:
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != h.configPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str(xglog.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")

			// Debounce: restart the timer on each event
			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := h.Reload(ctx); err != nil {
				h.logger.Warn().
					Err(err).
					Str(xglog.FieldEvent, "config.auto_reload_failed").
					Msg("automatic reload failed, keeping previous configuration")
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// Stop stops the watcher (if running) and waits for it to exit.
func (h *Holder) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	h.watchMu.Lock()
	done := h.done
	h.watchMu.Unlock()
	if done != nil {
		<-done
	}
}

// RegisterListener registers a channel to receive every new snapshot.
// Sends never block; a full channel misses that snapshot.
// The caller is responsible for closing the channel.
func (h *Holder) RegisterListener(ch chan<- Snapshot) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notifyListeners(snap Snapshot) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- snap:
		default:
			h.logger.Warn().
				Str(xglog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}

func (h *Holder) logChanges(logger zerolog.Logger, prev, next Snapshot) {
	if prev.LoadedAt.IsZero() {
		logger.Info().
			Str(xglog.FieldEvent, "config.initial_load").
			Int(xglog.FieldFiles, len(next.Files)).
			Msg("configuration loaded")
		return
	}

	added, removed := diffSorted(prev.Files, next.Files)
	if added == 0 && removed == 0 {
		logger.Info().Str(xglog.FieldEvent, "config.reload_success").Msg("configuration reloaded, content unchanged")
		return
	}
	logger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Int("files_added", added).
		Int("files_removed", removed).
		Int(xglog.FieldFiles, len(next.Files)).
		Msg("configuration reloaded")
}

// diffSorted counts entries only in b (added) and only in a (removed).
// Both inputs must be sorted.
func diffSorted(a, b []string) (added, removed int) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			removed++
			i++
		default:
			added++
			j++
		}
	}
	removed += len(a) - i
	added += len(b) - j
	return added, removed
}
