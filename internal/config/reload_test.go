// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const reloadConfigV1 = `content:
  - "templates/**/*.html"
safelist: [card]
`

const reloadConfigV2 = `content:
  - "templates/**/*.html"
  - "static/*.js"
safelist: [card, btn]
`

func setupHolder(t *testing.T, opts ...HolderOption) (*Holder, string) {
	t.Helper()
	dir := t.TempDir()
	writeTree(t, dir, "templates/index.html", "static/app.js")
	path := filepath.Join(dir, "tailwind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(reloadConfigV1), 0o600))
	return NewHolder(path, nil, opts...), path
}

func TestHolder_InitialReload(t *testing.T) {
	h, _ := setupHolder(t)
	assert.True(t, h.Get().LoadedAt.IsZero())

	require.NoError(t, h.Reload(context.Background()))

	snap := h.Get()
	assert.False(t, snap.LoadedAt.IsZero())
	assert.Equal(t, []string{"templates/index.html"}, snap.Files)
	assert.Equal(t, []string{"card"}, snap.Config.Safelist())
}

func TestHolder_FailedReloadKeepsPrevious(t *testing.T) {
	h, path := setupHolder(t)
	require.NoError(t, h.Reload(context.Background()))
	before := h.Get()

	require.NoError(t, os.WriteFile(path, []byte("content: []\n"), 0o600))
	err := h.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedConfig)

	assert.Equal(t, before, h.Get())
}

func TestHolder_ListenersReceiveSnapshots(t *testing.T) {
	h, path := setupHolder(t)
	ch := make(chan Snapshot, 2)
	h.RegisterListener(ch)

	require.NoError(t, h.Reload(context.Background()))
	require.NoError(t, os.WriteFile(path, []byte(reloadConfigV2), 0o600))
	require.NoError(t, h.Reload(context.Background()))

	first := <-ch
	second := <-ch
	assert.Equal(t, []string{"templates/index.html"}, first.Files)
	assert.Equal(t, []string{"static/app.js", "templates/index.html"}, second.Files)
}

func TestHolder_FullListenerDoesNotBlock(t *testing.T) {
	h, _ := setupHolder(t)
	ch := make(chan Snapshot) // unbuffered, nobody reading
	h.RegisterListener(ch)

	done := make(chan error, 1)
	go func() { done <- h.Reload(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Reload blocked on a listener")
	}
}

func TestHolder_WatcherReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h, path := setupHolder(t, WithDebounce(20*time.Millisecond))
	require.NoError(t, h.Reload(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, h.StartWatcher(ctx))

	require.NoError(t, os.WriteFile(path, []byte(reloadConfigV2), 0o600))

	require.Eventually(t, func() bool {
		return len(h.Get().Files) == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"card", "btn"}, h.Get().Config.Safelist())

	h.Stop()
	h.Stop() // idempotent
}

func TestHolder_WatcherStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h, _ := setupHolder(t)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.StartWatcher(ctx))

	cancel()
	h.Stop()
}

func TestHolder_SecondStartWatcherIsRejected(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	h, _ := setupHolder(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, h.StartWatcher(ctx))
	err := h.StartWatcher(ctx)
	assert.True(t, errors.Is(err, ErrWatcherStarted), "got %v", err)

	h.Stop()
	assert.True(t, errors.Is(h.StartWatcher(ctx), ErrWatcherStarted), "a stopped holder stays stopped")
}

func TestHolder_StopWithoutWatcher(t *testing.T) {
	h, _ := setupHolder(t)
	h.Stop()
}

func TestDiffSorted(t *testing.T) {
	added, removed := diffSorted([]string{"a", "b", "d"}, []string{"b", "c", "d", "e"})
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)

	added, removed = diffSorted(nil, []string{"x"})
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, removed)
}
