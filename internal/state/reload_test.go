package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
	"github.com/osse101/Stashkeeper_Go/internal/worker"
)

var _ worker.Reloader = (Service)(nil)

func TestReload_ReplacesStateFromStore(t *testing.T) {
	store := &fakeStore{}
	env := newTestService(t, store)
	ctx := context.Background()

	remote := env.svc.Snapshot().Clone()
	don := remote.Inventories["don"]
	don.Money = 99
	remote.Inventories["don"] = don
	store.rows = normalize.Flatten(remote)

	_, err := env.svc.ListInventories(ctx, "gm")
	require.NoError(t, err)

	require.NoError(t, env.svc.Reload(ctx, SourceListener))

	assert.Equal(t, uint64(1), env.svc.Version())
	assert.Equal(t, 99, env.svc.Snapshot().Inventories["don"].Money)
	assert.Equal(t, 0, env.svc.views.Len())
	assert.Equal(t, []event.Type{event.StateReloaded}, env.events.Types())

	payload := env.events.Last().Payload.(domain.StateReloadedPayload)
	assert.Equal(t, SourceListener, payload.Source)
	assert.Equal(t, uint64(1), payload.Version)
}

func TestReload_FailureKeepsLastGoodState(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("timeout")}
	env := newTestService(t, store)
	before := env.svc.Snapshot()

	err := env.svc.Reload(context.Background(), SourceSchedule)
	assert.ErrorIs(t, err, domain.ErrLoadFailed)

	assert.Equal(t, before, env.svc.Snapshot())
	assert.Equal(t, uint64(0), env.svc.Version())
	assert.Equal(t, []event.Type{event.StateReloadFailed}, env.events.Types())
	payload := env.events.Last().Payload.(domain.StateReloadedPayload)
	assert.Equal(t, "timeout", payload.Error)
}

func TestReload_DiscardsUnflushedLocalEdits(t *testing.T) {
	store := &fakeStore{}
	env := newTestService(t, store)
	ctx := context.Background()
	store.rows = normalize.Flatten(env.svc.Snapshot())

	_, err := env.svc.SetMoney(ctx, "senshi", "senshi", 1)
	require.NoError(t, err)
	require.NoError(t, env.svc.Reload(ctx, SourceListener))

	assert.Equal(t, 5000, env.svc.Snapshot().Inventories["senshi"].Money, "the store wins")
	assert.Equal(t, uint64(2), env.svc.Version())
}

func TestReload_OfflineIsSkipped(t *testing.T) {
	env := newTestService(t, nil)

	require.NoError(t, env.svc.Reload(context.Background(), SourceSchedule))
	assert.Equal(t, uint64(0), env.svc.Version())
	assert.Empty(t, env.events.Types())
}

func TestAdminReload(t *testing.T) {
	store := &fakeStore{}
	env := newTestService(t, store)
	ctx := context.Background()
	store.rows = normalize.Flatten(env.svc.Snapshot())

	assert.ErrorIs(t, env.svc.AdminReload(ctx, "senshi"), domain.ErrPermissionDenied)
	assert.ErrorIs(t, env.svc.AdminReload(ctx, ""), domain.ErrPermissionDenied)
	assert.ErrorIs(t, env.svc.AdminReload(ctx, "ghost"), domain.ErrUnknownUser)

	require.NoError(t, env.svc.AdminReload(ctx, "gm"))
	payload := env.events.Last().Payload.(domain.StateReloadedPayload)
	assert.Equal(t, SourceAdmin, payload.Source)
}

func TestViewCache_VersionMismatchIsAMiss(t *testing.T) {
	c := newViewCache(4, 0)
	c.Set("senshi", 1, []domain.Inventory{{ID: "senshi"}})

	got, ok := c.Get("senshi", 1)
	require.True(t, ok)
	assert.Len(t, got, 1)

	_, ok = c.Get("senshi", 2)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "stale entries are evicted on read")
}
