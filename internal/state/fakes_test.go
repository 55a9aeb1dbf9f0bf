package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/fixtures"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// fakeStore records every persist call and can be told to fail one of them
type fakeStore struct {
	mu        sync.Mutex
	rows      repository.Rows
	loadErr   error
	beginErr  error
	failOn    string
	failErr   error
	calls     []string
	commits   int
	rollbacks int
}

func (f *fakeStore) LoadAll(context.Context) (repository.Rows, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return repository.Rows{}, f.loadErr
	}
	return f.rows, nil
}

func (f *fakeStore) BeginTx(context.Context) (repository.StoreTx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return &fakeTx{store: f}, nil
}

func (f *fakeStore) Seed(_ context.Context, rows repository.Rows) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = rows
	return nil
}

func (f *fakeStore) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	if f.failOn == name {
		if f.failErr != nil {
			return f.failErr
		}
		return errors.New("connection reset")
	}
	return nil
}

func (f *fakeStore) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fakeTx struct {
	store *fakeStore
	done  bool
}

func (t *fakeTx) Commit(context.Context) error {
	if err := t.store.record("Commit"); err != nil {
		return err
	}
	t.done = true
	t.store.mu.Lock()
	t.store.commits++
	t.store.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.store.mu.Lock()
	t.store.rollbacks++
	t.store.mu.Unlock()
	return nil
}

func (t *fakeTx) InsertCategory(context.Context, repository.CategoryRow) error {
	return t.store.record("InsertCategory")
}

func (t *fakeTx) UpdateCategory(context.Context, repository.CategoryRow) error {
	return t.store.record("UpdateCategory")
}

func (t *fakeTx) DeleteCategory(context.Context, string) error {
	return t.store.record("DeleteCategory")
}

func (t *fakeTx) InsertItem(context.Context, repository.ItemRow) error {
	return t.store.record("InsertItem")
}

func (t *fakeTx) UpdateItem(context.Context, repository.ItemRow) error {
	return t.store.record("UpdateItem")
}

func (t *fakeTx) MoveItem(context.Context, repository.ItemMove) error {
	return t.store.record("MoveItem")
}

func (t *fakeTx) DeleteItem(context.Context, string) error {
	return t.store.record("DeleteItem")
}

func (t *fakeTx) UpdateMoney(context.Context, string, int) error {
	return t.store.record("UpdateMoney")
}

func (t *fakeTx) UpdateMeta(context.Context, string, domain.Meta) error {
	return t.store.record("UpdateMeta")
}

func (t *fakeTx) UpdateFixedCategories(context.Context, string, []domain.FixedCategory) error {
	return t.store.record("UpdateFixedCategories")
}

func (t *fakeTx) InsertWeapon(context.Context, domain.Weapon) error {
	return t.store.record("InsertWeapon")
}

func (t *fakeTx) DeleteWeapon(context.Context, string) error {
	return t.store.record("DeleteWeapon")
}

func (t *fakeTx) ReplaceStandWeapons(context.Context, string, []string) error {
	return t.store.record("ReplaceStandWeapons")
}

// fakeMedia keeps uploads in memory
type fakeMedia struct {
	mu      sync.Mutex
	saved   map[string]string
	removed []string
	saveErr error
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{saved: make(map[string]string)}
}

func (m *fakeMedia) Save(_ context.Context, weaponID string, up media.Upload) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	url := "/media/weapons/" + weaponID + ".png"
	m.saved[url] = up.FileName
	return url, nil
}

func (m *fakeMedia) Remove(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, url)
	delete(m.saved, url)
	return nil
}

// eventRecorder subscribes to every state event on a MemoryBus
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func newEventRecorder(bus event.Bus) *eventRecorder {
	r := &eventRecorder{}
	for _, typ := range []event.Type{event.StateChanged, event.StateReloaded, event.StateReloadFailed} {
		bus.Subscribe(typ, func(_ context.Context, evt event.Event) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.events = append(r.events, evt)
			return nil
		})
	}
	return r
}

func (r *eventRecorder) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, len(r.events))
	for i, evt := range r.events {
		out[i] = evt.Type
	}
	return out
}

func (r *eventRecorder) Last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type testEnv struct {
	svc    *service
	store  *fakeStore
	media  *fakeMedia
	events *eventRecorder
}

// newTestService builds a service over the default seed. Pass a store for connected mode.
func newTestService(t *testing.T, store *fakeStore) *testEnv {
	t.Helper()
	initial, err := fixtures.Default()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	env := &testEnv{store: store, media: newFakeMedia(), events: newEventRecorder(bus)}
	opts := Options{
		Initial: initial,
		Bus:     bus,
		Media:   env.media,
		NewID:   utils.SequenceIDs("id"),
		Rand:    utils.SeededIntn(42),
	}
	if store != nil {
		opts.Store = store
	}
	env.svc = NewService(opts).(*service)
	return env
}
