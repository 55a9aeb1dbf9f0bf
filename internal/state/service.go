package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
	"github.com/osse101/Stashkeeper_Go/internal/shop"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// Result reports the outcome of a write. Applied is false when the operation
// referenced something that no longer exists or would change nothing.
type Result struct {
	Applied   bool                      `json:"applied"`
	Version   uint64                    `json:"version"`
	Inventory *domain.Inventory         `json:"inventory,omitempty"`
	Target    *domain.Inventory         `json:"target,omitempty"`
	Category  *domain.CustomCategory    `json:"category,omitempty"`
	Item      *domain.Item              `json:"item,omitempty"`
	Weapon    *domain.Weapon            `json:"weapon,omitempty"`
	Stand     *domain.Stand             `json:"stand,omitempty"`
	Picked    []string                  `json:"picked,omitempty"`
	Transfer  *inventory.TransferResult `json:"transfer,omitempty"`
	Purchase  *shop.PurchaseResult      `json:"purchase,omitempty"`
}

// Service owns the session state and is its only write API
type Service interface {
	Version() uint64
	Snapshot() domain.State
	ResolveUser(ctx context.Context, actorID string) (*domain.User, error)
	ListUsers(ctx context.Context) []domain.User
	ListInventories(ctx context.Context, actorID string) ([]domain.Inventory, error)
	GetInventory(ctx context.Context, actorID, inventoryID string) (*domain.Inventory, error)
	GetShop(ctx context.Context) domain.Shop
	ListWeapons(ctx context.Context) []domain.Weapon

	RenameFixedCategory(ctx context.Context, actorID, inventoryID string, index int, name string) (*Result, error)
	CreateCustomCategory(ctx context.Context, actorID, inventoryID, fixedID, name string) (*Result, error)
	RenameCustomCategory(ctx context.Context, actorID, inventoryID, categoryID, name string) (*Result, error)
	DeleteCustomCategory(ctx context.Context, actorID, inventoryID, categoryID string, confirm bool) (*Result, error)
	CreateItem(ctx context.Context, actorID, inventoryID, fixedID, categoryID string, in domain.NewItem) (*Result, error)
	EditItem(ctx context.Context, actorID, inventoryID, itemID string, patch domain.ItemPatch) (*Result, error)
	DeleteItem(ctx context.Context, actorID, inventoryID, categoryID, itemID string) (*Result, error)
	MoveItem(ctx context.Context, actorID, inventoryID, fromCategoryID, toCategoryID, itemID string) (*Result, error)
	TransferItem(ctx context.Context, actorID, sourceID string, req inventory.TransferRequest, targetID string) (*Result, error)
	SetMoney(ctx context.Context, actorID, inventoryID string, amount int) (*Result, error)
	SetMeta(ctx context.Context, actorID, inventoryID string, meta domain.Meta) (*Result, error)
	Shoot(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error)
	ReloadWeapon(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error)

	CreateWeapon(ctx context.Context, actorID string, in domain.NewWeapon, image *media.Upload) (*Result, error)
	DeleteWeapon(ctx context.Context, actorID, weaponID string, confirm bool) (*Result, error)
	AddWeaponToStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error)
	RemoveWeaponFromStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error)
	RandomizeStand(ctx context.Context, actorID, standID string) (*Result, error)
	Purchase(ctx context.Context, actorID, standID, weaponID, buyerID string) (*Result, error)

	Reload(ctx context.Context, source string) error
	AdminReload(ctx context.Context, actorID string) error
}

// Options configures a Service. A nil Store means offline mode.
type Options struct {
	Initial   domain.State
	Store     repository.Store
	Bus       event.Bus
	Media     media.Store
	NewID     utils.IDGenerator
	Rand      utils.Intn
	CacheSize int
	CacheTTL  time.Duration
}

type snapshot struct {
	state   domain.State
	version uint64
}

// mutation is what an operation wants committed
type mutation struct {
	next         domain.State
	result       *Result
	inventoryIDs []string
	shopChanged  bool
	onCommit     func()
}

type mutateFunc func(cur domain.State, actor *domain.User) (*mutation, error)

type service struct {
	// writeMu serializes writers across the remote round trip.
	// Readers only load snap and never wait on it.
	writeMu sync.Mutex
	snap    atomic.Pointer[snapshot]

	store repository.Store
	bus   event.Bus
	media media.Store
	newID utils.IDGenerator
	rnd   utils.Intn
	views *viewCache
}

// NewService creates the state owner seeded with opts.Initial
func NewService(opts Options) Service {
	s := &service{
		store: opts.Store,
		bus:   opts.Bus,
		media: opts.Media,
		newID: opts.NewID,
		rnd:   opts.Rand,
		views: newViewCache(opts.CacheSize, opts.CacheTTL),
	}
	if s.newID == nil {
		s.newID = utils.NewUUID
	}
	if s.rnd == nil {
		s.rnd = utils.RandomIntn
	}
	initial := opts.Initial
	if initial.Inventories == nil {
		initial = domain.NewState()
	}
	s.snap.Store(&snapshot{state: initial})
	return s
}

func (s *service) isOffline() bool {
	return s.store == nil
}

func (s *service) Version() uint64 {
	return s.snap.Load().version
}

func (s *service) Snapshot() domain.State {
	return s.snap.Load().state
}

// apply runs one write end to end: resolve the actor, let fn compute the next
// state, persist the delta, then swap the state pointer.
func (s *service) apply(ctx context.Context, op, actorID string, fn mutateFunc) (*Result, error) {
	log := logger.FromContext(ctx).With("op", op, "actor", actorID)

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.snap.Load()
	actor, err := lookupActor(cur.state, actorID)
	if err != nil {
		return s.reject(ctx, op, cur.version, err)
	}

	m, err := fn(cur.state, actor)
	if err != nil {
		return s.reject(ctx, op, cur.version, err)
	}

	if err := s.persist(ctx, op, cur.state, m.next); err != nil {
		metrics.Mutations.WithLabelValues(op, metrics.OutcomeFailed).Inc()
		return nil, err
	}

	version := cur.version + 1
	s.snap.Store(&snapshot{state: m.next, version: version})
	s.views.Clear()

	metrics.Mutations.WithLabelValues(op, metrics.OutcomeApplied).Inc()
	metrics.StateVersion.Set(float64(version))
	if m.onCommit != nil {
		m.onCommit()
	}
	log.Info(LogMsgCommitted, "version", version, "inventories", m.inventoryIDs, "shop_changed", m.shopChanged)

	s.publish(ctx, event.NewStateChangedEvent(op, actorID, m.inventoryIDs, m.shopChanged, version))

	res := m.result
	if res == nil {
		res = &Result{}
	}
	res.Applied = true
	res.Version = version
	return res, nil
}

// reject classifies an engine error. Stale references become a no-op result.
func (s *service) reject(ctx context.Context, op string, version uint64, err error) (*Result, error) {
	log := logger.FromContext(ctx).With("op", op)
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNoOp) {
		log.Debug(LogMsgNoOp, "reason", err.Error())
		metrics.Mutations.WithLabelValues(op, metrics.OutcomeNoOp).Inc()
		return &Result{Applied: false, Version: version}, nil
	}
	log.Warn(LogMsgRejected, "error", err)
	metrics.Mutations.WithLabelValues(op, metrics.OutcomeRejected).Inc()
	return nil, err
}

// persist writes the delta between before and after in one store transaction.
// Offline mode has nothing to write.
func (s *service) persist(ctx context.Context, op string, before, after domain.State) error {
	if s.isOffline() {
		return nil
	}
	cs := normalize.Diff(before, after)
	if cs.IsEmpty() {
		return nil
	}

	start := time.Now()
	defer func() {
		metrics.RemoteWriteDuration.Observe(time.Since(start).Seconds())
	}()

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return s.remoteFailure(ctx, op, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := repository.ApplyChangeset(ctx, tx, cs); err != nil {
		return s.remoteFailure(ctx, op, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return s.remoteFailure(ctx, op, err)
	}
	logger.FromContext(ctx).Debug(LogMsgPersisted, "op", op, "writes", cs.Size())
	return nil
}

// remoteFailure wraps store errors so they never classify as a stale reference
func (s *service) remoteFailure(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(LogMsgRemoteFailure, "op", op, "error", err)
	metrics.RemoteFailures.WithLabelValues(op).Inc()
	return fmt.Errorf("%w: "+ErrMsgRemoteOpFmt, domain.ErrRemoteFailure, op, err)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// lookupActor resolves actorID. An empty id is the anonymous actor and yields nil.
func lookupActor(st domain.State, actorID string) (*domain.User, error) {
	if actorID == "" {
		return nil, nil
	}
	u, ok := st.Users[actorID]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgUnknownUserFmt, domain.ErrUnknownUser, actorID)
	}
	return &u, nil
}

func requireGM(actor *domain.User) error {
	if actor == nil || !inventory.IsAdmin(*actor) {
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, ErrMsgGMOnly)
	}
	return nil
}

func requireMutate(actor *domain.User, inv domain.Inventory) error {
	if actor == nil {
		return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, ErrMsgAnonymous)
	}
	if !inventory.CanMutate(actor, inv) {
		return fmt.Errorf("%w: "+ErrMsgNotOwnerFmt, domain.ErrPermissionDenied, actor.ID, inv.ID)
	}
	return nil
}

// withInventories returns a state sharing everything with cur except the given inventories
func withInventories(cur domain.State, invs ...domain.Inventory) domain.State {
	next := cur
	next.Inventories = make(map[string]domain.Inventory, len(cur.Inventories))
	for id, inv := range cur.Inventories {
		next.Inventories[id] = inv
	}
	for _, inv := range invs {
		next.Inventories[inv.ID] = inv
	}
	return next
}

func withShop(cur domain.State, sh domain.Shop) domain.State {
	next := cur
	next.Shop = sh
	return next
}
