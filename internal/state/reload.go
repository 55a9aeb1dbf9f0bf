package state

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
)

// Reload rebuilds the whole state from the store and replaces it, discarding
// anything the store does not have. On failure the last good state is kept.
// Offline there is nothing to reload from.
func (s *service) Reload(ctx context.Context, source string) error {
	log := logger.FromContext(ctx).With("source", source)
	if s.isOffline() {
		log.Debug(LogMsgReloadSkipped)
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.snap.Load()
	rows, err := s.store.LoadAll(ctx)
	if err != nil {
		log.Error(LogMsgReloadFailed, "error", err)
		s.publish(ctx, event.NewStateReloadFailedEvent(source, cur.version, err))
		return fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	next, dropped := normalize.Build(ctx, rows)
	if dropped > 0 {
		log.Warn(LogMsgDroppedRows, "count", dropped)
	}

	version := cur.version + 1
	s.snap.Store(&snapshot{state: next, version: version})
	s.views.Clear()

	metrics.StateVersion.Set(float64(version))
	log.Info(LogMsgReloaded,
		"version", version,
		"inventories", len(next.Inventories),
		"weapons", len(next.Weapons),
		"stands", len(next.Shop.Stands))

	s.publish(ctx, event.NewStateReloadedEvent(source, version))
	return nil
}

// AdminReload lets the game master force a reload
func (s *service) AdminReload(ctx context.Context, actorID string) error {
	actor, err := s.ResolveUser(ctx, actorID)
	if err != nil {
		return err
	}
	if err := requireGM(actor); err != nil {
		return err
	}
	return s.Reload(ctx, SourceAdmin)
}
