package state

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
)

func (s *service) ResolveUser(_ context.Context, actorID string) (*domain.User, error) {
	return lookupActor(s.snap.Load().state, actorID)
}

func (s *service) ListUsers(_ context.Context) []domain.User {
	return s.snap.Load().state.SortedUsers()
}

// ListInventories returns the inventories actorID may see, sorted by name
func (s *service) ListInventories(_ context.Context, actorID string) ([]domain.Inventory, error) {
	snap := s.snap.Load()
	actor, err := lookupActor(snap.state, actorID)
	if err != nil {
		return nil, err
	}
	if cached, ok := s.views.Get(actorID, snap.version); ok {
		return cached, nil
	}

	all := snap.state.SortedInventories()
	visible := make([]domain.Inventory, 0, len(all))
	for _, inv := range all {
		if inventory.CanView(actor, inv) {
			visible = append(visible, inv)
		}
	}
	s.views.Set(actorID, snap.version, visible)
	return visible, nil
}

func (s *service) GetInventory(_ context.Context, actorID, inventoryID string) (*domain.Inventory, error) {
	snap := s.snap.Load()
	actor, err := lookupActor(snap.state, actorID)
	if err != nil {
		return nil, err
	}
	inv, ok := snap.state.Inventories[inventoryID]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgInventoryFmt, domain.ErrNotFound, inventoryID)
	}
	if !inventory.CanView(actor, inv) {
		who := ""
		if actor != nil {
			who = actor.ID
		}
		return nil, fmt.Errorf("%w: "+ErrMsgNotVisibleFmt, domain.ErrPermissionDenied, who, inventoryID)
	}
	return &inv, nil
}

func (s *service) GetShop(_ context.Context) domain.Shop {
	return s.snap.Load().state.Shop
}

func (s *service) ListWeapons(_ context.Context) []domain.Weapon {
	return s.snap.Load().state.SortedWeapons()
}
