package state

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/shop"
)

type inventoryFunc func(inv domain.Inventory) (domain.Inventory, *Result, error)

// mutateInventory runs fn on one inventory the actor may modify
func (s *service) mutateInventory(ctx context.Context, op, actorID, inventoryID string, fn inventoryFunc) (*Result, error) {
	return s.apply(ctx, op, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		inv, ok := cur.Inventories[inventoryID]
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgInventoryFmt, domain.ErrNotFound, inventoryID)
		}
		if err := requireMutate(actor, inv); err != nil {
			return nil, err
		}
		next, res, err := fn(inv)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = &Result{}
		}
		res.Inventory = &next
		return &mutation{
			next:         withInventories(cur, next),
			result:       res,
			inventoryIDs: []string{inventoryID},
		}, nil
	})
}

func (s *service) RenameFixedCategory(ctx context.Context, actorID, inventoryID string, index int, name string) (*Result, error) {
	return s.mutateInventory(ctx, OpRenameFixedCategory, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.RenameFixedCategory(inv, index, name)
		return next, nil, err
	})
}

func (s *service) CreateCustomCategory(ctx context.Context, actorID, inventoryID, fixedID, name string) (*Result, error) {
	return s.mutateInventory(ctx, OpCreateCustomCategory, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, cat, err := inventory.CreateCustomCategory(inv, fixedID, name, s.newID)
		if err != nil {
			return inv, nil, err
		}
		return next, &Result{Category: &cat}, nil
	})
}

func (s *service) RenameCustomCategory(ctx context.Context, actorID, inventoryID, categoryID, name string) (*Result, error) {
	return s.mutateInventory(ctx, OpRenameCustomCategory, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.RenameCustomCategory(inv, categoryID, name)
		return next, nil, err
	})
}

// DeleteCustomCategory removes a category with all of its items. The caller must confirm.
func (s *service) DeleteCustomCategory(ctx context.Context, actorID, inventoryID, categoryID string, confirm bool) (*Result, error) {
	return s.mutateInventory(ctx, OpDeleteCustomCategory, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		if !confirm {
			return inv, nil, fmt.Errorf("%w: %s", domain.ErrConfirmationRequired, ErrMsgDeleteCategory)
		}
		next, err := inventory.DeleteCustomCategory(inv, categoryID)
		return next, nil, err
	})
}

func (s *service) CreateItem(ctx context.Context, actorID, inventoryID, fixedID, categoryID string, in domain.NewItem) (*Result, error) {
	return s.mutateInventory(ctx, OpCreateItem, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, item, err := inventory.CreateItem(inv, fixedID, categoryID, in, s.newID)
		if err != nil {
			return inv, nil, err
		}
		return next, &Result{Item: &item}, nil
	})
}

func (s *service) EditItem(ctx context.Context, actorID, inventoryID, itemID string, patch domain.ItemPatch) (*Result, error) {
	return s.mutateInventory(ctx, OpEditItem, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.EditItem(inv, itemID, patch)
		if err != nil {
			return inv, nil, err
		}
		return next, itemResult(next, itemID), nil
	})
}

func (s *service) DeleteItem(ctx context.Context, actorID, inventoryID, categoryID, itemID string) (*Result, error) {
	return s.mutateInventory(ctx, OpDeleteItem, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.DeleteItem(inv, categoryID, itemID)
		return next, nil, err
	})
}

func (s *service) MoveItem(ctx context.Context, actorID, inventoryID, fromCategoryID, toCategoryID, itemID string) (*Result, error) {
	return s.mutateInventory(ctx, OpMoveItem, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.MoveItem(inv, fromCategoryID, toCategoryID, itemID)
		if err != nil {
			return inv, nil, err
		}
		return next, itemResult(next, itemID), nil
	})
}

func (s *service) SetMoney(ctx context.Context, actorID, inventoryID string, amount int) (*Result, error) {
	return s.mutateInventory(ctx, OpSetMoney, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.SetMoney(inv, amount)
		return next, nil, err
	})
}

func (s *service) SetMeta(ctx context.Context, actorID, inventoryID string, meta domain.Meta) (*Result, error) {
	return s.mutateInventory(ctx, OpSetMeta, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, err := inventory.SetMeta(inv, meta.Status, meta.Notes)
		return next, nil, err
	})
}

func (s *service) Shoot(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error) {
	res, err := s.mutateInventory(ctx, OpShoot, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, item, err := shop.ShootInInventory(inv, itemID)
		if err != nil {
			return inv, nil, err
		}
		return next, &Result{Item: &item}, nil
	})
	if err == nil && res.Applied {
		metrics.Shots.Inc()
	}
	return res, err
}

func (s *service) ReloadWeapon(ctx context.Context, actorID, inventoryID, itemID string) (*Result, error) {
	res, err := s.mutateInventory(ctx, OpReloadWeapon, actorID, inventoryID, func(inv domain.Inventory) (domain.Inventory, *Result, error) {
		next, item, err := shop.ReloadInInventory(inv, itemID)
		if err != nil {
			return inv, nil, err
		}
		return next, &Result{Item: &item}, nil
	})
	if err == nil && res.Applied {
		metrics.Reloads.Inc()
	}
	return res, err
}

// TransferItem moves up to req.Quantity of an item into another inventory.
// Only the source needs to be modifiable by the actor.
func (s *service) TransferItem(ctx context.Context, actorID, sourceID string, req inventory.TransferRequest, targetID string) (*Result, error) {
	return s.apply(ctx, OpTransferItem, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, inventory.ErrMsgNonPositiveQty)
		}
		src, ok := cur.Inventories[sourceID]
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgInventoryFmt, domain.ErrNotFound, sourceID)
		}
		if err := requireMutate(actor, src); err != nil {
			return nil, err
		}
		tgt, ok := cur.Inventories[targetID]
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgInventoryFmt, domain.ErrNotFound, targetID)
		}

		nextSrc, nextTgt, tr, err := inventory.Transfer(src, req, tgt, s.newID)
		if err != nil {
			return nil, err
		}
		return &mutation{
			next: withInventories(cur, nextSrc, nextTgt),
			result: &Result{
				Inventory: &nextSrc,
				Target:    &nextTgt,
				Transfer:  &tr,
			},
			inventoryIDs: []string{sourceID, targetID},
			onCommit: func() {
				metrics.Transfers.Inc()
				metrics.ItemsMoved.Add(float64(tr.Moved))
			},
		}, nil
	})
}

func itemResult(inv domain.Inventory, itemID string) *Result {
	ref, ok := inv.FindItem(itemID)
	if !ok {
		return nil
	}
	item := *inv.Item(ref)
	return &Result{Item: &item}
}
