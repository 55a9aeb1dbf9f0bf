package state

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/metrics"
	"github.com/osse101/Stashkeeper_Go/internal/shop"
)

// CreateWeapon adds a catalog entry. When an image is given it is stored first
// and removed again if the write does not commit.
func (s *service) CreateWeapon(ctx context.Context, actorID string, in domain.NewWeapon, image *media.Upload) (*Result, error) {
	log := logger.FromContext(ctx)
	id := s.newID()
	var uploaded string

	res, err := s.apply(ctx, OpCreateWeapon, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		if err := requireGM(actor); err != nil {
			return nil, err
		}
		catalog, weapon, err := shop.CreateWeapon(cur.Weapons, in, func() string { return id })
		if err != nil {
			return nil, err
		}
		if image != nil && s.media != nil {
			url, err := s.media.Save(ctx, id, *image)
			if err != nil {
				return nil, err
			}
			uploaded = url
			weapon.ImageURL = url
			catalog[id] = weapon
			log.Info(LogMsgImageUploaded, "weapon_id", id, "bytes", len(image.Data))
		}

		next := cur
		next.Weapons = catalog
		return &mutation{
			next:        next,
			result:      &Result{Weapon: &weapon},
			shopChanged: true,
		}, nil
	})

	if uploaded != "" && (err != nil || res == nil || !res.Applied) {
		if rmErr := s.media.Remove(ctx, uploaded); rmErr != nil {
			log.Warn(LogMsgImageRemoveFailed, "weapon_id", id, "error", rmErr)
		}
	}
	return res, err
}

// DeleteWeapon removes a catalog entry and takes it off every stand.
// Items already bought keep their snapshot, image included, so the image is kept.
func (s *service) DeleteWeapon(ctx context.Context, actorID, weaponID string, confirm bool) (*Result, error) {
	return s.apply(ctx, OpDeleteWeapon, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		if err := requireGM(actor); err != nil {
			return nil, err
		}
		if !confirm {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfirmationRequired, ErrMsgDeleteWeapon)
		}
		catalog, nextShop, err := shop.DeleteWeapon(cur.Weapons, cur.Shop, weaponID)
		if err != nil {
			return nil, err
		}
		removed := cur.Weapons[weaponID]

		next := withShop(cur, nextShop)
		next.Weapons = catalog
		return &mutation{
			next:        next,
			result:      &Result{Weapon: &removed},
			shopChanged: true,
		}, nil
	})
}

type standFunc func(sh domain.Shop, catalog map[string]domain.Weapon) (domain.Shop, *Result, error)

// mutateStand runs fn as the game master and reports the resulting stand
func (s *service) mutateStand(ctx context.Context, op, actorID, standID string, fn standFunc) (*Result, error) {
	return s.apply(ctx, op, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		if err := requireGM(actor); err != nil {
			return nil, err
		}
		nextShop, res, err := fn(cur.Shop, cur.Weapons)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = &Result{}
		}
		if idx := nextShop.StandIndex(standID); idx >= 0 {
			stand := nextShop.Stands[idx]
			res.Stand = &stand
		}
		return &mutation{
			next:        withShop(cur, nextShop),
			result:      res,
			shopChanged: true,
		}, nil
	})
}

func (s *service) AddWeaponToStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error) {
	return s.mutateStand(ctx, OpAddWeaponToStand, actorID, standID, func(sh domain.Shop, catalog map[string]domain.Weapon) (domain.Shop, *Result, error) {
		next, err := shop.AddWeaponToStand(sh, catalog, standID, weaponID)
		return next, nil, err
	})
}

func (s *service) RemoveWeaponFromStand(ctx context.Context, actorID, standID, weaponID string) (*Result, error) {
	return s.mutateStand(ctx, OpRemoveWeaponFromStand, actorID, standID, func(sh domain.Shop, _ map[string]domain.Weapon) (domain.Shop, *Result, error) {
		next, err := shop.RemoveWeaponFromStand(sh, standID, weaponID)
		return next, nil, err
	})
}

func (s *service) RandomizeStand(ctx context.Context, actorID, standID string) (*Result, error) {
	return s.mutateStand(ctx, OpRandomizeStand, actorID, standID, func(sh domain.Shop, catalog map[string]domain.Weapon) (domain.Shop, *Result, error) {
		next, picked, err := shop.RandomizeStand(sh, catalog, standID, s.rnd)
		if err != nil {
			return sh, nil, err
		}
		return next, &Result{Picked: picked}, nil
	})
}

// Purchase buys a weapon off a stand for the buyer inventory.
// The actor must be allowed to modify the buyer.
func (s *service) Purchase(ctx context.Context, actorID, standID, weaponID, buyerID string) (*Result, error) {
	return s.apply(ctx, OpPurchase, actorID, func(cur domain.State, actor *domain.User) (*mutation, error) {
		buyer, ok := cur.Inventories[buyerID]
		if !ok {
			return nil, fmt.Errorf("%w: "+ErrMsgInventoryFmt, domain.ErrNotFound, buyerID)
		}
		if err := requireMutate(actor, buyer); err != nil {
			return nil, err
		}

		nextShop, nextBuyer, pr, err := shop.Purchase(cur.Shop, cur.Weapons, standID, weaponID, buyer, s.newID)
		if err != nil {
			return nil, err
		}
		res := &Result{Inventory: &nextBuyer, Purchase: &pr}
		if idx := nextShop.StandIndex(standID); idx >= 0 {
			stand := nextShop.Stands[idx]
			res.Stand = &stand
		}
		if ref, ok := nextBuyer.FindItem(pr.ItemID); ok {
			item := *nextBuyer.Item(ref)
			res.Item = &item
		}
		return &mutation{
			next:         withShop(withInventories(cur, nextBuyer), nextShop),
			result:       res,
			inventoryIDs: []string{buyerID},
			shopChanged:  true,
			onCommit: func() {
				metrics.Purchases.Inc()
				metrics.MoneySpent.Add(float64(pr.Price))
			},
		}, nil
	})
}
