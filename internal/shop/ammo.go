package shop

import (
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// Shoot spends one round. An empty magazine is rejected without change.
func Shoot(item domain.Item) (domain.Item, error) {
	if item.Weapon == nil {
		return item, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNotAWeapon)
	}
	if item.Weapon.MagCurrent <= 0 {
		return item, fmt.Errorf("%w: %s", domain.ErrEmptyMagazine, item.Name)
	}
	next := item.Clone()
	next.Weapon.MagCurrent--
	return next, nil
}

// Reload refills the magazine to capacity regardless of its current count
func Reload(item domain.Item) (domain.Item, error) {
	if item.Weapon == nil {
		return item, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNotAWeapon)
	}
	if item.Weapon.MagCapacity <= 0 {
		return item, fmt.Errorf("%w: %s", domain.ErrUnknownCapacity, item.Name)
	}
	next := item.Clone()
	next.Weapon.MagCurrent = next.Weapon.MagCapacity
	return next, nil
}

// ShootInInventory applies Shoot to an item found anywhere in the inventory
func ShootInInventory(inv domain.Inventory, itemID string) (domain.Inventory, domain.Item, error) {
	return applyToItem(inv, itemID, Shoot)
}

// ReloadInInventory applies Reload to an item found anywhere in the inventory
func ReloadInInventory(inv domain.Inventory, itemID string) (domain.Inventory, domain.Item, error) {
	return applyToItem(inv, itemID, Reload)
}

func applyToItem(inv domain.Inventory, itemID string, fn func(domain.Item) (domain.Item, error)) (domain.Inventory, domain.Item, error) {
	ref, ok := inv.FindItem(itemID)
	if !ok {
		return inv, domain.Item{}, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	updated, err := fn(*inv.Item(ref))
	if err != nil {
		return inv, domain.Item{}, err
	}
	next := inv.Clone()
	*next.Item(ref) = updated
	return next, updated, nil
}
