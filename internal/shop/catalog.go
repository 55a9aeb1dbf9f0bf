package shop

import (
	"fmt"
	"strings"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// CreateWeapon adds a catalog entry with a fresh id
func CreateWeapon(catalog map[string]domain.Weapon, in domain.NewWeapon, newID utils.IDGenerator) (map[string]domain.Weapon, domain.Weapon, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return catalog, domain.Weapon{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	if in.Price < 0 {
		return catalog, domain.Weapon{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativePrice)
	}
	if in.MagCapacity < 0 {
		return catalog, domain.Weapon{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeCapacity)
	}
	w := domain.Weapon{
		ID:          newID(),
		Name:        name,
		Damage:      in.Damage,
		MagCapacity: in.MagCapacity,
		AmmoType:    strings.TrimSpace(in.AmmoType),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	}
	next := copyCatalog(catalog)
	next[w.ID] = w
	return next, w, nil
}

// DeleteWeapon removes a catalog entry and takes it off every stand.
// Items already bought keep their snapshot.
func DeleteWeapon(catalog map[string]domain.Weapon, shop domain.Shop, weaponID string) (map[string]domain.Weapon, domain.Shop, error) {
	if _, ok := catalog[weaponID]; !ok {
		return catalog, shop, fmt.Errorf("%w: weapon %s", domain.ErrNotFound, weaponID)
	}
	next := copyCatalog(catalog)
	delete(next, weaponID)
	nextShop := shop.Clone()
	for i := range nextShop.Stands {
		nextShop.Stands[i].WeaponIDs = without(nextShop.Stands[i].WeaponIDs, weaponID)
	}
	return next, nextShop, nil
}

func copyCatalog(catalog map[string]domain.Weapon) map[string]domain.Weapon {
	out := make(map[string]domain.Weapon, len(catalog)+1)
	for id, w := range catalog {
		out[id] = w
	}
	return out
}
