package shop

import (
	"fmt"
	"sort"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// AddWeaponToStand places a weapon on a stand. Adding a weapon already present
// or adding to a full stand leaves the shop unchanged.
func AddWeaponToStand(shop domain.Shop, catalog map[string]domain.Weapon, standID, weaponID string) (domain.Shop, error) {
	idx := shop.StandIndex(standID)
	if idx < 0 {
		return shop, fmt.Errorf("%w: stand %s", domain.ErrNotFound, standID)
	}
	if _, ok := catalog[weaponID]; !ok {
		return shop, fmt.Errorf("%w: weapon %s", domain.ErrNotFound, weaponID)
	}
	stand := shop.Stands[idx]
	if stand.Has(weaponID) {
		return shop, fmt.Errorf("%w: weapon already on stand", domain.ErrNoOp)
	}
	if len(stand.WeaponIDs) >= stand.Slots {
		return shop, fmt.Errorf("%w: stand is full", domain.ErrNoOp)
	}
	next := shop.Clone()
	next.Stands[idx].WeaponIDs = append(next.Stands[idx].WeaponIDs, weaponID)
	return next, nil
}

// RemoveWeaponFromStand takes a weapon off a stand
func RemoveWeaponFromStand(shop domain.Shop, standID, weaponID string) (domain.Shop, error) {
	idx := shop.StandIndex(standID)
	if idx < 0 {
		return shop, fmt.Errorf("%w: stand %s", domain.ErrNotFound, standID)
	}
	if !shop.Stands[idx].Has(weaponID) {
		return shop, fmt.Errorf("%w: %s", domain.ErrNotFound, ErrMsgWeaponNotOnStand)
	}
	next := shop.Clone()
	next.Stands[idx].WeaponIDs = without(next.Stands[idx].WeaponIDs, weaponID)
	return next, nil
}

// RandomizeStand replaces a stand's contents with a random subset of the weapons
// not assigned to any stand. The subset size is uniform in [1, max] where max is
// bounded by the stand slots, the available count and RandomizeCap for large catalogs.
func RandomizeStand(shop domain.Shop, catalog map[string]domain.Weapon, standID string, rnd utils.Intn) (domain.Shop, []string, error) {
	idx := shop.StandIndex(standID)
	if idx < 0 {
		return shop, nil, fmt.Errorf("%w: stand %s", domain.ErrNotFound, standID)
	}
	slots := shop.Stands[idx].Slots
	if slots <= 0 {
		return shop, nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgStandHasNoSlots)
	}

	assigned := shop.Assigned()
	available := make([]string, 0, len(catalog))
	for id := range catalog {
		if !assigned[id] {
			available = append(available, id)
		}
	}
	if len(available) == 0 {
		return shop, nil, fmt.Errorf("%w: every weapon is on a stand", domain.ErrNoStockAvailable)
	}
	// Map order is random; sort so a seeded rnd gives repeatable picks.
	sort.Strings(available)

	maxCount := min(slots, len(available))
	if len(catalog) > domain.RandomizeCap {
		maxCount = min(maxCount, domain.RandomizeCap)
	}
	count := 1 + rnd(maxCount)

	// Partial Fisher-Yates: the first count entries become a uniform sample.
	for i := 0; i < count; i++ {
		j := i + rnd(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	picked := append([]string(nil), available[:count]...)

	next := shop.Clone()
	next.Stands[idx].WeaponIDs = picked
	return next, picked, nil
}

func without(ids []string, drop string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
