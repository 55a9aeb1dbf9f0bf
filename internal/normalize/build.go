package normalize

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// Build reconstructs the whole state from normalized rows. Rows pointing at a
// missing parent are dropped with a warning; the count is returned.
func Build(ctx context.Context, rows repository.Rows) (domain.State, int) {
	log := logger.FromContext(ctx)
	state := domain.NewState()
	dropped := 0

	for _, u := range rows.Users {
		state.Users[u.ID] = u
	}

	for _, r := range rows.Inventories {
		inv := inventoryFromRow(r)
		if len(inv.FixedCategories) == 0 {
			log.Debug(LogMsgDefaultFixed, "inventory_id", r.ID)
			inv.FixedCategories = defaultFixed(r.ID)
		}
		state.Inventories[inv.ID] = inv
	}

	cats := append([]repository.CategoryRow(nil), rows.Categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Position != cats[j].Position {
			return cats[i].Position < cats[j].Position
		}
		return cats[i].ID < cats[j].ID
	})

	// category id -> (inventory id, fixed id)
	type placement struct{ inventoryID, fixedID string }
	placed := make(map[string]placement, len(cats))
	for _, c := range cats {
		inv, ok := state.Inventories[c.InventoryID]
		if !ok {
			log.Warn(LogMsgOrphanCategory, "category_id", c.ID, "inventory_id", c.InventoryID)
			dropped++
			continue
		}
		fixedID, ok := resolveParent(inv, c.ParentFixed)
		if !ok {
			log.Warn(LogMsgOrphanBucket, "category_id", c.ID, "parent_fixed", c.ParentFixed)
			dropped++
			continue
		}
		inv.Custom[fixedID] = append(inv.Custom[fixedID], domain.CustomCategory{ID: c.ID, Name: c.Name, Items: []domain.Item{}})
		placed[c.ID] = placement{inventoryID: inv.ID, fixedID: fixedID}
	}

	items := append([]repository.ItemRow(nil), rows.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Position != items[j].Position {
			return items[i].Position < items[j].Position
		}
		return items[i].ID < items[j].ID
	})
	for _, r := range items {
		p, ok := placed[r.CategoryID]
		if !ok {
			log.Warn(LogMsgOrphanItem, "item_id", r.ID, "category_id", r.CategoryID)
			dropped++
			continue
		}
		inv := state.Inventories[p.inventoryID]
		ref, _ := inv.FindCategoryIn(p.fixedID, r.CategoryID)
		cat := inv.Category(ref)
		cat.Items = append(cat.Items, ItemFromRow(r))
	}

	for _, w := range rows.Weapons {
		state.Weapons[w.ID] = w
	}

	stands := append([]repository.StandRow(nil), rows.Stands...)
	sort.SliceStable(stands, func(i, j int) bool {
		if stands[i].Position != stands[j].Position {
			return stands[i].Position < stands[j].Position
		}
		return stands[i].ID < stands[j].ID
	})
	standIdx := make(map[string]int, len(stands))
	for i, s := range stands {
		state.Shop.Stands = append(state.Shop.Stands, domain.Stand{ID: s.ID, Name: s.Name, Slots: s.Slots, WeaponIDs: []string{}})
		standIdx[s.ID] = i
	}

	assignments := append([]repository.StandWeaponRow(nil), rows.StandWeapons...)
	sort.SliceStable(assignments, func(i, j int) bool { return assignments[i].Position < assignments[j].Position })
	for _, a := range assignments {
		idx, ok := standIdx[a.StandID]
		_, known := state.Weapons[a.WeaponID]
		if !ok || !known {
			log.Warn(LogMsgOrphanStandWeapon, "stand_id", a.StandID, "weapon_id", a.WeaponID)
			dropped++
			continue
		}
		st := &state.Shop.Stands[idx]
		if !st.Has(a.WeaponID) {
			st.WeaponIDs = append(st.WeaponIDs, a.WeaponID)
		}
	}

	log.Debug(LogMsgBuilt, "inventories", len(state.Inventories), "weapons", len(state.Weapons), "dropped", dropped)
	return state, dropped
}

func inventoryFromRow(r repository.InventoryRow) domain.Inventory {
	inv := domain.Inventory{
		ID:              r.ID,
		Name:            r.Name,
		Type:            domain.InventoryType(r.Type),
		Wallpaper:       r.Wallpaper,
		Money:           r.Money,
		FixedCategories: append([]domain.FixedCategory(nil), r.FixedCategories...),
		Custom:          make(map[string][]domain.CustomCategory),
		Meta:            domain.Meta{Status: r.Status, Notes: r.Notes},
	}
	if r.OwnerUserID != nil {
		inv.OwnerID = *r.OwnerUserID
	}
	if inv.Type == "" {
		inv.Type = domain.InventoryCharacter
	}
	return inv
}

func defaultFixed(inventoryID string) []domain.FixedCategory {
	out := make([]domain.FixedCategory, len(domain.DefaultFixedCategories))
	for i, name := range domain.DefaultFixedCategories {
		out[i] = domain.FixedCategory{ID: fmt.Sprintf(FixedIDFmt, inventoryID, i), Name: name}
	}
	return out
}

// resolveParent maps a stored parent_fixed value to a fixed category id.
// It accepts an id, a legacy name, or empty for the default bucket.
func resolveParent(inv domain.Inventory, parent string) (string, bool) {
	if parent == "" {
		return defaultBucket(inv)
	}
	if inv.FixedIndex(parent) >= 0 {
		return parent, true
	}
	for _, fc := range inv.FixedCategories {
		if fc.Name == parent {
			return fc.ID, true
		}
	}
	return "", false
}

func defaultBucket(inv domain.Inventory) (string, bool) {
	for _, fc := range inv.FixedCategories {
		if fc.Name == domain.DefaultParentFixed {
			return fc.ID, true
		}
	}
	for _, fc := range inv.FixedCategories {
		if inventory.IsStorageBucket(fc) {
			return fc.ID, true
		}
	}
	if len(inv.FixedCategories) > 0 {
		return inv.FixedCategories[0].ID, true
	}
	return "", false
}

// ItemFromRow turns a stored item into the tagged variant. The stored type tag
// and the presence of a weapon id both mark a weapon.
func ItemFromRow(r repository.ItemRow) domain.Item {
	item := domain.Item{ID: r.ID, Name: r.Name, Qty: r.Qty, Desc: r.Metadata.Description}
	if r.Type != repository.ItemTypeWeapon && r.Metadata.WeaponID == "" {
		return item
	}
	md := r.Metadata
	item.Weapon = &domain.WeaponMetadata{
		WeaponID: md.WeaponID,
		AmmoType: md.AmmoType,
		Image:    md.Image,
	}
	if md.MagCurrent != nil {
		item.Weapon.MagCurrent = *md.MagCurrent
	}
	if md.MagCapacity != nil {
		item.Weapon.MagCapacity = *md.MagCapacity
	}
	if md.Damage != nil {
		item.Weapon.Damage = *md.Damage
	}
	return item
}
