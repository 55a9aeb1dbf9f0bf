package normalize

import (
	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// Flatten turns a state into normalized rows. Positions are slice indexes.
func Flatten(state domain.State) repository.Rows {
	var rows repository.Rows

	rows.Users = state.SortedUsers()

	for _, inv := range state.SortedInventories() {
		rows.Inventories = append(rows.Inventories, InventoryToRow(inv))
		for _, fc := range inv.FixedCategories {
			for ci, cat := range inv.Custom[fc.ID] {
				rows.Categories = append(rows.Categories, repository.CategoryRow{
					ID:          cat.ID,
					InventoryID: inv.ID,
					ParentFixed: fc.ID,
					Name:        cat.Name,
					Position:    ci,
				})
				for ii, item := range cat.Items {
					rows.Items = append(rows.Items, ItemToRow(item, cat.ID, ii))
				}
			}
		}
	}

	rows.Weapons = state.SortedWeapons()

	for si, st := range state.Shop.Stands {
		rows.Stands = append(rows.Stands, repository.StandRow{ID: st.ID, Name: st.Name, Slots: st.Slots, Position: si})
		for wi, wid := range st.WeaponIDs {
			rows.StandWeapons = append(rows.StandWeapons, repository.StandWeaponRow{StandID: st.ID, WeaponID: wid, Position: wi})
		}
	}
	return rows
}

// InventoryToRow maps the inventory-level fields
func InventoryToRow(inv domain.Inventory) repository.InventoryRow {
	row := repository.InventoryRow{
		ID:              inv.ID,
		Name:            inv.Name,
		Type:            string(inv.Type),
		Wallpaper:       inv.Wallpaper,
		Money:           inv.Money,
		FixedCategories: append([]domain.FixedCategory(nil), inv.FixedCategories...),
		Status:          inv.Meta.Status,
		Notes:           inv.Meta.Notes,
	}
	if !inv.IsShared() {
		owner := inv.OwnerID
		row.OwnerUserID = &owner
	}
	return row
}

// ItemToRow maps an item into its stored shape
func ItemToRow(item domain.Item, categoryID string, position int) repository.ItemRow {
	row := repository.ItemRow{
		ID:         item.ID,
		CategoryID: categoryID,
		Name:       item.Name,
		Qty:        item.Qty,
		Type:       repository.ItemTypePlain,
		Metadata:   repository.ItemMetadata{Description: item.Desc},
		Position:   position,
	}
	if w := item.Weapon; w != nil {
		row.Type = repository.ItemTypeWeapon
		current, capacity, damage := w.MagCurrent, w.MagCapacity, w.Damage
		row.Metadata.WeaponID = w.WeaponID
		row.Metadata.MagCurrent = &current
		row.Metadata.MagCapacity = &capacity
		row.Metadata.Damage = &damage
		row.Metadata.AmmoType = w.AmmoType
		row.Metadata.Image = w.Image
	}
	return row
}
