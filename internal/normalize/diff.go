package normalize

import (
	"reflect"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// Diff computes the writes that turn before into after. Inventories and stands
// are only updated, never created or removed, since both are seeded.
func Diff(before, after domain.State) repository.Changeset {
	var cs repository.Changeset
	b, a := Flatten(before), Flatten(after)

	diffWeapons(&cs, b.Weapons, a.Weapons)
	diffInventories(&cs, b.Inventories, a.Inventories)
	diffCategories(&cs, b.Categories, a.Categories)
	diffItems(&cs, b.Items, a.Items)
	diffStands(&cs, before.Shop, after.Shop)
	return cs
}

func diffWeapons(cs *repository.Changeset, before, after []domain.Weapon) {
	old := make(map[string]bool, len(before))
	for _, w := range before {
		old[w.ID] = true
	}
	current := make(map[string]bool, len(after))
	for _, w := range after {
		current[w.ID] = true
		if !old[w.ID] {
			cs.InsertWeapons = append(cs.InsertWeapons, w)
		}
	}
	for _, w := range before {
		if !current[w.ID] {
			cs.DeleteWeapons = append(cs.DeleteWeapons, w.ID)
		}
	}
}

func diffInventories(cs *repository.Changeset, before, after []repository.InventoryRow) {
	old := make(map[string]repository.InventoryRow, len(before))
	for _, r := range before {
		old[r.ID] = r
	}
	for _, r := range after {
		prev, ok := old[r.ID]
		if !ok {
			continue
		}
		if !reflect.DeepEqual(prev.FixedCategories, r.FixedCategories) {
			cs.FixedUpdates = append(cs.FixedUpdates, repository.FixedUpdate{InventoryID: r.ID, Fixed: r.FixedCategories})
		}
		if prev.Money != r.Money {
			cs.MoneyUpdates = append(cs.MoneyUpdates, repository.MoneyUpdate{InventoryID: r.ID, Money: r.Money})
		}
		if prev.Status != r.Status || prev.Notes != r.Notes {
			cs.MetaUpdates = append(cs.MetaUpdates, repository.MetaUpdate{InventoryID: r.ID, Meta: domain.Meta{Status: r.Status, Notes: r.Notes}})
		}
	}
}

func diffCategories(cs *repository.Changeset, before, after []repository.CategoryRow) {
	old := make(map[string]repository.CategoryRow, len(before))
	for _, r := range before {
		old[r.ID] = r
	}
	current := make(map[string]bool, len(after))
	for _, r := range after {
		current[r.ID] = true
		prev, ok := old[r.ID]
		switch {
		case !ok:
			cs.InsertCategories = append(cs.InsertCategories, r)
		case prev != r:
			cs.UpdateCategories = append(cs.UpdateCategories, r)
		}
	}
	for _, r := range before {
		if !current[r.ID] {
			cs.DeleteCategories = append(cs.DeleteCategories, r.ID)
		}
	}
}

func diffItems(cs *repository.Changeset, before, after []repository.ItemRow) {
	old := make(map[string]repository.ItemRow, len(before))
	for _, r := range before {
		old[r.ID] = r
	}
	current := make(map[string]bool, len(after))
	for _, r := range after {
		current[r.ID] = true
		prev, ok := old[r.ID]
		if !ok {
			cs.InsertItems = append(cs.InsertItems, r)
			continue
		}
		if prev.Name != r.Name || prev.Qty != r.Qty || prev.Type != r.Type || !reflect.DeepEqual(prev.Metadata, r.Metadata) {
			cs.UpdateItems = append(cs.UpdateItems, r)
		}
		if prev.CategoryID != r.CategoryID || prev.Position != r.Position {
			cs.MoveItems = append(cs.MoveItems, repository.ItemMove{ItemID: r.ID, CategoryID: r.CategoryID, Position: r.Position})
		}
	}
	for _, r := range before {
		if !current[r.ID] {
			cs.DeleteItems = append(cs.DeleteItems, r.ID)
		}
	}
}

func diffStands(cs *repository.Changeset, before, after domain.Shop) {
	old := make(map[string][]string, len(before.Stands))
	for _, st := range before.Stands {
		old[st.ID] = st.WeaponIDs
	}
	for _, st := range after.Stands {
		prev, ok := old[st.ID]
		if !ok {
			continue
		}
		if !equalIDs(prev, st.WeaponIDs) {
			cs.StandAssignments = append(cs.StandAssignments, repository.StandAssignment{StandID: st.ID, WeaponIDs: append([]string(nil), st.WeaponIDs...)})
		}
	}
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
