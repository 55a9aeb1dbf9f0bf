package domain

// InventoryType distinguishes character inventories from shared containers
type InventoryType string

const (
	InventoryCharacter InventoryType = "character"
	InventoryVehicle   InventoryType = "vehicle"
)

// FixedCategory is a top-level section of an inventory.
// The ID is stable across renames and keys the custom bucket.
type FixedCategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CustomCategory is a user-created grouping of items inside a fixed category
type CustomCategory struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Meta holds free-text fields editable by the owner or the GM
type Meta struct {
	Status string `json:"status" yaml:"status"`
	Notes  string `json:"notes" yaml:"notes"`
}

// Inventory is the nested tree: fixed categories -> custom categories -> items.
// OwnerID is empty for shared inventories such as vehicles.
type Inventory struct {
	ID              string                      `json:"id"`
	Name            string                      `json:"name"`
	OwnerID         string                      `json:"owner_id,omitempty"`
	Type            InventoryType               `json:"type"`
	Wallpaper       string                      `json:"wallpaper,omitempty"`
	Money           int                         `json:"money"`
	FixedCategories []FixedCategory             `json:"fixed_categories"`
	Custom          map[string][]CustomCategory `json:"custom"`
	Meta            Meta                        `json:"meta"`
}

// IsShared reports whether the inventory has no owner
func (inv Inventory) IsShared() bool {
	return inv.OwnerID == ""
}

// FixedIndex returns the position of the fixed category with the given id, or -1
func (inv Inventory) FixedIndex(fixedID string) int {
	for i, fc := range inv.FixedCategories {
		if fc.ID == fixedID {
			return i
		}
	}
	return -1
}

// CategoryRef locates a custom category inside an inventory
type CategoryRef struct {
	FixedID string
	Index   int
}

// ItemRef locates an item inside an inventory
type ItemRef struct {
	CategoryRef
	ItemIndex int
}

// FindCategory searches every fixed bucket for the category id
func (inv Inventory) FindCategory(categoryID string) (CategoryRef, bool) {
	for _, fc := range inv.FixedCategories {
		for i, cat := range inv.Custom[fc.ID] {
			if cat.ID == categoryID {
				return CategoryRef{FixedID: fc.ID, Index: i}, true
			}
		}
	}
	return CategoryRef{}, false
}

// FindCategoryIn searches a single fixed bucket for the category id
func (inv Inventory) FindCategoryIn(fixedID, categoryID string) (CategoryRef, bool) {
	for i, cat := range inv.Custom[fixedID] {
		if cat.ID == categoryID {
			return CategoryRef{FixedID: fixedID, Index: i}, true
		}
	}
	return CategoryRef{}, false
}

// FindItem searches the whole custom mapping for the item id
func (inv Inventory) FindItem(itemID string) (ItemRef, bool) {
	for _, fc := range inv.FixedCategories {
		for ci, cat := range inv.Custom[fc.ID] {
			for ii, item := range cat.Items {
				if item.ID == itemID {
					return ItemRef{CategoryRef: CategoryRef{FixedID: fc.ID, Index: ci}, ItemIndex: ii}, true
				}
			}
		}
	}
	return ItemRef{}, false
}

// Category returns a pointer into the inventory for the referenced category
func (inv *Inventory) Category(ref CategoryRef) *CustomCategory {
	return &inv.Custom[ref.FixedID][ref.Index]
}

// Item returns a pointer into the inventory for the referenced item
func (inv *Inventory) Item(ref ItemRef) *Item {
	return &inv.Custom[ref.FixedID][ref.Index].Items[ref.ItemIndex]
}

// Clone returns a deep copy sharing no mutable structure with the receiver
func (inv Inventory) Clone() Inventory {
	out := inv
	out.FixedCategories = append([]FixedCategory(nil), inv.FixedCategories...)
	out.Custom = make(map[string][]CustomCategory, len(inv.Custom))
	for key, cats := range inv.Custom {
		copied := make([]CustomCategory, len(cats))
		for i, cat := range cats {
			copied[i] = cat.Clone()
		}
		out.Custom[key] = copied
	}
	return out
}

// Clone returns a deep copy of the category and its items
func (c CustomCategory) Clone() CustomCategory {
	out := c
	out.Items = make([]Item, len(c.Items))
	for i, item := range c.Items {
		out.Items[i] = item.Clone()
	}
	return out
}

// TotalQty sums item quantities across the whole inventory
func (inv Inventory) TotalQty() int {
	total := 0
	for _, cats := range inv.Custom {
		for _, cat := range cats {
			for _, item := range cat.Items {
				total += item.Qty
			}
		}
	}
	return total
}
