package inventory

import (
	"fmt"
	"strings"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// Every function here is a pure tree transform: the input inventory is never
// modified and the returned inventory shares no mutable structure with it.

// RenameFixedCategory replaces the label at index. The bucket keeps its id and contents.
func RenameFixedCategory(inv domain.Inventory, index int, name string) (domain.Inventory, error) {
	name = strings.TrimSpace(name)
	if index < 0 || index >= len(inv.FixedCategories) {
		return inv, fmt.Errorf("%w: fixed category index %d out of range [0,%d)", domain.ErrInvalidIndex, index, len(inv.FixedCategories))
	}
	if name == "" {
		return inv, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	next := inv.Clone()
	next.FixedCategories[index].Name = name
	return next, nil
}

// CreateCustomCategory appends an empty category to the fixed bucket
func CreateCustomCategory(inv domain.Inventory, fixedID, name string, newID utils.IDGenerator) (domain.Inventory, domain.CustomCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return inv, domain.CustomCategory{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	if inv.FixedIndex(fixedID) < 0 {
		return inv, domain.CustomCategory{}, fmt.Errorf("%w: fixed category %s", domain.ErrNotFound, fixedID)
	}
	cat := domain.CustomCategory{ID: newID(), Name: name, Items: []domain.Item{}}
	next := inv.Clone()
	next.Custom[fixedID] = append(next.Custom[fixedID], cat)
	return next, cat, nil
}

// RenameCustomCategory renames a category found in any bucket
func RenameCustomCategory(inv domain.Inventory, categoryID, name string) (domain.Inventory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return inv, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	ref, ok := inv.FindCategory(categoryID)
	if !ok {
		return inv, fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
	}
	next := inv.Clone()
	next.Category(ref).Name = name
	return next, nil
}

// DeleteCustomCategory removes a category and all of its items
func DeleteCustomCategory(inv domain.Inventory, categoryID string) (domain.Inventory, error) {
	ref, ok := inv.FindCategory(categoryID)
	if !ok {
		return inv, fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
	}
	next := inv.Clone()
	cats := next.Custom[ref.FixedID]
	next.Custom[ref.FixedID] = append(cats[:ref.Index:ref.Index], cats[ref.Index+1:]...)
	return next, nil
}

// CreateItem appends a plain item to a category. An empty fixedID searches every bucket.
func CreateItem(inv domain.Inventory, fixedID, categoryID string, in domain.NewItem, newID utils.IDGenerator) (domain.Inventory, domain.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return inv, domain.Item{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	var ref domain.CategoryRef
	var ok bool
	if fixedID == "" {
		ref, ok = inv.FindCategory(categoryID)
	} else {
		ref, ok = inv.FindCategoryIn(fixedID, categoryID)
	}
	if !ok {
		return inv, domain.Item{}, fmt.Errorf("%w: %s %s", domain.ErrValidation, ErrMsgCategoryMissing, categoryID)
	}
	qty := in.Qty
	if qty <= 0 {
		qty = domain.DefaultItemQty
	}
	item := domain.Item{ID: newID(), Name: name, Qty: qty, Desc: in.Desc}
	next := inv.Clone()
	cat := next.Category(ref)
	cat.Items = append(cat.Items, item)
	return next, item, nil
}

// EditItem merges the patch into an item found anywhere in the inventory
func EditItem(inv domain.Inventory, itemID string, patch domain.ItemPatch) (domain.Inventory, error) {
	ref, ok := inv.FindItem(itemID)
	if !ok {
		return inv, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	current := inv.Custom[ref.FixedID][ref.Index].Items[ref.ItemIndex]
	if err := validatePatch(current, patch); err != nil {
		return inv, err
	}

	next := inv.Clone()
	item := next.Item(ref)
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Qty != nil {
		item.Qty = *patch.Qty
	}
	if patch.Desc != nil {
		item.Desc = *patch.Desc
	}
	if w := item.Weapon; w != nil {
		if patch.Damage != nil {
			w.Damage = *patch.Damage
		}
		if patch.AmmoType != nil {
			w.AmmoType = *patch.AmmoType
		}
		if patch.MagCapacity != nil {
			w.MagCapacity = *patch.MagCapacity
		}
		if patch.MagCurrent != nil {
			w.MagCurrent = *patch.MagCurrent
		}
		// A smaller magazine cannot hold more than it fits.
		if w.MagCurrent > w.MagCapacity {
			w.MagCurrent = w.MagCapacity
		}
	}
	return next, nil
}

func validatePatch(item domain.Item, patch domain.ItemPatch) error {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNameRequired)
	}
	if patch.Qty != nil && *patch.Qty < 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeQty)
	}
	if !patch.TouchesWeapon() {
		return nil
	}
	if item.Weapon == nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNotAWeapon)
	}
	if patch.MagCapacity != nil && *patch.MagCapacity < 0 {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeCapacity)
	}
	capacity := item.Weapon.MagCapacity
	if patch.MagCapacity != nil {
		capacity = *patch.MagCapacity
	}
	if patch.MagCurrent != nil && (*patch.MagCurrent < 0 || *patch.MagCurrent > capacity) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgMagOutOfRange)
	}
	return nil
}

// DeleteItem removes one item from one category
func DeleteItem(inv domain.Inventory, categoryID, itemID string) (domain.Inventory, error) {
	ref, ok := inv.FindCategory(categoryID)
	if !ok {
		return inv, fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
	}
	idx := indexOfItem(inv.Custom[ref.FixedID][ref.Index].Items, itemID)
	if idx < 0 {
		return inv, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}
	next := inv.Clone()
	cat := next.Category(ref)
	cat.Items = append(cat.Items[:idx:idx], cat.Items[idx+1:]...)
	return next, nil
}

// MoveItem moves an item whole between two categories of the same bucket
func MoveItem(inv domain.Inventory, fromCategoryID, toCategoryID, itemID string) (domain.Inventory, error) {
	if fromCategoryID == toCategoryID {
		return inv, fmt.Errorf("%w: source and destination are the same category", domain.ErrNoOp)
	}
	from, ok := inv.FindCategory(fromCategoryID)
	if !ok {
		return inv, fmt.Errorf("%w: category %s", domain.ErrNotFound, fromCategoryID)
	}
	to, ok := inv.FindCategory(toCategoryID)
	if !ok {
		return inv, fmt.Errorf("%w: category %s", domain.ErrNotFound, toCategoryID)
	}
	if from.FixedID != to.FixedID {
		return inv, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgDifferentBuckets)
	}
	idx := indexOfItem(inv.Custom[from.FixedID][from.Index].Items, itemID)
	if idx < 0 {
		return inv, fmt.Errorf("%w: item %s", domain.ErrNotFound, itemID)
	}

	next := inv.Clone()
	src := next.Category(from)
	item := src.Items[idx]
	src.Items = append(src.Items[:idx:idx], src.Items[idx+1:]...)
	dst := next.Category(to)
	dst.Items = append(dst.Items, item)
	return next, nil
}

// SetMoney replaces the balance
func SetMoney(inv domain.Inventory, amount int) (domain.Inventory, error) {
	if amount < 0 {
		return inv, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNegativeMoney)
	}
	next := inv.Clone()
	next.Money = amount
	return next, nil
}

// SetMeta replaces status and notes together
func SetMeta(inv domain.Inventory, status, notes string) (domain.Inventory, error) {
	next := inv.Clone()
	next.Meta = domain.Meta{Status: status, Notes: notes}
	return next, nil
}

func indexOfItem(items []domain.Item, itemID string) int {
	for i, item := range items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
