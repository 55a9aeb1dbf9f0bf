package repository

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// ItemMove reassigns an item to a category and position
type ItemMove struct {
	ItemID     string
	CategoryID string
	Position   int
}

// MoneyUpdate sets an inventory balance
type MoneyUpdate struct {
	InventoryID string
	Money       int
}

// MetaUpdate sets inventory status and notes
type MetaUpdate struct {
	InventoryID string
	Meta        domain.Meta
}

// FixedUpdate replaces the fixed category list of an inventory
type FixedUpdate struct {
	InventoryID string
	Fixed       []domain.FixedCategory
}

// StandAssignment replaces the weapons on a stand
type StandAssignment struct {
	StandID   string
	WeaponIDs []string
}

// Changeset is the normalized delta between two states
type Changeset struct {
	InsertWeapons    []domain.Weapon
	FixedUpdates     []FixedUpdate
	InsertCategories []CategoryRow
	UpdateCategories []CategoryRow
	InsertItems      []ItemRow
	UpdateItems      []ItemRow
	MoveItems        []ItemMove
	DeleteItems      []string
	DeleteCategories []string
	MoneyUpdates     []MoneyUpdate
	MetaUpdates      []MetaUpdate
	StandAssignments []StandAssignment
	DeleteWeapons    []string
}

// Size counts the write operations in the changeset
func (c Changeset) Size() int {
	return len(c.InsertWeapons) + len(c.FixedUpdates) + len(c.InsertCategories) +
		len(c.UpdateCategories) + len(c.InsertItems) + len(c.UpdateItems) + len(c.MoveItems) +
		len(c.DeleteItems) + len(c.DeleteCategories) + len(c.MoneyUpdates) + len(c.MetaUpdates) +
		len(c.StandAssignments) + len(c.DeleteWeapons)
}

// IsEmpty reports whether there is nothing to write
func (c Changeset) IsEmpty() bool {
	return c.Size() == 0
}

// ApplyChangeset runs every write in dependency order: parents are inserted
// before children and children are removed before parents.
func ApplyChangeset(ctx context.Context, tx StoreTx, cs Changeset) error {
	for _, w := range cs.InsertWeapons {
		if err := tx.InsertWeapon(ctx, w); err != nil {
			return fmt.Errorf("insert weapon %s: %w", w.ID, err)
		}
	}
	for _, u := range cs.FixedUpdates {
		if err := tx.UpdateFixedCategories(ctx, u.InventoryID, u.Fixed); err != nil {
			return fmt.Errorf("update fixed categories of %s: %w", u.InventoryID, err)
		}
	}
	for _, row := range cs.InsertCategories {
		if err := tx.InsertCategory(ctx, row); err != nil {
			return fmt.Errorf("insert category %s: %w", row.ID, err)
		}
	}
	for _, row := range cs.UpdateCategories {
		if err := tx.UpdateCategory(ctx, row); err != nil {
			return fmt.Errorf("update category %s: %w", row.ID, err)
		}
	}
	for _, row := range cs.InsertItems {
		if err := tx.InsertItem(ctx, row); err != nil {
			return fmt.Errorf("insert item %s: %w", row.ID, err)
		}
	}
	for _, row := range cs.UpdateItems {
		if err := tx.UpdateItem(ctx, row); err != nil {
			return fmt.Errorf("update item %s: %w", row.ID, err)
		}
	}
	for _, mv := range cs.MoveItems {
		if err := tx.MoveItem(ctx, mv); err != nil {
			return fmt.Errorf("move item %s: %w", mv.ItemID, err)
		}
	}
	for _, id := range cs.DeleteItems {
		if err := tx.DeleteItem(ctx, id); err != nil {
			return fmt.Errorf("delete item %s: %w", id, err)
		}
	}
	for _, id := range cs.DeleteCategories {
		if err := tx.DeleteCategory(ctx, id); err != nil {
			return fmt.Errorf("delete category %s: %w", id, err)
		}
	}
	for _, u := range cs.MoneyUpdates {
		if err := tx.UpdateMoney(ctx, u.InventoryID, u.Money); err != nil {
			return fmt.Errorf("update money of %s: %w", u.InventoryID, err)
		}
	}
	for _, u := range cs.MetaUpdates {
		if err := tx.UpdateMeta(ctx, u.InventoryID, u.Meta); err != nil {
			return fmt.Errorf("update meta of %s: %w", u.InventoryID, err)
		}
	}
	for _, a := range cs.StandAssignments {
		if err := tx.ReplaceStandWeapons(ctx, a.StandID, a.WeaponIDs); err != nil {
			return fmt.Errorf("replace weapons of stand %s: %w", a.StandID, err)
		}
	}
	for _, id := range cs.DeleteWeapons {
		if err := tx.DeleteWeapon(ctx, id); err != nil {
			return fmt.Errorf("delete weapon %s: %w", id, err)
		}
	}
	return nil
}
