package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// stashTx implements repository.StoreTx on top of a pgx transaction
type stashTx struct {
	tx pgx.Tx
}

func (t *stashTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *stashTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *stashTx) InsertCategory(ctx context.Context, row repository.CategoryRow) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO categories (id, inventory_id, parent_fixed, name, position)
		VALUES ($1, $2, $3, $4, $5)
	`, row.ID, row.InventoryID, row.ParentFixed, row.Name, row.Position)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (t *stashTx) UpdateCategory(ctx context.Context, row repository.CategoryRow) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE categories
		SET name = $2, parent_fixed = $3, position = $4
		WHERE id = $1
	`, row.ID, row.Name, row.ParentFixed, row.Position)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return expectOne(tag, "category", row.ID)
}

// DeleteCategory removes the category; its items go with it through the cascade
func (t *stashTx) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return expectOne(tag, "category", categoryID)
}

func (t *stashTx) InsertItem(ctx context.Context, row repository.ItemRow) error {
	meta, err := marshalJSON(row.Metadata)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO items (id, category_id, name, qty, type, metadata, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, row.ID, row.CategoryID, row.Name, row.Qty, row.Type, meta, row.Position)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (t *stashTx) UpdateItem(ctx context.Context, row repository.ItemRow) error {
	meta, err := marshalJSON(row.Metadata)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE items
		SET name = $2, qty = $3, type = $4, metadata = $5, position = $6
		WHERE id = $1
	`, row.ID, row.Name, row.Qty, row.Type, meta, row.Position)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return expectOne(tag, "item", row.ID)
}

func (t *stashTx) MoveItem(ctx context.Context, move repository.ItemMove) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE items SET category_id = $2, position = $3 WHERE id = $1
	`, move.ItemID, move.CategoryID, move.Position)
	if err != nil {
		return fmt.Errorf("failed to move item: %w", err)
	}
	return expectOne(tag, "item", move.ItemID)
}

func (t *stashTx) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return expectOne(tag, "item", itemID)
}

func (t *stashTx) UpdateMoney(ctx context.Context, inventoryID string, money int) error {
	tag, err := t.tx.Exec(ctx, `UPDATE inventories SET money = $2 WHERE id = $1`, inventoryID, money)
	if err != nil {
		return fmt.Errorf("failed to update money: %w", err)
	}
	return expectOne(tag, "inventory", inventoryID)
}

func (t *stashTx) UpdateMeta(ctx context.Context, inventoryID string, meta domain.Meta) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE inventories SET status = $2, notes = $3 WHERE id = $1
	`, inventoryID, meta.Status, meta.Notes)
	if err != nil {
		return fmt.Errorf("failed to update meta: %w", err)
	}
	return expectOne(tag, "inventory", inventoryID)
}

func (t *stashTx) UpdateFixedCategories(ctx context.Context, inventoryID string, fixed []domain.FixedCategory) error {
	payload, err := marshalJSON(fixed)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE inventories SET fixed_categories = $2 WHERE id = $1
	`, inventoryID, payload)
	if err != nil {
		return fmt.Errorf("failed to update fixed categories: %w", err)
	}
	return expectOne(tag, "inventory", inventoryID)
}

func (t *stashTx) InsertWeapon(ctx context.Context, w domain.Weapon) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO weapons (id, name, damage, mag_capacity, ammo_type, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, w.ID, w.Name, w.Damage, w.MagCapacity, w.AmmoType, w.Price, w.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to insert weapon: %w", err)
	}
	return nil
}

// DeleteWeapon removes the catalog entry; stand assignments go with it through the cascade
func (t *stashTx) DeleteWeapon(ctx context.Context, weaponID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM weapons WHERE id = $1`, weaponID)
	if err != nil {
		return fmt.Errorf("failed to delete weapon: %w", err)
	}
	return expectOne(tag, "weapon", weaponID)
}

// ReplaceStandWeapons rewrites the stand's assignment list keeping the given order
func (t *stashTx) ReplaceStandWeapons(ctx context.Context, standID string, weaponIDs []string) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM stand_weapons WHERE stand_id = $1`, standID); err != nil {
		return fmt.Errorf("failed to clear stand weapons: %w", err)
	}
	if len(weaponIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for pos, id := range weaponIDs {
		batch.Queue(`
			INSERT INTO stand_weapons (stand_id, weapon_id, position) VALUES ($1, $2, $3)
		`, standID, id, pos)
	}
	if err := t.tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert stand weapons: %w", err)
	}
	return nil
}
