package repository

import (
	"context"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

// Store is the normalized external store behind connected mode
type Store interface {
	// LoadAll fetches every table in one consistent read
	LoadAll(ctx context.Context) (Rows, error)
	BeginTx(ctx context.Context) (StoreTx, error)
	// Seed writes a full dataset into an empty store
	Seed(ctx context.Context, rows Rows) error
}

// StoreTx exposes one persist function per entity or field being written
type StoreTx interface {
	Tx

	InsertCategory(ctx context.Context, row CategoryRow) error
	UpdateCategory(ctx context.Context, row CategoryRow) error
	DeleteCategory(ctx context.Context, categoryID string) error

	InsertItem(ctx context.Context, row ItemRow) error
	UpdateItem(ctx context.Context, row ItemRow) error
	MoveItem(ctx context.Context, move ItemMove) error
	DeleteItem(ctx context.Context, itemID string) error

	UpdateMoney(ctx context.Context, inventoryID string, money int) error
	UpdateMeta(ctx context.Context, inventoryID string, meta domain.Meta) error
	UpdateFixedCategories(ctx context.Context, inventoryID string, fixed []domain.FixedCategory) error

	InsertWeapon(ctx context.Context, weapon domain.Weapon) error
	DeleteWeapon(ctx context.Context, weaponID string) error
	ReplaceStandWeapons(ctx context.Context, standID string, weaponIDs []string) error
}
