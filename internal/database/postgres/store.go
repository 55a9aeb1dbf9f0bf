package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

// StashStore implements repository.Store for PostgreSQL
type StashStore struct {
	db *pgxpool.Pool
}

// NewStashStore creates a new StashStore
func NewStashStore(db *pgxpool.Pool) *StashStore {
	return &StashStore{db: db}
}

// LoadAll reads every table inside one repeatable-read transaction so the
// snapshot is consistent even while other writers are active.
func (s *StashStore) LoadAll(ctx context.Context) (repository.Rows, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return repository.Rows{}, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var rows repository.Rows
	if rows.Users, err = loadUsers(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.Inventories, err = loadInventories(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.Categories, err = loadCategories(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.Items, err = loadItems(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.Weapons, err = loadWeapons(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.Stands, err = loadStands(ctx, tx); err != nil {
		return repository.Rows{}, err
	}
	if rows.StandWeapons, err = loadStandWeapons(ctx, tx); err != nil {
		return repository.Rows{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return repository.Rows{}, fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return rows, nil
}

// BeginTx opens a write transaction exposing the per-entity persist functions
func (s *StashStore) BeginTx(ctx context.Context) (repository.StoreTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	return &stashTx{tx: tx}, nil
}

// Seed writes a full dataset in one batch. It does nothing if the store already
// holds users, inventories or stands.
func (s *StashStore) Seed(ctx context.Context, rows repository.Rows) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	var populated bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users)
		    OR EXISTS (SELECT 1 FROM inventories)
		    OR EXISTS (SELECT 1 FROM stands)
	`).Scan(&populated)
	if err != nil {
		return fmt.Errorf("failed to check store contents: %w", err)
	}
	if populated {
		log.Info(LogMsgSeedSkipped)
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range rows.Users {
		batch.Queue(`INSERT INTO users (id, name, role) VALUES ($1, $2, $3)`, u.ID, u.Name, string(u.Role))
	}
	for _, w := range rows.Weapons {
		queueInsertWeapon(batch, w)
	}
	for _, inv := range rows.Inventories {
		fixed, err := marshalJSON(inv.FixedCategories)
		if err != nil {
			return err
		}
		batch.Queue(`
			INSERT INTO inventories (id, name, owner_user_id, type, wallpaper, money, fixed_categories, status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, inv.ID, inv.Name, inv.OwnerUserID, inv.Type, inv.Wallpaper, inv.Money, fixed, inv.Status, inv.Notes)
	}
	for _, c := range rows.Categories {
		queueInsertCategory(batch, c)
	}
	for _, it := range rows.Items {
		if err := queueInsertItem(batch, it); err != nil {
			return err
		}
	}
	for _, st := range rows.Stands {
		batch.Queue(`INSERT INTO stands (id, name, slots, position) VALUES ($1, $2, $3, $4)`,
			st.ID, st.Name, st.Slots, st.Position)
	}
	for _, sw := range rows.StandWeapons {
		batch.Queue(`INSERT INTO stand_weapons (stand_id, weapon_id, position) VALUES ($1, $2, $3)`,
			sw.StandID, sw.WeaponID, sw.Position)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Info(LogMsgSeeded,
		"users", len(rows.Users),
		"inventories", len(rows.Inventories),
		"weapons", len(rows.Weapons),
		"stands", len(rows.Stands))
	return nil
}

func loadUsers(ctx context.Context, tx pgx.Tx) ([]domain.User, error) {
	rows, err := tx.Query(ctx, `SELECT id, name, role FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		var role string
		if err := row.Scan(&u.ID, &u.Name, &role); err != nil {
			return u, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = domain.Role(role)
		return u, nil
	})
}

func loadInventories(ctx context.Context, tx pgx.Tx) ([]repository.InventoryRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, owner_user_id, type, wallpaper, money, fixed_categories, status, notes
		FROM inventories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventories: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.InventoryRow, error) {
		var inv repository.InventoryRow
		var fixed []byte
		err := row.Scan(
			&inv.ID,
			&inv.Name,
			&inv.OwnerUserID,
			&inv.Type,
			&inv.Wallpaper,
			&inv.Money,
			&fixed,
			&inv.Status,
			&inv.Notes,
		)
		if err != nil {
			return inv, fmt.Errorf("failed to scan inventory: %w", err)
		}
		if len(fixed) > 0 {
			if err := json.Unmarshal(fixed, &inv.FixedCategories); err != nil {
				return inv, fmt.Errorf("failed to unmarshal fixed categories of %s: %w", inv.ID, err)
			}
		}
		return inv, nil
	})
}

func loadCategories(ctx context.Context, tx pgx.Tx) ([]repository.CategoryRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, inventory_id, parent_fixed, name, position
		FROM categories
		ORDER BY inventory_id, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.CategoryRow, error) {
		var c repository.CategoryRow
		if err := row.Scan(&c.ID, &c.InventoryID, &c.ParentFixed, &c.Name, &c.Position); err != nil {
			return c, fmt.Errorf("failed to scan category: %w", err)
		}
		return c, nil
	})
}

func loadItems(ctx context.Context, tx pgx.Tx) ([]repository.ItemRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, category_id, name, qty, type, metadata, position
		FROM items
		ORDER BY category_id, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.ItemRow, error) {
		var it repository.ItemRow
		var meta []byte
		if err := row.Scan(&it.ID, &it.CategoryID, &it.Name, &it.Qty, &it.Type, &meta, &it.Position); err != nil {
			return it, fmt.Errorf("failed to scan item: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &it.Metadata); err != nil {
				return it, fmt.Errorf("failed to unmarshal metadata of item %s: %w", it.ID, err)
			}
		}
		return it, nil
	})
}

func loadWeapons(ctx context.Context, tx pgx.Tx) ([]domain.Weapon, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, damage, mag_capacity, ammo_type, price, image_url
		FROM weapons
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weapons: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Weapon, error) {
		var w domain.Weapon
		if err := row.Scan(&w.ID, &w.Name, &w.Damage, &w.MagCapacity, &w.AmmoType, &w.Price, &w.ImageURL); err != nil {
			return w, fmt.Errorf("failed to scan weapon: %w", err)
		}
		return w, nil
	})
}

func loadStands(ctx context.Context, tx pgx.Tx) ([]repository.StandRow, error) {
	rows, err := tx.Query(ctx, `SELECT id, name, slots, position FROM stands ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stands: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.StandRow, error) {
		var st repository.StandRow
		if err := row.Scan(&st.ID, &st.Name, &st.Slots, &st.Position); err != nil {
			return st, fmt.Errorf("failed to scan stand: %w", err)
		}
		return st, nil
	})
}

func loadStandWeapons(ctx context.Context, tx pgx.Tx) ([]repository.StandWeaponRow, error) {
	rows, err := tx.Query(ctx, `
		SELECT stand_id, weapon_id, position
		FROM stand_weapons
		ORDER BY stand_id, position, weapon_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stand weapons: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (repository.StandWeaponRow, error) {
		var sw repository.StandWeaponRow
		if err := row.Scan(&sw.StandID, &sw.WeaponID, &sw.Position); err != nil {
			return sw, fmt.Errorf("failed to scan stand weapon: %w", err)
		}
		return sw, nil
	})
}

func queueInsertWeapon(batch *pgx.Batch, w domain.Weapon) {
	batch.Queue(`
		INSERT INTO weapons (id, name, damage, mag_capacity, ammo_type, price, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, w.ID, w.Name, w.Damage, w.MagCapacity, w.AmmoType, w.Price, w.ImageURL)
}

func queueInsertCategory(batch *pgx.Batch, c repository.CategoryRow) {
	batch.Queue(`
		INSERT INTO categories (id, inventory_id, parent_fixed, name, position)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.InventoryID, c.ParentFixed, c.Name, c.Position)
}

func queueInsertItem(batch *pgx.Batch, it repository.ItemRow) error {
	meta, err := marshalJSON(it.Metadata)
	if err != nil {
		return err
	}
	batch.Queue(`
		INSERT INTO items (id, category_id, name, qty, type, metadata, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, it.ID, it.CategoryID, it.Name, it.Qty, it.Type, meta, it.Position)
	return nil
}
