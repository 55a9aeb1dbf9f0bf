package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/repository"
)

func intPtr(v int) *int { return &v }

func sampleRows() repository.Rows {
	owner := "senshi"
	fixed := []domain.FixedCategory{
		{ID: "inv-senshi-fixed-0", Name: "Status"},
		{ID: "inv-senshi-fixed-1", Name: "Mochila"},
	}
	return repository.Rows{
		Users: []domain.User{
			{ID: "gm", Name: "Mestre", Role: domain.RoleGM},
			{ID: "senshi", Name: "Senshi", Role: domain.RolePlayer},
		},
		Inventories: []repository.InventoryRow{
			{ID: "inv-senshi", Name: "Senshi", OwnerUserID: &owner, Type: "character", Money: 500, FixedCategories: fixed},
			{ID: "inv-carro", Name: "Carro", Type: "vehicle", FixedCategories: []domain.FixedCategory{{ID: "inv-carro-fixed-0", Name: "Porta-malas"}}},
		},
		Categories: []repository.CategoryRow{
			{ID: "cat-1", InventoryID: "inv-senshi", ParentFixed: "inv-senshi-fixed-1", Name: "Armas", Position: 0},
		},
		Items: []repository.ItemRow{
			{
				ID: "item-1", CategoryID: "cat-1", Name: "Glock", Qty: 1, Type: repository.ItemTypeWeapon,
				Metadata: repository.ItemMetadata{WeaponID: "w-glock", MagCurrent: intPtr(12), MagCapacity: intPtr(17), AmmoType: "9mm", Damage: intPtr(3)},
			},
		},
		Weapons: []domain.Weapon{
			{ID: "w-glock", Name: "Glock", Damage: 3, MagCapacity: 17, AmmoType: "9mm", Price: 1500},
			{ID: "w-ak", Name: "AK-47", Damage: 6, MagCapacity: 30, AmmoType: "7.62mm", Price: 4000},
		},
		Stands:       []repository.StandRow{{ID: "stand1", Name: "Bancada 1", Slots: 20, Position: 0}},
		StandWeapons: []repository.StandWeaponRow{{StandID: "stand1", WeaponID: "w-glock", Position: 0}},
	}
}

func TestStashStore_SeedAndLoadAll(t *testing.T) {
	pool := setupTestDB(t)
	store := NewStashStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, sampleRows()))

	rows, err := store.LoadAll(ctx)
	require.NoError(t, err)

	assert.Len(t, rows.Users, 2)
	require.Len(t, rows.Inventories, 2)
	assert.Equal(t, "inv-carro", rows.Inventories[0].ID)
	assert.Nil(t, rows.Inventories[0].OwnerUserID)
	require.NotNil(t, rows.Inventories[1].OwnerUserID)
	assert.Equal(t, "senshi", *rows.Inventories[1].OwnerUserID)
	assert.Equal(t, 500, rows.Inventories[1].Money)
	assert.Len(t, rows.Inventories[1].FixedCategories, 2)

	require.Len(t, rows.Items, 1)
	assert.Equal(t, "w-glock", rows.Items[0].Metadata.WeaponID)
	require.NotNil(t, rows.Items[0].Metadata.MagCurrent)
	assert.Equal(t, 12, *rows.Items[0].Metadata.MagCurrent)

	assert.Len(t, rows.Weapons, 2)
	assert.Len(t, rows.StandWeapons, 1)
}

func TestStashStore_SeedSkipsPopulatedStore(t *testing.T) {
	pool := setupTestDB(t)
	store := NewStashStore(pool)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, sampleRows()))

	second := sampleRows()
	second.Users = append(second.Users, domain.User{ID: "don", Name: "Don", Role: domain.RolePlayer})
	require.NoError(t, store.Seed(ctx, second))

	rows, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows.Users, 2)
}

func TestStashStore_ApplyChangeset(t *testing.T) {
	pool := setupTestDB(t)
	store := NewStashStore(pool)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleRows()))

	cs := repository.Changeset{
		InsertCategories: []repository.CategoryRow{
			{ID: "cat-2", InventoryID: "inv-carro", ParentFixed: "inv-carro-fixed-0", Name: "Transferidos"},
		},
		InsertItems: []repository.ItemRow{
			{ID: "item-2", CategoryID: "cat-2", Name: "Corda", Qty: 2, Type: repository.ItemTypePlain,
				Metadata: repository.ItemMetadata{Description: "10m"}},
		},
		MoveItems:        []repository.ItemMove{{ItemID: "item-1", CategoryID: "cat-2", Position: 1}},
		DeleteCategories: []string{"cat-1"},
		MoneyUpdates:     []repository.MoneyUpdate{{InventoryID: "inv-senshi", Money: 250}},
		MetaUpdates:      []repository.MetaUpdate{{InventoryID: "inv-senshi", Meta: domain.Meta{Status: "ferido"}}},
		StandAssignments: []repository.StandAssignment{{StandID: "stand1", WeaponIDs: []string{"w-ak", "w-glock"}}},
	}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repository.ApplyChangeset(ctx, tx, cs))
	require.NoError(t, tx.Commit(ctx))

	rows, err := store.LoadAll(ctx)
	require.NoError(t, err)

	require.Len(t, rows.Categories, 1)
	assert.Equal(t, "cat-2", rows.Categories[0].ID)
	require.Len(t, rows.Items, 2)
	for _, it := range rows.Items {
		assert.Equal(t, "cat-2", it.CategoryID)
	}
	assert.Equal(t, 250, rows.Inventories[1].Money)
	assert.Equal(t, "ferido", rows.Inventories[1].Status)
	require.Len(t, rows.StandWeapons, 2)
	assert.Equal(t, "w-ak", rows.StandWeapons[0].WeaponID)
}

func TestStashStore_RollbackOnMissingRow(t *testing.T) {
	pool := setupTestDB(t)
	store := NewStashStore(pool)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleRows()))

	cs := repository.Changeset{
		MoneyUpdates: []repository.MoneyUpdate{{InventoryID: "inv-senshi", Money: 1}},
		DeleteItems:  []string{"item-missing"},
	}

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	err = repository.ApplyChangeset(ctx, tx, cs)
	require.ErrorIs(t, err, ErrRowNotFound)
	require.NoError(t, tx.Rollback(ctx))

	rows, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 500, rows.Inventories[1].Money)
}

func TestListener_ForwardsNotifications(t *testing.T) {
	pool := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tables := make(chan string, 16)
	listener := NewListener(pool, func(table string) { tables <- table })
	done := make(chan struct{})
	go func() {
		listener.Run(ctx)
		close(done)
	}()

	// LISTEN is issued asynchronously; keep writing until a notification arrives
	deadline := time.After(5 * time.Second)
	for {
		_, err := pool.Exec(ctx, `INSERT INTO users (id, name, role) VALUES (gen_random_uuid()::text, 'x', 'player')`)
		require.NoError(t, err)
		select {
		case table := <-tables:
			assert.Equal(t, "users", table)
			cancel()
			<-done
			return
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("no notification received")
		}
	}
}
