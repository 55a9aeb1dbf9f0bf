package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

func withArmas(inv domain.Inventory, items ...domain.Item) domain.Inventory {
	inv.Custom["f-mochila"][1].Items = items
	return inv
}

func TestTransfer_ClampsToAvailable(t *testing.T) {
	src := withArmas(senshiInventory(), domain.Item{ID: "i1x", Name: "Granada", Qty: 3})
	tgt := donInventory()

	nextSrc, nextTgt, res, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: "i1x", Quantity: 5}, tgt, utils.SequenceIDs("n"))
	require.NoError(t, err)

	assert.Equal(t, 3, res.Moved)
	assert.True(t, res.SourceRemoved)
	assert.Empty(t, nextSrc.Custom["f-mochila"][1].Items)

	// Maleta is empty, so a category named after the source is not found and one is created.
	assert.Equal(t, "d-maleta", res.DestFixedID)
	assert.True(t, res.CreatedCategory)
	cats := nextTgt.Custom["d-maleta"]
	require.Len(t, cats, 1)
	assert.Equal(t, domain.TransferCategoryName, cats[0].Name)
	require.Len(t, cats[0].Items, 1)
	assert.Equal(t, 3, cats[0].Items[0].Qty)
	assert.NotEqual(t, "i1x", cats[0].Items[0].ID, "clone gets a fresh id")

	assert.Len(t, src.Custom["f-mochila"][1].Items, 1, "inputs untouched")
	assert.Empty(t, tgt.Custom["d-maleta"])
}

func TestTransfer_ConservesQuantity(t *testing.T) {
	for _, qty := range []int{1, 2, 6, 7, 50} {
		src := withArmas(senshiInventory(), domain.Item{ID: "m", Name: "Munição", Qty: 7})
		tgt := donInventory()
		before := src.TotalQty() + tgt.TotalQty()

		nextSrc, nextTgt, res, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: "m", Quantity: qty}, tgt, utils.SequenceIDs("n"))
		require.NoError(t, err)

		assert.Equal(t, min(qty, 7), res.Moved)
		assert.Equal(t, before, nextSrc.TotalQty()+nextTgt.TotalQty())
		ref, found := nextSrc.FindItem("m")
		if qty >= 7 {
			assert.False(t, found)
		} else {
			require.True(t, found)
			assert.Equal(t, 7-qty, nextSrc.Item(ref).Qty)
		}
	}
}

func TestTransfer_DestinationCategoryPriority(t *testing.T) {
	moving := domain.Item{ID: "x", Name: "Faca", Qty: 1}

	tests := []struct {
		name     string
		cats     []domain.CustomCategory
		wantName string
	}{
		{
			name:     "same name wins",
			cats:     []domain.CustomCategory{{ID: "a", Name: "Outros"}, {ID: "b", Name: "Transferências"}, {ID: "c", Name: "Armas"}},
			wantName: "Armas",
		},
		{
			name:     "transfer keyword second",
			cats:     []domain.CustomCategory{{ID: "a", Name: "Outros"}, {ID: "b", Name: "TRANSFERIDOS"}},
			wantName: "TRANSFERIDOS",
		},
		{
			name:     "first category third",
			cats:     []domain.CustomCategory{{ID: "a", Name: "Outros"}, {ID: "b", Name: "Mais"}},
			wantName: "Outros",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := donInventory()
			tgt.Custom["d-maleta"] = tt.cats
			src := withArmas(senshiInventory(), moving)

			_, nextTgt, res, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: "x", Quantity: 1}, tgt, utils.SequenceIDs("n"))
			require.NoError(t, err)
			assert.False(t, res.CreatedCategory)
			ref, ok := nextTgt.FindCategory(res.DestCategoryID)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, nextTgt.Category(ref).Name)
		})
	}
}

func TestTransfer_MergeRules(t *testing.T) {
	tests := []struct {
		name       string
		existing   domain.Item
		moving     domain.Item
		wantMerged bool
	}{
		{
			name:       "plain items with same name merge",
			existing:   domain.Item{ID: "e", Name: "Bala", Qty: 2},
			moving:     domain.Item{ID: "m", Name: "Bala", Qty: 3},
			wantMerged: true,
		},
		{
			name:       "same weapon id merges",
			existing:   domain.Item{ID: "e", Name: "Glock", Qty: 1, Weapon: pistol()},
			moving:     domain.Item{ID: "m", Name: "Glock", Qty: 1, Weapon: pistol()},
			wantMerged: true,
		},
		{
			name:       "different weapon id does not merge",
			existing:   domain.Item{ID: "e", Name: "Glock", Qty: 1, Weapon: &domain.WeaponMetadata{WeaponID: "w2"}},
			moving:     domain.Item{ID: "m", Name: "Glock", Qty: 1, Weapon: pistol()},
			wantMerged: false,
		},
		{
			name:       "weapon and plain with same name do not merge",
			existing:   domain.Item{ID: "e", Name: "Glock", Qty: 1},
			moving:     domain.Item{ID: "m", Name: "Glock", Qty: 1, Weapon: pistol()},
			wantMerged: false,
		},
		{
			name:       "different names do not merge",
			existing:   domain.Item{ID: "e", Name: "Corda", Qty: 1},
			moving:     domain.Item{ID: "m", Name: "Bala", Qty: 1},
			wantMerged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := donInventory()
			tgt.Custom["d-maleta"] = []domain.CustomCategory{{ID: "armas-don", Name: "Armas", Items: []domain.Item{tt.existing}}}
			src := withArmas(senshiInventory(), tt.moving)

			_, nextTgt, res, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: "m", Quantity: tt.moving.Qty}, tgt, utils.SequenceIDs("n"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMerged, res.Merged)

			items := nextTgt.Custom["d-maleta"][0].Items
			if tt.wantMerged {
				require.Len(t, items, 1)
				assert.Equal(t, tt.existing.Qty+tt.moving.Qty, items[0].Qty)
				assert.Equal(t, "e", res.DestItemID)
			} else {
				require.Len(t, items, 2)
				assert.Equal(t, tt.moving.WeaponID(), items[1].WeaponID())
			}
		})
	}
}

func TestTransfer_PartialKeepsSourceAndClonesSnapshot(t *testing.T) {
	src := withArmas(senshiInventory(), domain.Item{ID: "g", Name: "Glock", Qty: 2, Weapon: pistol()})
	tgt := carInventory()

	nextSrc, nextTgt, res, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: "g", Quantity: 1}, tgt, utils.SequenceIDs("n"))
	require.NoError(t, err)
	assert.False(t, res.SourceRemoved)
	assert.Equal(t, 1, nextSrc.Custom["f-mochila"][1].Items[0].Qty)

	// The vehicle has no backpack or case, so the first bucket receives the item.
	assert.Equal(t, "v-luvas", res.DestFixedID)
	moved := nextTgt.Custom["v-luvas"][0].Items[0]
	require.NotNil(t, moved.Weapon)
	assert.Equal(t, *pistol(), *moved.Weapon)

	moved.Weapon.MagCurrent = 0
	assert.Equal(t, 5, nextSrc.Custom["f-mochila"][1].Items[0].Weapon.MagCurrent, "snapshots are not shared")
}

func TestTransfer_Rejections(t *testing.T) {
	src := senshiInventory()
	ids := utils.SequenceIDs("n")

	_, _, _, err := Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c1", ItemID: "i1", Quantity: 0}, donInventory(), ids)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, _, err = Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c1", ItemID: "i1", Quantity: 1}, src, ids)
	assert.ErrorIs(t, err, domain.ErrValidation)

	empty := donInventory()
	empty.FixedCategories = nil
	_, _, _, err = Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c1", ItemID: "i1", Quantity: 1}, empty, ids)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, _, err = Transfer(src, TransferRequest{FixedID: "f-status", CategoryID: "c1", ItemID: "i1", Quantity: 1}, donInventory(), ids)
	assert.ErrorIs(t, err, domain.ErrNotFound, "only the selected bucket is searched")

	_, _, _, err = Transfer(src, TransferRequest{FixedID: "f-mochila", CategoryID: "c1", ItemID: "ghost", Quantity: 1}, donInventory(), ids)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func BenchmarkTransfer(b *testing.B) {
	src := senshiInventory()
	items := make([]domain.Item, 0, 200)
	for i := 0; i < 200; i++ {
		items = append(items, domain.Item{ID: "b" + string(rune('a'+i%26)) + string(rune('a'+i/26)), Name: "Item", Qty: 10})
	}
	src = withArmas(src, items...)
	tgt := donInventory()
	ids := utils.SequenceIDs("bench")
	req := TransferRequest{FixedID: "f-mochila", CategoryID: "c2", ItemID: items[150].ID, Quantity: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := Transfer(src, req, tgt, ids); err != nil {
			b.Fatal(err)
		}
	}
}
