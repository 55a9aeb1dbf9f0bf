package transfer_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/fixtures"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/normalize"
	"github.com/osse101/Stashkeeper_Go/internal/state"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// loadedInventory builds a character with many categories so lookups are not trivially short
func loadedInventory(id string, categories, items int) domain.Inventory {
	inv := domain.Inventory{
		ID:      id,
		Name:    id,
		OwnerID: id,
		Type:    domain.InventoryCharacter,
		FixedCategories: []domain.FixedCategory{
			{ID: id + "-status", Name: "Status"},
			{ID: id + "-mochila", Name: "Mochila"},
			{ID: id + "-dinheiro", Name: "Dinheiro"},
			{ID: id + "-notas", Name: "Notas"},
		},
		Custom: map[string][]domain.CustomCategory{},
	}
	bucket := id + "-mochila"
	for c := 0; c < categories; c++ {
		cat := domain.CustomCategory{ID: fmt.Sprintf("%s-c%d", id, c), Name: fmt.Sprintf("Cat %d", c)}
		for i := 0; i < items; i++ {
			cat.Items = append(cat.Items, domain.Item{ID: fmt.Sprintf("%s-c%d-i%d", id, c, i), Name: fmt.Sprintf("Item %d", i), Qty: 10})
		}
		inv.Custom[bucket] = append(inv.Custom[bucket], cat)
	}
	return inv
}

func BenchmarkTransfer_Engine(b *testing.B) {
	src := loadedInventory("a", 20, 20)
	tgt := loadedInventory("b", 20, 20)
	req := inventory.TransferRequest{FixedID: "a-mochila", CategoryID: "a-c19", ItemID: "a-c19-i19", Quantity: 1}
	newID := utils.SequenceIDs("bench")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := inventory.Transfer(src, req, tgt, newID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFlatten(b *testing.B) {
	st := domain.NewState()
	for i := 0; i < 10; i++ {
		inv := loadedInventory(fmt.Sprintf("inv%d", i), 10, 10)
		st.Inventories[inv.ID] = inv
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = normalize.Flatten(st)
	}
}

func BenchmarkService_SetMoney(b *testing.B) {
	initial, err := fixtures.Default()
	if err != nil {
		b.Fatal(err)
	}
	svc := state.NewService(state.Options{Initial: initial, Bus: event.NewMemoryBus()})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SetMoney(ctx, "gm", "senshi", i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_ParallelReads(b *testing.B) {
	initial, err := fixtures.Default()
	if err != nil {
		b.Fatal(err)
	}
	svc := state.NewService(state.Options{Initial: initial, Bus: event.NewMemoryBus()})

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = svc.Snapshot()
			_ = svc.Version()
		}
	})
}
