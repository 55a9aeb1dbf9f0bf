package inventory

import (
	"github.com/osse101/Stashkeeper_Go/internal/domain"
)

func senshiInventory() domain.Inventory {
	return domain.Inventory{
		ID:      "senshi",
		Name:    "Senshi",
		OwnerID: "senshi",
		Type:    domain.InventoryCharacter,
		Money:   5000,
		FixedCategories: []domain.FixedCategory{
			{ID: "f-status", Name: "Status"},
			{ID: "f-mochila", Name: "Mochila"},
			{ID: "f-dinheiro", Name: "Dinheiro"},
			{ID: "f-notas", Name: "Anotações"},
		},
		Custom: map[string][]domain.CustomCategory{
			"f-mochila": {
				{ID: "c1", Name: "Chaves", Items: []domain.Item{{ID: "i1", Name: "Corda", Qty: 1}}},
				{ID: "c2", Name: "Armas", Items: []domain.Item{}},
			},
		},
	}
}

func donInventory() domain.Inventory {
	return domain.Inventory{
		ID:      "don",
		Name:    "Don",
		OwnerID: "don",
		Type:    domain.InventoryCharacter,
		Money:   3000,
		FixedCategories: []domain.FixedCategory{
			{ID: "d-status", Name: "Status"},
			{ID: "d-maleta", Name: "Maleta"},
			{ID: "d-dinheiro", Name: "Dinheiro"},
			{ID: "d-caderno", Name: "Caderno"},
		},
		Custom: map[string][]domain.CustomCategory{},
	}
}

func carInventory() domain.Inventory {
	return domain.Inventory{
		ID:   "carro",
		Name: "Carro",
		Type: domain.InventoryVehicle,
		FixedCategories: []domain.FixedCategory{
			{ID: "v-luvas", Name: "Porta-luvas"},
			{ID: "v-banco", Name: "Banco de trás"},
			{ID: "v-malas", Name: "Porta-malas"},
		},
		Custom: map[string][]domain.CustomCategory{},
	}
}

func pistol() *domain.WeaponMetadata {
	return &domain.WeaponMetadata{WeaponID: "w1", MagCurrent: 5, MagCapacity: 15, AmmoType: "9mm", Damage: 3}
}
