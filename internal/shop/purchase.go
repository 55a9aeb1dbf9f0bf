package shop

import (
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// PurchaseResult reports what a purchase produced
type PurchaseResult struct {
	Price           int    `json:"price"`
	Balance         int    `json:"balance"`
	FixedID         string `json:"fixed_id"`
	CategoryID      string `json:"category_id"`
	ItemID          string `json:"item_id"`
	CreatedCategory bool   `json:"created_category"`
}

// Purchase debits the buyer, takes the weapon off the stand and gives the buyer
// a fully loaded weapon item. Either all three happen or none.
func Purchase(shop domain.Shop, catalog map[string]domain.Weapon, standID, weaponID string, buyer domain.Inventory, newID utils.IDGenerator) (domain.Shop, domain.Inventory, PurchaseResult, error) {
	idx := shop.StandIndex(standID)
	if idx < 0 {
		return shop, buyer, PurchaseResult{}, fmt.Errorf("%w: stand %s", domain.ErrNotFound, standID)
	}
	if !shop.Stands[idx].Has(weaponID) {
		return shop, buyer, PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrNotFound, ErrMsgWeaponNotOnStand)
	}
	weapon, ok := catalog[weaponID]
	if !ok {
		return shop, buyer, PurchaseResult{}, fmt.Errorf("%w: weapon %s", domain.ErrNotFound, weaponID)
	}
	if buyer.Money < weapon.Price {
		return shop, buyer, PurchaseResult{}, fmt.Errorf("%w: "+ErrMsgPriceFmt, domain.ErrInsufficientFunds, weapon.Price, buyer.Money)
	}
	bucket, ok := inventory.ResolveReceivingBucket(buyer)
	if !ok {
		return shop, buyer, PurchaseResult{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNoReceivingBucket)
	}

	nextBuyer := buyer.Clone()
	nextBuyer.Money -= weapon.Price

	cats := nextBuyer.Custom[bucket.ID]
	catIdx := inventory.ResolveWeaponCategory(cats)
	result := PurchaseResult{Price: weapon.Price, Balance: nextBuyer.Money, FixedID: bucket.ID}
	if catIdx < 0 {
		cats = append(cats, domain.CustomCategory{ID: newID(), Name: domain.WeaponCategoryName, Items: []domain.Item{}})
		catIdx = len(cats) - 1
		result.CreatedCategory = true
	}
	item := domain.Item{ID: newID(), Name: weapon.Name, Qty: 1, Weapon: weapon.Snapshot()}
	cats[catIdx].Items = append(cats[catIdx].Items, item)
	nextBuyer.Custom[bucket.ID] = cats
	result.CategoryID = cats[catIdx].ID
	result.ItemID = item.ID

	nextShop := shop.Clone()
	nextShop.Stands[idx].WeaponIDs = without(nextShop.Stands[idx].WeaponIDs, weaponID)

	return nextShop, nextBuyer, result, nil
}
