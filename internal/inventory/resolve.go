package inventory

import (
	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

func containsAny(name string, keywords []string) bool {
	return utils.ContainsAnyFold(name, keywords)
}

// ResolveReceivingBucket picks the fixed category that receives transferred and
// purchased items: the first one named like a backpack or case, else the first one.
func ResolveReceivingBucket(inv domain.Inventory) (domain.FixedCategory, bool) {
	if len(inv.FixedCategories) == 0 {
		return domain.FixedCategory{}, false
	}
	for _, fc := range inv.FixedCategories {
		if containsAny(fc.Name, domain.TransferBucketKeywords) {
			return fc, true
		}
	}
	return inv.FixedCategories[0], true
}

// ResolveTransferCategory returns the index of the category receiving a transfer
// from a category named sourceName, or -1 when a new one must be created.
func ResolveTransferCategory(cats []domain.CustomCategory, sourceName string) int {
	for i, cat := range cats {
		if cat.Name == sourceName {
			return i
		}
	}
	for i, cat := range cats {
		if containsAny(cat.Name, domain.TransferCategoryKeywords) {
			return i
		}
	}
	if len(cats) > 0 {
		return 0
	}
	return -1
}

// ResolveWeaponCategory returns the index of the category receiving a purchased
// weapon, or -1 when a new one must be created.
func ResolveWeaponCategory(cats []domain.CustomCategory) int {
	for i, cat := range cats {
		if containsAny(cat.Name, domain.WeaponCategoryKeywords) {
			return i
		}
	}
	if len(cats) > 0 {
		return 0
	}
	return -1
}

// CanMerge reports whether incoming can be folded into existing by adding quantities
func CanMerge(existing, incoming domain.Item) bool {
	return existing.Name == incoming.Name && existing.WeaponID() == incoming.WeaponID()
}
