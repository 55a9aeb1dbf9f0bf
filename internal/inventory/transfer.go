package inventory

import (
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/utils"
)

// TransferRequest names the source item and how much of it to move
type TransferRequest struct {
	FixedID    string
	CategoryID string
	ItemID     string
	Quantity   int
}

// TransferResult reports where the moved quantity landed
type TransferResult struct {
	Moved           int    `json:"moved"`
	SourceRemoved   bool   `json:"source_removed"`
	DestFixedID     string `json:"dest_fixed_id"`
	DestCategoryID  string `json:"dest_category_id"`
	DestItemID      string `json:"dest_item_id"`
	Merged          bool   `json:"merged"`
	CreatedCategory bool   `json:"created_category"`
}

// Transfer moves up to req.Quantity of an item from src into tgt.
// The requested amount is clamped to what is available.
// Both inventories are returned as new trees.
func Transfer(src domain.Inventory, req TransferRequest, tgt domain.Inventory, newID utils.IDGenerator) (domain.Inventory, domain.Inventory, TransferResult, error) {
	if req.Quantity <= 0 {
		return src, tgt, TransferResult{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNonPositiveQty)
	}
	if src.ID == tgt.ID {
		return src, tgt, TransferResult{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgSameInventory)
	}

	// Only the bucket the caller has selected is searched.
	catRef, ok := src.FindCategoryIn(req.FixedID, req.CategoryID)
	if !ok {
		return src, tgt, TransferResult{}, fmt.Errorf("%w: category %s in %s", domain.ErrNotFound, req.CategoryID, req.FixedID)
	}
	srcCat := src.Custom[catRef.FixedID][catRef.Index]
	idx := indexOfItem(srcCat.Items, req.ItemID)
	if idx < 0 {
		return src, tgt, TransferResult{}, fmt.Errorf("%w: item %s", domain.ErrNotFound, req.ItemID)
	}

	bucket, ok := ResolveReceivingBucket(tgt)
	if !ok {
		return src, tgt, TransferResult{}, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgNoFixedBuckets)
	}

	item := srcCat.Items[idx]
	moveQty := min(req.Quantity, item.Qty)
	result := TransferResult{Moved: moveQty, DestFixedID: bucket.ID}

	nextSrc := src.Clone()
	cat := nextSrc.Category(catRef)
	if item.Qty-moveQty <= 0 {
		cat.Items = append(cat.Items[:idx:idx], cat.Items[idx+1:]...)
		result.SourceRemoved = true
	} else {
		cat.Items[idx].Qty -= moveQty
	}

	nextTgt := tgt.Clone()
	cats := nextTgt.Custom[bucket.ID]
	destIdx := ResolveTransferCategory(cats, srcCat.Name)
	if destIdx < 0 {
		cats = append(cats, domain.CustomCategory{ID: newID(), Name: domain.TransferCategoryName, Items: []domain.Item{}})
		destIdx = len(cats) - 1
		result.CreatedCategory = true
	}
	dest := &cats[destIdx]
	result.DestCategoryID = dest.ID

	merged := false
	for i := range dest.Items {
		if CanMerge(dest.Items[i], item) {
			dest.Items[i].Qty += moveQty
			result.DestItemID = dest.Items[i].ID
			merged = true
			break
		}
	}
	if !merged {
		clone := item.Clone()
		clone.ID = newID()
		clone.Qty = moveQty
		dest.Items = append(dest.Items, clone)
		result.DestItemID = clone.ID
	}
	result.Merged = merged
	nextTgt.Custom[bucket.ID] = cats

	return nextSrc, nextTgt, result, nil
}
