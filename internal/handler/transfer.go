package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stashkeeper_Go/internal/inventory"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// TransferRequest moves a quantity of an item into another inventory
type TransferRequest struct {
	TargetID   string `json:"target_id" validate:"required"`
	FixedID    string `json:"fixed_id" validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=1"`
}

// HandleTransferItem moves a quantity of an item from one inventory to another.
// The item lands in the target's matching fixed and custom category, which are
// created when missing, and merges into an item of the same name.
// @Summary Transfer item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Source inventory id"
// @Param itemID path string true "Item id"
// @Param request body TransferRequest true "Target and quantity"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/items/{itemID}/transfer [post]
func HandleTransferItem(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TransferRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Transfer item"); err != nil {
			return
		}

		sourceID := chi.URLParam(r, ParamInventoryID)
		if req.TargetID == sourceID {
			respondError(w, http.StatusBadRequest, ErrMsgSameInventory)
			return
		}

		move := inventory.TransferRequest{
			FixedID:    req.FixedID,
			CategoryID: req.CategoryID,
			ItemID:     chi.URLParam(r, ParamItemID),
			Quantity:   req.Quantity,
		}
		res, err := svc.TransferItem(r.Context(), actorID(r), sourceID, move, req.TargetID)
		if err != nil {
			respondServiceError(w, r, "Transfer item", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}
