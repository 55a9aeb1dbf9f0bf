package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// URL parameter names
const (
	ParamInventoryID = "inventoryID"
	ParamIndex       = "index"
	ParamCategoryID  = "categoryID"
	ParamItemID      = "itemID"
	ParamWeaponID    = "weaponID"
	ParamStandID     = "standID"
)

// HandleListUsers lists users for the login picker
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Router /api/v1/users [get]
func HandleListUsers(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.ListUsers(r.Context()))
	}
}

// HandleListInventories lists the inventories the acting user may see, sorted by name
// @Summary List visible inventories
// @Tags inventory
// @Produce json
// @Param X-User-ID header string false "Acting user"
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/inventories [get]
func HandleListInventories(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invs, err := svc.ListInventories(r.Context(), actorID(r))
		if err != nil {
			respondServiceError(w, r, "List inventories", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Version: svc.Version(), Data: invs})
	}
}

// HandleGetInventory returns one inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param X-User-ID header string false "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Success 200 {object} DataResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID} [get]
func HandleGetInventory(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inv, err := svc.GetInventory(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID))
		if err != nil {
			respondServiceError(w, r, "Get inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Version: svc.Version(), Data: inv})
	}
}

// NameRequest renames a category
type NameRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

// HandleRenameFixedCategory renames a top-level bucket. Its sub-categories stay attached.
// @Summary Rename fixed category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param index path int true "Bucket position"
// @Param request body NameRequest true "New name"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/fixed-categories/{index} [put]
func HandleRenameFixedCategory(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := GetIntPathParam(r, w, ParamIndex)
		if !ok {
			return
		}
		var req NameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename fixed category"); err != nil {
			return
		}

		res, err := svc.RenameFixedCategory(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), index, req.Name)
		if err != nil {
			respondServiceError(w, r, "Rename fixed category", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// CreateCategoryRequest creates a custom category under a bucket
type CreateCategoryRequest struct {
	FixedID string `json:"fixed_id" validate:"required"`
	Name    string `json:"name" validate:"required,notblank,max=100"`
}

// HandleCreateCustomCategory creates a custom category
// @Summary Create custom category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param request body CreateCategoryRequest true "Category"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/categories [post]
func HandleCreateCustomCategory(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCategoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create category"); err != nil {
			return
		}

		res, err := svc.CreateCustomCategory(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), req.FixedID, req.Name)
		if err != nil {
			respondServiceError(w, r, "Create category", err)
			return
		}
		respondResult(w, http.StatusCreated, res)
	}
}

// HandleRenameCustomCategory renames a custom category
// @Summary Rename custom category
// @Tags categories
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param categoryID path string true "Category id"
// @Param request body NameRequest true "New name"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/categories/{categoryID} [patch]
func HandleRenameCustomCategory(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename category"); err != nil {
			return
		}

		res, err := svc.RenameCustomCategory(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamCategoryID), req.Name)
		if err != nil {
			respondServiceError(w, r, "Rename category", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleDeleteCustomCategory deletes a custom category and every item in it.
// The caller must pass confirm=true.
// @Summary Delete custom category
// @Tags categories
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param categoryID path string true "Category id"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/categories/{categoryID} [delete]
func HandleDeleteCustomCategory(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirm, ok := GetConfirmParam(r, w)
		if !ok {
			return
		}

		res, err := svc.DeleteCustomCategory(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamCategoryID), confirm)
		if err != nil {
			respondServiceError(w, r, "Delete category", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// CreateItemRequest creates an item. A non-positive qty becomes 1.
type CreateItemRequest struct {
	FixedID string `json:"fixed_id" validate:"required"`
	Name    string `json:"name" validate:"required,notblank,max=100"`
	Qty     int    `json:"qty"`
	Desc    string `json:"desc" validate:"max=1000"`
}

// HandleCreateItem creates an item in a custom category
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param categoryID path string true "Category id"
// @Param request body CreateItemRequest true "Item"
// @Success 201 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/categories/{categoryID}/items [post]
func HandleCreateItem(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		in := domain.NewItem{Name: req.Name, Qty: req.Qty, Desc: req.Desc}
		res, err := svc.CreateItem(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), req.FixedID, chi.URLParam(r, ParamCategoryID), in)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}
		respondResult(w, http.StatusCreated, res)
	}
}

// HandleEditItem patches an item. Weapon fields are only accepted on weapon items.
// @Summary Edit item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param itemID path string true "Item id"
// @Param request body domain.ItemPatch true "Fields to change"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/items/{itemID} [patch]
func HandleEditItem(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.ItemPatch
		if err := DecodeAndValidateRequest(r, w, &patch, "Edit item"); err != nil {
			return
		}

		res, err := svc.EditItem(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamItemID), patch)
		if err != nil {
			respondServiceError(w, r, "Edit item", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleDeleteItem deletes an item
// @Summary Delete item
// @Tags items
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param categoryID path string true "Category id"
// @Param itemID path string true "Item id"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/categories/{categoryID}/items/{itemID} [delete]
func HandleDeleteItem(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.DeleteItem(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamCategoryID), chi.URLParam(r, ParamItemID))
		if err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// MoveItemRequest moves an item between categories of one inventory
type MoveItemRequest struct {
	FromCategoryID string `json:"from_category_id" validate:"required"`
	ToCategoryID   string `json:"to_category_id" validate:"required"`
}

// HandleMoveItem moves an item inside an inventory
// @Summary Move item
// @Tags items
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param itemID path string true "Item id"
// @Param request body MoveItemRequest true "Source and destination categories"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/items/{itemID}/move [post]
func HandleMoveItem(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Move item"); err != nil {
			return
		}

		res, err := svc.MoveItem(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), req.FromCategoryID, req.ToCategoryID, chi.URLParam(r, ParamItemID))
		if err != nil {
			respondServiceError(w, r, "Move item", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// MoneyRequest sets an inventory's money
type MoneyRequest struct {
	Amount *int `json:"amount" validate:"required,min=0"`
}

// HandleSetMoney sets an inventory's money
// @Summary Set money
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param request body MoneyRequest true "New amount"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/money [put]
func HandleSetMoney(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MoneyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set money"); err != nil {
			return
		}

		res, err := svc.SetMoney(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), *req.Amount)
		if err != nil {
			respondServiceError(w, r, "Set money", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// MetaRequest replaces the status and notes of an inventory
type MetaRequest struct {
	Status string `json:"status" validate:"max=1000"`
	Notes  string `json:"notes" validate:"max=10000"`
}

// HandleSetMeta replaces the status and notes of an inventory
// @Summary Set status and notes
// @Tags inventory
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param request body MetaRequest true "Status and notes"
// @Success 200 {object} DataResponse
// @Router /api/v1/inventories/{inventoryID}/meta [put]
func HandleSetMeta(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MetaRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set meta"); err != nil {
			return
		}

		res, err := svc.SetMeta(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), domain.Meta{Status: req.Status, Notes: req.Notes})
		if err != nil {
			respondServiceError(w, r, "Set meta", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleShoot fires one round from a weapon item
// @Summary Shoot
// @Tags weapons
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param itemID path string true "Weapon item id"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/items/{itemID}/shoot [post]
func HandleShoot(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Shoot(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamItemID))
		if err != nil {
			respondServiceError(w, r, "Shoot", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleReloadWeapon refills a weapon item's magazine
// @Summary Reload weapon
// @Tags weapons
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param inventoryID path string true "Inventory id"
// @Param itemID path string true "Weapon item id"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/inventories/{inventoryID}/items/{itemID}/reload [post]
func HandleReloadWeapon(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ReloadWeapon(r.Context(), actorID(r), chi.URLParam(r, ParamInventoryID), chi.URLParam(r, ParamItemID))
		if err != nil {
			respondServiceError(w, r, "Reload weapon", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}
