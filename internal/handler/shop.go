package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Stashkeeper_Go/internal/domain"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/media"
	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// HandleGetShop returns the shop stands
// @Summary Get shop
// @Tags shop
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/shop [get]
func HandleGetShop(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Version: svc.Version(), Data: svc.GetShop(r.Context())})
	}
}

// HandleListWeapons returns the weapon catalog sorted by name
// @Summary List weapons
// @Tags shop
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/weapons [get]
func HandleListWeapons(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Version: svc.Version(), Data: svc.ListWeapons(r.Context())})
	}
}

// ImageUpload is a base64 image, optionally a data URL
type ImageUpload struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	Data     string `json:"data" validate:"required"`
}

// CreateWeaponRequest adds a weapon to the catalog. Omitted stats take defaults.
type CreateWeaponRequest struct {
	domain.WeaponForm
	Image *ImageUpload `json:"image,omitempty"`
}

// HandleCreateWeapon adds a weapon to the catalog (game master only)
// @Summary Create weapon
// @Tags shop
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body CreateWeaponRequest true "Weapon"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/weapons [post]
func HandleCreateWeapon(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWeaponRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create weapon"); err != nil {
			return
		}

		var image *media.Upload
		if req.Image != nil {
			up, err := media.DecodeUpload(req.Image.FileName, req.Image.Data)
			if err != nil {
				logger.FromContext(r.Context()).Warn("Rejected weapon image", "error", err)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidImage)
				return
			}
			image = &up
		}

		res, err := svc.CreateWeapon(r.Context(), actorID(r), req.NewWeapon(), image)
		if err != nil {
			respondServiceError(w, r, "Create weapon", err)
			return
		}
		respondResult(w, http.StatusCreated, res)
	}
}

// HandleDeleteWeapon removes a weapon from the catalog and from every stand.
// The caller must pass confirm=true.
// @Summary Delete weapon
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param weaponID path string true "Weapon id"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/weapons/{weaponID} [delete]
func HandleDeleteWeapon(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		confirm, ok := GetConfirmParam(r, w)
		if !ok {
			return
		}

		res, err := svc.DeleteWeapon(r.Context(), actorID(r), chi.URLParam(r, ParamWeaponID), confirm)
		if err != nil {
			respondServiceError(w, r, "Delete weapon", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// StandWeaponRequest names a catalog weapon
type StandWeaponRequest struct {
	WeaponID string `json:"weapon_id" validate:"required"`
}

// HandleAddWeaponToStand places a catalog weapon on a stand
// @Summary Add weapon to stand
// @Tags shop
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param standID path string true "Stand id"
// @Param request body StandWeaponRequest true "Weapon"
// @Success 200 {object} DataResponse
// @Router /api/v1/shop/stands/{standID}/weapons [post]
func HandleAddWeaponToStand(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StandWeaponRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add weapon to stand"); err != nil {
			return
		}

		res, err := svc.AddWeaponToStand(r.Context(), actorID(r), chi.URLParam(r, ParamStandID), req.WeaponID)
		if err != nil {
			respondServiceError(w, r, "Add weapon to stand", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleRemoveWeaponFromStand takes a weapon off a stand
// @Summary Remove weapon from stand
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param standID path string true "Stand id"
// @Param weaponID path string true "Weapon id"
// @Success 200 {object} DataResponse
// @Router /api/v1/shop/stands/{standID}/weapons/{weaponID} [delete]
func HandleRemoveWeaponFromStand(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.RemoveWeaponFromStand(r.Context(), actorID(r), chi.URLParam(r, ParamStandID), chi.URLParam(r, ParamWeaponID))
		if err != nil {
			respondServiceError(w, r, "Remove weapon from stand", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// HandleRandomizeStand refills a stand with random catalog weapons
// @Summary Randomize stand
// @Tags shop
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param standID path string true "Stand id"
// @Success 200 {object} DataResponse
// @Router /api/v1/shop/stands/{standID}/randomize [post]
func HandleRandomizeStand(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.RandomizeStand(r.Context(), actorID(r), chi.URLParam(r, ParamStandID))
		if err != nil {
			respondServiceError(w, r, "Randomize stand", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}

// PurchaseRequest buys a stand weapon into an inventory
type PurchaseRequest struct {
	WeaponID string `json:"weapon_id" validate:"required"`
	BuyerID  string `json:"buyer_id" validate:"required"`
}

// HandlePurchase buys a weapon from a stand. The price is debited from the buyer
// and a loaded weapon item is added to its Armas bucket.
// @Summary Purchase weapon
// @Tags shop
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param standID path string true "Stand id"
// @Param request body PurchaseRequest true "Weapon and buyer"
// @Success 200 {object} DataResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/shop/stands/{standID}/purchase [post]
func HandlePurchase(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase"); err != nil {
			return
		}

		res, err := svc.Purchase(r.Context(), actorID(r), chi.URLParam(r, ParamStandID), req.WeaponID, req.BuyerID)
		if err != nil {
			respondServiceError(w, r, "Purchase", err)
			return
		}
		respondResult(w, http.StatusOK, res)
	}
}
