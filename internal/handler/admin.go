package handler

import (
	"net/http"

	"github.com/osse101/Stashkeeper_Go/internal/state"
)

// HandleAdminReload re-reads state from the store (game master only).
// A failed reload keeps the last good state.
// @Summary Reload state from store
// @Tags admin
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} DataResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/reload [post]
func HandleAdminReload(svc state.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.AdminReload(r.Context(), actorID(r)); err != nil {
			respondServiceError(w, r, "Admin reload", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgReloaded, Version: svc.Version(), Data: nil})
	}
}
