package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitsphere/backend/internal/middleware"
	"github.com/splitsphere/backend/internal/service"
)

// BalanceHandler handles balance queries.
type BalanceHandler struct {
	balances *service.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balances *service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances}
}

// GetGroupBalances handles GET /api/balances/group/{groupID}. The
// authenticated caller is the reference user.
func (h *BalanceHandler) GetGroupBalances(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	entries, err := h.balances.GetGroupBalances(r.Context(), groupID, middleware.GetUserID(r.Context()))
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}
