package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/middleware"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/service"
	"github.com/splitsphere/backend/internal/util"
)

// SettlementHandler handles settlement requests.
type SettlementHandler struct {
	settlements *service.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlements *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

// CreateSettlementRequest is the request body for recording a settlement.
// The authenticated caller is the payer.
type CreateSettlementRequest struct {
	GroupID     string          `json:"groupId"`
	PayeeUserID string          `json:"payeeUserId"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
}

// SettlementResponse is the JSON shape of a settlement.
type SettlementResponse struct {
	ID          string          `json:"id"`
	GroupID     string          `json:"groupId"`
	PayerUserID string          `json:"payerUserId"`
	PayeeUserID string          `json:"payeeUserId"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   int64           `json:"createdAt"`
}

func toSettlementResponse(s *models.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:          s.ID,
		GroupID:     s.GroupID,
		PayerUserID: s.PayerID,
		PayeeUserID: s.PayeeID,
		Amount:      s.Amount,
		Note:        s.Note,
		CreatedAt:   s.CreatedAt,
	}
}

// Create handles POST /api/settlements.
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.GroupID == "" || req.PayeeUserID == "" {
		respondWithError(w, util.ErrInvalidInput)
		return
	}

	settlement, err := h.settlements.CreateSettlement(
		r.Context(),
		req.GroupID,
		middleware.GetUserID(r.Context()),
		req.PayeeUserID,
		req.Amount,
		req.Note,
	)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toSettlementResponse(settlement))
}

// ListByGroup handles GET /api/settlements/group/{groupID}.
func (h *SettlementHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	settlements, err := h.settlements.ListGroupSettlements(r.Context(), groupID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	responses := make([]SettlementResponse, len(settlements))
	for i, s := range settlements {
		responses[i] = toSettlementResponse(s)
	}
	respondWithJSON(w, http.StatusOK, responses)
}
