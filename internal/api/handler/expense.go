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

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// CreateExpenseRequest is the request body for recording an expense.
// The authenticated caller is the payer.
type CreateExpenseRequest struct {
	GroupID            string          `json:"groupId"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	ParticipantUserIDs []string        `json:"participantUserIds"`
}

// ExpenseResponse is the JSON shape of an expense.
type ExpenseResponse struct {
	ID                 string          `json:"id"`
	GroupID            string          `json:"groupId"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	PayerUserID        string          `json:"payerUserId"`
	ParticipantUserIDs []string        `json:"participantUserIds"`
	PerPersonAmount    decimal.Decimal `json:"perPersonAmount"`
	CreatedAt          int64           `json:"createdAt"`
}

func toExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:                 e.ID,
		GroupID:            e.GroupID,
		Description:        e.Description,
		Amount:             e.Amount,
		PayerUserID:        e.PayerID,
		ParticipantUserIDs: e.ParticipantIDs,
		PerPersonAmount:    service.PerPersonAmount(e),
		CreatedAt:          e.CreatedAt,
	}
}

// Create handles POST /api/expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.GroupID == "" {
		respondWithError(w, util.ErrInvalidInput)
		return
	}

	expense, err := h.expenses.CreateExpense(
		r.Context(),
		req.GroupID,
		middleware.GetUserID(r.Context()),
		req.Description,
		req.Amount,
		req.ParticipantUserIDs,
	)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, toExpenseResponse(expense))
}

// ListByGroup handles GET /api/expenses/group/{groupID}.
func (h *ExpenseHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	expenses, err := h.expenses.ListGroupExpenses(r.Context(), groupID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = toExpenseResponse(e)
	}
	respondWithJSON(w, http.StatusOK, responses)
}
