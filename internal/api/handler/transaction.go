package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitsphere/backend/internal/service"
)

// TransactionHandler serves the merged activity feed of a group.
type TransactionHandler struct {
	transactions *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// ListByGroup handles GET /api/transactions/group/{groupID}.
func (h *TransactionHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	transactions, err := h.transactions.GetGroupTransactions(r.Context(), groupID)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, transactions)
}
