package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
)

// Transaction types in the merged group feed.
const (
	TransactionExpense    = "EXPENSE"
	TransactionSettlement = "SETTLEMENT"
)

// Transaction is one entry in a group's merged history of expenses and
// settlements.
type Transaction struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	PayerUserID      string          `json:"payerUserId"`
	PayerName        string          `json:"payerName"`
	PayeeUserID      string          `json:"payeeUserId,omitempty"`
	PayeeName        string          `json:"payeeName,omitempty"`
	ParticipantNames string          `json:"participantNames,omitempty"`
	PerPersonAmount  decimal.Decimal `json:"perPersonAmount"`
	Note             string          `json:"note,omitempty"`
	CreatedAt        int64           `json:"createdAt"`
}

// TransactionService builds the merged, newest-first activity feed for a
// group.
type TransactionService struct {
	store storage.Store
}

// NewTransactionService creates a new TransactionService with the given
// storage backend.
func NewTransactionService(store storage.Store) *TransactionService {
	return &TransactionService{store: store}
}

// GetGroupTransactions merges a group's expenses and settlements into a
// single list sorted by creation time, newest first.
func (s *TransactionService) GetGroupTransactions(ctx context.Context, groupID string) ([]Transaction, error) {
	if _, err := loadGroup(ctx, s.store, groupID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	names, err := s.loadNames(ctx, expenses, settlements)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(expenses)+len(settlements))
	for _, e := range expenses {
		participantNames := make([]string, len(e.ParticipantIDs))
		for i, id := range e.ParticipantIDs {
			participantNames[i] = names[id]
		}
		transactions = append(transactions, Transaction{
			ID:               e.ID,
			Type:             TransactionExpense,
			Description:      e.Description,
			Amount:           e.Amount,
			PayerUserID:      e.PayerID,
			PayerName:        names[e.PayerID],
			ParticipantNames: strings.Join(participantNames, ", "),
			PerPersonAmount:  PerPersonAmount(e),
			CreatedAt:        e.CreatedAt,
		})
	}
	for _, st := range settlements {
		transactions = append(transactions, Transaction{
			ID:          st.ID,
			Type:        TransactionSettlement,
			Description: fmt.Sprintf("Payment from %s to %s", names[st.PayerID], names[st.PayeeID]),
			Amount:      st.Amount,
			PayerUserID: st.PayerID,
			PayerName:   names[st.PayerID],
			PayeeUserID: st.PayeeID,
			PayeeName:   names[st.PayeeID],
			Note:        st.Note,
			CreatedAt:   st.CreatedAt,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].CreatedAt > transactions[j].CreatedAt
	})

	return transactions, nil
}

// loadNames resolves the account name of every user referenced by the feed.
func (s *TransactionService) loadNames(ctx context.Context, expenses []*models.Expense, settlements []*models.Settlement) (map[string]string, error) {
	idSet := make(map[string]bool)
	for _, e := range expenses {
		idSet[e.PayerID] = true
		for _, p := range e.ParticipantIDs {
			idSet[p] = true
		}
	}
	for _, st := range settlements {
		idSet[st.PayerID] = true
		idSet[st.PayeeID] = true
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.store.GetUsersByUserIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	names := make(map[string]string, len(users))
	for id, user := range users {
		names[id] = user.AccountName
	}
	return names, nil
}
