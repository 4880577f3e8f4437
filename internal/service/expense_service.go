package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/calculator"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/util"
)

// ExpenseService records and lists shared expenses.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense records an expense paid by payerUserID and split equally
// among participantIDs. The payer and every participant must be group
// members; the amount must be positive; the participant set must be
// nonempty. Duplicate participant entries are collapsed (set semantics).
func (s *ExpenseService) CreateExpense(ctx context.Context, groupID, payerUserID, description string, amount decimal.Decimal, participantIDs []string) (*models.Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", util.ErrInvalidAmount, amount)
	}

	group, err := loadGroup(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(payerUserID) {
		return nil, fmt.Errorf("%w: payer %s in group %s", util.ErrNotMember, payerUserID, groupID)
	}

	participants := dedupe(participantIDs)
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", util.ErrInvalidInput)
	}
	for _, p := range participants {
		if !group.HasMember(p) {
			return nil, fmt.Errorf("%w: participant %s in group %s", util.ErrNotMember, p, groupID)
		}
	}

	expense := &models.Expense{
		GroupID:        groupID,
		Description:    description,
		Amount:         amount,
		PayerID:        payerUserID,
		ParticipantIDs: participants,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", groupID,
		"payer_id", payerUserID,
		"amount", amount.String(),
		"participants", len(participants),
	)

	return expense, nil
}

// ListGroupExpenses retrieves a group's expenses, newest first.
func (s *ExpenseService) ListGroupExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := loadGroup(ctx, s.store, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// PerPersonAmount returns each participant's equal share of the expense.
func PerPersonAmount(e *models.Expense) decimal.Decimal {
	if len(e.ParticipantIDs) == 0 {
		return decimal.Zero
	}
	return calculator.Share(e.Amount, len(e.ParticipantIDs))
}

// dedupe returns the unique values of ids, sorted for determinism.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var unique []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	sort.Strings(unique)
	return unique
}
