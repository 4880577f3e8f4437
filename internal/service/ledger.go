// Package service implements the business workflows on top of the storage
// layer and the pure balance calculator.
package service

import (
	"context"
	"fmt"

	"github.com/splitsphere/backend/internal/calculator"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/util"
)

// loadGroup fetches a group. Storage misses carry ErrNotFound; any other
// error is a real storage failure and keeps its identity.
func loadGroup(ctx context.Context, store storage.Store, groupID string) (*models.Group, error) {
	group, err := store.GetGroup(ctx, groupID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load group %s: %w", groupID, err)
	}
	return group, nil
}

// loadUser fetches a user by external ID, translating misses into
// ErrNotFound.
func loadUser(ctx context.Context, store storage.Store, userID string) (*models.User, error) {
	user, err := store.GetUserByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", util.ErrNotFound, userID)
	}
	return user, nil
}

// loadLedger loads a group's full transaction history as calculator inputs.
// Settlements keep the store's descending creation-time order.
func loadLedger(ctx context.Context, store storage.Store, groupID string) ([]calculator.Expense, []calculator.Settlement, error) {
	expenses, err := store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	settlements, err := store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settlements: %w", err)
	}

	calcExpenses := make([]calculator.Expense, len(expenses))
	for i, e := range expenses {
		calcExpenses[i] = calculator.Expense{
			PayerID:        e.PayerID,
			Amount:         e.Amount,
			ParticipantIDs: e.ParticipantIDs,
		}
	}
	calcSettlements := make([]calculator.Settlement, len(settlements))
	for i, s := range settlements {
		calcSettlements[i] = calculator.Settlement{
			PayerID: s.PayerID,
			PayeeID: s.PayeeID,
			Amount:  s.Amount,
		}
	}

	return calcExpenses, calcSettlements, nil
}
