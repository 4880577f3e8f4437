package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/calculator"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/util"
)

// BalanceEntry is one row of a group balance query: the net position between
// the reference user and one counterparty. Amount is the absolute value;
// Status says who owes whom.
type BalanceEntry struct {
	UserID   string            `json:"userId"`
	UserName string            `json:"userName"`
	Amount   decimal.Decimal   `json:"balance"`
	Status   calculator.Status `json:"status"`
}

// BalanceService answers balance queries. It loads a group's transaction
// snapshot and delegates the arithmetic to the calculator package.
type BalanceService struct {
	store storage.Store
}

// NewBalanceService creates a new BalanceService with the given storage
// backend.
func NewBalanceService(store storage.Store) *BalanceService {
	return &BalanceService{store: store}
}

// GetGroupBalances computes the reference user's net balance against every
// other member with a nonzero balance. The reference user must exist and be
// a member of the group.
func (s *BalanceService) GetGroupBalances(ctx context.Context, groupID, refUserID string) ([]BalanceEntry, error) {
	if _, err := loadUser(ctx, s.store, refUserID); err != nil {
		return nil, err
	}

	group, err := loadGroup(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(refUserID) {
		return nil, fmt.Errorf("%w: %s in group %s", util.ErrNotMember, refUserID, groupID)
	}

	expenses, settlements, err := loadLedger(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}

	balances := calculator.GroupBalances(expenses, settlements, refUserID)

	counterpartyIDs := make([]string, len(balances))
	for i, b := range balances {
		counterpartyIDs[i] = b.UserID
	}
	users, err := s.store.GetUsersByUserIDs(ctx, counterpartyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load counterparties: %w", err)
	}

	entries := make([]BalanceEntry, len(balances))
	for i, b := range balances {
		entry := BalanceEntry{
			UserID: b.UserID,
			Amount: b.Amount,
			Status: b.Status,
		}
		if user, ok := users[b.UserID]; ok {
			entry.UserName = user.AccountName
		}
		entries[i] = entry
	}

	slog.Debug("Group balances computed",
		"group_id", groupID,
		"ref_user_id", refUserID,
		"expenses", len(expenses),
		"settlements", len(settlements),
		"nonzero_balances", len(entries),
	)

	return entries, nil
}

// PairwiseBalance computes the signed net debt between two users in a group.
// Positive means userA owes userB. Membership preconditions are the caller's
// responsibility; only a missing group fails.
func (s *BalanceService) PairwiseBalance(ctx context.Context, groupID, userA, userB string) (decimal.Decimal, error) {
	if _, err := loadGroup(ctx, s.store, groupID); err != nil {
		return decimal.Zero, err
	}

	expenses, settlements, err := loadLedger(ctx, s.store, groupID)
	if err != nil {
		return decimal.Zero, err
	}

	return calculator.PairwiseBalance(expenses, settlements, userA, userB), nil
}
