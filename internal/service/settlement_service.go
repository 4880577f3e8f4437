package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/splitsphere/backend/internal/calculator"
	"github.com/splitsphere/backend/internal/models"
	"github.com/splitsphere/backend/internal/storage"
	"github.com/splitsphere/backend/internal/util"
)

// SettlementService records direct payments between members. Creation is
// validated against the pairwise balance and serialized per group: without
// the lock, two concurrent settlements could both pass validation against a
// balance that only accounts for one of them.
type SettlementService struct {
	store storage.Store

	// groupLocks holds one mutex per group ever settled in this process;
	// entries are never evicted. A mutex is a few dozen bytes, so the map
	// stays small relative to the groups themselves.
	mu         sync.Mutex
	groupLocks map[string]*sync.Mutex
}

// NewSettlementService creates a new SettlementService with the given
// storage backend.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{
		store:      store,
		groupLocks: make(map[string]*sync.Mutex),
	}
}

// lockGroup returns the mutex serializing settlement creation for a group.
func (s *SettlementService) lockGroup(groupID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.groupLocks[groupID]
	if !ok {
		lock = &sync.Mutex{}
		s.groupLocks[groupID] = lock
	}
	return lock
}

// CreateSettlement records that payerUserID paid payeeUserID amount,
// reducing the payer's debt to the payee. The request is rejected unless
// 0 < amount <= pairwise balance (payer owes payee), both parties are
// members, they differ, and the group is open.
func (s *SettlementService) CreateSettlement(ctx context.Context, groupID, payerUserID, payeeUserID string, amount decimal.Decimal, note string) (*models.Settlement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: settlement amount must be positive, got %s", util.ErrInvalidAmount, amount)
	}
	if payerUserID == payeeUserID {
		return nil, fmt.Errorf("%w: payer and payee are both %s", util.ErrSelfSettlement, payerUserID)
	}
	if _, err := loadUser(ctx, s.store, payeeUserID); err != nil {
		return nil, err
	}

	lock := s.lockGroup(groupID)
	lock.Lock()
	defer lock.Unlock()

	group, err := loadGroup(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	if group.Closed {
		return nil, fmt.Errorf("%w: cannot add settlement to group %s", util.ErrGroupClosed, groupID)
	}
	if !group.HasMember(payerUserID) {
		return nil, fmt.Errorf("%w: payer %s in group %s", util.ErrNotMember, payerUserID, groupID)
	}
	if !group.HasMember(payeeUserID) {
		return nil, fmt.Errorf("%w: payee %s in group %s", util.ErrNotMember, payeeUserID, groupID)
	}

	expenses, settlements, err := loadLedger(ctx, s.store, groupID)
	if err != nil {
		return nil, err
	}
	balance := calculator.PairwiseBalance(expenses, settlements, payerUserID, payeeUserID)

	if balance.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s owes %s nothing (balance %s)",
			util.ErrInvalidAmount, payerUserID, payeeUserID, balance)
	}
	if amount.GreaterThan(balance) {
		return nil, fmt.Errorf("%w: settlement %s exceeds outstanding debt %s",
			util.ErrInvalidAmount, amount, balance)
	}

	settlement := &models.Settlement{
		GroupID: groupID,
		PayerID: payerUserID,
		PayeeID: payeeUserID,
		Amount:  amount,
		Note:    note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	slog.Info("Settlement created",
		"settlement_id", settlement.ID,
		"group_id", groupID,
		"payer_id", payerUserID,
		"payee_id", payeeUserID,
		"amount", amount.String(),
	)

	return settlement, nil
}

// ListGroupSettlements retrieves a group's settlements, newest first.
func (s *SettlementService) ListGroupSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	if _, err := loadGroup(ctx, s.store, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlementsByGroup(ctx, groupID)
}
