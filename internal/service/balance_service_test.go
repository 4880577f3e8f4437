package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitsphere/backend/internal/calculator"
	"github.com/splitsphere/backend/internal/util"
)

func TestGetGroupBalances_SingleExpense(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2", "u3")
	expenses := NewExpenseService(store)
	balances := NewBalanceService(store)

	// u2 pays 300 split three ways; u1 and u3 each owe u2 100.
	_, err := expenses.CreateExpense(ctx, group.ID, "u2", "Cabin", amount(t, "300"), []string{"u1", "u2", "u3"})
	require.NoError(t, err)

	entries, err := balances.GetGroupBalances(ctx, group.ID, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u2", entries[0].UserID)
	assert.Equal(t, "Name of u2", entries[0].UserName)
	assert.True(t, amount(t, "100").Equal(entries[0].Amount))
	assert.Equal(t, calculator.StatusOwes, entries[0].Status)

	entries, err = balances.GetGroupBalances(ctx, group.ID, "u2")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, amount(t, "100").Equal(e.Amount))
		assert.Equal(t, calculator.StatusOwed, e.Status)
	}
}

func TestGetGroupBalances_SettlementReducesDebt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2", "u3")
	expenses := NewExpenseService(store)
	settlements := NewSettlementService(store)
	balances := NewBalanceService(store)

	_, err := expenses.CreateExpense(ctx, group.ID, "u2", "Cabin", amount(t, "300"), []string{"u1", "u2", "u3"})
	require.NoError(t, err)

	_, err = settlements.CreateSettlement(ctx, group.ID, "u1", "u2", amount(t, "60"), "")
	require.NoError(t, err)

	entries, err := balances.GetGroupBalances(ctx, group.ID, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, amount(t, "40").Equal(entries[0].Amount))
	assert.Equal(t, calculator.StatusOwes, entries[0].Status)
}

func TestGetGroupBalances_FullSettlementClearsEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2", "u3")
	expenses := NewExpenseService(store)
	settlements := NewSettlementService(store)
	balances := NewBalanceService(store)

	_, err := expenses.CreateExpense(ctx, group.ID, "u2", "Cabin", amount(t, "300"), []string{"u1", "u2", "u3"})
	require.NoError(t, err)

	_, err = settlements.CreateSettlement(ctx, group.ID, "u1", "u2", amount(t, "100"), "")
	require.NoError(t, err)

	entries, err := balances.GetGroupBalances(ctx, group.ID, "u1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetGroupBalances_RejectsNonMember(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2")
	seedGroup(t, store, "Other", "outsider")
	balances := NewBalanceService(store)

	_, err := balances.GetGroupBalances(ctx, group.ID, "outsider")
	assert.ErrorIs(t, err, util.ErrNotMember)
}

func TestGetGroupBalances_RejectsUnknownUserOrGroup(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2")
	balances := NewBalanceService(store)

	_, err := balances.GetGroupBalances(ctx, group.ID, "ghost")
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = balances.GetGroupBalances(ctx, "no-such-group", "u1")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestPairwiseBalance_SignConvention(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := seedGroup(t, store, "Trip", "u1", "u2")
	expenses := NewExpenseService(store)
	balances := NewBalanceService(store)

	_, err := expenses.CreateExpense(ctx, group.ID, "u2", "Dinner", amount(t, "80"), []string{"u1", "u2"})
	require.NoError(t, err)

	// u1 owes u2 40, so (u1, u2) is positive and (u2, u1) is its negation.
	b, err := balances.PairwiseBalance(ctx, group.ID, "u1", "u2")
	require.NoError(t, err)
	assert.True(t, amount(t, "40").Equal(b))

	b, err = balances.PairwiseBalance(ctx, group.ID, "u2", "u1")
	require.NoError(t, err)
	assert.True(t, amount(t, "-40").Equal(b))
}
