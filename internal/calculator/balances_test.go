package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestGroupBalances_SingleExpense(t *testing.T) {
	// U2 paid 300 split across U1, U2, U3: each owes U2 100.00.
	expenses := []Expense{
		{PayerID: "u2", Amount: amt("300.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}

	balances := GroupBalances(expenses, nil, "u1")
	require.Len(t, balances, 1)
	assert.Equal(t, "u2", balances[0].UserID)
	assert.Equal(t, StatusOwes, balances[0].Status)
	assert.True(t, balances[0].Amount.Equal(amt("100.00")), "got %s", balances[0].Amount)

	// From the payer's perspective both debtors show up as "owed".
	balances = GroupBalances(expenses, nil, "u2")
	require.Len(t, balances, 2)
	for _, b := range balances {
		assert.Equal(t, StatusOwed, b.Status)
		assert.True(t, b.Amount.Equal(amt("100.00")))
	}
}

func TestGroupBalances_SettlementOffsetsDebt(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u2", Amount: amt("300.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}
	settlements := []Settlement{
		{PayerID: "u1", PayeeID: "u2", Amount: amt("60.00")},
	}

	balances := GroupBalances(expenses, settlements, "u1")
	require.Len(t, balances, 1)
	assert.Equal(t, "u2", balances[0].UserID)
	assert.Equal(t, StatusOwes, balances[0].Status)
	assert.True(t, balances[0].Amount.Equal(amt("40.00")), "got %s", balances[0].Amount)
}

func TestGroupBalances_FullSettlementRemovesEntry(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u2", Amount: amt("300.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}
	settlements := []Settlement{
		{PayerID: "u1", PayeeID: "u2", Amount: amt("100.00")},
	}

	balances := GroupBalances(expenses, settlements, "u1")
	assert.Empty(t, balances)
}

func TestGroupBalances_ThirdPartyExpensesExcluded(t *testing.T) {
	// u2 paid for u3: does not touch u1's balances, even though u1 is in
	// the same group. Debts are pairwise, never netted transitively.
	expenses := []Expense{
		{PayerID: "u2", Amount: amt("50.00"), ParticipantIDs: []string{"u3"}},
	}

	assert.Empty(t, GroupBalances(expenses, nil, "u1"))
}

func TestGroupBalances_PayerOwnShareIgnored(t *testing.T) {
	// The payer's own share never becomes a debt to themselves.
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("90.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}

	balances := GroupBalances(expenses, nil, "u1")
	require.Len(t, balances, 2)
	assert.Equal(t, "u2", balances[0].UserID)
	assert.Equal(t, "u3", balances[1].UserID)
	for _, b := range balances {
		assert.True(t, b.Amount.Equal(amt("30.00")))
		assert.Equal(t, StatusOwed, b.Status)
	}
}

func TestGroupBalances_EmptyParticipantsSkipped(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("10.00"), ParticipantIDs: nil},
	}
	assert.Empty(t, GroupBalances(expenses, nil, "u1"))
}

// For a group with only expenses, the signed net positions across all
// members sum to zero.
func TestGroupBalances_ZeroSum(t *testing.T) {
	members := []string{"u1", "u2", "u3", "u4"}
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("120.00"), ParticipantIDs: []string{"u1", "u2", "u3", "u4"}},
		{PayerID: "u2", Amount: amt("45.00"), ParticipantIDs: []string{"u2", "u3"}},
		{PayerID: "u3", Amount: amt("80.00"), ParticipantIDs: []string{"u1", "u4"}},
	}

	total := decimal.Zero
	for _, ref := range members {
		for _, b := range GroupBalances(expenses, nil, ref) {
			signed := b.Amount
			if b.Status == StatusOwes {
				signed = signed.Neg()
			}
			total = total.Add(signed)
		}
	}
	assert.True(t, total.IsZero(), "net positions sum to %s, want 0", total)
}

// Calling the calculator twice with unchanged input yields identical output.
func TestGroupBalances_Idempotent(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("100.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
		{PayerID: "u2", Amount: amt("33.33"), ParticipantIDs: []string{"u1", "u2"}},
	}
	settlements := []Settlement{
		{PayerID: "u2", PayeeID: "u1", Amount: amt("10.00")},
	}

	first := GroupBalances(expenses, settlements, "u1")
	second := GroupBalances(expenses, settlements, "u1")
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].UserID, second[i].UserID)
		assert.Equal(t, first[i].Status, second[i].Status)
		assert.True(t, first[i].Amount.Equal(second[i].Amount))
	}
}

func TestPairwiseBalance_SignConvention(t *testing.T) {
	// U1 paid 300 split across U1, U2, U3.
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("300.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}

	// U2 owes U1, so from (u1, u2) the net is negative.
	got := PairwiseBalance(expenses, nil, "u1", "u2")
	assert.True(t, got.Equal(amt("-100.00")), "got %s", got)

	// And the mirror query is positive.
	got = PairwiseBalance(expenses, nil, "u2", "u1")
	assert.True(t, got.Equal(amt("100.00")), "got %s", got)
}

func TestPairwiseBalance_SettlementsAdjustDebt(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u2", Amount: amt("300.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}

	// u1 owes u2 100; u1 pays back 60: remaining debt 40.
	settlements := []Settlement{
		{PayerID: "u1", PayeeID: "u2", Amount: amt("60.00")},
	}
	got := PairwiseBalance(expenses, settlements, "u1", "u2")
	assert.True(t, got.Equal(amt("40.00")), "got %s", got)

	// A payment in the other direction increases u1's debt.
	settlements = []Settlement{
		{PayerID: "u2", PayeeID: "u1", Amount: amt("25.00")},
	}
	got = PairwiseBalance(expenses, settlements, "u1", "u2")
	assert.True(t, got.Equal(amt("125.00")), "got %s", got)
}

func TestPairwiseBalance_UnlinkedPairIsZero(t *testing.T) {
	expenses := []Expense{
		{PayerID: "u3", Amount: amt("10.00"), ParticipantIDs: []string{"u4"}},
	}
	got := PairwiseBalance(expenses, nil, "u1", "u2")
	assert.True(t, got.IsZero())
}

func TestPairwiseBalance_CrossDebtsNet(t *testing.T) {
	// u1 paid 40 for {u1,u2}; u2 paid 100 for {u1,u2}.
	// u1 owes u2 50, u2 owes u1 20: net u1 owes u2 30.
	expenses := []Expense{
		{PayerID: "u1", Amount: amt("40.00"), ParticipantIDs: []string{"u1", "u2"}},
		{PayerID: "u2", Amount: amt("100.00"), ParticipantIDs: []string{"u1", "u2"}},
	}
	got := PairwiseBalance(expenses, nil, "u1", "u2")
	assert.True(t, got.Equal(amt("30.00")), "got %s", got)
}

// The numeric result must not depend on traversal order.
func TestBalances_OrderIndependent(t *testing.T) {
	settlements := []Settlement{
		{PayerID: "u1", PayeeID: "u2", Amount: amt("10.00")},
		{PayerID: "u1", PayeeID: "u2", Amount: amt("20.00")},
		{PayerID: "u2", PayeeID: "u1", Amount: amt("5.00")},
	}
	reversed := []Settlement{settlements[2], settlements[1], settlements[0]}

	expenses := []Expense{
		{PayerID: "u2", Amount: amt("90.00"), ParticipantIDs: []string{"u1", "u2", "u3"}},
	}

	a := PairwiseBalance(expenses, settlements, "u1", "u2")
	b := PairwiseBalance(expenses, reversed, "u1", "u2")
	assert.True(t, a.Equal(b), "%s != %s", a, b)
}
