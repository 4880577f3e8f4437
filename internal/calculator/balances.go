// Package calculator derives balances from a group's expense and settlement
// history. Both calculators are pure: they take in-memory snapshots, mutate
// nothing, and recompute from scratch on every call in
// O(expenses + settlements). Loading the snapshots and enforcing
// group/membership preconditions is the service layer's job.
package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Expense carries the minimal expense information needed for balance
// calculations.
type Expense struct {
	PayerID        string
	Amount         decimal.Decimal
	ParticipantIDs []string
}

// Settlement carries the minimal settlement information needed for balance
// calculations.
type Settlement struct {
	PayerID string // debtor settling up
	PayeeID string // creditor being paid
	Amount  decimal.Decimal
}

// Status says which direction a balance points, from the reference user's
// perspective.
type Status string

const (
	// StatusOwes means the reference user owes the counterparty.
	StatusOwes Status = "owes"
	// StatusOwed means the counterparty owes the reference user.
	StatusOwed Status = "owed"
)

// MemberBalance is the net balance between the reference user and one other
// member. Amount is always the absolute value; Status carries the sign.
type MemberBalance struct {
	UserID string
	Amount decimal.Decimal
	Status Status
}

// GroupBalances computes, for refUserID, the net balance against every other
// user with a nonzero balance. Zero balances are omitted. Results are sorted
// by counterparty UserID for stable output.
//
// Expenses involving neither refUserID as payer nor as participant do not
// move refUserID's balances: debts are tracked strictly pairwise, never
// netted through a third party.
func GroupBalances(expenses []Expense, settlements []Settlement, refUserID string) []MemberBalance {
	// counterparty UserID -> signed running amount; positive means the
	// counterparty owes refUserID.
	balances := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		if len(e.ParticipantIDs) == 0 {
			continue
		}
		share := Share(e.Amount, len(e.ParticipantIDs))

		for _, p := range e.ParticipantIDs {
			if p == e.PayerID {
				continue
			}
			switch {
			case p == refUserID:
				// refUserID owes the payer one share.
				accumulate(balances, e.PayerID, share.Neg())
			case e.PayerID == refUserID:
				// p owes refUserID one share.
				accumulate(balances, p, share)
			}
		}
	}

	// Settlements arrive in descending creation-time order. Addition is
	// commutative so the result is order-independent, but the traversal
	// order is preserved for reproducibility.
	for _, s := range settlements {
		switch {
		case s.PayerID == refUserID:
			// refUserID paid the payee; remaining debt to them shrinks.
			accumulate(balances, s.PayeeID, s.Amount.Neg())
		case s.PayeeID == refUserID:
			// Someone paid refUserID; their recorded debt shrinks.
			accumulate(balances, s.PayerID, s.Amount)
		}
	}

	results := make([]MemberBalance, 0, len(balances))
	for userID, amount := range balances {
		if amount.IsZero() {
			continue
		}
		status := StatusOwed
		if amount.IsNegative() {
			status = StatusOwes
		}
		results = append(results, MemberBalance{
			UserID: userID,
			Amount: amount.Abs(),
			Status: status,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].UserID < results[j].UserID })

	return results
}

// PairwiseBalance computes the net signed debt between exactly two users,
// counting each expense where one paid and the other participated, plus the
// settlements between them. Positive means userA owes userB; negative means
// userB owes userA; zero means settled (or no transactions link the pair).
func PairwiseBalance(expenses []Expense, settlements []Settlement, userA, userB string) decimal.Decimal {
	balance := decimal.Zero

	for _, e := range expenses {
		if len(e.ParticipantIDs) == 0 {
			continue
		}
		share := Share(e.Amount, len(e.ParticipantIDs))

		// userB paid and userA participated: userA owes userB one share.
		if e.PayerID == userB && userA != userB && containsID(e.ParticipantIDs, userA) {
			balance = balance.Add(share)
		}
		// userA paid and userB participated: userB owes userA one share.
		if e.PayerID == userA && userB != userA && containsID(e.ParticipantIDs, userB) {
			balance = balance.Sub(share)
		}
	}

	for _, s := range settlements {
		// userA paid userB: userA's debt to userB is reduced.
		if s.PayerID == userA && s.PayeeID == userB {
			balance = balance.Sub(s.Amount)
		}
		// userB paid userA: userA's debt to userB is increased.
		if s.PayerID == userB && s.PayeeID == userA {
			balance = balance.Add(s.Amount)
		}
	}

	return balance
}

// accumulate adds delta to the running amount for key. Absent keys read as
// zero, so the first contribution for a counterparty needs no special case.
func accumulate(balances map[string]decimal.Decimal, key string, delta decimal.Decimal) {
	balances[key] = balances[key].Add(delta)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
