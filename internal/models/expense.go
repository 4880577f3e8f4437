package models

import "github.com/shopspring/decimal"

// Expense represents an amount paid by one member on behalf of a set of
// participants. The amount is split equally: each participant's share is
// amount / len(ParticipantIDs) rounded half-up to 2 decimals. Expenses are
// immutable once created.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a short human-readable label (e.g., "Groceries").
	Description string

	// Amount is the total paid by the payer. Always positive.
	Amount decimal.Decimal

	// PayerID is the UserID of the member who paid.
	PayerID string

	// ParticipantIDs is the nonempty set of member UserIDs sharing the
	// expense. The payer may or may not be among them.
	ParticipantIDs []string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
