package models

import "github.com/shopspring/decimal"

// Settlement represents a direct payment between two group members, made to
// clear debt: the payer paid the payee Amount, which reduces the payer's
// recorded debt to the payee. Settlements are immutable once created.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// PayerID is the UserID of the debtor settling up.
	PayerID string

	// PayeeID is the UserID of the creditor being paid. Never equal to
	// PayerID.
	PayeeID string

	// Amount is the payment amount. Always positive and never more than
	// the payer's outstanding debt to the payee at creation time.
	Amount decimal.Decimal

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
