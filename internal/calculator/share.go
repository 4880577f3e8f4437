package calculator

import "github.com/shopspring/decimal"

// Share returns one participant's equal portion of an expense: amount
// divided by the participant count, rounded half-up to 2 decimal places.
//
// The rounding remainder is NOT redistributed. Splitting 100.00 three ways
// yields 33.33 per head, collecting 99.99 in total; no participant absorbs
// the missing cent. Callers must not pass participants <= 0.
func Share(amount decimal.Decimal, participants int) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(int64(participants))).Round(2)
}
