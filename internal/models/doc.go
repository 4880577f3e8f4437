// Package models defines the core domain models for SplitSphere.
//
// # Models
//
//   - User: a registered account, identified externally by UserID
//   - Group: a named set of members that owns expenses and settlements
//   - Expense: an amount paid by one member and split equally among participants
//   - Settlement: a direct payment between two members that reduces debt
//
// # Design Principles
//
//  1. **Value types**: models are plain immutable records; expenses and
//     settlements are never updated or deleted once created
//  2. **Exact money**: all amounts are decimal.Decimal with 2 fraction
//     digits; binary floats never touch a money value
//  3. **Avoid circular references**: relationships are expressed as ID
//     strings, never as pointers between models
//
// Balances are NOT a model: they are derived, recomputed in full from the
// expense and settlement history on every query (see internal/calculator).
package models
