// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/splitsphere/backend/internal/models"
)

// Store defines the interface for ledger storage operations. This
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// List methods return expenses and settlements in descending creation-time
// order; the balance calculators rely on a deterministic traversal order.
type Store interface {
	// CreateUser persists a new user. Fails if the external UserID is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUserID retrieves a user by external UserID.
	// Returns (nil, nil) when no such user exists.
	GetUserByUserID(ctx context.Context, userID string) (*models.User, error)

	// GetUsersByUserIDs retrieves multiple users keyed by external UserID.
	// Missing users are omitted from the result.
	GetUsersByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error)

	// CreateGroup persists a new group with its initial member set.
	// The group.ID field will be populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group, including its member set.
	// A missing group yields an error matching util.ErrNotFound; any other
	// error is a storage failure.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember retrieves all groups the user belongs to.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// AddGroupMember adds a user to the group's member set.
	AddGroupMember(ctx context.Context, groupID, userID string) error

	// CloseGroup marks a group as closed.
	CloseGroup(ctx context.Context, groupID string) error

	// CreateExpense persists a new expense with its participant set.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByGroup retrieves a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// CreateSettlement persists a new settlement.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlementsByGroup retrieves a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
