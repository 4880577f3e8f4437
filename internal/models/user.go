package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
// Two users are the same user iff their UserID matches; equality is never
// by reference or by display name.
type User struct {
	// ID is the internal unique identifier (UUID format).
	ID string

	// UserID is the stable external handle chosen at registration (unique).
	// All relationships (group members, expense payers, settlement parties)
	// reference this value.
	UserID string

	// AccountName is the display name of the user.
	AccountName string

	// PasswordHash is the bcrypt hash of the user's code.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a generated internal ID and creation time.
func NewUser(userID, accountName, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		UserID:       userID,
		AccountName:  accountName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
