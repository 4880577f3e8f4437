package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/splitsphere/backend/internal/models"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, user_id, account_name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.UserID,
		user.AccountName,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByUserID retrieves a user by their external user ID.
// Returns (nil, nil) when no such user exists.
func (s *SQLiteStore) GetUserByUserID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, user_id, account_name, password_hash, created_at
		FROM users
		WHERE user_id = ?
	`

	user := &models.User{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.UserID,
		&user.AccountName,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by user ID: %w", err)
	}

	return user, nil
}

// GetUsersByUserIDs retrieves multiple users by their external user IDs.
// Returns a map keyed by user ID; users that don't exist are omitted.
func (s *SQLiteStore) GetUsersByUserIDs(ctx context.Context, userIDs []string) (map[string]*models.User, error) {
	if len(userIDs) == 0 {
		return make(map[string]*models.User), nil
	}

	query := `
		SELECT id, user_id, account_name, password_hash, created_at
		FROM users
		WHERE user_id IN (?` + repeatPlaceholder(len(userIDs)-1) + `)`

	args := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by user IDs: %w", err)
	}
	defer rows.Close()

	users := make(map[string]*models.User)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(
			&user.ID,
			&user.UserID,
			&user.AccountName,
			&user.PasswordHash,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users[user.UserID] = user
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// repeatPlaceholder returns a string of ", ?" repeated n times.
// Used for building IN clauses with multiple placeholders.
func repeatPlaceholder(n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += ", ?"
	}
	return result
}
