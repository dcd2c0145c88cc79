package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

// CreateUser inserts a new user into the database.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if user.CreatedAt == 0 {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleMember
	}

	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash,
			household_id, role, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		nullString(user.HouseholdID),
		string(user.Role),
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return translateWrite(err, "user")
	}

	return nil
}

const userColumns = `id, first_name, last_name, email, password_hash,
	household_id, role, is_active, created_at, updated_at`

// GetUserByID retrieves a user by their ID.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row, id)
}

// GetUserByEmail retrieves a user by their email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row, email)
}

func scanUser(row *sql.Row, key string) (*models.User, error) {
	user := &models.User{}
	var householdID sql.NullString
	var role string
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&householdID,
		&role,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fault.New(fault.NotFound, "user not found: %s", key)
	}
	if err != nil {
		return nil, fault.Store(err, "failed to get user %s", key)
	}
	user.HouseholdID = householdID.String
	user.Role = models.Role(role)
	return user, nil
}

// setUserHousehold updates a user's household back-reference and role
// inside an existing transaction.
func setUserHousehold(ctx context.Context, tx *sql.Tx, userID, householdID string, role models.Role) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE users SET household_id = ?, role = ?, updated_at = ? WHERE id = ?",
		nullString(householdID), string(role), time.Now().Unix(), userID,
	)
	if err != nil {
		return fault.Store(err, "failed to update user %s household", userID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fault.Store(err, "failed to update user %s household", userID)
	}
	if n == 0 {
		return fault.New(fault.NotFound, "user not found: %s", userID)
	}
	return nil
}

// nullString maps "" to SQL NULL so empty references stay queryable as NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
