package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

// CreateHousehold persists a household with its initial member list and
// points each initial member's user record at it, all in one transaction.
func (s *Store) CreateHousehold(ctx context.Context, h *models.Household) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.CreatedAt == 0 {
		h.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.Store(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO households (id, name, description, admin_id, invite_code,
			currency, split_method, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Description, h.AdminID, h.InviteCode,
		h.Settings.Currency, string(h.Settings.SplitMethod), h.IsActive, h.CreatedAt,
	)
	if err != nil {
		return translateWrite(err, "household")
	}

	for _, m := range h.Members {
		if err := insertMember(ctx, tx, h.ID, m); err != nil {
			return err
		}
		if err := setUserHousehold(ctx, tx, m.UserID, h.ID, m.Role); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fault.Store(err, "failed to commit household")
	}
	return nil
}

// GetHousehold retrieves a household with its member list.
func (s *Store) GetHousehold(ctx context.Context, id string) (*models.Household, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, admin_id, invite_code, currency,
			split_method, is_active, created_at
		FROM households WHERE id = ?`, id)
	return s.scanHousehold(ctx, row, id)
}

// GetHouseholdByInviteCode retrieves a household by its invite code.
func (s *Store) GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, admin_id, invite_code, currency,
			split_method, is_active, created_at
		FROM households WHERE invite_code = ?`, code)
	return s.scanHousehold(ctx, row, code)
}

func (s *Store) scanHousehold(ctx context.Context, row *sql.Row, key string) (*models.Household, error) {
	h := &models.Household{}
	var splitMethod string
	err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Description,
		&h.AdminID,
		&h.InviteCode,
		&h.Settings.Currency,
		&splitMethod,
		&h.IsActive,
		&h.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fault.New(fault.NotFound, "household not found: %s", key)
	}
	if err != nil {
		return nil, fault.Store(err, "failed to get household %s", key)
	}
	h.Settings.SplitMethod = models.SplitMethod(splitMethod)

	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, role, joined_at
		FROM household_members WHERE household_id = ? ORDER BY joined_at, user_id`,
		h.ID,
	)
	if err != nil {
		return nil, fault.Store(err, "failed to get members of household %s", h.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.Member
		var role string
		var joined int64
		if err := rows.Scan(&m.UserID, &role, &joined); err != nil {
			return nil, fault.Store(err, "failed to scan member")
		}
		m.Role = models.Role(role)
		m.JoinedAt = time.Unix(joined, 0)
		h.Members = append(h.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Store(err, "failed to iterate members")
	}

	return h, nil
}

// AddMember appends a member entry and sets the user's household
// reference in one transaction.
func (s *Store) AddMember(ctx context.Context, householdID string, m models.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.Store(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := insertMember(ctx, tx, householdID, m); err != nil {
		return err
	}
	if err := setUserHousehold(ctx, tx, m.UserID, householdID, m.Role); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fault.Store(err, "failed to commit member")
	}
	return nil
}

// RemoveMember deletes a member entry and clears the user's household
// reference in one transaction.
func (s *Store) RemoveMember(ctx context.Context, householdID, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.Store(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM household_members WHERE household_id = ? AND user_id = ?",
		householdID, userID,
	)
	if err != nil {
		return fault.Store(err, "failed to remove member %s", userID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fault.Store(err, "failed to remove member %s", userID)
	}
	if n == 0 {
		return fault.New(fault.NotFound, "member %s not in household %s", userID, householdID)
	}

	if err := setUserHousehold(ctx, tx, userID, "", models.RoleMember); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fault.Store(err, "failed to commit member removal")
	}
	return nil
}

func insertMember(ctx context.Context, tx *sql.Tx, householdID string, m models.Member) error {
	joined := m.JoinedAt
	if joined.IsZero() {
		joined = time.Now()
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO household_members (household_id, user_id, role, joined_at) VALUES (?, ?, ?, ?)",
		householdID, m.UserID, string(m.Role), joined.Unix(),
	)
	if err != nil {
		return translateWrite(err, "household member")
	}
	return nil
}
