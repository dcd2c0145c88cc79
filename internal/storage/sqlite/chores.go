package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

// CreateChore persists a new chore.
func (s *Store) CreateChore(ctx context.Context, c *models.Chore) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt == 0 {
		c.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chores (id, household_id, title, description, assigned_to,
			created_by, due_date, priority, status, completed, completed_at,
			recurring, category, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.HouseholdID, c.Title, c.Description, c.AssignedToID,
		c.CreatedByID, c.DueDate.Unix(), string(c.Priority), string(c.Status),
		c.Completed, nullTime(c.CompletedAt), string(c.Recurring),
		string(c.Category), c.Notes, c.CreatedAt,
	)
	if err != nil {
		return translateWrite(err, "chore")
	}
	return nil
}

const choreColumns = `id, household_id, title, description, assigned_to,
	created_by, due_date, priority, status, completed, completed_at,
	recurring, category, notes, created_at`

// GetChore retrieves a chore by id.
func (s *Store) GetChore(ctx context.Context, id string) (*models.Chore, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+choreColumns+" FROM chores WHERE id = ?", id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, fault.New(fault.NotFound, "chore not found: %s", id)
	}
	if err != nil {
		return nil, fault.Store(err, "failed to get chore %s", id)
	}
	return c, nil
}

// UpdateChore rewrites a chore's mutable fields.
func (s *Store) UpdateChore(ctx context.Context, c *models.Chore) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE chores SET title = ?, description = ?, assigned_to = ?,
			due_date = ?, priority = ?, status = ?, completed = ?,
			completed_at = ?, recurring = ?, category = ?, notes = ?
		WHERE id = ?`,
		c.Title, c.Description, c.AssignedToID, c.DueDate.Unix(),
		string(c.Priority), string(c.Status), c.Completed,
		nullTime(c.CompletedAt), string(c.Recurring), string(c.Category),
		c.Notes, c.ID,
	)
	if err != nil {
		return fault.Store(err, "failed to update chore %s", c.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fault.Store(err, "failed to update chore %s", c.ID)
	}
	if n == 0 {
		return fault.New(fault.NotFound, "chore not found: %s", c.ID)
	}
	return nil
}

// DeleteChore removes a chore.
func (s *Store) DeleteChore(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM chores WHERE id = ?", id)
	if err != nil {
		return fault.Store(err, "failed to delete chore %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fault.Store(err, "failed to delete chore %s", id)
	}
	if n == 0 {
		return fault.New(fault.NotFound, "chore not found: %s", id)
	}
	return nil
}

// ListChores returns a household's chores, earliest due date first.
func (s *Store) ListChores(ctx context.Context, householdID string) ([]*models.Chore, error) {
	return s.listChores(ctx,
		"SELECT "+choreColumns+" FROM chores WHERE household_id = ? ORDER BY due_date, created_at",
		householdID)
}

// ListChoresByAssignee returns the chores assigned to a user,
// earliest due date first.
func (s *Store) ListChoresByAssignee(ctx context.Context, userID string) ([]*models.Chore, error) {
	return s.listChores(ctx,
		"SELECT "+choreColumns+" FROM chores WHERE assigned_to = ? ORDER BY due_date, created_at",
		userID)
}

func (s *Store) listChores(ctx context.Context, query, key string) ([]*models.Chore, error) {
	rows, err := s.db.QueryContext(ctx, query, key)
	if err != nil {
		return nil, fault.Store(err, "failed to list chores for %s", key)
	}
	defer rows.Close()

	var chores []*models.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fault.Store(err, "failed to scan chore")
		}
		chores = append(chores, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Store(err, "failed to iterate chores")
	}
	return chores, nil
}

func scanChore(row scanner) (*models.Chore, error) {
	c := &models.Chore{}
	var priority, status, recurring, category string
	var due int64
	var completedAt sql.NullInt64
	err := row.Scan(
		&c.ID,
		&c.HouseholdID,
		&c.Title,
		&c.Description,
		&c.AssignedToID,
		&c.CreatedByID,
		&due,
		&priority,
		&status,
		&c.Completed,
		&completedAt,
		&recurring,
		&category,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.DueDate = time.Unix(due, 0)
	c.Priority = models.ChorePriority(priority)
	c.Status = models.ChoreStatus(status)
	c.Recurring = models.Frequency(recurring)
	c.Category = models.ChoreCategory(category)
	if completedAt.Valid {
		t := time.Unix(completedAt.Int64, 0)
		c.CompletedAt = &t
	}
	return c, nil
}

// nullTime maps a nil completion time to SQL NULL.
func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
