package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

// CreateExpense persists an expense and its splits in one transaction.
func (s *Store) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}
	if e.Date.IsZero() {
		e.Date = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fault.Store(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO expenses (id, household_id, description, amount, category,
			paid_by, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.HouseholdID, e.Description, e.Amount, string(e.Category),
		e.PaidByID, e.Date.Unix(), e.Notes, e.CreatedAt,
	)
	if err != nil {
		return translateWrite(err, "expense")
	}

	for _, sp := range e.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, user_id, amount, settled) VALUES (?, ?, ?, ?)",
			e.ID, sp.UserID, sp.Amount, sp.Settled,
		)
		if err != nil {
			return translateWrite(err, "expense split")
		}
	}

	if err := tx.Commit(); err != nil {
		return fault.Store(err, "failed to commit expense")
	}
	return nil
}

// GetExpense retrieves an expense with its splits.
func (s *Store) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, household_id, description, amount, category, paid_by,
			date, notes, created_at
		FROM expenses WHERE id = ?`, id)

	e, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fault.New(fault.NotFound, "expense not found: %s", id)
	}
	if err != nil {
		return nil, fault.Store(err, "failed to get expense %s", id)
	}

	if err := s.loadSplits(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListExpenses returns a household's expenses, newest date first.
func (s *Store) ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, household_id, description, amount, category, paid_by,
			date, notes, created_at
		FROM expenses WHERE household_id = ? ORDER BY date DESC, created_at DESC`,
		householdID,
	)
	if err != nil {
		return nil, fault.Store(err, "failed to list expenses for household %s", householdID)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fault.Store(err, "failed to scan expense")
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Store(err, "failed to iterate expenses")
	}

	for _, e := range expenses {
		if err := s.loadSplits(ctx, e); err != nil {
			return nil, err
		}
	}
	return expenses, nil
}

// DeleteExpense removes an expense; splits cascade.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fault.Store(err, "failed to delete expense %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fault.Store(err, "failed to delete expense %s", id)
	}
	if n == 0 {
		return fault.New(fault.NotFound, "expense not found: %s", id)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(row scanner) (*models.Expense, error) {
	e := &models.Expense{}
	var category string
	var date int64
	err := row.Scan(
		&e.ID,
		&e.HouseholdID,
		&e.Description,
		&e.Amount,
		&category,
		&e.PaidByID,
		&date,
		&e.Notes,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Category = models.ExpenseCategory(category)
	e.Date = time.Unix(date, 0)
	return e, nil
}

func (s *Store) loadSplits(ctx context.Context, e *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, amount, settled FROM expense_splits WHERE expense_id = ? ORDER BY user_id",
		e.ID,
	)
	if err != nil {
		return fault.Store(err, "failed to get splits for expense %s", e.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var sp models.Split
		if err := rows.Scan(&sp.UserID, &sp.Amount, &sp.Settled); err != nil {
			return fault.Store(err, "failed to scan split")
		}
		e.Splits = append(e.Splits, sp)
	}
	if err := rows.Err(); err != nil {
		return fault.Store(err, "failed to iterate splits")
	}
	return nil
}
