// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/housemate-app/housemate/internal/models"
)

// Store defines the record-store interface the core services depend on.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// Implementations translate their failure modes into fault errors:
// missing records surface as fault.NotFound, unique-index collisions
// (email, invite code) as fault.Conflict, and anything else as
// fault.StoreFailure. Mutations that must pair a membership change with
// the user's household back-reference (CreateHousehold, AddMember,
// RemoveMember) apply both writes in a single transaction.
type Store interface {
	// CreateUser persists a new user, populating ID and CreatedAt.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateHousehold persists a new household with its initial member
	// list, populating ID and CreatedAt, and atomically points each
	// initial member's user record at the household.
	CreateHousehold(ctx context.Context, h *models.Household) error

	// GetHousehold retrieves a household with its member list.
	GetHousehold(ctx context.Context, id string) (*models.Household, error)

	// GetHouseholdByInviteCode retrieves a household by invite code.
	GetHouseholdByInviteCode(ctx context.Context, code string) (*models.Household, error)

	// AddMember appends a member entry and atomically sets the user's
	// household reference and role.
	AddMember(ctx context.Context, householdID string, m models.Member) error

	// RemoveMember deletes a member entry and atomically clears the
	// user's household reference, resetting their role to member.
	RemoveMember(ctx context.Context, householdID, userID string) error

	// CreateExpense persists a new expense with its splits,
	// populating ID and CreatedAt.
	CreateExpense(ctx context.Context, e *models.Expense) error

	// GetExpense retrieves an expense with its splits.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, id string) error

	// ListExpenses returns a household's expenses, newest date first.
	ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error)

	// CreateChore persists a new chore, populating ID and CreatedAt.
	CreateChore(ctx context.Context, c *models.Chore) error

	// GetChore retrieves a chore by id.
	GetChore(ctx context.Context, id string) (*models.Chore, error)

	// UpdateChore rewrites a chore's mutable fields.
	UpdateChore(ctx context.Context, c *models.Chore) error

	// DeleteChore removes a chore.
	DeleteChore(ctx context.Context, id string) error

	// ListChores returns a household's chores, earliest due date first.
	ListChores(ctx context.Context, householdID string) ([]*models.Chore, error)

	// ListChoresByAssignee returns the chores assigned to a user,
	// earliest due date first.
	ListChoresByAssignee(ctx context.Context, userID string) ([]*models.Chore, error)

	// Close releases any resources held by the store.
	Close() error
}
