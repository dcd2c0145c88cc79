// Package ledger implements the expense ledger: expense records, split
// computation, and balance aggregation for a household.
package ledger

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
	"github.com/housemate-app/housemate/internal/storage"
)

// Membership is the slice of the membership manager the ledger needs.
type Membership interface {
	RequireMembership(ctx context.Context, userID, householdID string) (*models.Household, error)
}

// Service owns expense records and balance computation.
type Service struct {
	store      storage.Store
	membership Membership
}

// NewService creates an expense service backed by store, validating
// participants through membership.
func NewService(store storage.Store, membership Membership) *Service {
	return &Service{store: store, membership: membership}
}

// CreateExpenseInput carries the caller-supplied fields of a new expense.
type CreateExpenseInput struct {
	Description string
	Amount      float64
	Category    models.ExpenseCategory
	Date        time.Time
	Notes       string

	// Splits is optional. When empty the full amount is put on the
	// payer alone (net zero effect on balances). When present, amounts
	// are recomputed equally under the household's equal split method;
	// under the custom method the given amounts must sum to Amount.
	Splits []models.Split
}

// CreateExpense records a new expense paid by payerID.
func (s *Service) CreateExpense(ctx context.Context, householdID, payerID string, in CreateExpenseInput) (*models.Expense, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fault.New(fault.InvalidInput, "expense description is required")
	}
	if in.Amount <= 0 {
		return nil, fault.New(fault.InvalidInput, "expense amount must be greater than 0")
	}
	if in.Category == "" {
		in.Category = models.ExpenseOther
	}
	if !models.ValidExpenseCategory(in.Category) {
		return nil, fault.New(fault.InvalidInput, "unknown expense category %q", in.Category)
	}

	h, err := s.membership.RequireMembership(ctx, payerID, householdID)
	if err != nil {
		return nil, err
	}

	e := &models.Expense{
		HouseholdID: householdID,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Category:    in.Category,
		PaidByID:    payerID,
		Date:        in.Date,
		Notes:       strings.TrimSpace(in.Notes),
	}

	if len(in.Splits) == 0 {
		// "I paid for myself only": payer owes themselves the full
		// amount, net zero on balances.
		e.Splits = []models.Split{{UserID: payerID, Amount: in.Amount}}
	} else {
		e.Splits = make([]models.Split, len(in.Splits))
		seen := make(map[string]bool, len(in.Splits))
		for i, sp := range in.Splits {
			if !h.HasMember(sp.UserID) {
				return nil, fault.New(fault.InvalidInput,
					"split user %s is not a member of household %s", sp.UserID, householdID)
			}
			if seen[sp.UserID] {
				return nil, fault.New(fault.InvalidInput,
					"split user %s listed twice", sp.UserID)
			}
			seen[sp.UserID] = true
			e.Splits[i] = models.Split{UserID: sp.UserID, Amount: sp.Amount}
		}

		switch h.Settings.SplitMethod {
		case models.SplitCustom:
			for _, sp := range e.Splits {
				if sp.Amount < 0 {
					return nil, fault.New(fault.InvalidInput,
						"split amount for user %s is negative", sp.UserID)
				}
			}
			if math.Abs(splitSum(e.Splits)-e.Amount) > splitTolerance {
				return nil, fault.New(fault.InvalidInput,
					"split amounts sum to %.2f, expense amount is %.2f",
					splitSum(e.Splits), e.Amount)
			}
		default:
			// Equal splitting never trusts caller amounts.
			RecomputeEqualSplit(e)
		}
	}

	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	slog.Info("expense created",
		"expense_id", e.ID,
		"household_id", householdID,
		"paid_by", payerID,
		"amount", e.Amount,
		"splits", len(e.Splits),
	)
	return e, nil
}

// ListExpenses returns the household's expenses, newest first, for a
// requesting member.
func (s *Service) ListExpenses(ctx context.Context, householdID, requesterID string) ([]*models.Expense, error) {
	if _, err := s.membership.RequireMembership(ctx, requesterID, householdID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, householdID)
}

// DeleteExpense removes an expense. Only the original payer may delete.
func (s *Service) DeleteExpense(ctx context.Context, expenseID, requesterID string) error {
	e, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if e.PaidByID != requesterID {
		return fault.New(fault.Forbidden,
			"only the payer may delete expense %s", expenseID)
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return err
	}

	slog.Info("expense deleted", "expense_id", expenseID, "requester_id", requesterID)
	return nil
}

// CalculateBalances folds every expense in the household into per-member
// balances, seeding each current member at zero.
func (s *Service) CalculateBalances(ctx context.Context, householdID, requesterID string) (map[string]*Balance, error) {
	h, err := s.membership.RequireMembership(ctx, requesterID, householdID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, householdID)
	if err != nil {
		return nil, err
	}

	members := make([]string, len(h.Members))
	for i, m := range h.Members {
		members[i] = m.UserID
	}
	return FoldBalances(members, expenses), nil
}
