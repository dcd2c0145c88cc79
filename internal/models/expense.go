package models

import "time"

// ExpenseCategory classifies an expense.
type ExpenseCategory string

const (
	ExpenseUtilities     ExpenseCategory = "utilities"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseRent          ExpenseCategory = "rent"
	ExpenseEntertainment ExpenseCategory = "entertainment"
	ExpenseHousehold     ExpenseCategory = "household"
	ExpenseOther         ExpenseCategory = "other"
)

// ValidExpenseCategory reports whether c is a known category.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseUtilities, ExpenseFood, ExpenseRent,
		ExpenseEntertainment, ExpenseHousehold, ExpenseOther:
		return true
	}
	return false
}

// Split is the portion of an expense attributed to one member.
type Split struct {
	// UserID references the member who owes this portion.
	UserID string

	// Amount is the owed amount in the household currency, >= 0.
	Amount float64

	// Settled marks whether this portion has been paid back.
	Settled bool
}

// Expense represents one shared cost event.
//
// The sum of split amounts equals Amount within rounding tolerance: an
// equal split of an amount not evenly divisible by the number of splits
// leaves a sub-cent residual, which is accepted rather than redistributed.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// HouseholdID references the household this expense belongs to.
	HouseholdID string

	// Description is the human-readable label (e.g., "Rent").
	Description string

	// Amount is the full expense amount in the household currency, > 0.
	Amount float64

	// Category classifies the expense.
	Category ExpenseCategory

	// PaidByID references the user who paid the full amount.
	// Only this user may delete the expense.
	PaidByID string

	// Splits lists who owes what. Defaults to a single split putting
	// the full amount on the payer.
	Splits []Split

	// Date is when the expense occurred.
	Date time.Time

	// Notes is optional free-form text.
	Notes string

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}

// IsSettled reports whether every split has been settled.
func (e *Expense) IsSettled() bool {
	for _, s := range e.Splits {
		if !s.Settled {
			return false
		}
	}
	return true
}
