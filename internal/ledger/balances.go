package ledger

import "github.com/housemate-app/housemate/internal/models"

// Balance is one member's aggregate position across a household's expenses.
type Balance struct {
	// UserID references the member.
	UserID string

	// Paid is the total of expense amounts this member paid for.
	Paid float64

	// Owed is the total of split amounts attributed to this member,
	// including their own split on expenses they paid for. Paid and
	// Owed accumulate independently; they are never netted per expense.
	Owed float64

	// Balance is Paid - Owed. Positive means the member is owed money.
	Balance float64
}

// FoldBalances folds a household's expenses into per-member balances.
//
// Every member id is seeded at zero first, so members with no expense
// activity still appear in the result. For each expense the full amount is
// added to the payer's Paid; each split amount is added to that split
// user's Owed. Balance = Paid - Owed is computed after the fold, making
// the result linear in the expense set.
//
// A payer or split user no longer in members (a departed roommate with
// surviving expenses) is added to the result on first sight.
func FoldBalances(members []string, expenses []*models.Expense) map[string]*Balance {
	balances := make(map[string]*Balance, len(members))
	for _, id := range members {
		balances[id] = &Balance{UserID: id}
	}

	at := func(id string) *Balance {
		b, ok := balances[id]
		if !ok {
			b = &Balance{UserID: id}
			balances[id] = b
		}
		return b
	}

	for _, e := range expenses {
		at(e.PaidByID).Paid += e.Amount
		for _, s := range e.Splits {
			at(s.UserID).Owed += s.Amount
		}
	}

	for _, b := range balances {
		b.Balance = b.Paid - b.Owed
	}
	return balances
}
