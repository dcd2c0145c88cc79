package ledger

import "github.com/housemate-app/housemate/internal/models"

// splitTolerance is the accepted gap between an expense amount and the sum
// of caller-provided split amounts, in currency units.
const splitTolerance = 0.01

// RecomputeEqualSplit replaces each split's amount with an equal share of
// the expense amount. The denominator is the number of listed splits, not
// the household size. Straight division: when the amount is not evenly
// divisible the sub-cent residual between amount and the summed splits is
// accepted, not redistributed.
func RecomputeEqualSplit(e *models.Expense) {
	n := len(e.Splits)
	if n == 0 {
		return
	}
	share := e.Amount / float64(n)
	for i := range e.Splits {
		e.Splits[i].Amount = share
	}
}

// splitSum totals the split amounts of an expense.
func splitSum(splits []models.Split) float64 {
	var sum float64
	for _, s := range splits {
		sum += s.Amount
	}
	return sum
}
