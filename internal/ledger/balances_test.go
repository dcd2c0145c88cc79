package ledger

import (
	"math"
	"testing"

	"github.com/housemate-app/housemate/internal/models"
)

func expense(paidBy string, amount float64, splits ...models.Split) *models.Expense {
	return &models.Expense{PaidByID: paidBy, Amount: amount, Splits: splits}
}

func TestFoldBalancesRentScenario(t *testing.T) {
	// A pays 1200 rent split equally with B.
	rent := expense("a", 1200,
		models.Split{UserID: "a", Amount: 600},
		models.Split{UserID: "b", Amount: 600},
	)

	balances := FoldBalances([]string{"a", "b"}, []*models.Expense{rent})

	a := balances["a"]
	if a.Paid != 1200 || a.Owed != 600 || a.Balance != 600 {
		t.Errorf("a = {paid %v owed %v balance %v}, want {1200 600 600}", a.Paid, a.Owed, a.Balance)
	}
	b := balances["b"]
	if b.Paid != 0 || b.Owed != 600 || b.Balance != -600 {
		t.Errorf("b = {paid %v owed %v balance %v}, want {0 600 -600}", b.Paid, b.Owed, b.Balance)
	}
}

func TestFoldBalancesSeedsInactiveMembers(t *testing.T) {
	rent := expense("a", 100, models.Split{UserID: "a", Amount: 100})

	balances := FoldBalances([]string{"a", "b", "c"}, []*models.Expense{rent})

	for _, id := range []string{"b", "c"} {
		b, ok := balances[id]
		if !ok {
			t.Fatalf("member %s missing from balances", id)
		}
		if b.Paid != 0 || b.Owed != 0 || b.Balance != 0 {
			t.Errorf("member %s = %+v, want all zero", id, b)
		}
	}
}

func TestFoldBalancesDepartedPayerStillCounted(t *testing.T) {
	// Payer no longer in the member list: added on first sight.
	old := expense("gone", 60, models.Split{UserID: "a", Amount: 60})

	balances := FoldBalances([]string{"a"}, []*models.Expense{old})

	if balances["gone"] == nil || balances["gone"].Paid != 60 {
		t.Errorf("departed payer not folded: %+v", balances["gone"])
	}
	if balances["a"].Balance != -60 {
		t.Errorf("a balance = %v, want -60", balances["a"].Balance)
	}
}

// Balances are linear in the expense set: folding {e1, e2} equals the
// pointwise sum of folding {e1} and {e2}.
func TestFoldBalancesSuperposition(t *testing.T) {
	members := []string{"a", "b", "c"}
	e1 := expense("a", 90,
		models.Split{UserID: "a", Amount: 30},
		models.Split{UserID: "b", Amount: 30},
		models.Split{UserID: "c", Amount: 30},
	)
	e2 := expense("b", 40,
		models.Split{UserID: "a", Amount: 20},
		models.Split{UserID: "b", Amount: 20},
	)

	both := FoldBalances(members, []*models.Expense{e1, e2})
	only1 := FoldBalances(members, []*models.Expense{e1})
	only2 := FoldBalances(members, []*models.Expense{e2})

	for _, id := range members {
		wantPaid := only1[id].Paid + only2[id].Paid
		wantOwed := only1[id].Owed + only2[id].Owed
		wantBalance := only1[id].Balance + only2[id].Balance
		got := both[id]
		if math.Abs(got.Paid-wantPaid) > 1e-9 ||
			math.Abs(got.Owed-wantOwed) > 1e-9 ||
			math.Abs(got.Balance-wantBalance) > 1e-9 {
			t.Errorf("%s: fold{e1,e2} = %+v, want pointwise sum {paid %v owed %v balance %v}",
				id, got, wantPaid, wantOwed, wantBalance)
		}
	}
}

func TestFoldBalancesEmpty(t *testing.T) {
	balances := FoldBalances([]string{"a"}, nil)
	if len(balances) != 1 || balances["a"].Balance != 0 {
		t.Errorf("expected single zero balance, got %+v", balances)
	}
}
