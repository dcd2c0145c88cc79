package api

import (
	"net/http"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/ledger"
	"github.com/housemate-app/housemate/internal/models"
)

type createExpenseRequest struct {
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	Category    string             `json:"category"`
	Date        *time.Time         `json:"date"`
	Notes       string             `json:"notes"`
	Splits      []splitRequestItem `json:"splits"`
}

type splitRequestItem struct {
	UserID string  `json:"userId"`
	Amount float64 `json:"amount"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to create expenses"))
		return
	}

	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	in := ledger.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    models.ExpenseCategory(req.Category),
		Notes:       req.Notes,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	for _, sp := range req.Splits {
		in.Splits = append(in.Splits, models.Split{UserID: sp.UserID, Amount: sp.Amount})
	}

	e, err := s.expenses.CreateExpense(r.Context(), user.HouseholdID, user.ID, in)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, viewExpense(e))
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to list expenses"))
		return
	}

	list, err := s.expenses.ListExpenses(r.Context(), user.HouseholdID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]expenseView, len(list))
	for i, e := range list {
		views[i] = viewExpense(e)
	}
	writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if err := s.expenses.DeleteExpense(r.Context(), r.PathValue("id"), user.ID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBalances(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r.Context())
	if user.HouseholdID == "" {
		writeError(w, fault.New(fault.Forbidden, "join a household to view balances"))
		return
	}

	balances, err := s.expenses.CalculateBalances(r.Context(), user.HouseholdID, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, viewBalances(balances))
}
