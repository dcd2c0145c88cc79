package api

import (
	"time"

	"github.com/housemate-app/housemate/internal/chores"
	"github.com/housemate-app/housemate/internal/ledger"
	"github.com/housemate-app/housemate/internal/models"
)

// userView is the public JSON shape of a user. The password hash never
// leaves the auth package boundary.
type userView struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	Role        string `json:"role"`
	HouseholdID string `json:"householdId,omitempty"`
}

func viewUser(u *models.User) userView {
	return userView{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Avatar:      u.Avatar(),
		Role:        string(u.Role),
		HouseholdID: u.HouseholdID,
	}
}

type memberView struct {
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type settingsView struct {
	Currency    string `json:"currency"`
	SplitMethod string `json:"splitMethod"`
}

type householdView struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	AdminID     string       `json:"adminId"`
	Members     []memberView `json:"members"`
	InviteCode  string       `json:"inviteCode"`
	Settings    settingsView `json:"settings"`
}

func viewHousehold(h *models.Household) householdView {
	members := make([]memberView, len(h.Members))
	for i, m := range h.Members {
		members[i] = memberView{UserID: m.UserID, Role: string(m.Role), JoinedAt: m.JoinedAt}
	}
	return householdView{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		AdminID:     h.AdminID,
		Members:     members,
		InviteCode:  h.InviteCode,
		Settings: settingsView{
			Currency:    h.Settings.Currency,
			SplitMethod: string(h.Settings.SplitMethod),
		},
	}
}

type splitView struct {
	UserID  string  `json:"userId"`
	Amount  float64 `json:"amount"`
	Settled bool    `json:"settled"`
}

type expenseView struct {
	ID          string      `json:"id"`
	HouseholdID string      `json:"householdId"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Category    string      `json:"category"`
	PaidByID    string      `json:"paidBy"`
	Splits      []splitView `json:"splits"`
	Date        time.Time   `json:"date"`
	Notes       string      `json:"notes,omitempty"`
	IsSettled   bool        `json:"isSettled"`
}

func viewExpense(e *models.Expense) expenseView {
	splits := make([]splitView, len(e.Splits))
	for i, sp := range e.Splits {
		splits[i] = splitView{UserID: sp.UserID, Amount: sp.Amount, Settled: sp.Settled}
	}
	return expenseView{
		ID:          e.ID,
		HouseholdID: e.HouseholdID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		PaidByID:    e.PaidByID,
		Splits:      splits,
		Date:        e.Date,
		Notes:       e.Notes,
		IsSettled:   e.IsSettled(),
	}
}

type balanceView struct {
	UserID  string  `json:"userId"`
	Paid    float64 `json:"paid"`
	Owed    float64 `json:"owed"`
	Balance float64 `json:"balance"`
}

func viewBalances(balances map[string]*ledger.Balance) []balanceView {
	views := make([]balanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, balanceView{
			UserID:  b.UserID,
			Paid:    b.Paid,
			Owed:    b.Owed,
			Balance: b.Balance,
		})
	}
	return views
}

type choreView struct {
	ID           string     `json:"id"`
	HouseholdID  string     `json:"householdId"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	AssignedToID string     `json:"assignedTo"`
	CreatedByID  string     `json:"createdBy"`
	DueDate      time.Time  `json:"dueDate"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	Recurring    string     `json:"recurring,omitempty"`
	Category     string     `json:"category"`
	Notes        string     `json:"notes,omitempty"`
	Overdue      bool       `json:"overdue"`
}

func (s *Server) viewChore(c *models.Chore) choreView {
	return choreView{
		ID:           c.ID,
		HouseholdID:  c.HouseholdID,
		Title:        c.Title,
		Description:  c.Description,
		AssignedToID: c.AssignedToID,
		CreatedByID:  c.CreatedByID,
		DueDate:      c.DueDate,
		Priority:     string(c.Priority),
		Status:       string(c.Status),
		Completed:    c.Completed,
		CompletedAt:  c.CompletedAt,
		Recurring:    string(c.Recurring),
		Category:     string(c.Category),
		Notes:        c.Notes,
		Overdue:      s.chores.Overdue(c),
	}
}

type householdStatsView struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	Overdue        int `json:"overdue"`
	CompletionRate int `json:"completionRate"`
}

func viewHouseholdStats(st *chores.HouseholdStats) householdStatsView {
	return householdStatsView{
		Total:          st.Total,
		Completed:      st.Completed,
		Pending:        st.Pending,
		Overdue:        st.Overdue,
		CompletionRate: st.CompletionRate,
	}
}

type userStatsView struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}

func viewUserStats(st *chores.UserStats) userStatsView {
	return userStatsView{
		Total:          st.Total,
		Completed:      st.Completed,
		Pending:        st.Pending,
		CompletionRate: st.CompletionRate,
	}
}
