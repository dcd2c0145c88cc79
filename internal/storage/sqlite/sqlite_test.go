package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testUser(email string) *models.User {
	return &models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hash",
		IsActive:     true,
	}
}

func TestCreateUserPopulatesFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if u.ID == "" {
		t.Error("expected generated ID")
	}
	if u.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}

	got, err := store.GetUserByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != u.ID || got.HouseholdID != "" || !got.IsActive {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.CreateUser(ctx, testUser("a@example.com")); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	err := store.CreateUser(ctx, testUser("a@example.com"))
	if !fault.IsKind(err, fault.Conflict) {
		t.Errorf("expected Conflict, got %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetUserByID(context.Background(), "missing")
	if !fault.IsKind(err, fault.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func createTestHousehold(t *testing.T, store *Store, code string, members ...*models.User) *models.Household {
	t.Helper()

	h := &models.Household{
		Name:       "Test House",
		InviteCode: code,
		Settings:   models.DefaultSettings(),
		IsActive:   true,
	}
	for i, u := range members {
		role := models.RoleMember
		if i == 0 {
			role = models.RoleAdmin
			h.AdminID = u.ID
		}
		h.Members = append(h.Members, models.Member{UserID: u.ID, Role: role, JoinedAt: time.Now()})
	}
	if err := store.CreateHousehold(context.Background(), h); err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	return h
}

func TestCreateHouseholdAtomicWithUserUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	h := createTestHousehold(t, store, "CODE0001", u)

	got, err := store.GetHousehold(ctx, h.ID)
	if err != nil {
		t.Fatalf("GetHousehold failed: %v", err)
	}
	if len(got.Members) != 1 || got.Members[0].Role != models.RoleAdmin {
		t.Errorf("members = %+v", got.Members)
	}

	// The same transaction pointed the user at the household.
	user, err := store.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.HouseholdID != h.ID || user.Role != models.RoleAdmin {
		t.Errorf("user after create = householdID %q role %q", user.HouseholdID, user.Role)
	}
}

func TestCreateHouseholdDuplicateInviteCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testUser("a@example.com")
	b := testUser("b@example.com")
	for _, u := range []*models.User{a, b} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}

	createTestHousehold(t, store, "SAMECODE", a)

	h2 := &models.Household{
		Name:       "Other",
		AdminID:    b.ID,
		InviteCode: "SAMECODE",
		Settings:   models.DefaultSettings(),
		IsActive:   true,
		Members:    []models.Member{{UserID: b.ID, Role: models.RoleAdmin, JoinedAt: time.Now()}},
	}
	err := store.CreateHousehold(ctx, h2)
	if !fault.IsKind(err, fault.Conflict) {
		t.Errorf("expected Conflict, got %v", err)
	}

	// The failed transaction must not have touched b's user record.
	user, err := store.GetUserByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.HouseholdID != "" {
		t.Errorf("user household = %q after rolled-back create, want empty", user.HouseholdID)
	}
}

func TestAddAndRemoveMember(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := testUser("a@example.com")
	b := testUser("b@example.com")
	for _, u := range []*models.User{a, b} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
	}
	h := createTestHousehold(t, store, "CODE0001", a)

	if err := store.AddMember(ctx, h.ID, models.Member{UserID: b.ID, Role: models.RoleMember, JoinedAt: time.Now()}); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}

	user, err := store.GetUserByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.HouseholdID != h.ID {
		t.Errorf("user household = %q, want %q", user.HouseholdID, h.ID)
	}

	// Duplicate membership hits the primary key.
	err = store.AddMember(ctx, h.ID, models.Member{UserID: b.ID, Role: models.RoleMember, JoinedAt: time.Now()})
	if !fault.IsKind(err, fault.Conflict) {
		t.Errorf("duplicate member: expected Conflict, got %v", err)
	}

	if err := store.RemoveMember(ctx, h.ID, b.ID); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	user, err = store.GetUserByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.HouseholdID != "" {
		t.Errorf("user household = %q after remove, want empty", user.HouseholdID)
	}

	if err := store.RemoveMember(ctx, h.ID, b.ID); !fault.IsKind(err, fault.NotFound) {
		t.Errorf("removing absent member: expected NotFound, got %v", err)
	}
}

func TestExpenseRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	h := createTestHousehold(t, store, "CODE0001", u)

	e := &models.Expense{
		HouseholdID: h.ID,
		Description: "Rent",
		Amount:      1200,
		Category:    models.ExpenseRent,
		PaidByID:    u.ID,
		Date:        time.Now().Add(-time.Hour),
		Splits: []models.Split{
			{UserID: u.ID, Amount: 1200},
		},
	}
	if err := store.CreateExpense(ctx, e); err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	got, err := store.GetExpense(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetExpense failed: %v", err)
	}
	if got.Description != "Rent" || got.Amount != 1200 || got.Category != models.ExpenseRent {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Splits) != 1 || got.Splits[0].Amount != 1200 || got.Splits[0].Settled {
		t.Errorf("splits mismatch: %+v", got.Splits)
	}

	if err := store.DeleteExpense(ctx, e.ID); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if _, err := store.GetExpense(ctx, e.ID); !fault.IsKind(err, fault.NotFound) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestChoreUpdateRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	h := createTestHousehold(t, store, "CODE0001", u)

	c := &models.Chore{
		HouseholdID:  h.ID,
		Title:        "Dishes",
		AssignedToID: u.ID,
		CreatedByID:  u.ID,
		DueDate:      time.Now().Add(time.Hour),
		Priority:     models.PriorityHigh,
		Status:       models.StatusPending,
		Category:     models.ChoreCleaning,
		Recurring:    models.FrequencyWeekly,
	}
	if err := store.CreateChore(ctx, c); err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}

	now := time.Now()
	c.Completed = true
	c.Status = models.StatusCompleted
	c.CompletedAt = &now
	if err := store.UpdateChore(ctx, c); err != nil {
		t.Fatalf("UpdateChore failed: %v", err)
	}

	got, err := store.GetChore(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if !got.Completed || got.Status != models.StatusCompleted || got.CompletedAt == nil {
		t.Errorf("updated chore = %+v", got)
	}
	if got.Recurring != models.FrequencyWeekly || got.Priority != models.PriorityHigh {
		t.Errorf("fields lost on round trip: %+v", got)
	}

	if err := store.UpdateChore(ctx, &models.Chore{ID: "missing", DueDate: time.Now()}); !fault.IsKind(err, fault.NotFound) {
		t.Errorf("updating missing chore: expected NotFound, got %v", err)
	}
}

func TestListChoresOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	u := testUser("a@example.com")
	if err := store.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	h := createTestHousehold(t, store, "CODE0001", u)

	for _, due := range []time.Duration{72 * time.Hour, 24 * time.Hour, 48 * time.Hour} {
		c := &models.Chore{
			HouseholdID:  h.ID,
			Title:        due.String(),
			AssignedToID: u.ID,
			CreatedByID:  u.ID,
			DueDate:      time.Now().Add(due),
			Priority:     models.PriorityMedium,
			Status:       models.StatusPending,
			Category:     models.ChoreOther,
		}
		if err := store.CreateChore(ctx, c); err != nil {
			t.Fatalf("CreateChore failed: %v", err)
		}
	}

	list, err := store.ListChores(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListChores failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("chores = %d, want 3", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i].DueDate.Before(list[i-1].DueDate) {
			t.Errorf("chores not ordered by due date: %v before %v",
				list[i].DueDate, list[i-1].DueDate)
		}
	}
}
