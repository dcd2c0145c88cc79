package chores

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/household"
	"github.com/housemate-app/housemate/internal/models"
	"github.com/housemate-app/housemate/internal/storage"
	"github.com/housemate-app/housemate/internal/storage/sqlite"
)

type fixture struct {
	svc   *Service
	store storage.Store
	house *models.Household
	alice *models.User
	bob   *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	alice := &models.User{FirstName: "Alice", LastName: "A", Email: "alice@example.com", PasswordHash: "x", IsActive: true}
	bob := &models.User{FirstName: "Bob", LastName: "B", Email: "bob@example.com", PasswordHash: "x", IsActive: true}
	for _, u := range []*models.User{alice, bob} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
	}

	now := time.Now()
	house := &models.Household{
		Name:       "Lakeview",
		AdminID:    alice.ID,
		InviteCode: "TESTCODE",
		Settings:   models.DefaultSettings(),
		IsActive:   true,
		Members: []models.Member{
			{UserID: alice.ID, Role: models.RoleAdmin, JoinedAt: now},
			{UserID: bob.ID, Role: models.RoleMember, JoinedAt: now},
		},
	}
	if err := store.CreateHousehold(ctx, house); err != nil {
		t.Fatalf("failed to create household: %v", err)
	}

	return &fixture{
		svc:   NewService(store, household.NewService(store)),
		store: store,
		house: house,
		alice: alice,
		bob:   bob,
	}
}

func (f *fixture) createChore(t *testing.T, due time.Time) *models.Chore {
	t.Helper()
	c, err := f.svc.CreateChore(context.Background(), f.house.ID, f.alice.ID, CreateChoreInput{
		Title:        "Dishes",
		AssignedToID: f.bob.ID,
		DueDate:      due,
	})
	if err != nil {
		t.Fatalf("CreateChore failed: %v", err)
	}
	return c
}

func TestCreateChore(t *testing.T) {
	f := newFixture(t)
	due := time.Now().Add(24 * time.Hour)

	c := f.createChore(t, due)

	if c.Status != models.StatusPending || c.Completed {
		t.Errorf("new chore status = %q completed = %v, want pending/false", c.Status, c.Completed)
	}
	if c.CompletedAt != nil {
		t.Errorf("new chore has CompletedAt set")
	}
	if c.Priority != models.PriorityMedium || c.Category != models.ChoreOther {
		t.Errorf("defaults = %q/%q, want medium/other", c.Priority, c.Category)
	}
	if c.CreatedByID != f.alice.ID || c.AssignedToID != f.bob.ID {
		t.Errorf("creator/assignee = %s/%s", c.CreatedByID, c.AssignedToID)
	}
}

func TestCreateChoreValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	due := time.Now().Add(time.Hour)

	tests := []struct {
		name string
		in   CreateChoreInput
	}{
		{"missing title", CreateChoreInput{AssignedToID: f.bob.ID, DueDate: due}},
		{"missing assignee", CreateChoreInput{Title: "x", DueDate: due}},
		{"missing due date", CreateChoreInput{Title: "x", AssignedToID: f.bob.ID}},
		{"unknown priority", CreateChoreInput{Title: "x", AssignedToID: f.bob.ID, DueDate: due, Priority: "urgent"}},
		{"unknown category", CreateChoreInput{Title: "x", AssignedToID: f.bob.ID, DueDate: due, Category: "gardening"}},
		{"unknown recurrence", CreateChoreInput{Title: "x", AssignedToID: f.bob.ID, DueDate: due, Recurring: "yearly"}},
		{"assignee outside household", CreateChoreInput{Title: "x", AssignedToID: "stranger", DueDate: due}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateChore(ctx, f.house.ID, f.alice.ID, tt.in)
			if !fault.IsKind(err, fault.InvalidInput) {
				t.Errorf("expected InvalidInput, got %v", err)
			}
		})
	}
}

// Toggling twice returns the chore to its original completed/status
// fields; only the completion timestamp's presence is compared, since two
// completions never share a timestamp.
func TestToggleCompletionInvolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createChore(t, time.Now().Add(time.Hour))

	once, err := f.svc.ToggleCompletion(ctx, c.ID, f.bob.ID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !once.Completed || once.Status != models.StatusCompleted || once.CompletedAt == nil {
		t.Errorf("after first toggle: completed=%v status=%q completedAt=%v",
			once.Completed, once.Status, once.CompletedAt)
	}

	twice, err := f.svc.ToggleCompletion(ctx, c.ID, f.alice.ID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if twice.Completed != c.Completed || twice.Status != c.Status {
		t.Errorf("after second toggle: completed=%v status=%q, want original %v/%q",
			twice.Completed, twice.Status, c.Completed, c.Status)
	}
	if twice.CompletedAt != nil {
		t.Errorf("after second toggle CompletedAt = %v, want nil", twice.CompletedAt)
	}

	// The toggled state survives a round trip through the store.
	stored, err := f.store.GetChore(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetChore failed: %v", err)
	}
	if stored.Completed || stored.Status != models.StatusPending || stored.CompletedAt != nil {
		t.Errorf("stored chore = completed=%v status=%q completedAt=%v, want pending",
			stored.Completed, stored.Status, stored.CompletedAt)
	}
}

func TestToggleCompletionErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createChore(t, time.Now().Add(time.Hour))

	outsider := &models.User{FirstName: "Eve", LastName: "E", Email: "eve@example.com", PasswordHash: "x", IsActive: true}
	if err := f.store.CreateUser(ctx, outsider); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if _, err := f.svc.ToggleCompletion(ctx, c.ID, outsider.ID); !fault.IsKind(err, fault.Forbidden) {
		t.Errorf("outsider toggle: expected Forbidden, got %v", err)
	}
	if _, err := f.svc.ToggleCompletion(ctx, "no-such-id", f.alice.ID); !fault.IsKind(err, fault.NotFound) {
		t.Errorf("missing chore: expected NotFound, got %v", err)
	}
}

func TestDeleteChoreAnyMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.createChore(t, time.Now().Add(time.Hour))

	// Bob did not create the chore but shares the household.
	if err := f.svc.DeleteChore(ctx, c.ID, f.bob.ID); err != nil {
		t.Fatalf("member delete failed: %v", err)
	}
	if err := f.svc.DeleteChore(ctx, c.ID, f.alice.ID); !fault.IsKind(err, fault.NotFound) {
		t.Errorf("double delete: expected NotFound, got %v", err)
	}
}

func TestOverdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	yesterday := time.Now().Add(-24 * time.Hour)
	c := f.createChore(t, yesterday)

	if !f.svc.Overdue(c) {
		t.Errorf("incomplete chore due yesterday should be overdue")
	}

	done, err := f.svc.ToggleCompletion(ctx, c.ID, f.bob.ID)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if f.svc.Overdue(done) {
		t.Errorf("completed chore must not be overdue regardless of due date")
	}

	future := f.createChore(t, time.Now().Add(24*time.Hour))
	if f.svc.Overdue(future) {
		t.Errorf("chore due tomorrow should not be overdue")
	}
}

func TestHouseholdStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Three chores: one completed, one pending future, one overdue.
	done := f.createChore(t, time.Now().Add(time.Hour))
	if _, err := f.svc.ToggleCompletion(ctx, done.ID, f.bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	f.createChore(t, time.Now().Add(24*time.Hour))
	f.createChore(t, time.Now().Add(-24*time.Hour))

	stats, err := f.svc.HouseholdStats(ctx, f.house.ID, f.alice.ID)
	if err != nil {
		t.Fatalf("HouseholdStats failed: %v", err)
	}

	want := HouseholdStats{Total: 3, Completed: 1, Pending: 2, Overdue: 1, CompletionRate: 33}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}

func TestUserStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c1 := f.createChore(t, time.Now().Add(time.Hour))
	f.createChore(t, time.Now().Add(2*time.Hour))
	if _, err := f.svc.ToggleCompletion(ctx, c1.ID, f.bob.ID); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	stats, err := f.svc.UserStats(ctx, f.bob.ID)
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}
	want := UserStats{Total: 2, Completed: 1, Pending: 1, CompletionRate: 50}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}

	// No chores: rate defined as zero.
	empty, err := f.svc.UserStats(ctx, f.alice.ID)
	if err != nil {
		t.Fatalf("UserStats failed: %v", err)
	}
	if empty.Total != 0 || empty.CompletionRate != 0 {
		t.Errorf("empty stats = %+v, want zeroes", *empty)
	}
}
