// Package chores implements the chore lifecycle: creation, completion
// toggling, deletion, overdue derivation, and completion statistics.
package chores

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
	"github.com/housemate-app/housemate/internal/storage"
)

// Membership is the slice of the membership manager the chore service needs.
type Membership interface {
	RequireMembership(ctx context.Context, userID, householdID string) (*models.Household, error)
}

// Service owns chore records and their completion state.
type Service struct {
	store      storage.Store
	membership Membership

	// now is swapped in tests to pin overdue checks.
	now func() time.Time
}

// NewService creates a chore service backed by store, validating assignees
// through membership.
func NewService(store storage.Store, membership Membership) *Service {
	return &Service{store: store, membership: membership, now: time.Now}
}

// CreateChoreInput carries the caller-supplied fields of a new chore.
type CreateChoreInput struct {
	Title        string
	Description  string
	AssignedToID string
	DueDate      time.Time
	Priority     models.ChorePriority
	Category     models.ChoreCategory
	Recurring    models.Frequency
	Notes        string
}

// CreateChore records a new pending chore created by creatorID. The
// assignee must be a member of the same household.
func (s *Service) CreateChore(ctx context.Context, householdID, creatorID string, in CreateChoreInput) (*models.Chore, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fault.New(fault.InvalidInput, "chore title is required")
	}
	if in.AssignedToID == "" {
		return nil, fault.New(fault.InvalidInput, "chore assignee is required")
	}
	if in.DueDate.IsZero() {
		return nil, fault.New(fault.InvalidInput, "chore due date is required")
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !models.ValidChorePriority(in.Priority) {
		return nil, fault.New(fault.InvalidInput, "unknown chore priority %q", in.Priority)
	}
	if in.Category == "" {
		in.Category = models.ChoreOther
	}
	if !models.ValidChoreCategory(in.Category) {
		return nil, fault.New(fault.InvalidInput, "unknown chore category %q", in.Category)
	}
	if in.Recurring != "" && !models.ValidFrequency(in.Recurring) {
		return nil, fault.New(fault.InvalidInput, "unknown recurrence %q", in.Recurring)
	}

	h, err := s.membership.RequireMembership(ctx, creatorID, householdID)
	if err != nil {
		return nil, err
	}
	if !h.HasMember(in.AssignedToID) {
		return nil, fault.New(fault.InvalidInput,
			"assignee %s is not a member of household %s", in.AssignedToID, householdID)
	}

	c := &models.Chore{
		HouseholdID:  householdID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		AssignedToID: in.AssignedToID,
		CreatedByID:  creatorID,
		DueDate:      in.DueDate,
		Priority:     in.Priority,
		Status:       models.StatusPending,
		Completed:    false,
		Recurring:    in.Recurring,
		Category:     in.Category,
		Notes:        strings.TrimSpace(in.Notes),
	}

	if err := s.store.CreateChore(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("chore created",
		"chore_id", c.ID,
		"household_id", householdID,
		"assigned_to", c.AssignedToID,
		"due_date", c.DueDate,
	)
	return c, nil
}

// ListChores returns the household's chores, earliest due first, for a
// requesting member.
func (s *Service) ListChores(ctx context.Context, householdID, requesterID string) ([]*models.Chore, error) {
	if _, err := s.membership.RequireMembership(ctx, requesterID, householdID); err != nil {
		return nil, err
	}
	return s.store.ListChores(ctx, householdID)
}

// ToggleCompletion flips a chore between completed and pending. Any member
// of the chore's household may toggle it. The completed flag, status, and
// completion timestamp always change together.
func (s *Service) ToggleCompletion(ctx context.Context, choreID, requesterID string) (*models.Chore, error) {
	c, err := s.requireSameHousehold(ctx, choreID, requesterID)
	if err != nil {
		return nil, err
	}

	if c.Completed {
		c.Completed = false
		c.Status = models.StatusPending
		c.CompletedAt = nil
	} else {
		now := s.now()
		c.Completed = true
		c.Status = models.StatusCompleted
		c.CompletedAt = &now
	}

	if err := s.store.UpdateChore(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("chore toggled",
		"chore_id", c.ID, "completed", c.Completed, "requester_id", requesterID)
	return c, nil
}

// DeleteChore removes a chore. Any member of the chore's household may
// delete it; there is no creator-only restriction, unlike expenses.
func (s *Service) DeleteChore(ctx context.Context, choreID, requesterID string) error {
	if _, err := s.requireSameHousehold(ctx, choreID, requesterID); err != nil {
		return err
	}

	if err := s.store.DeleteChore(ctx, choreID); err != nil {
		return err
	}

	slog.Info("chore deleted", "chore_id", choreID, "requester_id", requesterID)
	return nil
}

// requireSameHousehold loads the chore and verifies the requester belongs
// to its household.
func (s *Service) requireSameHousehold(ctx context.Context, choreID, requesterID string) (*models.Chore, error) {
	c, err := s.store.GetChore(ctx, choreID)
	if err != nil {
		return nil, err
	}
	if _, err := s.membership.RequireMembership(ctx, requesterID, c.HouseholdID); err != nil {
		return nil, err
	}
	return c, nil
}
