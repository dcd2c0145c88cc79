// Package household implements the membership manager: household creation,
// invite-code joining, leaving, and the membership checks the expense and
// chore services rely on.
package household

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/housemate-app/housemate/internal/fault"
	"github.com/housemate-app/housemate/internal/models"
	"github.com/housemate-app/housemate/internal/storage"
)

// inviteRetries bounds invite-code regeneration on unique-index collision.
// A collision among 36^8 codes is rare enough that one retry almost always
// suffices.
const inviteRetries = 3

// Service owns household membership state.
type Service struct {
	store storage.Store
}

// NewService creates a membership service backed by store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// CreateHousehold creates a household with creator as sole admin member
// and points the creator's user record at it. The household insert and the
// user update are a single store transaction.
func (s *Service) CreateHousehold(ctx context.Context, creatorID, name, description string) (*models.Household, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fault.New(fault.InvalidInput, "household name is required")
	}

	creator, err := s.store.GetUserByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if creator.HouseholdID != "" {
		return nil, fault.New(fault.AlreadyMember,
			"user %s already belongs to a household", creatorID)
	}

	for attempt := 0; ; attempt++ {
		code, err := newInviteCode()
		if err != nil {
			return nil, fault.Wrap(fault.StoreFailure, err, "failed to generate invite code")
		}

		h := &models.Household{
			Name:        strings.TrimSpace(name),
			Description: strings.TrimSpace(description),
			AdminID:     creatorID,
			InviteCode:  code,
			Settings:    models.DefaultSettings(),
			IsActive:    true,
			Members: []models.Member{{
				UserID:   creatorID,
				Role:     models.RoleAdmin,
				JoinedAt: time.Now(),
			}},
		}

		err = s.store.CreateHousehold(ctx, h)
		if fault.IsKind(err, fault.Conflict) && attempt < inviteRetries {
			slog.Warn("invite code collision, retrying", "attempt", attempt+1)
			continue
		}
		if err != nil {
			return nil, err
		}

		slog.Info("household created",
			"household_id", h.ID, "admin_id", creatorID, "invite_code", h.InviteCode)
		return h, nil
	}
}

// GetHousehold returns the household a member belongs to.
func (s *Service) GetHousehold(ctx context.Context, userID, householdID string) (*models.Household, error) {
	return s.RequireMembership(ctx, userID, householdID)
}

// JoinHousehold adds the user to the household matching code with the
// member role and points the user's record at it.
func (s *Service) JoinHousehold(ctx context.Context, userID, code string) (*models.Household, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HouseholdID != "" {
		return nil, fault.New(fault.AlreadyMember,
			"user %s already belongs to a household", userID)
	}

	h, err := s.store.GetHouseholdByInviteCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if h.HasMember(userID) {
		return nil, fault.New(fault.AlreadyMember,
			"user %s is already a member of household %s", userID, h.ID)
	}

	m := models.Member{UserID: userID, Role: models.RoleMember, JoinedAt: time.Now()}
	if err := s.store.AddMember(ctx, h.ID, m); err != nil {
		return nil, err
	}
	h.Members = append(h.Members, m)

	slog.Info("user joined household", "household_id", h.ID, "user_id", userID)
	return h, nil
}

// LeaveHousehold removes the user's member entry and clears their
// household reference. The admin cannot leave: transferring the admin role
// or dissolving the household is deliberately unsupported.
func (s *Service) LeaveHousehold(ctx context.Context, userID, householdID string) error {
	h, err := s.store.GetHousehold(ctx, householdID)
	if err != nil {
		return err
	}
	if !h.HasMember(userID) {
		return fault.New(fault.Forbidden,
			"user %s is not a member of household %s", userID, householdID)
	}
	if h.AdminID == userID {
		return fault.New(fault.InvalidOperation,
			"admin cannot leave household %s", householdID)
	}

	if err := s.store.RemoveMember(ctx, householdID, userID); err != nil {
		return err
	}

	slog.Info("user left household", "household_id", householdID, "user_id", userID)
	return nil
}

// RequireMembership loads the household and verifies userID is in its
// member list. The admin is always a member. Used by the expense and
// chore services to validate participants.
func (s *Service) RequireMembership(ctx context.Context, userID, householdID string) (*models.Household, error) {
	h, err := s.store.GetHousehold(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if !h.HasMember(userID) {
		return nil, fault.New(fault.Forbidden,
			"user %s is not a member of household %s", userID, householdID)
	}
	return h, nil
}
