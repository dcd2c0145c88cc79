package chores

import (
	"context"
	"math"

	"github.com/housemate-app/housemate/internal/models"
)

// HouseholdStats aggregates chore completion across a household.
type HouseholdStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate int // rounded percent, 0 when Total is 0
}

// UserStats aggregates chore completion for one assignee.
type UserStats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // rounded percent, 0 when Total is 0
}

// HouseholdStats counts the household's chores by state for a requesting
// member. Overdue means incomplete with the due date strictly in the past.
func (s *Service) HouseholdStats(ctx context.Context, householdID, requesterID string) (*HouseholdStats, error) {
	if _, err := s.membership.RequireMembership(ctx, requesterID, householdID); err != nil {
		return nil, err
	}
	list, err := s.store.ListChores(ctx, householdID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &HouseholdStats{Total: len(list)}
	for _, c := range list {
		if c.Completed {
			stats.Completed++
		} else {
			stats.Pending++
			if c.IsOverdue(now) {
				stats.Overdue++
			}
		}
	}
	stats.CompletionRate = completionRate(stats.Completed, stats.Total)
	return stats, nil
}

// UserStats counts the chores assigned to userID by state.
func (s *Service) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	list, err := s.store.ListChoresByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{Total: len(list)}
	for _, c := range list {
		if c.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	stats.CompletionRate = completionRate(stats.Completed, stats.Total)
	return stats, nil
}

// Overdue reports whether the chore is overdue as of the service clock.
func (s *Service) Overdue(c *models.Chore) bool {
	return c.IsOverdue(s.now())
}

func completionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}
