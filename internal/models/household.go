package models

import "time"

// SplitMethod selects how expense splits are computed for a household.
type SplitMethod string

const (
	// SplitEqual divides each expense equally among its listed splits.
	SplitEqual SplitMethod = "equal"
	// SplitCustom accepts caller-provided split amounts, validated
	// against the expense total.
	SplitCustom SplitMethod = "custom"
)

// Member is one entry in a household's member list.
type Member struct {
	// UserID references the member's user record.
	UserID string

	// Role is "admin" or "member". Exactly one member holds the
	// admin role, and it is always the household's AdminID.
	Role Role

	// JoinedAt is when the user joined the household.
	JoinedAt time.Time
}

// Settings holds per-household configuration.
type Settings struct {
	// Currency is the ISO currency code for expense amounts.
	Currency string

	// SplitMethod selects the expense split strategy.
	SplitMethod SplitMethod
}

// Household represents a group of roommates sharing expenses and chores.
//
// Invariants maintained by the household service:
//   - AdminID appears in Members with RoleAdmin
//   - a user appears at most once in Members
//   - InviteCode is unique across households and never changes
type Household struct {
	// ID is the unique identifier for the household (UUID format).
	ID string

	// Name is the display name (e.g., "Lakeview").
	Name string

	// Description is an optional free-form description.
	Description string

	// AdminID references the user who administers the household.
	AdminID string

	// Members is the household's member list, in join order.
	Members []Member

	// InviteCode is the 8-character uppercase alphanumeric code
	// other users present to join.
	InviteCode string

	// Settings holds currency and split configuration.
	Settings Settings

	// IsActive marks whether the household is live.
	IsActive bool

	// CreatedAt is the Unix timestamp when the household was created.
	CreatedAt int64
}

// HasMember reports whether userID appears in the member list.
func (h *Household) HasMember(userID string) bool {
	for _, m := range h.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// DefaultSettings returns the settings applied to new households.
func DefaultSettings() Settings {
	return Settings{Currency: "USD", SplitMethod: SplitEqual}
}
