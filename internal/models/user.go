package models

import "strings"

// Role is a user's role within their household.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User represents a registered account.
//
// The password hash is owned by the auth package; the core services never
// read it. HouseholdID is empty while the user belongs to no household.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// FirstName and LastName make up the display name.
	FirstName string
	LastName  string

	// Email is the user's email address (unique, lowercase).
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized to API responses.
	PasswordHash string

	// HouseholdID references the household the user belongs to,
	// or "" if none. Invariant: when non-empty, the referenced
	// household's member list contains this user.
	HouseholdID string

	// Role is the user's role in their current household.
	Role Role

	// IsActive marks whether the account may authenticate.
	IsActive bool

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last modification.
	UpdatedAt int64
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Avatar returns the user's initials, e.g. "JD" for Jane Doe.
func (u *User) Avatar() string {
	var b strings.Builder
	if u.FirstName != "" {
		b.WriteString(strings.ToUpper(u.FirstName[:1]))
	}
	if u.LastName != "" {
		b.WriteString(strings.ToUpper(u.LastName[:1]))
	}
	return b.String()
}
