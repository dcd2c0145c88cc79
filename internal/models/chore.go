package models

import "time"

// ChoreStatus is a chore's lifecycle state.
//
// Legal transitions: StatusPending <-> StatusCompleted via completion
// toggling. StatusInProgress is a declared state with no transition into
// or out of it yet; it is reserved until the product defines one.
type ChoreStatus string

const (
	StatusPending    ChoreStatus = "pending"
	StatusInProgress ChoreStatus = "in-progress"
	StatusCompleted  ChoreStatus = "completed"
)

// ChorePriority orders chores by urgency.
type ChorePriority string

const (
	PriorityLow    ChorePriority = "low"
	PriorityMedium ChorePriority = "medium"
	PriorityHigh   ChorePriority = "high"
)

// ValidChorePriority reports whether p is a known priority.
func ValidChorePriority(p ChorePriority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ChoreCategory classifies a chore.
type ChoreCategory string

const (
	ChoreCleaning    ChoreCategory = "cleaning"
	ChoreCooking     ChoreCategory = "cooking"
	ChoreShopping    ChoreCategory = "shopping"
	ChoreMaintenance ChoreCategory = "maintenance"
	ChoreOther       ChoreCategory = "other"
)

// ValidChoreCategory reports whether c is a known category.
func ValidChoreCategory(c ChoreCategory) bool {
	switch c {
	case ChoreCleaning, ChoreCooking, ChoreShopping, ChoreMaintenance, ChoreOther:
		return true
	}
	return false
}

// Frequency is how often a recurring chore repeats.
// Recurrence is stored only; no scheduler acts on it.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ValidFrequency reports whether f is a known frequency.
func ValidFrequency(f Frequency) bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// Chore represents one assignable task.
//
// Invariant: Completed == true exactly when Status == StatusCompleted
// exactly when CompletedAt != nil.
type Chore struct {
	// ID is the unique identifier for the chore (UUID format).
	ID string

	// HouseholdID references the household this chore belongs to.
	HouseholdID string

	// Title is the short task label (e.g., "Dishes").
	Title string

	// Description is optional detail text.
	Description string

	// AssignedToID references the member responsible for the chore.
	AssignedToID string

	// CreatedByID references the member who created the chore.
	CreatedByID string

	// DueDate is when the chore should be done by.
	DueDate time.Time

	// Priority orders chores by urgency.
	Priority ChorePriority

	// Status is the lifecycle state.
	Status ChoreStatus

	// Completed mirrors Status == StatusCompleted.
	Completed bool

	// CompletedAt is when the chore was last marked complete,
	// nil while incomplete.
	CompletedAt *time.Time

	// Recurring is the repeat frequency, "" for one-off chores.
	Recurring Frequency

	// Category classifies the chore.
	Category ChoreCategory

	// Notes is optional free-form text.
	Notes string

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}

// IsOverdue reports whether the chore is incomplete past its due date,
// evaluated at now. Derived, never stored.
func (c *Chore) IsOverdue(now time.Time) bool {
	return !c.Completed && now.After(c.DueDate)
}
