package models

// Status is the lifecycle state shared by all soft-deletable rows.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

// CanTransition reports whether a row may move from s to next.
// Archiving is reversible; deletion is terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusActive:
		return next == StatusArchived || next == StatusDeleted
	case StatusArchived:
		return next == StatusActive || next == StatusDeleted
	default:
		return false
	}
}

// IsActive reports whether the row is live (not archived or deleted).
func (s Status) IsActive() bool {
	return s == StatusActive
}
