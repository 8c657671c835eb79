package interest

import (
	"time"

	"github.com/google/uuid"
)

// InterestStatus tracks the company's handling of a driver's interest.
type InterestStatus string

const (
	StatusPending  InterestStatus = "pending"
	StatusViewed   InterestStatus = "viewed"
	StatusAccepted InterestStatus = "accepted"
	StatusRejected InterestStatus = "rejected"
)

// Interest records one driver's expressed interest in one freight. A driver
// registers at most one interest per freight.
type Interest struct {
	ID        uuid.UUID
	FreightID uuid.UUID
	DriverID  uuid.UUID
	Message   string
	Status    InterestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransition reports whether a status change follows the workflow:
// pending -> viewed -> accepted|rejected, with accept/reject also allowed
// straight from pending.
func CanTransition(from, to InterestStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusViewed || to == StatusAccepted || to == StatusRejected
	case StatusViewed:
		return to == StatusAccepted || to == StatusRejected
	default:
		return false
	}
}
