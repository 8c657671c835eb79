package company

import (
	"time"

	"github.com/google/uuid"
)

// Company owns freight records. Collaborators are the staff accounts allowed
// to be assigned as responsible for a freight.
type Company struct {
	ID   uuid.UUID
	Name string

	// CanCreateFreight mirrors the subscription/payment provider's
	// capability flag. This service honors it before submission but never
	// computes it.
	CanCreateFreight bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Collaborator is a company staff member selectable as responsible for a
// freight request.
type Collaborator struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Email     string
	Active    bool
}
