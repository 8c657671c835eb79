package company

import (
	"context"

	"github.com/google/uuid"
)

// Repository resolves companies and their collaborators.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Company, error)
	GetByID(ctx context.Context, companyID uuid.UUID) (*Company, error)
	Collaborators(ctx context.Context, companyID uuid.UUID) ([]*Collaborator, error)
}
