package interest

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, i *Interest) error
	GetByID(ctx context.Context, interestID uuid.UUID) (*Interest, error)
	GetByFreightAndDriver(ctx context.Context, freightID, driverID uuid.UUID) (*Interest, error)
	ListByFreight(ctx context.Context, freightID uuid.UUID) ([]*Interest, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*Interest, error)
	UpdateStatus(ctx context.Context, interestID uuid.UUID, status InterestStatus) error
}
