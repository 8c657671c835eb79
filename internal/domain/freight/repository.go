package freight

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for freight records and their
// price tables. List applies only store-expressible predicates; set-typed
// filtering happens above this interface.
type Repository interface {
	Create(ctx context.Context, f *Freight) error
	CreatePriceRow(ctx context.Context, row *PriceTableRow) error

	GetByID(ctx context.Context, freightID uuid.UUID) (*Freight, error)
	GetByCode(ctx context.Context, code string) (*Freight, error)
	List(ctx context.Context, query *Query) ([]*Freight, int64, error)
	PriceRowsByFreight(ctx context.Context, freightID uuid.UUID) ([]*PriceTableRow, error)

	UpdateStatus(ctx context.Context, freightID uuid.UUID, status Status) error
	Delete(ctx context.Context, freightID uuid.UUID) error
}
