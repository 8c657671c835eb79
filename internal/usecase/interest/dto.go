package interest

import (
	"time"

	domainInterest "freightconnect/internal/domain/interest"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Message string `json:"message" validate:"omitempty,max=1000"`
}

type RespondRequest struct {
	Status string `json:"status" validate:"required,oneof=viewed accepted rejected"`
}

type InterestResponse struct {
	ID        uuid.UUID `json:"id"`
	FreightID uuid.UUID `json:"freight_id"`
	DriverID  uuid.UUID `json:"driver_id"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToInterestResponse(i *domainInterest.Interest) *InterestResponse {
	if i == nil {
		return nil
	}
	return &InterestResponse{
		ID:        i.ID,
		FreightID: i.FreightID,
		DriverID:  i.DriverID,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
