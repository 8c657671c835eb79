package models

import (
	"time"

	"github.com/google/uuid"
)

// InterestModel represents the database model for driver interests.
type InterestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FreightID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_interest_freight_driver"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_interest_freight_driver"`
	Message   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Freight *FreightModel `gorm:"foreignKey:FreightID"`
}

func (InterestModel) TableName() string {
	return "freight_interests"
}
