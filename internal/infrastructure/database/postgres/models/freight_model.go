package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FreightModel represents the database model for freight records. Route
// stops, accepted type sets, scheduling rules, benefits and collaborator ids
// are stored denormalized as jsonb; accepted type columns in particular hold
// heterogeneous historical shapes and are normalized at the read boundary.
type FreightModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	HumanCode string    `gorm:"type:varchar(16);not null;uniqueIndex"`

	FreightType string `gorm:"type:varchar(20);not null;index"`
	Status      string `gorm:"type:varchar(20);not null;default:'pending';index"`

	OriginCity  string `gorm:"type:varchar(120);not null;index"`
	OriginState string `gorm:"type:varchar(2);not null;index"`

	DestinationCity  string `gorm:"type:varchar(120);not null;index"`
	DestinationState string `gorm:"type:varchar(2);not null;index"`

	Stops datatypes.JSON `gorm:"type:jsonb"`

	MerchandiseType string   `gorm:"type:varchar(120);not null"`
	WeightKg        *float64 `gorm:"type:decimal(10,2)"`
	DeclaredValue   *float64 `gorm:"type:decimal(14,2)"`
	Description     *string  `gorm:"type:text"`

	NeedsAssembly  bool `gorm:"not null;default:false"`
	NeedsPackaging bool `gorm:"not null;default:false"`
	NeedsInsurance bool `gorm:"not null;default:false"`
	NeedsTracker   bool `gorm:"not null;default:false;index"`
	NeedsHelper    bool `gorm:"not null;default:false"`

	AcceptedVehicleTypes datatypes.JSON `gorm:"type:jsonb"`
	AcceptedBodyTypes    datatypes.JSON `gorm:"type:jsonb"`

	SchedulingRules datatypes.JSON `gorm:"type:jsonb"`
	Benefits        datatypes.JSON `gorm:"type:jsonb"`

	TollPaidBy    string `gorm:"type:varchar(20)"`
	TollDirection string `gorm:"type:varchar(20)"`

	ValueMode    string   `gorm:"type:varchar(10)"`
	OfferedValue *float64 `gorm:"type:decimal(14,2)"`

	CollectionDate time.Time `gorm:"type:date;not null"`
	CollectionTime string    `gorm:"type:varchar(5)"`

	CompanyID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CollaboratorIDs datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

func (FreightModel) TableName() string {
	return "freights"
}

// PriceTableRowModel is one distance-banded price row belonging to a freight.
type PriceTableRowModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FreightID    uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleType  string    `gorm:"type:varchar(60);not null"`
	RangeStartKm float64   `gorm:"type:decimal(8,1);not null"`
	RangeEndKm   float64   `gorm:"type:decimal(8,1);not null"`
	Price        float64   `gorm:"type:decimal(12,2);not null"`

	Freight *FreightModel `gorm:"foreignKey:FreightID"`
}

func (PriceTableRowModel) TableName() string {
	return "freight_price_tables"
}
