package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel represents the database model for companies.
type CompanyModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name             string    `gorm:"type:varchar(200);not null"`
	CanCreateFreight bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// CollaboratorModel links a user account to its company. UserID comes from
// the external auth provider.
type CollaboratorModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Active    bool      `gorm:"not null;default:true"`

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

func (CollaboratorModel) TableName() string {
	return "collaborators"
}
