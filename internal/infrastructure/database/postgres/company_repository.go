package postgres

import (
	"context"
	"errors"
	"fmt"

	"freightconnect/internal/domain/company"
	"freightconnect/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *DB
}

func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*company.Company, error) {
	var collab models.CollaboratorModel
	err := r.db.DB.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		First(&collab).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, company.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve collaborator: %w", err)
	}

	return r.GetByID(ctx, collab.CompanyID)
}

func (r *CompanyRepository) GetByID(ctx context.Context, companyID uuid.UUID) (*company.Company, error) {
	var dbModel models.CompanyModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", companyID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, company.ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &company.Company{
		ID:               dbModel.ID,
		Name:             dbModel.Name,
		CanCreateFreight: dbModel.CanCreateFreight,
		CreatedAt:        dbModel.CreatedAt,
		UpdatedAt:        dbModel.UpdatedAt,
	}, nil
}

func (r *CompanyRepository) Collaborators(ctx context.Context, companyID uuid.UUID) ([]*company.Collaborator, error) {
	var dbModels []models.CollaboratorModel
	err := r.db.DB.WithContext(ctx).
		Where("company_id = ? AND active = ?", companyID, true).
		Order("name").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collaborators: %w", err)
	}

	collaborators := make([]*company.Collaborator, len(dbModels))
	for i, m := range dbModels {
		collaborators[i] = &company.Collaborator{
			ID:        m.ID,
			CompanyID: m.CompanyID,
			Name:      m.Name,
			Email:     m.Email,
			Active:    m.Active,
		}
	}
	return collaborators, nil
}
