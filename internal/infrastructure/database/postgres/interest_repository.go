package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freightconnect/internal/domain/interest"
	"freightconnect/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestRepository struct {
	db *DB
}

func NewInterestRepository(db *DB) *InterestRepository {
	return &InterestRepository{db: db}
}

func (r *InterestRepository) Create(ctx context.Context, i *interest.Interest) error {
	i.ID = uuid.New()
	i.CreatedAt = time.Now()
	i.UpdatedAt = time.Now()
	if i.Status == "" {
		i.Status = interest.StatusPending
	}

	dbModel := toInterestModel(i)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return interest.ErrDuplicateInterest
		}
		return fmt.Errorf("failed to create interest: %w", err)
	}

	return nil
}

func (r *InterestRepository) GetByID(ctx context.Context, interestID uuid.UUID) (*interest.Interest, error) {
	var dbModel models.InterestModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", interestID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, interest.ErrInterestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interest: %w", err)
	}

	return toInterestEntity(&dbModel), nil
}

func (r *InterestRepository) GetByFreightAndDriver(ctx context.Context, freightID, driverID uuid.UUID) (*interest.Interest, error) {
	var dbModel models.InterestModel
	err := r.db.DB.WithContext(ctx).
		Where("freight_id = ? AND driver_id = ?", freightID, driverID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, interest.ErrInterestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interest: %w", err)
	}

	return toInterestEntity(&dbModel), nil
}

func (r *InterestRepository) ListByFreight(ctx context.Context, freightID uuid.UUID) ([]*interest.Interest, error) {
	return r.list(ctx, "freight_id = ?", freightID)
}

func (r *InterestRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*interest.Interest, error) {
	return r.list(ctx, "driver_id = ?", driverID)
}

func (r *InterestRepository) list(ctx context.Context, cond string, arg uuid.UUID) ([]*interest.Interest, error) {
	var dbModels []models.InterestModel
	err := r.db.DB.WithContext(ctx).
		Where(cond, arg).
		Order("created_at DESC").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}

	interests := make([]*interest.Interest, len(dbModels))
	for i := range dbModels {
		interests[i] = toInterestEntity(&dbModels[i])
	}
	return interests, nil
}

func (r *InterestRepository) UpdateStatus(ctx context.Context, interestID uuid.UUID, status interest.InterestStatus) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.InterestModel{}).
		Where("id = ?", interestID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update interest status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interest.ErrInterestNotFound
	}

	return nil
}

func toInterestModel(i *interest.Interest) *models.InterestModel {
	return &models.InterestModel{
		ID:        i.ID,
		FreightID: i.FreightID,
		DriverID:  i.DriverID,
		Message:   i.Message,
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func toInterestEntity(m *models.InterestModel) *interest.Interest {
	return &interest.Interest{
		ID:        m.ID,
		FreightID: m.FreightID,
		DriverID:  m.DriverID,
		Message:   m.Message,
		Status:    interest.InterestStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
