package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"freightconnect/internal/domain/freight"
	"freightconnect/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FreightRepository struct {
	db *DB
}

func NewFreightRepository(db *DB) *FreightRepository {
	return &FreightRepository{db: db}
}

// codeAlphabet excludes ambiguous characters (0/O, 1/I/L).
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeAttempts = 5

func newHumanCode() string {
	id := uuid.New()
	var b strings.Builder
	b.WriteString("FC")
	for i := 0; i < 6; i++ {
		b.WriteByte(codeAlphabet[int(id[i])%len(codeAlphabet)])
	}
	return b.String()
}

func (r *FreightRepository) Create(ctx context.Context, f *freight.Freight) error {
	f.ID = uuid.New()
	f.CreatedAt = time.Now()
	f.UpdatedAt = time.Now()
	if f.Status == "" {
		f.Status = freight.StatusPending
	}

	freight.RenumberStops(f.Stops)

	var lastErr error
	for attempt := 0; attempt < codeAttempts; attempt++ {
		f.HumanCode = newHumanCode()

		dbModel, err := toFreightModel(f)
		if err != nil {
			return fmt.Errorf("failed to encode freight: %w", err)
		}

		err = r.db.DB.WithContext(ctx).Create(dbModel).Error
		if err == nil {
			f.ID = dbModel.ID
			f.CreatedAt = dbModel.CreatedAt
			f.UpdatedAt = dbModel.UpdatedAt
			return nil
		}
		if strings.Contains(err.Error(), "duplicate key") {
			lastErr = freight.ErrCodeCollision
			continue
		}
		return fmt.Errorf("failed to create freight: %w", err)
	}

	return fmt.Errorf("failed to create freight after %d attempts: %w", codeAttempts, lastErr)
}

func (r *FreightRepository) CreatePriceRow(ctx context.Context, row *freight.PriceTableRow) error {
	row.ID = uuid.New()

	dbModel := &models.PriceTableRowModel{
		ID:           row.ID,
		FreightID:    row.FreightID,
		VehicleType:  row.VehicleType,
		RangeStartKm: row.RangeStartKm,
		RangeEndKm:   row.RangeEndKm,
		Price:        row.Price,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create price table row: %w", err)
	}

	return nil
}

// GetByID loads a freight regardless of status. Ownership checks need to
// see paused and canceled records too, so no visibility scoping here.
func (r *FreightRepository) GetByID(ctx context.Context, freightID uuid.UUID) (*freight.Freight, error) {
	var dbModel models.FreightModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", freightID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, freight.ErrFreightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freight by id: %w", err)
	}

	return toFreightEntity(&dbModel)
}

func (r *FreightRepository) GetByCode(ctx context.Context, code string) (*freight.Freight, error) {
	var dbModel models.FreightModel
	err := r.db.DB.WithContext(ctx).
		Where("human_code = ? AND status IN ?", code, visibleStatusStrings()).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, freight.ErrFreightNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get freight by code: %w", err)
	}

	return toFreightEntity(&dbModel)
}

func (r *FreightRepository) List(ctx context.Context, query *freight.Query) ([]*freight.Freight, int64, error) {
	var dbModels []models.FreightModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.FreightModel{}).
		Where("status IN ?", visibleStatusStrings())

	if query.OriginText != "" {
		needle := "%" + query.OriginText + "%"
		db = db.Where("origin_city ILIKE ? OR origin_state ILIKE ?", needle, needle)
	}
	if query.DestinationText != "" {
		// Stops are jsonb; the store cannot match inside the collection
		// structurally, so fall back to a text scan over the serialized form.
		needle := "%" + query.DestinationText + "%"
		db = db.Where("destination_city ILIKE ? OR destination_state ILIKE ? OR stops::text ILIKE ?",
			needle, needle, needle)
	}
	if query.FreightType != nil {
		db = db.Where("freight_type = ?", string(*query.FreightType))
	}
	if query.TrackerRequired != nil {
		db = db.Where("needs_tracker = ?", *query.TrackerRequired)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count freights: %w", err)
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	// Offset tracks the store page size, so when callers inflate PageSize
	// to leave headroom for in-memory filtering the windows stay disjoint.
	// Rows past the visible slice of one window never reappear in the next;
	// an offset keyed to the uninflated size would keep them reachable at
	// the cost of overlapping scans.
	offset := (page - 1) * pageSize

	err := db.Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&dbModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list freights: %w", err)
	}

	freights := make([]*freight.Freight, 0, len(dbModels))
	for i := range dbModels {
		entity, err := toFreightEntity(&dbModels[i])
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode freight %s: %w", dbModels[i].ID, err)
		}
		freights = append(freights, entity)
	}

	return freights, total, nil
}

func (r *FreightRepository) PriceRowsByFreight(ctx context.Context, freightID uuid.UUID) ([]*freight.PriceTableRow, error) {
	var dbModels []models.PriceTableRowModel
	err := r.db.DB.WithContext(ctx).
		Where("freight_id = ?", freightID).
		Order("vehicle_type, range_start_km").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get price table rows: %w", err)
	}

	rows := make([]*freight.PriceTableRow, len(dbModels))
	for i, m := range dbModels {
		rows[i] = &freight.PriceTableRow{
			ID:           m.ID,
			FreightID:    m.FreightID,
			VehicleType:  m.VehicleType,
			RangeStartKm: m.RangeStartKm,
			RangeEndKm:   m.RangeEndKm,
			Price:        m.Price,
		}
	}
	return rows, nil
}

func (r *FreightRepository) UpdateStatus(ctx context.Context, freightID uuid.UUID, status freight.Status) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.FreightModel{}).
		Where("id = ?", freightID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update freight status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return freight.ErrFreightNotFound
	}

	return nil
}

func (r *FreightRepository) Delete(ctx context.Context, freightID uuid.UUID) error {
	// Fan-out siblings are independent rows; deleting one never cascades to
	// the others. Price rows belong to this record only.
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("freight_id = ?", freightID).
			Delete(&models.PriceTableRowModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete price table rows: %w", err)
		}

		result := tx.Where("id = ?", freightID).Delete(&models.FreightModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete freight: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return freight.ErrFreightNotFound
		}
		return nil
	})
}

func visibleStatusStrings() []string {
	statuses := make([]string, len(freight.VisibleStatuses))
	for i, s := range freight.VisibleStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// Helper functions to convert between domain entities and database models

func toFreightModel(f *freight.Freight) (*models.FreightModel, error) {
	stops, err := json.Marshal(f.Stops)
	if err != nil {
		return nil, err
	}
	vehicleTypes, err := json.Marshal(f.AcceptedVehicleTypes)
	if err != nil {
		return nil, err
	}
	bodyTypes, err := json.Marshal(f.AcceptedBodyTypes)
	if err != nil {
		return nil, err
	}
	schedulingRules, err := json.Marshal(f.SchedulingRules)
	if err != nil {
		return nil, err
	}
	benefits, err := json.Marshal(f.Benefits)
	if err != nil {
		return nil, err
	}
	collaborators, err := json.Marshal(f.CollaboratorIDs)
	if err != nil {
		return nil, err
	}

	return &models.FreightModel{
		ID:                   f.ID,
		HumanCode:            f.HumanCode,
		FreightType:          string(f.FreightType),
		Status:               string(f.Status),
		OriginCity:           f.OriginCity,
		OriginState:          f.OriginState,
		DestinationCity:      f.DestinationCity,
		DestinationState:     f.DestinationState,
		Stops:                datatypes.JSON(stops),
		MerchandiseType:      f.MerchandiseType,
		WeightKg:             f.WeightKg,
		DeclaredValue:        f.DeclaredValue,
		Description:          f.Description,
		NeedsAssembly:        f.NeedsAssembly,
		NeedsPackaging:       f.NeedsPackaging,
		NeedsInsurance:       f.NeedsInsurance,
		NeedsTracker:         f.NeedsTracker,
		NeedsHelper:          f.NeedsHelper,
		AcceptedVehicleTypes: datatypes.JSON(vehicleTypes),
		AcceptedBodyTypes:    datatypes.JSON(bodyTypes),
		SchedulingRules:      datatypes.JSON(schedulingRules),
		Benefits:             datatypes.JSON(benefits),
		TollPaidBy:           string(f.TollPaidBy),
		TollDirection:        string(f.TollDirection),
		ValueMode:            string(f.ValueMode),
		OfferedValue:         f.OfferedValue,
		CollectionDate:       f.CollectionDate,
		CollectionTime:       f.CollectionTime,
		CompanyID:            f.CompanyID,
		CollaboratorIDs:      datatypes.JSON(collaborators),
		CreatedAt:            f.CreatedAt,
		UpdatedAt:            f.UpdatedAt,
	}, nil
}

func toFreightEntity(m *models.FreightModel) (*freight.Freight, error) {
	f := &freight.Freight{
		ID:               m.ID,
		HumanCode:        m.HumanCode,
		FreightType:      freight.FreightType(m.FreightType),
		Status:           freight.Status(m.Status),
		OriginCity:       m.OriginCity,
		OriginState:      m.OriginState,
		DestinationCity:  m.DestinationCity,
		DestinationState: m.DestinationState,
		MerchandiseType:  m.MerchandiseType,
		WeightKg:         m.WeightKg,
		DeclaredValue:    m.DeclaredValue,
		Description:      m.Description,
		NeedsAssembly:    m.NeedsAssembly,
		NeedsPackaging:   m.NeedsPackaging,
		NeedsInsurance:   m.NeedsInsurance,
		NeedsTracker:     m.NeedsTracker,
		NeedsHelper:      m.NeedsHelper,
		TollPaidBy:       freight.TollPayer(m.TollPaidBy),
		TollDirection:    freight.TollDirection(m.TollDirection),
		ValueMode:        freight.ValueMode(m.ValueMode),
		OfferedValue:     m.OfferedValue,
		CollectionDate:   m.CollectionDate,
		CollectionTime:   m.CollectionTime,
		CompanyID:        m.CompanyID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}

	if len(m.Stops) > 0 {
		if err := json.Unmarshal(m.Stops, &f.Stops); err != nil {
			return nil, fmt.Errorf("bad stops payload: %w", err)
		}
	}

	// Accepted type columns hold heterogeneous historical shapes; normalize
	// once here so nothing above the repository sees raw entries.
	var rawVehicleTypes []interface{}
	if len(m.AcceptedVehicleTypes) > 0 {
		if err := json.Unmarshal(m.AcceptedVehicleTypes, &rawVehicleTypes); err != nil {
			return nil, fmt.Errorf("bad accepted vehicle types payload: %w", err)
		}
	}
	f.AcceptedVehicleTypes = freight.NormalizeTagged(rawVehicleTypes)

	var rawBodyTypes []interface{}
	if len(m.AcceptedBodyTypes) > 0 {
		if err := json.Unmarshal(m.AcceptedBodyTypes, &rawBodyTypes); err != nil {
			return nil, fmt.Errorf("bad accepted body types payload: %w", err)
		}
	}
	f.AcceptedBodyTypes = freight.NormalizeTagged(rawBodyTypes)

	if len(m.SchedulingRules) > 0 {
		if err := json.Unmarshal(m.SchedulingRules, &f.SchedulingRules); err != nil {
			return nil, fmt.Errorf("bad scheduling rules payload: %w", err)
		}
	}
	if len(m.Benefits) > 0 {
		if err := json.Unmarshal(m.Benefits, &f.Benefits); err != nil {
			return nil, fmt.Errorf("bad benefits payload: %w", err)
		}
	}
	if len(m.CollaboratorIDs) > 0 {
		if err := json.Unmarshal(m.CollaboratorIDs, &f.CollaboratorIDs); err != nil {
			return nil, fmt.Errorf("bad collaborator ids payload: %w", err)
		}
	}

	return f, nil
}
