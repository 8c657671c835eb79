package freight

import (
	"context"
	"errors"
	"fmt"

	"freightconnect/internal/config"
	domainCompany "freightconnect/internal/domain/company"
	domainFreight "freightconnect/internal/domain/freight"
	"freightconnect/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the freight read path: it composes a FilterModel into a store
// query plus an in-memory set-intersection pass and produces paginated
// results.
type Service struct {
	repo        domainFreight.Repository
	companyRepo domainCompany.Repository
	cfg         config.QueryConfig
}

func NewService(repo domainFreight.Repository, companyRepo domainCompany.Repository, cfg config.QueryConfig) *Service {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	if cfg.OverfetchMultiplier <= 0 {
		cfg.OverfetchMultiplier = 3
	}
	return &Service{repo: repo, companyRepo: companyRepo, cfg: cfg}
}

// Search runs the two-pass query. The store pass applies text/enum filters
// and pagination; the set pass intersects requested vehicle/body type tags
// against the normalized stored sets. When set filters are active the store
// page is over-fetched by a bounded multiplier and truncated afterwards, so
// a page only comes up short when the window genuinely has fewer matches.
func (s *Service) Search(ctx context.Context, filter *domainFreight.FilterModel) (*domainFreight.Page, error) {
	if filter == nil {
		filter = &domainFreight.FilterModel{}
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = s.cfg.DefaultPageSize
	}
	if pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	storePageSize := pageSize
	if filter.HasSetFilters() {
		storePageSize = pageSize * s.cfg.OverfetchMultiplier
	}

	query := filter.StoreQuery(storePageSize)
	query.Page = page

	rows, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainFreight.ErrQueryFailed, err)
	}

	result := &domainFreight.Page{
		CurrentPage:  page,
		TotalItems:   total,
		ItemsPerPage: pageSize,
		TotalPages:   totalPages(total, pageSize),
	}

	// Nothing matched the store pass; the set pass never runs.
	if total == 0 {
		result.Items = []*domainFreight.Freight{}
		return result, nil
	}

	if filter.HasSetFilters() {
		rows = applySetFilters(rows, filter)
		if len(rows) > pageSize {
			rows = rows[:pageSize]
		}
		if len(rows) < pageSize {
			logger.Debug("set-typed filters shrank the page below the requested size",
				zap.Int("requested", pageSize),
				zap.Int("returned", len(rows)),
			)
		}
	}

	result.Items = rows
	return result, nil
}

// GetByCode resolves a freight by its public human code, with price table
// rows attached for aggregation freights.
func (s *Service) GetByCode(ctx context.Context, code string) (*domainFreight.Freight, []*domainFreight.PriceTableRow, error) {
	f, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, wrapStoreErr(err)
	}

	var rows []*domainFreight.PriceTableRow
	if f.FreightType == domainFreight.TypeAggregation {
		rows, err = s.repo.PriceRowsByFreight(ctx, f.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", domainFreight.ErrQueryFailed, err)
		}
	}

	return f, rows, nil
}

// UpdateStatus applies an externally driven status change on behalf of the
// acting user's company. The query path never computes transitions itself.
func (s *Service) UpdateStatus(ctx context.Context, userID, freightID uuid.UUID, status domainFreight.Status) error {
	switch status {
	case domainFreight.StatusActive, domainFreight.StatusPending,
		domainFreight.StatusCompleted, domainFreight.StatusCanceled,
		domainFreight.StatusPaused:
	default:
		return domainFreight.ErrInvalidStatus
	}
	if err := s.checkOwnership(ctx, userID, freightID); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, freightID, status); err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// Delete removes one freight record owned by the acting user's company.
// Fan-out siblings are untouched.
func (s *Service) Delete(ctx context.Context, userID, freightID uuid.UUID) error {
	if err := s.checkOwnership(ctx, userID, freightID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, freightID); err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// checkOwnership resolves the acting user's company and rejects freights
// that belong to someone else before any mutation touches the store.
func (s *Service) checkOwnership(ctx context.Context, userID, freightID uuid.UUID) error {
	comp, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainCompany.ErrCompanyNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domainFreight.ErrQueryFailed, err)
	}

	f, err := s.repo.GetByID(ctx, freightID)
	if err != nil {
		return wrapStoreErr(err)
	}
	if f.CompanyID != comp.ID {
		logger.Warn("freight mutation rejected for non-owning company",
			zap.String("freight_id", freightID.String()),
			zap.String("company_id", comp.ID.String()),
		)
		return domainFreight.ErrNotOwner
	}
	return nil
}

// wrapStoreErr folds unexpected store faults into ErrQueryFailed while
// letting domain sentinels through untouched.
func wrapStoreErr(err error) error {
	if errors.Is(err, domainFreight.ErrFreightNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", domainFreight.ErrQueryFailed, err)
}

func applySetFilters(rows []*domainFreight.Freight, filter *domainFreight.FilterModel) []*domainFreight.Freight {
	vehicleSet := domainFreight.TagSet(filter.VehicleTypes)
	bodySet := domainFreight.TagSet(filter.BodyTypes)

	kept := rows[:0]
	for _, f := range rows {
		if len(vehicleSet) > 0 && !domainFreight.IntersectsTags(f.AcceptedVehicleTypes, vehicleSet) {
			continue
		}
		if len(bodySet) > 0 && !domainFreight.IntersectsTags(f.AcceptedBodyTypes, bodySet) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func totalPages(total int64, pageSize int) int {
	if total == 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
