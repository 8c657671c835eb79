package interest

import (
	"context"
	"errors"

	domainCompany "freightconnect/internal/domain/company"
	domainFreight "freightconnect/internal/domain/freight"
	domainInterest "freightconnect/internal/domain/interest"
	"freightconnect/internal/logger"
	"freightconnect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles the driver interest workflow: register, list, respond.
type Service struct {
	interestRepo domainInterest.Repository
	freightRepo  domainFreight.Repository
	companyRepo  domainCompany.Repository
}

func NewService(interestRepo domainInterest.Repository, freightRepo domainFreight.Repository, companyRepo domainCompany.Repository) *Service {
	return &Service{interestRepo: interestRepo, freightRepo: freightRepo, companyRepo: companyRepo}
}

// Register records a driver's interest in a visible freight, one per driver
// per freight.
func (s *Service) Register(ctx context.Context, driverID uuid.UUID, freightCode string, req *RegisterRequest) (*InterestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	f, err := s.freightRepo.GetByCode(ctx, freightCode)
	if err != nil {
		return nil, err
	}

	existing, err := s.interestRepo.GetByFreightAndDriver(ctx, f.ID, driverID)
	if err != nil && !errors.Is(err, domainInterest.ErrInterestNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainInterest.ErrDuplicateInterest
	}

	i := &domainInterest.Interest{
		FreightID: f.ID,
		DriverID:  driverID,
		Message:   utils.SanitizeText(req.Message),
		Status:    domainInterest.StatusPending,
	}
	if err := s.interestRepo.Create(ctx, i); err != nil {
		return nil, err
	}

	logger.Info("driver interest registered",
		zap.String("freight_id", f.ID.String()),
		zap.String("human_code", f.HumanCode),
		zap.String("driver_id", driverID.String()),
	)

	return ToInterestResponse(i), nil
}

func (s *Service) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*InterestResponse, error) {
	interests, err := s.interestRepo.ListByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	return toResponses(interests), nil
}

// ListByFreight returns the interests on one of the acting user's own
// freights. Other companies' freights are off limits.
func (s *Service) ListByFreight(ctx context.Context, userID, freightID uuid.UUID) ([]*InterestResponse, error) {
	if err := s.checkFreightOwnership(ctx, userID, freightID); err != nil {
		return nil, err
	}

	interests, err := s.interestRepo.ListByFreight(ctx, freightID)
	if err != nil {
		return nil, err
	}
	return toResponses(interests), nil
}

// Respond moves an interest through the workflow on behalf of the company
// that owns the underlying freight; invalid transitions are rejected, not
// coerced.
func (s *Service) Respond(ctx context.Context, userID, interestID uuid.UUID, status domainInterest.InterestStatus) (*InterestResponse, error) {
	current, err := s.interestRepo.GetByID(ctx, interestID)
	if err != nil {
		return nil, err
	}

	if err := s.checkFreightOwnership(ctx, userID, current.FreightID); err != nil {
		return nil, err
	}

	if !domainInterest.CanTransition(current.Status, status) {
		return nil, domainInterest.ErrInvalidTransition
	}

	if err := s.interestRepo.UpdateStatus(ctx, interestID, status); err != nil {
		return nil, err
	}

	current.Status = status
	return ToInterestResponse(current), nil
}

func (s *Service) checkFreightOwnership(ctx context.Context, userID, freightID uuid.UUID) error {
	comp, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	f, err := s.freightRepo.GetByID(ctx, freightID)
	if err != nil {
		return err
	}
	if f.CompanyID != comp.ID {
		logger.Warn("interest access rejected for non-owning company",
			zap.String("freight_id", freightID.String()),
			zap.String("company_id", comp.ID.String()),
		)
		return domainFreight.ErrNotOwner
	}
	return nil
}

func toResponses(interests []*domainInterest.Interest) []*InterestResponse {
	out := make([]*InterestResponse, len(interests))
	for i, it := range interests {
		out[i] = ToInterestResponse(it)
	}
	return out
}
