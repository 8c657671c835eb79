package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainCompany "freightconnect/internal/domain/company"
	domainFreight "freightconnect/internal/domain/freight"
	"freightconnect/internal/logger"
	"freightconnect/internal/refdata"
	appErrors "freightconnect/pkg/errors"
	"freightconnect/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns wizard sessions and the submission fan-out. It is the only
// component that creates freight records.
type Service struct {
	freightRepo domainFreight.Repository
	companyRepo domainCompany.Repository
	reference   *refdata.Provider

	mu       sync.Mutex
	sessions *sessionStore
}

func NewService(
	freightRepo domainFreight.Repository,
	companyRepo domainCompany.Repository,
	reference *refdata.Provider,
) *Service {
	return &Service{
		freightRepo: freightRepo,
		companyRepo: companyRepo,
		reference:   reference,
		sessions:    newSessionStore(),
	}
}

// Start opens a fresh session for the user, replacing any abandoned one.
func (s *Service) Start(userID uuid.UUID) *SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := newSession(userID)
	s.sessions.put(session)
	return toSessionResponse(session)
}

// Current returns the user's in-progress session.
func (s *Service) Current(userID uuid.UUID) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions.get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return toSessionResponse(session), nil
}

// Discard drops the session without submitting. In-progress state survives
// failures, not navigation away by explicit choice.
func (s *Service) Discard(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.remove(userID)
}

func (s *Service) session(userID uuid.UUID) (*Session, error) {
	session, ok := s.sessions.get(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return session, nil
}

// SetCollaboratorsOrigin replaces step 1 data. Selecting a different origin
// state clears the selected city, mirroring the dependent-select contract.
func (s *Service) SetCollaboratorsOrigin(userID uuid.UUID, req *CollaboratorsOriginRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if req.OriginState != "" && !s.reference.ValidState(req.OriginState) {
		errs := appErrors.ValidationErrors{}
		errs.Add("origemEstado", "unknown state")
		return nil, errs
	}

	session.Collaborators = req.Collaborators
	if req.OriginState != session.OriginState {
		session.OriginCity = ""
	}
	session.OriginState = req.OriginState
	if req.OriginCity != "" {
		session.OriginCity = utils.SanitizeString(req.OriginCity)
	}
	session.UpdatedAt = time.Now()

	return toSessionResponse(session), nil
}

func (s *Service) SetDestinationsCargo(userID uuid.UUID, req *DestinationsCargoRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	session.MerchandiseType = utils.SanitizeString(req.MerchandiseType)
	session.WeightKg = req.WeightKg
	session.DeclaredValue = req.DeclaredValue
	session.Description = utils.SanitizeText(req.Description)
	session.UpdatedAt = time.Now()

	return toSessionResponse(session), nil
}

func (s *Service) SetLogisticsCommercial(userID uuid.UUID, req *LogisticsCommercialRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	errs := appErrors.ValidationErrors{}
	for _, tag := range req.VehicleTypes {
		if !s.reference.KnownVehicleType(tag) {
			errs.Add("tiposVeiculos", fmt.Sprintf("unknown vehicle type %q", tag))
			break
		}
	}
	for _, tag := range req.BodyTypes {
		if !s.reference.KnownBodyType(tag) {
			errs.Add("tiposCarrocerias", fmt.Sprintf("unknown body type %q", tag))
			break
		}
	}
	if errs.HasErrors() {
		return nil, errs
	}

	if req.FreightType != "" {
		session.FreightType = domainFreight.FreightType(req.FreightType)
	}
	session.CollectionDate = req.CollectionDate
	session.CollectionTime = req.CollectionTime
	session.VehicleTypes = req.VehicleTypes
	session.BodyTypes = req.BodyTypes
	if req.ValueMode != "" {
		session.ValueMode = domainFreight.ValueMode(req.ValueMode)
	}
	session.OfferedValue = req.OfferedValue
	session.PriceTables = req.PriceTables
	session.SchedulingRules = req.SchedulingRules
	session.Benefits = req.Benefits
	session.UpdatedAt = time.Now()

	return toSessionResponse(session), nil
}

func (s *Service) SetTollExtras(userID uuid.UUID, req *TollExtrasRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	session.TollPaidBy = domainFreight.TollPayer(req.TollPaidBy)
	session.TollDirection = domainFreight.TollDirection(req.TollDirection)
	session.NeedsAssembly = req.NeedsAssembly
	session.NeedsPackaging = req.NeedsPackaging
	session.NeedsInsurance = req.NeedsInsurance
	session.NeedsTracker = req.NeedsTracker
	session.NeedsHelper = req.NeedsHelper
	session.Notes = utils.SanitizeText(req.Notes)
	session.UpdatedAt = time.Now()

	return toSessionResponse(session), nil
}

// AddDestination appends a destination; an identical (state, city) pair is
// rejected with a distinct error, never silently ignored.
func (s *Service) AddDestination(userID uuid.UUID, req *DestinationRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if !s.reference.ValidState(req.State) {
		errs := appErrors.ValidationErrors{}
		errs.Add("destinos", "unknown state")
		return nil, errs
	}

	dest := Destination{State: req.State, City: utils.SanitizeString(req.City)}
	if session.HasDestination(dest) {
		return nil, ErrDuplicateDestination
	}

	session.Destinations = append(session.Destinations, dest)
	session.UpdatedAt = time.Now()
	return toSessionResponse(session), nil
}

func (s *Service) RemoveDestination(userID uuid.UUID, index int) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Destinations) {
		return nil, ErrDestinationIndex
	}

	session.Destinations = append(session.Destinations[:index], session.Destinations[index+1:]...)
	session.UpdatedAt = time.Now()
	return toSessionResponse(session), nil
}

func (s *Service) AddStop(userID uuid.UUID, req *StopRequest) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if !s.reference.ValidState(req.State) {
		errs := appErrors.ValidationErrors{}
		errs.Add("paradas", "unknown state")
		return nil, errs
	}

	session.Stops = append(session.Stops, domainFreight.Stop{
		City:           utils.SanitizeString(req.City),
		State:          req.State,
		OperationType:  domainFreight.StopOperation(req.OperationType),
		DwellMinutes:   req.DwellMinutes,
		SpecificWeight: req.SpecificWeight,
		SpecificVolume: req.SpecificVolume,
		EstimatedTime:  req.EstimatedTime,
		Notes:          utils.SanitizeText(req.Notes),
	})
	domainFreight.RenumberStops(session.Stops)
	session.UpdatedAt = time.Now()
	return toSessionResponse(session), nil
}

func (s *Service) RemoveStop(userID uuid.UUID, index int) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Stops) {
		return nil, ErrStopIndex
	}

	session.Stops = append(session.Stops[:index], session.Stops[index+1:]...)
	domainFreight.RenumberStops(session.Stops)
	session.UpdatedAt = time.Now()
	return toSessionResponse(session), nil
}

// ReorderStops moves a stop from one index to another; positions stay
// contiguous 1..k.
func (s *Service) ReorderStops(userID uuid.UUID, from, to int) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if from < 0 || from >= len(session.Stops) || to < 0 || to >= len(session.Stops) {
		return nil, ErrStopIndex
	}

	stop := session.Stops[from]
	session.Stops = append(session.Stops[:from], session.Stops[from+1:]...)
	session.Stops = append(session.Stops[:to], append([]domainFreight.Stop{stop}, session.Stops[to:]...)...)
	domainFreight.RenumberStops(session.Stops)
	session.UpdatedAt = time.Now()
	return toSessionResponse(session), nil
}

// Next advances only when the current step validates cleanly; the error is
// the full field-keyed map. Back always succeeds and never re-validates.
func (s *Service) Next(userID uuid.UUID) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	if errs := ValidateStep(session, session.Step); errs.HasErrors() {
		return nil, errs
	}
	if session.Step < stepCount {
		session.Step++
		session.UpdatedAt = time.Now()
	}
	return toSessionResponse(session), nil
}

func (s *Service) Back(userID uuid.UUID) (*SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	if session.Step > StepCollaboratorsOrigin {
		session.Step--
		session.UpdatedAt = time.Now()
	}
	return toSessionResponse(session), nil
}

// Submit runs the full submission algorithm: capability gate, company
// resolution, whole-form validation, then the sequential destination
// fan-out. Session state is cleared only after every insert succeeded; any
// failure leaves it intact for retry.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID) (*SubmitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.session(userID)
	if err != nil {
		return nil, err
	}

	comp, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !comp.CanCreateFreight {
		return nil, domainCompany.ErrFreightNotPermitted
	}

	if errs := ValidateAll(session); errs.HasErrors() {
		return nil, errs
	}

	collectionDate, err := time.ParseInLocation(dateLayout, session.CollectionDate, time.Local)
	if err != nil {
		errs := appErrors.ValidationErrors{}
		errs.Add("dataColeta", "collection date must be YYYY-MM-DD")
		return nil, errs
	}

	created := make([]CreatedFreight, 0, len(session.Destinations))
	total := len(session.Destinations)

	// Sequential on purpose: a partial failure must name exactly which
	// destination failed, and fan-out counts are single digits.
	for _, dest := range session.Destinations {
		record := buildRecord(session, comp.ID, collectionDate, dest)

		if err := s.freightRepo.Create(ctx, record); err != nil {
			logger.Error("freight fan-out insert failed",
				zap.String("user_id", userID.String()),
				zap.String("destination", dest.City+"/"+dest.State),
				zap.Int("created_so_far", len(created)),
				zap.Error(err),
			)
			return nil, &PartialFanoutError{Created: created, Failed: dest, Total: total, Err: err}
		}

		for _, row := range session.PriceTables {
			priceRow := &domainFreight.PriceTableRow{
				FreightID:    record.ID,
				VehicleType:  row.VehicleType,
				RangeStartKm: row.RangeStartKm,
				RangeEndKm:   row.RangeEndKm,
				Price:        row.Price,
			}
			if err := s.freightRepo.CreatePriceRow(ctx, priceRow); err != nil {
				// The freight row exists; count it as created but report
				// the inconsistency instead of swallowing it.
				created = append(created, createdRef(record, dest))
				logger.Error("price table insert failed after freight creation",
					zap.String("freight_id", record.ID.String()),
					zap.String("human_code", record.HumanCode),
					zap.Error(err),
				)
				return nil, &PartialFanoutError{Created: created, Failed: dest, Total: total, Err: err}
			}
		}

		created = append(created, createdRef(record, dest))
	}

	logger.Info("freight submission completed",
		zap.String("user_id", userID.String()),
		zap.String("company_id", comp.ID.String()),
		zap.Int("records", len(created)),
		zap.Int("price_rows_per_record", len(session.PriceTables)),
	)

	s.sessions.remove(userID)
	return &SubmitResponse{Created: created}, nil
}

func createdRef(record *domainFreight.Freight, dest Destination) CreatedFreight {
	return CreatedFreight{
		ID:               record.ID,
		HumanCode:        record.HumanCode,
		DestinationCity:  dest.City,
		DestinationState: dest.State,
	}
}

// buildRecord assembles one fan-out sibling: the shared base payload plus a
// single destination.
func buildRecord(s *Session, companyID uuid.UUID, collectionDate time.Time, dest Destination) *domainFreight.Freight {
	stops := make([]domainFreight.Stop, len(s.Stops))
	copy(stops, s.Stops)

	var description *string
	if s.Description != "" {
		d := s.Description
		description = &d
	}

	return &domainFreight.Freight{
		FreightType:          s.FreightType,
		Status:               domainFreight.StatusPending,
		OriginCity:           s.OriginCity,
		OriginState:          s.OriginState,
		DestinationCity:      dest.City,
		DestinationState:     dest.State,
		Stops:                stops,
		MerchandiseType:      s.MerchandiseType,
		WeightKg:             s.WeightKg,
		DeclaredValue:        s.DeclaredValue,
		Description:          description,
		NeedsAssembly:        s.NeedsAssembly,
		NeedsPackaging:       s.NeedsPackaging,
		NeedsInsurance:       s.NeedsInsurance,
		NeedsTracker:         s.NeedsTracker,
		NeedsHelper:          s.NeedsHelper,
		AcceptedVehicleTypes: toTaggedOptions(s.VehicleTypes),
		AcceptedBodyTypes:    toTaggedOptions(s.BodyTypes),
		SchedulingRules:      s.SchedulingRules,
		Benefits:             s.Benefits,
		TollPaidBy:           s.TollPaidBy,
		TollDirection:        s.TollDirection,
		ValueMode:            s.ValueMode,
		OfferedValue:         s.OfferedValue,
		CollectionDate:       collectionDate,
		CollectionTime:       s.CollectionTime,
		CompanyID:            companyID,
		CollaboratorIDs:      s.Collaborators,
	}
}

func toTaggedOptions(tags []string) []domainFreight.TaggedOption {
	options := make([]domainFreight.TaggedOption, len(tags))
	for i, tag := range tags {
		options[i] = domainFreight.TaggedOption{Tag: tag, Label: tag, Selected: true}
	}
	return options
}
