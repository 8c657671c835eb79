package interest

import (
	"context"
	"errors"
	"testing"

	domainCompany "freightconnect/internal/domain/company"
	domainFreight "freightconnect/internal/domain/freight"
	domainInterest "freightconnect/internal/domain/interest"

	"github.com/google/uuid"
)

type mockInterestRepo struct {
	interests []*domainInterest.Interest
}

func (m *mockInterestRepo) Create(_ context.Context, i *domainInterest.Interest) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	m.interests = append(m.interests, i)
	return nil
}

func (m *mockInterestRepo) GetByID(_ context.Context, interestID uuid.UUID) (*domainInterest.Interest, error) {
	for _, i := range m.interests {
		if i.ID == interestID {
			return i, nil
		}
	}
	return nil, domainInterest.ErrInterestNotFound
}

func (m *mockInterestRepo) GetByFreightAndDriver(_ context.Context, freightID, driverID uuid.UUID) (*domainInterest.Interest, error) {
	for _, i := range m.interests {
		if i.FreightID == freightID && i.DriverID == driverID {
			return i, nil
		}
	}
	return nil, domainInterest.ErrInterestNotFound
}

func (m *mockInterestRepo) ListByFreight(_ context.Context, freightID uuid.UUID) ([]*domainInterest.Interest, error) {
	var out []*domainInterest.Interest
	for _, i := range m.interests {
		if i.FreightID == freightID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *mockInterestRepo) ListByDriver(_ context.Context, driverID uuid.UUID) ([]*domainInterest.Interest, error) {
	var out []*domainInterest.Interest
	for _, i := range m.interests {
		if i.DriverID == driverID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *mockInterestRepo) UpdateStatus(_ context.Context, interestID uuid.UUID, status domainInterest.InterestStatus) error {
	for _, i := range m.interests {
		if i.ID == interestID {
			i.Status = status
			return nil
		}
	}
	return domainInterest.ErrInterestNotFound
}

type codeOnlyFreightRepo struct {
	byCode map[string]*domainFreight.Freight
}

func (m *codeOnlyFreightRepo) Create(_ context.Context, _ *domainFreight.Freight) error { return nil }
func (m *codeOnlyFreightRepo) CreatePriceRow(_ context.Context, _ *domainFreight.PriceTableRow) error {
	return nil
}

func (m *codeOnlyFreightRepo) GetByID(_ context.Context, freightID uuid.UUID) (*domainFreight.Freight, error) {
	for _, f := range m.byCode {
		if f.ID == freightID {
			return f, nil
		}
	}
	return nil, domainFreight.ErrFreightNotFound
}

func (m *codeOnlyFreightRepo) GetByCode(_ context.Context, code string) (*domainFreight.Freight, error) {
	f, ok := m.byCode[code]
	if !ok {
		return nil, domainFreight.ErrFreightNotFound
	}
	return f, nil
}

func (m *codeOnlyFreightRepo) List(_ context.Context, _ *domainFreight.Query) ([]*domainFreight.Freight, int64, error) {
	return nil, 0, nil
}

func (m *codeOnlyFreightRepo) PriceRowsByFreight(_ context.Context, _ uuid.UUID) ([]*domainFreight.PriceTableRow, error) {
	return nil, nil
}

func (m *codeOnlyFreightRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ domainFreight.Status) error {
	return nil
}
func (m *codeOnlyFreightRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubCompanyRepo struct {
	companies map[uuid.UUID]*domainCompany.Company
}

func (m *stubCompanyRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domainCompany.Company, error) {
	if c, ok := m.companies[userID]; ok {
		return c, nil
	}
	return nil, domainCompany.ErrCompanyNotFound
}

func (m *stubCompanyRepo) GetByID(_ context.Context, companyID uuid.UUID) (*domainCompany.Company, error) {
	for _, c := range m.companies {
		if c.ID == companyID {
			return c, nil
		}
	}
	return nil, domainCompany.ErrCompanyNotFound
}

func (m *stubCompanyRepo) Collaborators(_ context.Context, _ uuid.UUID) ([]*domainCompany.Collaborator, error) {
	return nil, nil
}

// fixture wires a single visible freight owned by one company, plus a user
// account from a second company for access checks.
type fixture struct {
	svc      *Service
	repo     *mockInterestRepo
	freight  *domainFreight.Freight
	owner    uuid.UUID
	outsider uuid.UUID
}

func testSetup() *fixture {
	ownerComp := &domainCompany.Company{ID: uuid.New(), Name: "Transportes Aurora"}
	strangerCmp := &domainCompany.Company{ID: uuid.New(), Name: "Cargas Horizonte"}

	f := &domainFreight.Freight{
		ID:        uuid.New(),
		HumanCode: "FCTEST01",
		Status:    domainFreight.StatusActive,
		CompanyID: ownerComp.ID,
	}

	owner := uuid.New()
	outsider := uuid.New()

	interestRepo := &mockInterestRepo{}
	freightRepo := &codeOnlyFreightRepo{byCode: map[string]*domainFreight.Freight{f.HumanCode: f}}
	companyRepo := &stubCompanyRepo{companies: map[uuid.UUID]*domainCompany.Company{
		owner:    ownerComp,
		outsider: strangerCmp,
	}}

	return &fixture{
		svc:      NewService(interestRepo, freightRepo, companyRepo),
		repo:     interestRepo,
		freight:  f,
		owner:    owner,
		outsider: outsider,
	}
}

func TestRegisterInterest(t *testing.T) {
	fx := testSetup()
	driverID := uuid.New()

	resp, err := fx.svc.Register(context.Background(), driverID, "FCTEST01", &RegisterRequest{Message: "available tomorrow"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.FreightID != fx.freight.ID {
		t.Errorf("expected freight %s, got %s", fx.freight.ID, resp.FreightID)
	}
	if resp.Status != string(domainInterest.StatusPending) {
		t.Errorf("new interest must be pending, got %s", resp.Status)
	}
	if len(fx.repo.interests) != 1 {
		t.Fatalf("expected 1 stored interest, got %d", len(fx.repo.interests))
	}
}

func TestRegisterInterestDuplicate(t *testing.T) {
	fx := testSetup()
	driverID := uuid.New()

	if _, err := fx.svc.Register(context.Background(), driverID, "FCTEST01", &RegisterRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := fx.svc.Register(context.Background(), driverID, "FCTEST01", &RegisterRequest{})
	if !errors.Is(err, domainInterest.ErrDuplicateInterest) {
		t.Errorf("expected ErrDuplicateInterest, got %v", err)
	}
}

func TestRegisterInterestUnknownFreight(t *testing.T) {
	fx := testSetup()

	_, err := fx.svc.Register(context.Background(), uuid.New(), "FCNOPE99", &RegisterRequest{})
	if !errors.Is(err, domainFreight.ErrFreightNotFound) {
		t.Errorf("expected ErrFreightNotFound, got %v", err)
	}
}

func TestRespondTransitions(t *testing.T) {
	fx := testSetup()
	driverID := uuid.New()

	created, err := fx.svc.Register(context.Background(), driverID, "FCTEST01", &RegisterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := fx.svc.Respond(context.Background(), fx.owner, created.ID, domainInterest.StatusViewed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != string(domainInterest.StatusViewed) {
		t.Errorf("expected viewed, got %s", resp.Status)
	}

	if _, err := fx.svc.Respond(context.Background(), fx.owner, created.ID, domainInterest.StatusAccepted); err != nil {
		t.Fatalf("viewed -> accepted must be allowed: %v", err)
	}

	// Accepted is terminal.
	_, err = fx.svc.Respond(context.Background(), fx.owner, created.ID, domainInterest.StatusRejected)
	if !errors.Is(err, domainInterest.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}

	if fx.repo.interests[0].Status != domainInterest.StatusAccepted {
		t.Errorf("stored status must remain accepted, got %s", fx.repo.interests[0].Status)
	}
}

func TestRespondDirectAcceptFromPending(t *testing.T) {
	fx := testSetup()

	created, err := fx.svc.Register(context.Background(), uuid.New(), "FCTEST01", &RegisterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := fx.svc.Respond(context.Background(), fx.owner, created.ID, domainInterest.StatusAccepted); err != nil {
		t.Errorf("pending -> accepted must be allowed: %v", err)
	}
}

func TestRespondRejectsForeignCompany(t *testing.T) {
	fx := testSetup()

	created, err := fx.svc.Register(context.Background(), uuid.New(), "FCTEST01", &RegisterRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = fx.svc.Respond(context.Background(), fx.outsider, created.ID, domainInterest.StatusAccepted)
	if !errors.Is(err, domainFreight.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if fx.repo.interests[0].Status != domainInterest.StatusPending {
		t.Errorf("stored status must stay pending, got %s", fx.repo.interests[0].Status)
	}
}

func TestListByDriver(t *testing.T) {
	fx := testSetup()
	driverID := uuid.New()

	if _, err := fx.svc.Register(context.Background(), driverID, "FCTEST01", &RegisterRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := fx.svc.Register(context.Background(), uuid.New(), "FCTEST01", &RegisterRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mine, err := fx.svc.ListByDriver(context.Background(), driverID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 interest for driver, got %d", len(mine))
	}
}

func TestListByFreightOwnerOnly(t *testing.T) {
	fx := testSetup()

	if _, err := fx.svc.Register(context.Background(), uuid.New(), "FCTEST01", &RegisterRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := fx.svc.Register(context.Background(), uuid.New(), "FCTEST01", &RegisterRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := fx.svc.ListByFreight(context.Background(), fx.owner, fx.freight.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 interests on freight, got %d", len(all))
	}

	_, err = fx.svc.ListByFreight(context.Background(), fx.outsider, fx.freight.ID)
	if !errors.Is(err, domainFreight.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}
