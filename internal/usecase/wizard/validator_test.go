package wizard

import (
	"testing"
	"time"

	domainFreight "freightconnect/internal/domain/freight"

	"github.com/google/uuid"
)

func submittableSession() *Session {
	value := 1500.0
	return &Session{
		Collaborators:   []uuid.UUID{uuid.New()},
		OriginState:     "SP",
		OriginCity:      "Sao Paulo",
		Destinations:    []Destination{{State: "RJ", City: "Rio de Janeiro"}},
		MerchandiseType: "furniture",
		FreightType:     domainFreight.TypeCommon,
		CollectionDate:  time.Now().Add(48 * time.Hour).Format(dateLayout),
		CollectionTime:  "09:30",
		VehicleTypes:    []string{"truck"},
		BodyTypes:       []string{"bau"},
		ValueMode:       domainFreight.ValueModeFixed,
		OfferedValue:    &value,
		TollPaidBy:      domainFreight.TollPaidByDriver,
	}
}

func TestValidateAllCleanSession(t *testing.T) {
	if errs := ValidateAll(submittableSession()); errs.HasErrors() {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidatePastCollectionDate(t *testing.T) {
	s := submittableSession()
	s.CollectionDate = time.Now().Add(-48 * time.Hour).Format(dateLayout)

	errs := ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["dataColeta"]; !ok {
		t.Errorf("expected dataColeta error for past date, got %v", errs)
	}
}

func TestValidateTodayCollectionDateAllowed(t *testing.T) {
	s := submittableSession()
	s.CollectionDate = time.Now().Format(dateLayout)

	errs := ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["dataColeta"]; ok {
		t.Errorf("today must be a valid collection date, got %v", errs)
	}
}

func TestValidateMalformedCollectionDate(t *testing.T) {
	s := submittableSession()
	s.CollectionDate = "31/12/2026"

	errs := ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["dataColeta"]; !ok {
		t.Errorf("expected dataColeta error for malformed date, got %v", errs)
	}
}

func TestValidateFixedValueRequiresPositiveOffer(t *testing.T) {
	s := submittableSession()
	zero := 0.0
	s.OfferedValue = &zero

	errs := ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["valorOferecido"]; !ok {
		t.Errorf("expected valorOferecido error, got %v", errs)
	}

	// Negotiated terms need no offered value.
	s.ValueMode = domainFreight.ValueModeOther
	s.OfferedValue = nil
	errs = ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["valorOferecido"]; ok {
		t.Errorf("value mode other must not require an offer, got %v", errs)
	}
}

func TestValidateAggregationPriceTable(t *testing.T) {
	s := submittableSession()
	s.FreightType = domainFreight.TypeAggregation
	s.PriceTables = []PriceRowInput{
		{VehicleType: "truck", RangeStartKm: 100, RangeEndKm: 50, Price: 1000},
	}

	errs := ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["tabelaPrecos"]; !ok {
		t.Errorf("expected tabelaPrecos error for inverted range, got %v", errs)
	}

	s.PriceTables = []PriceRowInput{
		{VehicleType: "truck", RangeStartKm: 0, RangeEndKm: 100, Price: 0},
	}
	errs = ValidateStep(s, StepLogisticsCommercial)
	if _, ok := errs["tabelaPrecos"]; !ok {
		t.Errorf("expected tabelaPrecos error for zero price, got %v", errs)
	}
}

func TestValidateTollDirectionRequiredForCompanyPayer(t *testing.T) {
	s := submittableSession()
	s.TollPaidBy = domainFreight.TollPaidByCompany
	s.TollDirection = ""

	errs := ValidateStep(s, StepTollExtras)
	if _, ok := errs["pedagioDirecao"]; !ok {
		t.Errorf("expected pedagioDirecao error, got %v", errs)
	}

	s.TollDirection = domainFreight.TollDirectionOneWay
	errs = ValidateStep(s, StepTollExtras)
	if errs.HasErrors() {
		t.Errorf("expected no errors with direction set, got %v", errs)
	}

	// Driver-paid tolls never need a direction.
	s.TollPaidBy = domainFreight.TollPaidByDriver
	s.TollDirection = ""
	errs = ValidateStep(s, StepTollExtras)
	if errs.HasErrors() {
		t.Errorf("expected no errors for driver payer, got %v", errs)
	}
}

func TestValidateUnknownStep(t *testing.T) {
	errs := ValidateStep(submittableSession(), 9)
	if _, ok := errs["step"]; !ok {
		t.Errorf("expected step error, got %v", errs)
	}
}
