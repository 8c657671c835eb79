package postgres

import (
	"strings"
	"testing"

	"freightconnect/internal/domain/freight"
	"freightconnect/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestNewHumanCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := newHumanCode()

		if len(code) != 8 {
			t.Fatalf("expected 8 characters, got %q", code)
		}
		if !strings.HasPrefix(code, "FC") {
			t.Fatalf("expected FC prefix, got %q", code)
		}
		for _, c := range code[2:] {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("character %q outside the code alphabet in %q", c, code)
			}
		}
		seen[code] = true
	}
	// 200 draws from a 31^6 space should essentially never collide.
	if len(seen) < 190 {
		t.Errorf("suspiciously many collisions: %d distinct codes", len(seen))
	}
}

func TestFreightModelRoundTrip(t *testing.T) {
	weight := 1200.5
	f := &freight.Freight{
		ID:               uuid.New(),
		HumanCode:        "FCABC234",
		FreightType:      freight.TypeAggregation,
		Status:           freight.StatusActive,
		OriginCity:       "Campinas",
		OriginState:      "SP",
		DestinationCity:  "Niterói",
		DestinationState: "RJ",
		Stops: []freight.Stop{
			{Position: 1, City: "São Paulo", State: "SP", OperationType: freight.OperationLoad},
		},
		MerchandiseType: "electronics",
		WeightKg:        &weight,
		AcceptedVehicleTypes: []freight.TaggedOption{
			{Tag: "truck", Label: "Truck", Selected: true},
		},
		AcceptedBodyTypes: []freight.TaggedOption{
			{Tag: "bau", Label: "Baú", Selected: true},
		},
		SchedulingRules: []string{"weekdays_only"},
		TollPaidBy:      freight.TollPaidByCompany,
		TollDirection:   freight.TollDirectionRoundTrip,
		CollaboratorIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	dbModel, err := toFreightModel(f)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	got, err := toFreightEntity(dbModel)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if got.HumanCode != f.HumanCode || got.FreightType != f.FreightType {
		t.Errorf("identity fields lost: %+v", got)
	}
	if len(got.Stops) != 1 || got.Stops[0].City != "São Paulo" {
		t.Errorf("stops lost in round trip: %+v", got.Stops)
	}
	if len(got.AcceptedVehicleTypes) != 1 || got.AcceptedVehicleTypes[0].Tag != "truck" {
		t.Errorf("vehicle types lost: %+v", got.AcceptedVehicleTypes)
	}
	if len(got.CollaboratorIDs) != 2 {
		t.Errorf("collaborator ids lost: %+v", got.CollaboratorIDs)
	}
	if got.WeightKg == nil || *got.WeightKg != weight {
		t.Errorf("weight lost: %v", got.WeightKg)
	}
}

// Historical rows store accepted types in several shapes; decoding must
// normalize all of them.
func TestToFreightEntityNormalizesLegacyShapes(t *testing.T) {
	m := &models.FreightModel{
		ID:          uuid.New(),
		HumanCode:   "FCLEG234",
		FreightType: string(freight.TypeCommon),
		Status:      string(freight.StatusActive),
		AcceptedVehicleTypes: datatypes.JSON([]byte(
			`["truck", {"nome": "Bitruck"}, {"value": "carreta", "selected": false}, {"weight": 3}]`,
		)),
	}

	f, err := toFreightEntity(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.AcceptedVehicleTypes) != 3 {
		t.Fatalf("expected 3 normalized options, got %d", len(f.AcceptedVehicleTypes))
	}
	if f.AcceptedVehicleTypes[0].Tag != "truck" || !f.AcceptedVehicleTypes[0].Selected {
		t.Errorf("plain string entry mishandled: %+v", f.AcceptedVehicleTypes[0])
	}
	if f.AcceptedVehicleTypes[1].Tag != "Bitruck" {
		t.Errorf("nome-keyed entry mishandled: %+v", f.AcceptedVehicleTypes[1])
	}
	if f.AcceptedVehicleTypes[2].Selected {
		t.Errorf("explicit selected=false lost: %+v", f.AcceptedVehicleTypes[2])
	}
}

func TestToFreightEntityRejectsCorruptPayload(t *testing.T) {
	m := &models.FreightModel{
		ID:     uuid.New(),
		Status: string(freight.StatusActive),
		Stops:  datatypes.JSON([]byte(`{not json`)),
	}

	if _, err := toFreightEntity(m); err == nil {
		t.Fatal("expected decode error for corrupt stops payload")
	}
}
