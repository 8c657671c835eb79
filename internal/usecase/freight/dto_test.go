package freight

import (
	"reflect"
	"testing"

	domainFreight "freightconnect/internal/domain/freight"
)

func TestToFilterModelSplitsTags(t *testing.T) {
	req := &FilterRequest{
		VehicleTypes: "truck, carreta ,,bitruck",
		BodyTypes:    "  ",
	}

	filter := req.ToFilterModel()

	want := []string{"truck", "carreta", "bitruck"}
	if !reflect.DeepEqual(filter.VehicleTypes, want) {
		t.Errorf("expected %v, got %v", want, filter.VehicleTypes)
	}
	if filter.BodyTypes != nil {
		t.Errorf("blank tag list must stay nil, got %v", filter.BodyTypes)
	}
}

func TestToFilterModelDefaults(t *testing.T) {
	filter := (&FilterRequest{}).ToFilterModel()

	if filter.Tracker != domainFreight.TrackerEither {
		t.Errorf("tracker must default to either, got %s", filter.Tracker)
	}
	if filter.FreightType != nil {
		t.Errorf("absent freight type must stay nil, got %v", *filter.FreightType)
	}
	if filter.HasSetFilters() {
		t.Error("empty request must not trigger the set pass")
	}
}

func TestToFilterModelFreightType(t *testing.T) {
	req := &FilterRequest{FreightType: "aggregation", Tracker: "yes", Origin: "  Campinas "}

	filter := req.ToFilterModel()

	if filter.FreightType == nil || *filter.FreightType != domainFreight.TypeAggregation {
		t.Errorf("expected aggregation, got %v", filter.FreightType)
	}
	if filter.Tracker != domainFreight.TrackerYes {
		t.Errorf("expected tracker yes, got %s", filter.Tracker)
	}
	if filter.Origin != "Campinas" {
		t.Errorf("origin must be trimmed, got %q", filter.Origin)
	}
}

func TestToFreightResponseFiltersUnselectedOptions(t *testing.T) {
	f := &domainFreight.Freight{
		AcceptedVehicleTypes: []domainFreight.TaggedOption{
			{Tag: "truck", Label: "Truck", Selected: true},
			{Tag: "carreta", Label: "Carreta", Selected: false},
		},
	}

	resp := ToFreightResponse(f, nil)

	if len(resp.AcceptedVehicleTypes) != 1 {
		t.Fatalf("expected only selected options, got %d", len(resp.AcceptedVehicleTypes))
	}
	if resp.AcceptedVehicleTypes[0].Tag != "truck" {
		t.Errorf("expected truck, got %s", resp.AcceptedVehicleTypes[0].Tag)
	}
}
