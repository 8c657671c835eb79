package freight

import (
	"strings"
	"time"

	domainFreight "freightconnect/internal/domain/freight"

	"github.com/google/uuid"
)

// FilterRequest binds the listing query string.
type FilterRequest struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`

	// Comma-separated tag lists
	VehicleTypes string `form:"vehicle_types"`
	BodyTypes    string `form:"body_types"`

	FreightType string `form:"freight_type" validate:"omitempty,oneof=aggregation full_load return_load common"`
	Tracker     string `form:"tracker" validate:"omitempty,oneof=yes no either"`

	Page     int `form:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" validate:"omitempty,min=1,max=100"`
}

func (r *FilterRequest) ToFilterModel() *domainFreight.FilterModel {
	filter := &domainFreight.FilterModel{
		Origin:       strings.TrimSpace(r.Origin),
		Destination:  strings.TrimSpace(r.Destination),
		VehicleTypes: splitTags(r.VehicleTypes),
		BodyTypes:    splitTags(r.BodyTypes),
		Tracker:      domainFreight.TrackerEither,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
	if r.FreightType != "" {
		ft := domainFreight.FreightType(r.FreightType)
		filter.FreightType = &ft
	}
	if r.Tracker != "" {
		filter.Tracker = domainFreight.TrackerFilter(r.Tracker)
	}
	return filter
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Response DTOs

type StopResponse struct {
	Position      int    `json:"position"`
	City          string `json:"city"`
	State         string `json:"state"`
	OperationType string `json:"operation_type"`
	DwellMinutes  int    `json:"dwell_minutes"`
	Notes         string `json:"notes,omitempty"`
}

type TaggedOptionResponse struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

type PriceTableRowResponse struct {
	VehicleType  string  `json:"vehicle_type"`
	RangeStartKm float64 `json:"range_start_km"`
	RangeEndKm   float64 `json:"range_end_km"`
	Price        float64 `json:"price"`
}

type FreightResponse struct {
	ID        uuid.UUID `json:"id"`
	HumanCode string    `json:"human_code"`

	FreightType string `json:"freight_type"`
	Status      string `json:"status"`

	OriginCity  string `json:"origin_city"`
	OriginState string `json:"origin_state"`

	DestinationCity  string         `json:"destination_city"`
	DestinationState string         `json:"destination_state"`
	Stops            []StopResponse `json:"stops,omitempty"`

	MerchandiseType string   `json:"merchandise_type"`
	WeightKg        *float64 `json:"weight_kg,omitempty"`
	DeclaredValue   *float64 `json:"declared_value,omitempty"`
	Description     *string  `json:"description,omitempty"`

	NeedsAssembly  bool `json:"needs_assembly"`
	NeedsPackaging bool `json:"needs_packaging"`
	NeedsInsurance bool `json:"needs_insurance"`
	NeedsTracker   bool `json:"needs_tracker"`
	NeedsHelper    bool `json:"needs_helper"`

	AcceptedVehicleTypes []TaggedOptionResponse `json:"accepted_vehicle_types"`
	AcceptedBodyTypes    []TaggedOptionResponse `json:"accepted_body_types"`

	SchedulingRules []string `json:"scheduling_rules,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`

	TollPaidBy    string `json:"toll_paid_by,omitempty"`
	TollDirection string `json:"toll_direction,omitempty"`

	ValueMode    string   `json:"value_mode,omitempty"`
	OfferedValue *float64 `json:"offered_value,omitempty"`

	CollectionDate string `json:"collection_date"`
	CollectionTime string `json:"collection_time,omitempty"`

	PriceTables []PriceTableRowResponse `json:"price_tables,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Freights     []FreightResponse `json:"freights"`
	CurrentPage  int               `json:"current_page"`
	TotalPages   int               `json:"total_pages"`
	TotalItems   int64             `json:"total_items"`
	ItemsPerPage int               `json:"items_per_page"`
}

func ToFreightResponse(f *domainFreight.Freight, rows []*domainFreight.PriceTableRow) *FreightResponse {
	if f == nil {
		return nil
	}

	resp := &FreightResponse{
		ID:               f.ID,
		HumanCode:        f.HumanCode,
		FreightType:      string(f.FreightType),
		Status:           string(f.Status),
		OriginCity:       f.OriginCity,
		OriginState:      f.OriginState,
		DestinationCity:  f.DestinationCity,
		DestinationState: f.DestinationState,
		MerchandiseType:  f.MerchandiseType,
		WeightKg:         f.WeightKg,
		DeclaredValue:    f.DeclaredValue,
		Description:      f.Description,
		NeedsAssembly:    f.NeedsAssembly,
		NeedsPackaging:   f.NeedsPackaging,
		NeedsInsurance:   f.NeedsInsurance,
		NeedsTracker:     f.NeedsTracker,
		NeedsHelper:      f.NeedsHelper,
		SchedulingRules:  f.SchedulingRules,
		Benefits:         f.Benefits,
		TollPaidBy:       string(f.TollPaidBy),
		TollDirection:    string(f.TollDirection),
		ValueMode:        string(f.ValueMode),
		OfferedValue:     f.OfferedValue,
		CollectionDate:   f.CollectionDate.Format("2006-01-02"),
		CollectionTime:   f.CollectionTime,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}

	for _, s := range f.Stops {
		resp.Stops = append(resp.Stops, StopResponse{
			Position:      s.Position,
			City:          s.City,
			State:         s.State,
			OperationType: string(s.OperationType),
			DwellMinutes:  s.DwellMinutes,
			Notes:         s.Notes,
		})
	}
	for _, o := range f.AcceptedVehicleTypes {
		if o.Selected {
			resp.AcceptedVehicleTypes = append(resp.AcceptedVehicleTypes, TaggedOptionResponse{Tag: o.Tag, Label: o.Label})
		}
	}
	for _, o := range f.AcceptedBodyTypes {
		if o.Selected {
			resp.AcceptedBodyTypes = append(resp.AcceptedBodyTypes, TaggedOptionResponse{Tag: o.Tag, Label: o.Label})
		}
	}
	for _, row := range rows {
		resp.PriceTables = append(resp.PriceTables, PriceTableRowResponse{
			VehicleType:  row.VehicleType,
			RangeStartKm: row.RangeStartKm,
			RangeEndKm:   row.RangeEndKm,
			Price:        row.Price,
		})
	}

	return resp
}

func ToListResponse(page *domainFreight.Page) *ListResponse {
	resp := &ListResponse{
		Freights:     make([]FreightResponse, 0, len(page.Items)),
		CurrentPage:  page.CurrentPage,
		TotalPages:   page.TotalPages,
		TotalItems:   page.TotalItems,
		ItemsPerPage: page.ItemsPerPage,
	}
	for _, f := range page.Items {
		resp.Freights = append(resp.Freights, *ToFreightResponse(f, nil))
	}
	return resp
}
