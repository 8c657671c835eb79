package wizard

import (
	"time"

	domainFreight "freightconnect/internal/domain/freight"

	"github.com/google/uuid"
)

// Step payload DTOs. Each PUT replaces that step's data; navigation is a
// separate operation so partially filled steps can be saved.

type CollaboratorsOriginRequest struct {
	Collaborators []uuid.UUID `json:"collaborators"`
	OriginState   string      `json:"origem_estado" validate:"omitempty,len=2"`
	OriginCity    string      `json:"origem_cidade"`
}

type DestinationsCargoRequest struct {
	MerchandiseType string   `json:"tipo_mercadoria"`
	WeightKg        *float64 `json:"weight_kg" validate:"omitempty,min=0"`
	DeclaredValue   *float64 `json:"declared_value" validate:"omitempty,min=0"`
	Description     string   `json:"description" validate:"omitempty,max=2000"`
}

type LogisticsCommercialRequest struct {
	FreightType    string   `json:"freight_type" validate:"omitempty,oneof=aggregation full_load return_load common"`
	CollectionDate string   `json:"data_coleta"`
	CollectionTime string   `json:"hora_coleta"`
	VehicleTypes   []string `json:"tipos_veiculos"`
	BodyTypes      []string `json:"tipos_carrocerias"`
	ValueMode      string   `json:"value_mode" validate:"omitempty,oneof=fixed other"`
	OfferedValue   *float64 `json:"valor_oferecido"`

	PriceTables     []PriceRowInput `json:"price_tables" validate:"omitempty,dive"`
	SchedulingRules []string        `json:"scheduling_rules"`
	Benefits        []string        `json:"benefits"`
}

type TollExtrasRequest struct {
	TollPaidBy     string `json:"pedagio_pago_por" validate:"omitempty,oneof=company driver none"`
	TollDirection  string `json:"pedagio_direcao" validate:"omitempty,oneof=one_way round_trip"`
	NeedsAssembly  bool   `json:"needs_assembly"`
	NeedsPackaging bool   `json:"needs_packaging"`
	NeedsInsurance bool   `json:"needs_insurance"`
	NeedsTracker   bool   `json:"needs_tracker"`
	NeedsHelper    bool   `json:"needs_helper"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
}

type DestinationRequest struct {
	State string `json:"state" validate:"required,len=2"`
	City  string `json:"city" validate:"required"`
}

type StopRequest struct {
	City           string   `json:"city" validate:"required"`
	State          string   `json:"state" validate:"required,len=2"`
	OperationType  string   `json:"operation_type" validate:"required,oneof=load unload both"`
	DwellMinutes   int      `json:"dwell_minutes" validate:"omitempty,min=0"`
	SpecificWeight *float64 `json:"specific_weight" validate:"omitempty,min=0"`
	SpecificVolume *float64 `json:"specific_volume" validate:"omitempty,min=0"`
	EstimatedTime  string   `json:"estimated_time"`
	Notes          string   `json:"notes" validate:"omitempty,max=1000"`
}

// CreatedFreight is returned per fan-out sibling for UI confirmation.
type CreatedFreight struct {
	ID               uuid.UUID `json:"id"`
	HumanCode        string    `json:"human_code"`
	DestinationCity  string    `json:"destination_city"`
	DestinationState string    `json:"destination_state"`
}

type SubmitResponse struct {
	Created []CreatedFreight `json:"created"`
}

// SessionResponse is the full wizard state echoed back to the client.
type SessionResponse struct {
	ID     uuid.UUID `json:"id"`
	Step   int       `json:"step"`
	UserID uuid.UUID `json:"user_id"`

	Collaborators []uuid.UUID `json:"collaborators"`
	OriginState   string      `json:"origem_estado"`
	OriginCity    string      `json:"origem_cidade"`

	Destinations    []Destination             `json:"destinations"`
	Stops           []domainFreight.Stop      `json:"stops"`
	MerchandiseType string                    `json:"tipo_mercadoria"`
	WeightKg        *float64                  `json:"weight_kg,omitempty"`
	DeclaredValue   *float64                  `json:"declared_value,omitempty"`
	Description     string                    `json:"description,omitempty"`

	FreightType    string   `json:"freight_type"`
	CollectionDate string   `json:"data_coleta"`
	CollectionTime string   `json:"hora_coleta"`
	VehicleTypes   []string `json:"tipos_veiculos"`
	BodyTypes      []string `json:"tipos_carrocerias"`
	ValueMode      string   `json:"value_mode"`
	OfferedValue   *float64 `json:"valor_oferecido,omitempty"`

	TollPaidBy     string `json:"pedagio_pago_por"`
	TollDirection  string `json:"pedagio_direcao"`
	NeedsAssembly  bool   `json:"needs_assembly"`
	NeedsPackaging bool   `json:"needs_packaging"`
	NeedsInsurance bool   `json:"needs_insurance"`
	NeedsTracker   bool   `json:"needs_tracker"`
	NeedsHelper    bool   `json:"needs_helper"`
	Notes          string `json:"notes,omitempty"`

	PriceTables     []PriceRowInput `json:"price_tables,omitempty"`
	SchedulingRules []string        `json:"scheduling_rules,omitempty"`
	Benefits        []string        `json:"benefits,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func toSessionResponse(s *Session) *SessionResponse {
	return &SessionResponse{
		ID:              s.ID,
		Step:            s.Step,
		UserID:          s.UserID,
		Collaborators:   s.Collaborators,
		OriginState:     s.OriginState,
		OriginCity:      s.OriginCity,
		Destinations:    s.Destinations,
		Stops:           s.Stops,
		MerchandiseType: s.MerchandiseType,
		WeightKg:        s.WeightKg,
		DeclaredValue:   s.DeclaredValue,
		Description:     s.Description,
		FreightType:     string(s.FreightType),
		CollectionDate:  s.CollectionDate,
		CollectionTime:  s.CollectionTime,
		VehicleTypes:    s.VehicleTypes,
		BodyTypes:       s.BodyTypes,
		ValueMode:       string(s.ValueMode),
		OfferedValue:    s.OfferedValue,
		TollPaidBy:      string(s.TollPaidBy),
		TollDirection:   string(s.TollDirection),
		NeedsAssembly:   s.NeedsAssembly,
		NeedsPackaging:  s.NeedsPackaging,
		NeedsInsurance:  s.NeedsInsurance,
		NeedsTracker:    s.NeedsTracker,
		NeedsHelper:     s.NeedsHelper,
		Notes:           s.Notes,
		PriceTables:     s.PriceTables,
		SchedulingRules: s.SchedulingRules,
		Benefits:        s.Benefits,
		UpdatedAt:       s.UpdatedAt,
	}
}
