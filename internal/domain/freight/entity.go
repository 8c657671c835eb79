package freight

import (
	"time"

	"github.com/google/uuid"
)

// FreightType classifies how a freight request is commercialized.
type FreightType string

const (
	TypeAggregation FreightType = "aggregation" // recurring lane with price tables
	TypeFullLoad    FreightType = "full_load"
	TypeReturnLoad  FreightType = "return_load"
	TypeCommon      FreightType = "common"
)

// Status represents the lifecycle state of a freight record. Transitions are
// driven by company/admin actions, never computed on the query path.
type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusPaused    Status = "paused"
)

// VisibleStatuses are the only statuses the public listing and code lookup
// ever return.
var VisibleStatuses = []Status{StatusActive, StatusPending}

// StopOperation describes what happens at an intermediate stop.
type StopOperation string

const (
	OperationLoad   StopOperation = "load"
	OperationUnload StopOperation = "unload"
	OperationBoth   StopOperation = "both"
)

// TollPayer / TollDirection describe who covers toll costs and on which leg.
type TollPayer string

const (
	TollPaidByCompany TollPayer = "company"
	TollPaidByDriver  TollPayer = "driver"
	TollPaidByNone    TollPayer = "none"
)

type TollDirection string

const (
	TollDirectionOneWay    TollDirection = "one_way"
	TollDirectionRoundTrip TollDirection = "round_trip"
)

// ValueMode distinguishes a fixed offered value from negotiated terms.
type ValueMode string

const (
	ValueModeFixed ValueMode = "fixed"
	ValueModeOther ValueMode = "other"
)

// Stop is an ordered intermediate point on the route. Position is contiguous
// 1..k and renumbered after every mutation.
type Stop struct {
	Position       int           `json:"position"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	OperationType  StopOperation `json:"operation_type"`
	DwellMinutes   int           `json:"dwell_minutes"`
	SpecificWeight *float64      `json:"specific_weight,omitempty"`
	SpecificVolume *float64      `json:"specific_volume,omitempty"`
	EstimatedTime  string        `json:"estimated_time,omitempty"`
	Notes          string        `json:"notes,omitempty"`
}

// TaggedOption is the canonical shape of an accepted vehicle/body type entry.
// Stored representations are heterogeneous; see Normalize.
type TaggedOption struct {
	Tag      string `json:"tag"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// PriceTableRow is one distance-banded price for an aggregation freight.
// Every fan-out sibling gets its own copies.
type PriceTableRow struct {
	ID           uuid.UUID
	FreightID    uuid.UUID
	VehicleType  string
	RangeStartKm float64
	RangeEndKm   float64
	Price        float64
}

// Freight is the central persisted entity. A wizard submission with N
// destinations produces N Freight rows differing only in destination and
// human code.
type Freight struct {
	ID        uuid.UUID
	HumanCode string

	FreightType FreightType
	Status      Status

	OriginCity  string
	OriginState string

	DestinationCity  string
	DestinationState string
	Stops            []Stop

	MerchandiseType string
	WeightKg        *float64
	DeclaredValue   *float64
	Description     *string

	NeedsAssembly  bool
	NeedsPackaging bool
	NeedsInsurance bool
	NeedsTracker   bool
	NeedsHelper    bool

	AcceptedVehicleTypes []TaggedOption
	AcceptedBodyTypes    []TaggedOption

	SchedulingRules []string
	Benefits        []string

	TollPaidBy    TollPayer
	TollDirection TollDirection

	ValueMode    ValueMode
	OfferedValue *float64

	CollectionDate time.Time
	CollectionTime string

	CompanyID       uuid.UUID
	CollaboratorIDs []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RenumberStops rewrites stop positions contiguously from 1, preserving
// order. Call after any insertion, removal or reorder.
func RenumberStops(stops []Stop) {
	for i := range stops {
		stops[i].Position = i + 1
	}
}

// Visible reports whether the record is eligible for the public query path.
func (f *Freight) Visible() bool {
	return f.Status == StatusActive || f.Status == StatusPending
}
