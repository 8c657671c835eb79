package wizard

import (
	"sync"
	"time"

	domainFreight "freightconnect/internal/domain/freight"

	"github.com/google/uuid"
)

const (
	StepCollaboratorsOrigin = 1
	StepDestinationsCargo   = 2
	StepLogisticsCommercial = 3
	StepTollExtras          = 4

	stepCount = 4
)

// Destination is one (state, city) pair; duplicates are rejected on add.
type Destination struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// PriceRowInput is one configured price-table row; every fan-out sibling
// receives its own copy at submission time.
type PriceRowInput struct {
	VehicleType  string  `json:"vehicle_type"`
	RangeStartKm float64 `json:"range_start_km"`
	RangeEndKm   float64 `json:"range_end_km"`
	Price        float64 `json:"price"`
}

// Session is the exclusive, single-owner mutable state of one in-progress
// freight request. One active session per user.
type Session struct {
	ID     uuid.UUID
	UserID uuid.UUID

	Step int

	// Step 1
	Collaborators []uuid.UUID
	OriginState   string
	OriginCity    string

	// Step 2
	Destinations    []Destination
	Stops           []domainFreight.Stop
	MerchandiseType string
	WeightKg        *float64
	DeclaredValue   *float64
	Description     string

	// Step 3
	FreightType    domainFreight.FreightType
	CollectionDate string // YYYY-MM-DD
	CollectionTime string // HH:MM
	VehicleTypes   []string
	BodyTypes      []string
	ValueMode      domainFreight.ValueMode
	OfferedValue   *float64

	// Step 4
	TollPaidBy     domainFreight.TollPayer
	TollDirection  domainFreight.TollDirection
	NeedsAssembly  bool
	NeedsPackaging bool
	NeedsInsurance bool
	NeedsTracker   bool
	NeedsHelper    bool
	Notes          string

	// Aggregation-only commercial terms
	PriceTables     []PriceRowInput
	SchedulingRules []string
	Benefits        []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSession(userID uuid.UUID) *Session {
	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		Step:        StepCollaboratorsOrigin,
		FreightType: domainFreight.TypeCommon,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// HasDestination reports whether the (state, city) pair is already present.
func (s *Session) HasDestination(d Destination) bool {
	for _, existing := range s.Destinations {
		if existing.State == d.State && existing.City == d.City {
			return true
		}
	}
	return false
}

// sessionStore keeps one active wizard per user, guarded for concurrent
// handler access. The session itself has a single logical owner.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[uuid.UUID]*Session)}
}

func (st *sessionStore) get(userID uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

func (st *sessionStore) put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.UserID] = s
}

func (st *sessionStore) remove(userID uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
