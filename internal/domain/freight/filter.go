package freight

// TrackerFilter is a three-state filter over the tracker-required flag.
type TrackerFilter string

const (
	TrackerYes    TrackerFilter = "yes"
	TrackerNo     TrackerFilter = "no"
	TrackerEither TrackerFilter = "either"
)

// FilterModel captures a driver's search intent. Every field is optional; an
// absent or empty field imposes no constraint.
type FilterModel struct {
	Origin      string
	Destination string

	VehicleTypes []string
	BodyTypes    []string

	FreightType *FreightType
	Tracker     TrackerFilter

	Page     int
	PageSize int
}

// HasSetFilters reports whether the in-memory set-intersection pass is
// needed on top of the store query.
func (f *FilterModel) HasSetFilters() bool {
	return len(f.VehicleTypes) > 0 || len(f.BodyTypes) > 0
}

// Query is the store-expressible part of a FilterModel: text and enum
// predicates plus pagination. Set-typed filters cannot be pushed down to the
// store's query language over the jsonb columns and are applied by the
// service after the fetch.
type Query struct {
	OriginText      string
	DestinationText string
	FreightType     *FreightType
	TrackerRequired *bool

	Page     int
	PageSize int
}

// StoreQuery derives the pushdown query for a filter, with page size already
// inflated by the caller when set filters require over-fetching.
func (f *FilterModel) StoreQuery(pageSize int) *Query {
	q := &Query{
		OriginText:      f.Origin,
		DestinationText: f.Destination,
		FreightType:     f.FreightType,
		Page:            f.Page,
		PageSize:        pageSize,
	}
	switch f.Tracker {
	case TrackerYes:
		yes := true
		q.TrackerRequired = &yes
	case TrackerNo:
		no := false
		q.TrackerRequired = &no
	}
	return q
}

// Page is one page of listing results with metadata derived from the total
// count.
type Page struct {
	Items        []*Freight
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
}
