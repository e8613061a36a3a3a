package domain

// PropertyFilter - predicates understood by every store adapter.
// Zero values mean "no restriction".
type PropertyFilter struct {
	Status        Status
	RequestType   RequestType
	PropertyType  PropertyType
	PostedByAgent string

	// DistrictContains matches a case-insensitive substring (public search).
	DistrictContains string
	// DistrictEquals matches the whole district, case-insensitive (reports).
	DistrictEquals string

	MinPrice *float64
	MaxPrice *float64

	NewestFirst bool
}

// ListingFilters - what the public listing search accepts.
type ListingFilters struct {
	District     string
	PropertyType PropertyType
	MinPrice     *float64
	MaxPrice     *float64
}

// ReportFilters - what the admin report accepts.
type ReportFilters struct {
	PropertyType PropertyType
	Status       Status
	District     string
	AgentID      string
}
