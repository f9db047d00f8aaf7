package model

// SearchRequest is what the search form submits. The current search simply
// returns every active schedule, but the form fields are carried through so
// the boundary matches what the frontend sends.
type SearchRequest struct {
	FromCity   string `json:"fromCity"`
	ToCity     string `json:"toCity"`
	TravelDate string `json:"travelDate"` // "YYYY-MM-DD"
	Passengers int    `json:"passengers"`
}

// TripOption is a denormalized search-result row: one active schedule
// joined to its route, bus and carrier. Fields referencing a record that no
// longer exists are left blank instead of failing the whole search.
type TripOption struct {
	ID             int64    `json:"id"` // schedule id
	From           string   `json:"from"`
	To             string   `json:"to"`
	Departure      string   `json:"departure"`
	Arrival        string   `json:"arrival"`
	Duration       string   `json:"duration"`
	Price          int      `json:"price"`
	Company        string   `json:"company"`
	BusType        string   `json:"busType"`
	Amenities      []string `json:"amenities"`
	AvailableSeats int      `json:"availableSeats"`
}

// PopularRoute is a landing-page card for a frequently served connection
type PopularRoute struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Price    int    `json:"price"`
	Duration string `json:"duration"`
	Company  string `json:"company"`
}

// CatalogSummary holds the counters shown on the admin analytics tab
type CatalogSummary struct {
	Carriers        int `json:"carriers"`
	Buses           int `json:"buses"`
	Routes          int `json:"routes"`
	Schedules       int `json:"schedules"`
	ActiveSchedules int `json:"activeSchedules"`
	FleetCapacity   int `json:"fleetCapacity"`
}
