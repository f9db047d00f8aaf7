package model

// Schedule represents a recurring departure on a route, served by a
// specific bus of a specific carrier. The bus is expected to belong to the
// schedule's carrier; the store does not enforce that, only the admin form
// filters the bus list by carrier.
type Schedule struct {
	ID            int64    `json:"id"`
	RouteID       int64    `json:"routeId"`
	BusID         int64    `json:"busId"`
	CarrierID     int64    `json:"carrierId"`
	DepartureTime string   `json:"departureTime"` // wall-clock "HH:MM"
	ArrivalTime   string   `json:"arrivalTime"`   // wall-clock "HH:MM"
	Price         int      `json:"price"`         // 100-10000 rub
	DaysOfWeek    []string `json:"daysOfWeek"`
	IsActive      bool     `json:"isActive"`
	ValidFrom     string   `json:"validFrom"`  // "YYYY-MM-DD"
	ValidUntil    string   `json:"validUntil"` // "YYYY-MM-DD"
}

// ScheduleInput carries the editable schedule fields
type ScheduleInput struct {
	RouteID       int64    `json:"routeId"`
	BusID         int64    `json:"busId"`
	CarrierID     int64    `json:"carrierId"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Price         int      `json:"price"`
	DaysOfWeek    []string `json:"daysOfWeek"`
	IsActive      bool     `json:"isActive"`
	ValidFrom     string   `json:"validFrom"`
	ValidUntil    string   `json:"validUntil"`
}

// DaysOfWeek is the fixed weekday enumeration used by schedule tags
var DaysOfWeek = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}
