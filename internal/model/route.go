package model

// RouteStop is an intermediate stop on a route. Stops live and die with
// their route; they have no independent lifecycle.
type RouteStop struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ArrivalTime   string `json:"arrivalTime"`   // wall-clock "HH:MM"
	DepartureTime string `json:"departureTime"` // wall-clock "HH:MM"
	Order         int    `json:"order"`         // 1-based, matches position
}

// Route represents a named connection between two cities
type Route struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	FromCity          string      `json:"fromCity"`
	ToCity            string      `json:"toCity"`
	Stops             []RouteStop `json:"stops"`
	Distance          int         `json:"distance"` // km
	EstimatedDuration string      `json:"estimatedDuration"`
	IsActive          bool        `json:"isActive"`
	Description       string      `json:"description"`
}

// RouteInput carries the editable route fields
type RouteInput struct {
	Name              string      `json:"name"`
	FromCity          string      `json:"fromCity"`
	ToCity            string      `json:"toCity"`
	Stops             []RouteStop `json:"stops"`
	Distance          int         `json:"distance"`
	EstimatedDuration string      `json:"estimatedDuration"`
	IsActive          bool        `json:"isActive"`
	Description       string      `json:"description"`
}
