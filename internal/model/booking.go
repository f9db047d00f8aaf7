package model

// Booking statuses shown in the admin bookings tab
const (
	BookingConfirmed = "confirmed"
	BookingPending   = "pending"
)

// Booking is a seeded reservation row listed in the admin panel. Bookings
// are display data only; nothing in the app creates or settles them.
type Booking struct {
	ID        int64  `json:"id"`
	Passenger string `json:"passenger"`
	Route     string `json:"route"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	Seats     []int  `json:"seats"`
	Status    string `json:"status"`
}

// Review is a passenger testimonial shown on the landing page
type Review struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"` // 1-5
	Text   string `json:"text"`
	Route  string `json:"route"`
}

// SeatInfo describes one seat cell in the seat-selection dialog
type SeatInfo struct {
	Number   int  `json:"number"`
	Occupied bool `json:"occupied"`
	Selected bool `json:"selected"`
}
