package model

// Bus represents a single vehicle operated by a carrier
type Bus struct {
	ID          int64    `json:"id"`
	Model       string   `json:"model"`
	PlateNumber string   `json:"plateNumber"`
	Capacity    int      `json:"capacity"` // 1-80
	Amenities   []string `json:"amenities"`
	CarrierID   int64    `json:"carrierId"`
	IsActive    bool     `json:"isActive"`
	Year        int      `json:"year"`
	BusType     string   `json:"busType"`
	Description string   `json:"description"`
}

// BusInput carries the editable bus fields
type BusInput struct {
	Model       string   `json:"model"`
	PlateNumber string   `json:"plateNumber"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	CarrierID   int64    `json:"carrierId"`
	IsActive    bool     `json:"isActive"`
	Year        int      `json:"year"`
	BusType     string   `json:"busType"`
	Description string   `json:"description"`
}

// BusTypes is the fixed set of bus categories offered in the admin form
var BusTypes = []string{
	"Туристический",
	"Междугородный",
	"Региональный",
	"Городской",
	"Люкс",
	"Эконом",
}

// Amenities is the fixed set of amenity tags offered in the admin form
var Amenities = []string{
	"Wi-Fi",
	"Розетки",
	"Кондиционер",
	"Туалет",
	"Видео",
	"Холодильник",
	"Кухня",
	"Спальные места",
	"Багажное отделение",
	"USB-порты",
}
