package model

import "time"

// Carrier represents a bus operator company
type Carrier struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Logo        string    `json:"logo,omitempty"`
	Rating      float64   `json:"rating"` // 1.0-5.0
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CarrierInput carries the editable carrier fields. The identifier and the
// creation timestamp are assigned by the store and never come from the form.
type CarrierInput struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	Logo        string  `json:"logo,omitempty"`
	Rating      float64 `json:"rating"`
	IsActive    bool    `json:"isActive"`
}
