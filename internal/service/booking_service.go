package service

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
)

// SeatCount is the number of seats in the bus layout drawn by the dialog
const SeatCount = 40

// occupiedSeats is the fixed occupied layout. It is not derived from
// bookings and never changes.
var occupiedSeats = map[int]bool{
	3: true, 7: true, 12: true, 18: true, 21: true, 25: true,
}

// BookingService owns the seat-selection state of the currently open seat
// dialog and serves the seeded bookings and reviews. Selection state lives
// only for the dialog session; closing and reopening the dialog starts
// from an empty selection.
type BookingService struct {
	store *repository.Store
	log   *logrus.Entry

	mu       sync.Mutex
	selected map[int]bool
}

// NewBookingService creates a new booking service with an empty selection
func NewBookingService(store *repository.Store) *BookingService {
	return &BookingService{
		store:    store,
		log:      logrus.WithField("component", "booking"),
		selected: make(map[int]bool),
	}
}

// StartSelection resets the selection for a freshly opened seat dialog
func (b *BookingService) StartSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selected = make(map[int]bool)
	b.log.Debug("Seat selection reset")
}

// ToggleSeat flips the selection state of a seat and returns the updated
// selection. Occupied seats and numbers outside the layout are ignored.
func (b *BookingService) ToggleSeat(n int) []int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n < 1 || n > SeatCount || occupiedSeats[n] {
		return b.selectedLocked()
	}

	if b.selected[n] {
		delete(b.selected, n)
	} else {
		b.selected[n] = true
	}
	return b.selectedLocked()
}

// SelectedSeats returns the currently selected seat numbers in order
func (b *BookingService) SelectedSeats() []int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedLocked()
}

// TotalPrice is the ticket price multiplied by the number of selected seats
func (b *BookingService) TotalPrice(price int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return price * len(b.selected)
}

// SeatMap returns every seat of the layout with its occupied and selected
// state, for the dialog to render
func (b *BookingService) SeatMap() []model.SeatInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	seats := make([]model.SeatInfo, 0, SeatCount)
	for n := 1; n <= SeatCount; n++ {
		seats = append(seats, model.SeatInfo{
			Number:   n,
			Occupied: occupiedSeats[n],
			Selected: b.selected[n],
		})
	}
	return seats
}

// Bookings returns the seeded reservation rows for the admin tab
func (b *BookingService) Bookings() []model.Booking {
	return b.store.Bookings()
}

// Reviews returns the seeded passenger reviews for the landing page
func (b *BookingService) Reviews() []model.Review {
	return b.store.Reviews()
}

func (b *BookingService) selectedLocked() []int {
	seats := make([]int, 0, len(b.selected))
	for n := range b.selected {
		seats = append(seats, n)
	}
	sort.Ints(seats)
	return seats
}
