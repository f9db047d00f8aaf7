package service

import (
	"math/rand"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
)

// Advertised free-seat range for a search row
const (
	minFreeSeats = 5
	maxFreeSeats = 24
)

// SeatCounter produces the free-seat count advertised on a search row.
// The count is presentation data only; it is not backed by any inventory.
type SeatCounter interface {
	FreeSeats() int
}

type randomSeatCounter struct {
	rng *rand.Rand
}

// NewRandomSeatCounter returns the default seat counter: a uniform random
// integer in [5, 24], regenerated on every call
func NewRandomSeatCounter() SeatCounter {
	return &randomSeatCounter{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *randomSeatCounter) FreeSeats() int {
	return minFreeSeats + c.rng.Intn(maxFreeSeats-minFreeSeats+1)
}

// SearchService derives the denormalized rows the search and landing pages
// display. Nothing is cached: every call recomputes from the store.
type SearchService struct {
	store *repository.Store
	seats SeatCounter
	log   *logrus.Entry
}

// NewSearchService creates a new search service
func NewSearchService(store *repository.Store, seats SeatCounter) *SearchService {
	return &SearchService{
		store: store,
		seats: seats,
		log:   logrus.WithField("component", "search"),
	}
}

// SearchTrips returns one row per active schedule, each joined to its
// route, bus and carrier. The form fields in req are accepted but do not
// narrow the result; the search shows everything currently on sale.
func (s *SearchService) SearchTrips(req model.SearchRequest) []model.TripOption {
	active := lo.Filter(s.store.Schedules(), func(sc model.Schedule, _ int) bool {
		return sc.IsActive
	})

	trips := lo.Map(active, func(sc model.Schedule, _ int) model.TripOption {
		return s.tripFor(sc)
	})

	s.log.WithFields(logrus.Fields{
		"from":    req.FromCity,
		"to":      req.ToCity,
		"date":    req.TravelDate,
		"results": len(trips),
	}).Debug("Trip search executed")

	return trips
}

// PopularRoutes returns landing-page cards for the first limit active
// schedules in insertion order
func (s *SearchService) PopularRoutes(limit int) []model.PopularRoute {
	active := lo.Filter(s.store.Schedules(), func(sc model.Schedule, _ int) bool {
		return sc.IsActive
	})
	if limit >= 0 && len(active) > limit {
		active = active[:limit]
	}

	return lo.Map(active, func(sc model.Schedule, _ int) model.PopularRoute {
		trip := s.tripFor(sc)
		return model.PopularRoute{
			From:     trip.From,
			To:       trip.To,
			Price:    trip.Price,
			Duration: trip.Duration,
			Company:  trip.Company,
		}
	})
}

// tripFor joins a schedule to its route, bus and carrier. A dangling
// reference leaves the corresponding fields blank; the row is still
// returned.
func (s *SearchService) tripFor(sc model.Schedule) model.TripOption {
	trip := model.TripOption{
		ID:             sc.ID,
		Departure:      sc.DepartureTime,
		Arrival:        sc.ArrivalTime,
		Price:          sc.Price,
		Amenities:      []string{},
		AvailableSeats: s.seats.FreeSeats(),
	}

	if route, ok := s.store.FindRoute(sc.RouteID); ok {
		trip.From = route.FromCity
		trip.To = route.ToCity
		trip.Duration = route.EstimatedDuration
	} else {
		s.log.WithFields(logrus.Fields{"schedule": sc.ID, "route": sc.RouteID}).Warn("Schedule references missing route")
	}

	if bus, ok := s.store.FindBus(sc.BusID); ok {
		trip.BusType = bus.Model
		if bus.Amenities != nil {
			trip.Amenities = bus.Amenities
		}
	} else {
		s.log.WithFields(logrus.Fields{"schedule": sc.ID, "bus": sc.BusID}).Warn("Schedule references missing bus")
	}

	if carrier, ok := s.store.FindCarrier(sc.CarrierID); ok {
		trip.Company = carrier.Name
	} else {
		s.log.WithFields(logrus.Fields{"schedule": sc.ID, "carrier": sc.CarrierID}).Warn("Schedule references missing carrier")
	}

	return trip
}
