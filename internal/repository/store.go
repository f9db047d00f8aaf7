package repository

import (
	"sync"
	"time"

	"bus_ticket/internal/model"
)

// Store holds the four entity collections in memory. There is no backing
// database: the collections are seeded on startup and reset with the
// process. A single RWMutex guards the collections because Wails bindings
// may be invoked concurrently by the frontend.
type Store struct {
	mu     sync.RWMutex
	nextID int64

	carriers  []model.Carrier
	buses     []model.Bus
	routes    []model.Route
	schedules []model.Schedule
	bookings  []model.Booking
	reviews   []model.Review
}

// NewStore creates an empty store. Identifiers start at the current
// millisecond timestamp and increase monotonically, so ids assigned at
// runtime never collide with each other or with the small seed ids.
func NewStore() *Store {
	return &Store{nextID: time.Now().UnixMilli()}
}

// NewSeededStore creates a store pre-populated with the demo dataset
func NewSeededStore() *Store {
	s := NewStore()
	s.loadSeed()
	return s
}

// NewID allocates the next process-unique identifier
func (s *Store) NewID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.newIDLocked()
}

func (s *Store) newIDLocked() int64 {
	s.nextID++
	return s.nextID
}

// --- Reads ---

// Carriers returns all carriers in insertion order
func (s *Store) Carriers() []model.Carrier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Carrier(nil), s.carriers...)
}

// Buses returns all buses in insertion order
func (s *Store) Buses() []model.Bus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Bus(nil), s.buses...)
}

// Routes returns all routes in insertion order
func (s *Store) Routes() []model.Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Route(nil), s.routes...)
}

// Schedules returns all schedules in insertion order
func (s *Store) Schedules() []model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Schedule(nil), s.schedules...)
}

// Bookings returns the seeded reservation rows
func (s *Store) Bookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Booking(nil), s.bookings...)
}

// Reviews returns the seeded passenger reviews
func (s *Store) Reviews() []model.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Review(nil), s.reviews...)
}

// FindCarrier retrieves a carrier by id; ok is false when it does not exist
func (s *Store) FindCarrier(id int64) (model.Carrier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.carriers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Carrier{}, false
}

// FindBus retrieves a bus by id
func (s *Store) FindBus(id int64) (model.Bus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.buses {
		if b.ID == id {
			return b, true
		}
	}
	return model.Bus{}, false
}

// FindRoute retrieves a route by id
func (s *Store) FindRoute(id int64) (model.Route, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.routes {
		if r.ID == id {
			return r, true
		}
	}
	return model.Route{}, false
}

// FindSchedule retrieves a schedule by id
func (s *Store) FindSchedule(id int64) (model.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sc := range s.schedules {
		if sc.ID == id {
			return sc, true
		}
	}
	return model.Schedule{}, false
}

// --- Writes ---
//
// Every save either replaces the record matching editingID in place or, when
// editingID is zero, appends a new record with a fresh id. Replacing a
// record that no longer exists is a silent no-op: the editing target always
// comes from the admin list itself, so a miss means it was already removed.
// Saves and deletes are total: they never reject.

// SaveCarrier creates or updates a carrier. On update the id and the
// original creation timestamp are preserved.
func (s *Store) SaveCarrier(in model.CarrierInput, editingID int64) model.Carrier {
	s.mu.Lock()
	defer s.mu.Unlock()

	if editingID != 0 {
		for i, c := range s.carriers {
			if c.ID == editingID {
				s.carriers[i] = model.Carrier{
					ID:          c.ID,
					Name:        in.Name,
					Phone:       in.Phone,
					Email:       in.Email,
					Description: in.Description,
					Logo:        in.Logo,
					Rating:      in.Rating,
					IsActive:    in.IsActive,
					CreatedAt:   c.CreatedAt,
				}
				return s.carriers[i]
			}
		}
		return model.Carrier{}
	}

	c := model.Carrier{
		ID:          s.newIDLocked(),
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
		Logo:        in.Logo,
		Rating:      in.Rating,
		IsActive:    in.IsActive,
		CreatedAt:   time.Now(),
	}
	s.carriers = append(s.carriers, c)
	return c
}

// SaveBus creates or updates a bus
func (s *Store) SaveBus(in model.BusInput, editingID int64) model.Bus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if editingID != 0 {
		for i, b := range s.buses {
			if b.ID == editingID {
				s.buses[i] = busFromInput(in, b.ID)
				return s.buses[i]
			}
		}
		return model.Bus{}
	}

	b := busFromInput(in, s.newIDLocked())
	s.buses = append(s.buses, b)
	return b
}

// SaveRoute creates or updates a route together with its stops
func (s *Store) SaveRoute(in model.RouteInput, editingID int64) model.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	if editingID != 0 {
		for i, r := range s.routes {
			if r.ID == editingID {
				s.routes[i] = routeFromInput(in, r.ID)
				return s.routes[i]
			}
		}
		return model.Route{}
	}

	r := routeFromInput(in, s.newIDLocked())
	s.routes = append(s.routes, r)
	return r
}

// SaveSchedule creates or updates a schedule
func (s *Store) SaveSchedule(in model.ScheduleInput, editingID int64) model.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if editingID != 0 {
		for i, sc := range s.schedules {
			if sc.ID == editingID {
				s.schedules[i] = scheduleFromInput(in, sc.ID)
				return s.schedules[i]
			}
		}
		return model.Schedule{}
	}

	sc := scheduleFromInput(in, s.newIDLocked())
	s.schedules = append(s.schedules, sc)
	return sc
}

// DeleteCarrier removes a carrier together with every bus and schedule that
// belongs to it
func (s *Store) DeleteCarrier(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carriers = deleteWhere(s.carriers, func(c model.Carrier) bool { return c.ID == id })
	s.buses = deleteWhere(s.buses, func(b model.Bus) bool { return b.CarrierID == id })
	s.schedules = deleteWhere(s.schedules, func(sc model.Schedule) bool { return sc.CarrierID == id })
}

// DeleteBus removes a bus together with every schedule served by it
func (s *Store) DeleteBus(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buses = deleteWhere(s.buses, func(b model.Bus) bool { return b.ID == id })
	s.schedules = deleteWhere(s.schedules, func(sc model.Schedule) bool { return sc.BusID == id })
}

// DeleteRoute removes a route together with every schedule running on it
func (s *Store) DeleteRoute(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.routes = deleteWhere(s.routes, func(r model.Route) bool { return r.ID == id })
	s.schedules = deleteWhere(s.schedules, func(sc model.Schedule) bool { return sc.RouteID == id })
}

// DeleteSchedule removes a single schedule. Schedules are leaf records, so
// nothing cascades.
func (s *Store) DeleteSchedule(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules = deleteWhere(s.schedules, func(sc model.Schedule) bool { return sc.ID == id })
}

func deleteWhere[T any](items []T, match func(T) bool) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	return kept
}

func busFromInput(in model.BusInput, id int64) model.Bus {
	return model.Bus{
		ID:          id,
		Model:       in.Model,
		PlateNumber: in.PlateNumber,
		Capacity:    in.Capacity,
		Amenities:   in.Amenities,
		CarrierID:   in.CarrierID,
		IsActive:    in.IsActive,
		Year:        in.Year,
		BusType:     in.BusType,
		Description: in.Description,
	}
}

func routeFromInput(in model.RouteInput, id int64) model.Route {
	return model.Route{
		ID:                id,
		Name:              in.Name,
		FromCity:          in.FromCity,
		ToCity:            in.ToCity,
		Stops:             in.Stops,
		Distance:          in.Distance,
		EstimatedDuration: in.EstimatedDuration,
		IsActive:          in.IsActive,
		Description:       in.Description,
	}
}

func scheduleFromInput(in model.ScheduleInput, id int64) model.Schedule {
	return model.Schedule{
		ID:            id,
		RouteID:       in.RouteID,
		BusID:         in.BusID,
		CarrierID:     in.CarrierID,
		DepartureTime: in.DepartureTime,
		ArrivalTime:   in.ArrivalTime,
		Price:         in.Price,
		DaysOfWeek:    in.DaysOfWeek,
		IsActive:      in.IsActive,
		ValidFrom:     in.ValidFrom,
		ValidUntil:    in.ValidUntil,
	}
}
