package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
)

// fixedSeats pins the advertised seat count for deterministic assertions
type fixedSeats struct {
	n int
}

func (f fixedSeats) FreeSeats() int { return f.n }

func TestSearchTrips_SeededStore(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewSearchService(store, fixedSeats{n: 12})

	trips := svc.SearchTrips(model.SearchRequest{FromCity: "Москва", ToCity: "Санкт-Петербург", Passengers: 2})

	require.Len(t, trips, 3)

	first := trips[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Москва", first.From)
	assert.Equal(t, "Санкт-Петербург", first.To)
	assert.Equal(t, "07:30", first.Departure)
	assert.Equal(t, "16:00", first.Arrival)
	assert.Equal(t, "8ч 30м", first.Duration)
	assert.Equal(t, 1200, first.Price)
	assert.Equal(t, "Комфорт Трансфер", first.Company)
	assert.Equal(t, "Мерседес Турисмо", first.BusType)
	assert.Equal(t, []string{"Wi-Fi", "Розетки", "Кондиционер", "Туалет"}, first.Amenities)
	assert.Equal(t, 12, first.AvailableSeats)
}

func TestSearchTrips_SkipsInactiveSchedules(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewSearchService(store, fixedSeats{n: 7})

	sc, ok := store.FindSchedule(2)
	require.True(t, ok)
	store.SaveSchedule(model.ScheduleInput{
		RouteID:       sc.RouteID,
		BusID:         sc.BusID,
		CarrierID:     sc.CarrierID,
		DepartureTime: sc.DepartureTime,
		ArrivalTime:   sc.ArrivalTime,
		Price:         sc.Price,
		DaysOfWeek:    sc.DaysOfWeek,
		IsActive:      false,
		ValidFrom:     sc.ValidFrom,
		ValidUntil:    sc.ValidUntil,
	}, 2)

	trips := svc.SearchTrips(model.SearchRequest{})

	require.Len(t, trips, 2)
	for _, trip := range trips {
		assert.NotEqual(t, int64(2), trip.ID)
	}
}

func TestSearchTrips_EmptyStore(t *testing.T) {
	svc := NewSearchService(repository.NewStore(), fixedSeats{n: 9})

	trips := svc.SearchTrips(model.SearchRequest{})

	assert.Empty(t, trips)
}

func TestSearchTrips_DanglingReferencesBlankFields(t *testing.T) {
	store := repository.NewStore()
	store.SaveSchedule(model.ScheduleInput{
		RouteID:       111,
		BusID:         222,
		CarrierID:     333,
		DepartureTime: "09:00",
		ArrivalTime:   "12:00",
		Price:         950,
		IsActive:      true,
	}, 0)
	svc := NewSearchService(store, fixedSeats{n: 5})

	trips := svc.SearchTrips(model.SearchRequest{})

	require.Len(t, trips, 1)
	trip := trips[0]
	assert.Empty(t, trip.From)
	assert.Empty(t, trip.To)
	assert.Empty(t, trip.Duration)
	assert.Empty(t, trip.Company)
	assert.Empty(t, trip.BusType)
	assert.Empty(t, trip.Amenities)
	// Schedule fields survive the failed joins
	assert.Equal(t, "09:00", trip.Departure)
	assert.Equal(t, 950, trip.Price)
}

func TestPopularRoutes(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewSearchService(store, fixedSeats{n: 10})

	tests := []struct {
		name       string
		limit      int
		wantLen    int
		wantPrices []int
	}{
		{name: "limit below total keeps insertion order", limit: 2, wantLen: 2, wantPrices: []int{1200, 1100}},
		{name: "limit above total returns all", limit: 10, wantLen: 3, wantPrices: []int{1200, 1100, 1800}},
		{name: "zero limit returns nothing", limit: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := svc.PopularRoutes(tt.limit)
			require.Len(t, routes, tt.wantLen)
			for i, price := range tt.wantPrices {
				assert.Equal(t, price, routes[i].Price)
			}
		})
	}
}

func TestPopularRoutes_CardFields(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewSearchService(store, fixedSeats{n: 10})

	routes := svc.PopularRoutes(1)

	require.Len(t, routes, 1)
	assert.Equal(t, model.PopularRoute{
		From:     "Москва",
		To:       "Санкт-Петербург",
		Price:    1200,
		Duration: "8ч 30м",
		Company:  "Комфорт Трансфер",
	}, routes[0])
}

func TestRandomSeatCounter_Range(t *testing.T) {
	counter := NewRandomSeatCounter()

	for i := 0; i < 200; i++ {
		n := counter.FreeSeats()
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 24)
	}
}
