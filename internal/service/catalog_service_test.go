package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
)

func TestCatalogService_SaveCarrierReturnsCollection(t *testing.T) {
	svc := NewCatalogService(repository.NewStore())

	carriers := svc.SaveCarrier(model.CarrierInput{Name: "X", Rating: 4.0, IsActive: true}, 0)

	require.Len(t, carriers, 1)
	assert.Equal(t, "X", carriers[0].Name)
	assert.NotZero(t, carriers[0].ID)
	assert.False(t, carriers[0].CreatedAt.IsZero())
}

func TestCatalogService_DeleteRouteCascade(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewCatalogService(store)

	routes := svc.DeleteRoute(1)

	require.Len(t, routes, 1)
	assert.Equal(t, int64(2), routes[0].ID)

	schedules := svc.Schedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, int64(3), schedules[0].ID)
}

func TestCatalogService_SaveScheduleUpdate(t *testing.T) {
	store := repository.NewSeededStore()
	svc := NewCatalogService(store)

	schedules := svc.SaveSchedule(model.ScheduleInput{
		RouteID:       1,
		BusID:         1,
		CarrierID:     1,
		DepartureTime: "08:00",
		ArrivalTime:   "16:30",
		Price:         1350,
		DaysOfWeek:    []string{"saturday", "sunday"},
		IsActive:      true,
		ValidFrom:     "2024-02-01",
		ValidUntil:    "2024-11-30",
	}, 1)

	require.Len(t, schedules, 3)
	updated, ok := store.FindSchedule(1)
	require.True(t, ok)
	assert.Equal(t, "08:00", updated.DepartureTime)
	assert.Equal(t, 1350, updated.Price)
}

func TestCatalogService_Summary(t *testing.T) {
	svc := NewCatalogService(repository.NewSeededStore())

	summary := svc.Summary()

	assert.Equal(t, model.CatalogSummary{
		Carriers:        3,
		Buses:           3,
		Routes:          2,
		Schedules:       3,
		ActiveSchedules: 3,
		FleetCapacity:   134,
	}, summary)
}
