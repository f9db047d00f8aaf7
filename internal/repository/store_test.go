package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus_ticket/internal/model"
)

func TestNewSeededStore_Counts(t *testing.T) {
	s := NewSeededStore()

	assert.Len(t, s.Carriers(), 3)
	assert.Len(t, s.Buses(), 3)
	assert.Len(t, s.Routes(), 2)
	assert.Len(t, s.Schedules(), 3)
	assert.Len(t, s.Bookings(), 3)
	assert.Len(t, s.Reviews(), 3)
}

func TestSaveCarrier_Create(t *testing.T) {
	s := NewStore()

	saved := s.SaveCarrier(model.CarrierInput{Name: "X", Rating: 4.2, IsActive: true}, 0)

	carriers := s.Carriers()
	require.Len(t, carriers, 1)
	assert.Equal(t, "X", carriers[0].Name)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSaveCarrier_Update(t *testing.T) {
	s := NewSeededStore()
	before, ok := s.FindCarrier(1)
	require.True(t, ok)

	saved := s.SaveCarrier(model.CarrierInput{Name: "Новое имя", Rating: 3.9, IsActive: false}, 1)

	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, before.CreatedAt, saved.CreatedAt)
	assert.Equal(t, "Новое имя", saved.Name)
	assert.False(t, saved.IsActive)
	assert.Len(t, s.Carriers(), 3)
}

func TestSaveCarrier_MissingEditingTarget(t *testing.T) {
	s := NewSeededStore()

	s.SaveCarrier(model.CarrierInput{Name: "призрак"}, 99999)

	// Editing a record that no longer exists changes nothing
	assert.Len(t, s.Carriers(), 3)
	for _, c := range s.Carriers() {
		assert.NotEqual(t, "призрак", c.Name)
	}
}

func TestSaveBus_IDBehavior(t *testing.T) {
	s := NewSeededStore()

	t.Run("update preserves id", func(t *testing.T) {
		saved := s.SaveBus(model.BusInput{Model: "Неоплан", CarrierID: 1, IsActive: true}, 2)
		assert.Equal(t, int64(2), saved.ID)
		assert.Len(t, s.Buses(), 3)
	})

	t.Run("create assigns fresh id", func(t *testing.T) {
		existing := map[int64]bool{}
		for _, b := range s.Buses() {
			existing[b.ID] = true
		}

		saved := s.SaveBus(model.BusInput{Model: "Икарус", CarrierID: 1, IsActive: true}, 0)
		assert.False(t, existing[saved.ID])
		assert.Len(t, s.Buses(), 4)
	})
}

func TestDeleteCarrier_Cascades(t *testing.T) {
	s := NewSeededStore()

	s.DeleteCarrier(1)

	for _, c := range s.Carriers() {
		assert.NotEqual(t, int64(1), c.ID)
	}
	for _, b := range s.Buses() {
		assert.NotEqual(t, int64(1), b.CarrierID)
	}
	for _, sc := range s.Schedules() {
		assert.NotEqual(t, int64(1), sc.CarrierID)
	}
	// Records of other carriers are untouched
	assert.Len(t, s.Carriers(), 2)
	assert.Len(t, s.Buses(), 2)
	assert.Len(t, s.Schedules(), 2)
}

func TestDeleteBus_CascadesToSchedules(t *testing.T) {
	s := NewSeededStore()

	s.DeleteBus(3)

	assert.Len(t, s.Buses(), 2)
	require.Len(t, s.Schedules(), 2)
	for _, sc := range s.Schedules() {
		assert.NotEqual(t, int64(3), sc.BusID)
	}
	// Carriers are not part of the bus cascade
	assert.Len(t, s.Carriers(), 3)
}

func TestDeleteRoute_CascadesToSchedules(t *testing.T) {
	s := NewSeededStore()

	// Schedules 1 and 2 run on route 1, schedule 3 on route 2
	s.DeleteRoute(1)

	assert.Len(t, s.Routes(), 1)
	schedules := s.Schedules()
	require.Len(t, schedules, 1)
	assert.Equal(t, int64(3), schedules[0].ID)
}

func TestDeleteSchedule_IsLeaf(t *testing.T) {
	s := NewSeededStore()

	s.DeleteSchedule(2)

	assert.Len(t, s.Schedules(), 2)
	assert.Len(t, s.Carriers(), 3)
	assert.Len(t, s.Buses(), 3)
	assert.Len(t, s.Routes(), 2)
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	s := NewSeededStore()

	s.DeleteCarrier(424242)
	s.DeleteBus(424242)
	s.DeleteRoute(424242)
	s.DeleteSchedule(424242)

	assert.Len(t, s.Carriers(), 3)
	assert.Len(t, s.Buses(), 3)
	assert.Len(t, s.Routes(), 2)
	assert.Len(t, s.Schedules(), 3)
}

func TestNewID_Monotonic(t *testing.T) {
	s := NewStore()

	prev := s.NewID()
	for i := 0; i < 100; i++ {
		next := s.NewID()
		assert.Greater(t, next, prev)
		prev = next
	}
}
