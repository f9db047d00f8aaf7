package service

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
)

// CatalogService implements the admin operations over the entity store.
// Every mutation is total: saves replace or append, deletes cascade, and
// neither can be rejected. Each operation hands the updated collection back
// so the admin tab can re-render from the return value.
type CatalogService struct {
	store *repository.Store
	log   *logrus.Entry
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *repository.Store) *CatalogService {
	return &CatalogService{
		store: store,
		log:   logrus.WithField("component", "catalog"),
	}
}

// Carriers returns all carriers
func (c *CatalogService) Carriers() []model.Carrier {
	return c.store.Carriers()
}

// SaveCarrier creates a carrier, or updates the one matching editingID
func (c *CatalogService) SaveCarrier(in model.CarrierInput, editingID int64) []model.Carrier {
	saved := c.store.SaveCarrier(in, editingID)
	c.log.WithFields(logrus.Fields{"id": saved.ID, "name": in.Name, "editing": editingID != 0}).Info("Carrier saved")
	return c.store.Carriers()
}

// DeleteCarrier removes a carrier and cascades to its buses and schedules
func (c *CatalogService) DeleteCarrier(id int64) []model.Carrier {
	c.store.DeleteCarrier(id)
	c.log.WithField("id", id).Info("Carrier deleted")
	return c.store.Carriers()
}

// Buses returns all buses
func (c *CatalogService) Buses() []model.Bus {
	return c.store.Buses()
}

// SaveBus creates a bus, or updates the one matching editingID
func (c *CatalogService) SaveBus(in model.BusInput, editingID int64) []model.Bus {
	saved := c.store.SaveBus(in, editingID)
	c.log.WithFields(logrus.Fields{"id": saved.ID, "model": in.Model, "editing": editingID != 0}).Info("Bus saved")
	return c.store.Buses()
}

// DeleteBus removes a bus and cascades to its schedules
func (c *CatalogService) DeleteBus(id int64) []model.Bus {
	c.store.DeleteBus(id)
	c.log.WithField("id", id).Info("Bus deleted")
	return c.store.Buses()
}

// Routes returns all routes
func (c *CatalogService) Routes() []model.Route {
	return c.store.Routes()
}

// SaveRoute creates a route, or updates the one matching editingID
func (c *CatalogService) SaveRoute(in model.RouteInput, editingID int64) []model.Route {
	saved := c.store.SaveRoute(in, editingID)
	c.log.WithFields(logrus.Fields{"id": saved.ID, "name": in.Name, "editing": editingID != 0}).Info("Route saved")
	return c.store.Routes()
}

// DeleteRoute removes a route and cascades to its schedules
func (c *CatalogService) DeleteRoute(id int64) []model.Route {
	c.store.DeleteRoute(id)
	c.log.WithField("id", id).Info("Route deleted")
	return c.store.Routes()
}

// Schedules returns all schedules
func (c *CatalogService) Schedules() []model.Schedule {
	return c.store.Schedules()
}

// SaveSchedule creates a schedule, or updates the one matching editingID
func (c *CatalogService) SaveSchedule(in model.ScheduleInput, editingID int64) []model.Schedule {
	saved := c.store.SaveSchedule(in, editingID)
	c.log.WithFields(logrus.Fields{"id": saved.ID, "route": in.RouteID, "editing": editingID != 0}).Info("Schedule saved")
	return c.store.Schedules()
}

// DeleteSchedule removes a single schedule
func (c *CatalogService) DeleteSchedule(id int64) []model.Schedule {
	c.store.DeleteSchedule(id)
	c.log.WithField("id", id).Info("Schedule deleted")
	return c.store.Schedules()
}

// Summary computes the counters for the admin analytics tab
func (c *CatalogService) Summary() model.CatalogSummary {
	schedules := c.store.Schedules()
	buses := c.store.Buses()

	return model.CatalogSummary{
		Carriers:  len(c.store.Carriers()),
		Buses:     len(buses),
		Routes:    len(c.store.Routes()),
		Schedules: len(schedules),
		ActiveSchedules: lo.CountBy(schedules, func(sc model.Schedule) bool {
			return sc.IsActive
		}),
		FleetCapacity: lo.SumBy(buses, func(b model.Bus) int {
			return b.Capacity
		}),
	}
}
