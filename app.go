package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"bus_ticket/internal/config"
	"bus_ticket/internal/model"
	"bus_ticket/internal/repository"
	"bus_ticket/internal/service"
)

// App struct
type App struct {
	ctx context.Context

	settings *config.AppSettings
	cfg      *config.Config

	store   *repository.Store
	catalog *service.CatalogService
	search  *service.SearchService
	booking *service.BookingService

	mu sync.Mutex
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// Load settings
	settings, err := config.LoadAppSettings()
	if err != nil {
		logrus.Errorf("Failed to load settings: %v", err)
		settings = &config.AppSettings{}
	}
	a.settings = settings

	a.cfg = config.Load("")
	configureLogging(a.cfg.Logging)

	// The store is rebuilt from the seed on every start; nothing except
	// the settings file persists between runs.
	a.store = repository.NewSeededStore()
	a.catalog = service.NewCatalogService(a.store)
	a.search = service.NewSearchService(a.store, service.NewRandomSeatCounter())
	a.booking = service.NewBookingService(a.store)

	logrus.WithFields(logrus.Fields{
		"carriers":  len(a.store.Carriers()),
		"buses":     len(a.store.Buses()),
		"routes":    len(a.store.Routes()),
		"schedules": len(a.store.Schedules()),
	}).Info("Store seeded")
}

func configureLogging(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}
}

// --- Bindings for Settings ---

func (a *App) GetSettings() *config.AppSettings {
	return a.settings
}

func (a *App) UpdateSettings(emailNotifications, autoConfirm, maintenanceMode bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.settings.EmailNotifications = emailNotifications
	a.settings.AutoConfirm = autoConfirm
	a.settings.MaintenanceMode = maintenanceMode

	return config.SaveAppSettings(a.settings)
}

// --- Bindings for the admin catalog ---

func (a *App) GetCarriers() []model.Carrier {
	return a.catalog.Carriers()
}

// SaveCarrier creates a carrier, or updates an existing one when editingID
// is non-zero. Returns the updated collection.
func (a *App) SaveCarrier(in model.CarrierInput, editingID int64) []model.Carrier {
	return a.catalog.SaveCarrier(in, editingID)
}

func (a *App) DeleteCarrier(id int64) []model.Carrier {
	return a.catalog.DeleteCarrier(id)
}

func (a *App) GetBuses() []model.Bus {
	return a.catalog.Buses()
}

func (a *App) SaveBus(in model.BusInput, editingID int64) []model.Bus {
	return a.catalog.SaveBus(in, editingID)
}

func (a *App) DeleteBus(id int64) []model.Bus {
	return a.catalog.DeleteBus(id)
}

func (a *App) GetRoutes() []model.Route {
	return a.catalog.Routes()
}

func (a *App) SaveRoute(in model.RouteInput, editingID int64) []model.Route {
	return a.catalog.SaveRoute(in, editingID)
}

func (a *App) DeleteRoute(id int64) []model.Route {
	return a.catalog.DeleteRoute(id)
}

func (a *App) GetSchedules() []model.Schedule {
	return a.catalog.Schedules()
}

func (a *App) SaveSchedule(in model.ScheduleInput, editingID int64) []model.Schedule {
	return a.catalog.SaveSchedule(in, editingID)
}

func (a *App) DeleteSchedule(id int64) []model.Schedule {
	return a.catalog.DeleteSchedule(id)
}

// GetSummary returns the counters for the admin analytics tab
func (a *App) GetSummary() model.CatalogSummary {
	return a.catalog.Summary()
}

// --- Bindings for the admin form option lists ---

func (a *App) GetBusTypes() []string {
	return model.BusTypes
}

func (a *App) GetAmenities() []string {
	return model.Amenities
}

func (a *App) GetDaysOfWeek() []string {
	return model.DaysOfWeek
}

// --- Bindings for search and the landing page ---

func (a *App) SearchTrips(req model.SearchRequest) []model.TripOption {
	return a.search.SearchTrips(req)
}

func (a *App) GetPopularRoutes() []model.PopularRoute {
	return a.search.PopularRoutes(a.cfg.Search.PopularLimit)
}

func (a *App) GetReviews() []model.Review {
	return a.booking.Reviews()
}

func (a *App) GetBookings() []model.Booking {
	return a.booking.Bookings()
}

func (a *App) GetCurrency() string {
	return a.cfg.Search.Currency
}

// --- Bindings for the seat-selection dialog ---

// StartSeatSelection resets the selection when the dialog opens
func (a *App) StartSeatSelection() []model.SeatInfo {
	a.booking.StartSelection()
	return a.booking.SeatMap()
}

func (a *App) ToggleSeat(n int) []int {
	return a.booking.ToggleSeat(n)
}

func (a *App) GetSeatMap() []model.SeatInfo {
	return a.booking.SeatMap()
}

func (a *App) GetSelectedSeats() []int {
	return a.booking.SelectedSeats()
}

// GetSelectionTotal returns the ticket price multiplied by the number of
// selected seats
func (a *App) GetSelectionTotal(price int) int {
	return a.booking.TotalPrice(price)
}
