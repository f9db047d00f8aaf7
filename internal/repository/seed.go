package repository

import (
	"time"

	"bus_ticket/internal/model"
)

// loadSeed populates the demo dataset the app starts with: three carriers,
// three buses, two routes and three schedules, plus the bookings and
// reviews shown on the admin and landing pages. The small literal ids are
// safe because runtime ids are allocated from the startup timestamp.
func (s *Store) loadSeed() {
	seeded := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	s.carriers = []model.Carrier{
		{
			ID:          1,
			Name:        "Комфорт Трансфер",
			Phone:       "+7 (495) 123-45-67",
			Email:       "info@comfort-transfer.ru",
			Description: "Междугородные перевозки на комфортабельных автобусах",
			Rating:      4.8,
			IsActive:    true,
			CreatedAt:   seeded,
		},
		{
			ID:          2,
			Name:        "Экспресс Тур",
			Phone:       "+7 (495) 234-56-78",
			Email:       "booking@express-tour.ru",
			Description: "Быстрые рейсы между крупными городами",
			Rating:      4.6,
			IsActive:    true,
			CreatedAt:   seeded,
		},
		{
			ID:          3,
			Name:        "Ночной Экспресс",
			Phone:       "+7 (843) 345-67-89",
			Email:       "support@night-express.ru",
			Description: "Ночные рейсы со спальными местами",
			Rating:      4.5,
			IsActive:    true,
			CreatedAt:   seeded,
		},
	}

	s.buses = []model.Bus{
		{
			ID:          1,
			Model:       "Мерседес Турисмо",
			PlateNumber: "А123ВС 777",
			Capacity:    49,
			Amenities:   []string{"Wi-Fi", "Розетки", "Кондиционер", "Туалет"},
			CarrierID:   1,
			IsActive:    true,
			Year:        2021,
			BusType:     "Туристический",
			Description: "Флагманский автобус для дальних рейсов",
		},
		{
			ID:          2,
			Model:       "Сетра Топ Класс",
			PlateNumber: "В456ЕК 177",
			Capacity:    45,
			Amenities:   []string{"Wi-Fi", "Розетки", "Кондиционер"},
			CarrierID:   2,
			IsActive:    true,
			Year:        2019,
			BusType:     "Междугородный",
			Description: "",
		},
		{
			ID:          3,
			Model:       "Вольво Люкс",
			PlateNumber: "Е789КМ 716",
			Capacity:    40,
			Amenities:   []string{"Wi-Fi", "Розетки", "Кондиционер", "Туалет", "Видео"},
			CarrierID:   3,
			IsActive:    true,
			Year:        2022,
			BusType:     "Люкс",
			Description: "Салон с откидными спальными креслами",
		},
	}

	s.routes = []model.Route{
		{
			ID:       1,
			Name:     "Москва — Санкт-Петербург",
			FromCity: "Москва",
			ToCity:   "Санкт-Петербург",
			Stops: []model.RouteStop{
				{ID: 1, Name: "Тверь, автовокзал", Address: "Тверь, пр-т Чайковского 1", ArrivalTime: "10:10", DepartureTime: "10:25", Order: 1},
				{ID: 2, Name: "Великий Новгород", Address: "Великий Новгород, Октябрьская 1", ArrivalTime: "13:40", DepartureTime: "13:55", Order: 2},
			},
			Distance:          705,
			EstimatedDuration: "8ч 30м",
			IsActive:          true,
			Description:       "Основное направление, ежедневные рейсы",
		},
		{
			ID:                2,
			Name:              "Москва — Казань",
			FromCity:          "Москва",
			ToCity:            "Казань",
			Stops:             []model.RouteStop{{ID: 3, Name: "Владимир, автовокзал", Address: "Владимир, Вокзальная пл. 1", ArrivalTime: "00:50", DepartureTime: "01:05", Order: 1}},
			Distance:          820,
			EstimatedDuration: "12ч 15м",
			IsActive:          true,
			Description:       "",
		},
	}

	s.schedules = []model.Schedule{
		{
			ID: 1, RouteID: 1, BusID: 1, CarrierID: 1,
			DepartureTime: "07:30", ArrivalTime: "16:00",
			Price:      1200,
			DaysOfWeek: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			IsActive:   true,
			ValidFrom:  "2024-01-01", ValidUntil: "2024-12-31",
		},
		{
			ID: 2, RouteID: 1, BusID: 2, CarrierID: 2,
			DepartureTime: "14:15", ArrivalTime: "22:45",
			Price:      1100,
			DaysOfWeek: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
			IsActive:   true,
			ValidFrom:  "2024-01-01", ValidUntil: "2024-12-31",
		},
		{
			ID: 3, RouteID: 2, BusID: 3, CarrierID: 3,
			DepartureTime: "22:00", ArrivalTime: "10:15",
			Price:      1800,
			DaysOfWeek: []string{"friday", "saturday", "sunday"},
			IsActive:   true,
			ValidFrom:  "2024-01-01", ValidUntil: "2024-12-31",
		},
	}

	s.bookings = []model.Booking{
		{ID: 1, Passenger: "Иванов И.И.", Route: "Москва - СПб", Date: "2024-01-15", Seats: []int{12, 13}, Status: model.BookingConfirmed},
		{ID: 2, Passenger: "Петрова А.С.", Route: "Москва - Казань", Date: "2024-01-16", Seats: []int{8}, Status: model.BookingPending},
		{ID: 3, Passenger: "Сидоров П.П.", Route: "СПб - Новгород", Date: "2024-01-17", Seats: []int{15, 16}, Status: model.BookingConfirmed},
	}

	s.reviews = []model.Review{
		{Name: "Анна К.", Rating: 5, Text: "Отличный сервис! Автобус комфортный, водитель вежливый. Рекомендую!", Route: "Москва - СПб"},
		{Name: "Дмитрий С.", Rating: 4, Text: "Всё прошло хорошо, приехали вовремя. Единственный минус - Wi-Fi работал не очень.", Route: "Москва - Казань"},
		{Name: "Елена П.", Rating: 5, Text: "Супер! Удобные кресла, чистый салон. Обязательно воспользуюсь снова.", Route: "СПб - Новгород"},
	}
}
