package domain

import "github.com/nvmanh/SpaDesk-BookingService/pkg/types"

// Емкость салона
const (
	// TotalRooms фиксированное число взаимозаменяемых процедурных комнат.
	// Комнаты не являются сущностями: занятость выводится из бронирований
	// при каждом пересчете, индивидуальных идентификаторов нет.
	TotalRooms = 5
)

// Рабочая сетка времени
const (
	OpeningTime     = types.TimeString("10:00")
	ClosingTime     = types.TimeString("22:00")
	SlotStepMinutes = 10
)

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxCustomerNameLength = 200
)

// Префиксы человекочитаемых кодов
const (
	BookingCodePrefix  = "BK"
	ServiceCodePrefix  = "SV"
	EmployeeCodePrefix = "EMP"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, потребляющие емкость комнат и мастеров
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// NonBlockingStatuses статусы, освобождающие емкость
var NonBlockingStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}

// AllBookingStatuses полный список допустимых статусов.
// Ядро не навязывает граф переходов - любой статус достижим из любого.
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ValidBookingStatus проверяет, что статус допустим
func ValidBookingStatus(status BookingStatus) bool {
	for _, s := range AllBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}
