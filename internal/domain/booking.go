package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a spa appointment
type Booking struct {
	ID              uuid.UUID
	Code            string // Человекочитаемый код вида "BK042"
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int // Снимок длительности услуги на момент создания

	CustomerName  string
	CustomerPhone string
	StaffIDs      []int64 // Упорядоченный список мастеров, первый - основной

	ServiceID int64

	// Denormalized data for history
	ServiceName    string
	StaffNames     string // Снимок имен мастеров для отображения
	TotalAmount    float64
	DiscountAmount float64

	Status BookingStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking возвращает true, если бронирование занимает комнату и мастеров.
// Единственное каноническое определение "занятости" - подсчет комнат,
// проверка конфликтов мастеров и подсветка расписания обязаны использовать его.
func (b *Booking) IsBlocking() bool {
	return IsBlockingStatus(b.Status)
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted возвращает true, если бронирование завершено
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// EndTime возвращает время окончания бронирования
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// PrimaryStaffID возвращает ID основного мастера (первого в списке)
// или 0, если мастера не назначены
func (b *Booking) PrimaryStaffID() int64 {
	if len(b.StaffIDs) == 0 {
		return 0
	}
	return b.StaffIDs[0]
}

// HasStaff возвращает true, если мастер назначен на бронирование
func (b *Booking) HasStaff(staffID int64) bool {
	for _, id := range b.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// IsBlockingStatus возвращает true для статусов, потребляющих емкость
// комнат и мастеров: pending, confirmed, in_progress
func IsBlockingStatus(status BookingStatus) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate *time.Time     // Начало периода (опционально)
	EndDate   *time.Time     // Конец периода (опционально)
	Status    *BookingStatus // Фильтр по статусу (опционально)
	StaffID   *int64         // Бронирования с участием мастера (опционально)
}
