package models

import (
	"errors"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования.
// Ядро принимает любой допустимый статус - граф переходов не навязывается,
// кнопки быстрых действий это чисто UI-соглашение.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetBookingsRequest запрос на получение бронирований с фильтрацией
type GetBookingsRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"` // Начало периода (опционально)
	EndDate   *time.Time `json:"endDate,omitempty"`   // Конец периода (опционально)
	Status    *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	StaffID   *int64     `json:"staffId,omitempty"`   // Бронирования мастера (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		StaffID:   r.StaffID,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "11:00"
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	StaffIDs        []int64 `json:"staffIds"`
	PrimaryStaffID  int64   `json:"primaryStaffId"`
	ServiceID       int64   `json:"serviceId"`
	Status          string  `json:"status"`

	// Денормализованные данные
	ServiceName    string  `json:"serviceName"`
	StaffNames     string  `json:"staffNames"`
	TotalAmount    float64 `json:"totalAmount"`
	DiscountAmount float64 `json:"discountAmount"`
	Notes          *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	endTime := ""
	if end, err := b.EndTime(); err == nil {
		endTime = end.String()
	}

	staffIDs := b.StaffIDs
	if staffIDs == nil {
		staffIDs = []int64{}
	}

	return &BookingResponse{
		ID:              b.ID.String(),
		Code:            b.Code,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         endTime,
		DurationMinutes: b.DurationMinutes,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		StaffIDs:        staffIDs,
		PrimaryStaffID:  b.PrimaryStaffID(),
		ServiceID:       b.ServiceID,
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		StaffNames:      b.StaffNames,
		TotalAmount:     b.TotalAmount,
		DiscountAmount:  b.DiscountAmount,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
