package create_booking

import (
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	createBooking "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/create_booking"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate    string  `json:"bookingDate"` // "2026-03-15"
	StartTime      string  `json:"startTime"`   // "10:30"
	CustomerName   string  `json:"customerName"`
	CustomerPhone  string  `json:"customerPhone"`
	ServiceID      int64   `json:"serviceId"`
	StaffIDs       []int64 `json:"staffIds"`
	DiscountAmount float64 `json:"discountAmount"`
	Notes          *string `json:"notes,omitempty"`
	Force          bool    `json:"force"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	StaffIDs        []int64 `json:"staffIds"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StaffNames      string  `json:"staffNames"`
	TotalAmount     float64 `json:"totalAmount"`
	DiscountAmount  float64 `json:"discountAmount"`
	Notes           *string `json:"notes,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:           bookingDate,
		StartTime:      startTime,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		ServiceID:      r.ServiceID,
		StaffIDs:       r.StaffIDs,
		DiscountAmount: r.DiscountAmount,
		Notes:          r.Notes,
		Force:          r.Force,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Code:            resp.Code,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		StaffIDs:        resp.StaffIDs,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		StaffNames:      resp.StaffNames,
		TotalAmount:     resp.TotalAmount,
		DiscountAmount:  resp.DiscountAmount,
		Notes:           resp.Notes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
