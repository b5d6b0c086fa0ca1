package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	employeeRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/employee"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// UseCase use case для проверки занятости комнат и мастеров на интервал.
// Используется формой бронирования для мгновенной обратной связи; итоговое
// решение о конфликте все равно принимается при записи, в транзакции
type UseCase struct {
	bookingRepo  BookingRepository
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, employeeRepo EmployeeRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// CheckRoom проверяет, останется ли свободная комната на интервал
func (uc *UseCase) CheckRoom(ctx context.Context, req *RoomRequest) (*RoomResponse, error) {
	uc.logger.Info("CheckRoomAvailability: date=%s, time=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateInterval(req.Date, req.StartTime, req.DurationMinutes); err != nil {
		uc.logger.Warn("CheckRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	bookings, err := uc.dayBookings(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckRoomAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupied := countOccupiedRooms(req.StartTime, req.DurationMinutes, bookings, req.ExcludeBookingID)

	return &RoomResponse{
		Available:     occupied < domain.TotalRooms,
		OccupiedRooms: occupied,
		TotalRooms:    domain.TotalRooms,
	}, nil
}

// CheckStaff проверяет, свободен ли мастер на интервал
func (uc *UseCase) CheckStaff(ctx context.Context, req *StaffRequest) (*StaffResponse, error) {
	uc.logger.Info("CheckStaffAvailability: staff=%d, date=%s, time=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if err := validateInterval(req.Date, req.StartTime, req.DurationMinutes); err != nil {
		uc.logger.Warn("CheckStaffAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.employeeRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("CheckStaffAvailability: employee id=%d not found", req.StaffID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("CheckStaffAvailability: failed to get employee id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	bookings, err := uc.dayBookings(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckStaffAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	busyUntil := staffBusyUntil(req.StartTime, req.DurationMinutes, req.StaffID, bookings, req.ExcludeBookingID)

	return &StaffResponse{
		Available:       busyUntil == nil,
		ConflictEndTime: busyUntil,
	}, nil
}

// dayBookings получает все бронирования на дату
func (uc *UseCase) dayBookings(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	filter := domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	}
	return uc.bookingRepo.ListWithFilter(ctx, filter)
}

// validateInterval валидирует параметры проверяемого интервала
func validateInterval(date time.Time, start types.TimeString, durationMinutes int) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if start.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
