package get_room_plan

import (
	"context"
	"fmt"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

// UseCase use case для построения плана комнат на день.
// Комнаты в салоне виртуальные и безымянные: номер комнаты не хранится
// в бронировании, а вычисляется заново при каждом запросе
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case построения плана комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomPlan: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRoomPlan: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Отмененные бронирования в плане не участвуют
	visible := make([]*domain.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if !booking.IsCancelled() {
			visible = append(visible, booking)
		}
	}

	rooms := allocateRooms(visible)

	assignments := make([]Assignment, 0, len(visible))
	for _, booking := range visible {
		endTime, err := booking.EndTime()
		if err != nil {
			uc.logger.Error("GetRoomPlan: failed to calculate end time for booking %s: %v", booking.Code, err)
			return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
		}

		assignment := Assignment{
			BookingID:       booking.ID.String(),
			Code:            booking.Code,
			StartTime:       booking.StartTime,
			EndTime:         endTime,
			DurationMinutes: booking.DurationMinutes,
			CustomerName:    booking.CustomerName,
			ServiceName:     booking.ServiceName,
			StaffNames:      booking.StaffNames,
			Status:          string(booking.Status),
		}

		if room, ok := rooms[booking.ID.String()]; ok {
			r := room
			assignment.RoomNumber = &r
		}

		assignments = append(assignments, assignment)
	}

	uc.logger.Info("GetRoomPlan: %d bookings on %s, %d without a room",
		len(assignments), req.Date.Format(domain.DateFormat), countUnassigned(assignments))

	return &Response{
		Date:        req.Date.Format(domain.DateFormat),
		TotalRooms:  domain.TotalRooms,
		Assignments: assignments,
	}, nil
}

// countUnassigned подсчитывает бронирования без комнаты
func countUnassigned(assignments []Assignment) int {
	count := 0
	for _, a := range assignments {
		if a.RoomNumber == nil {
			count++
		}
	}
	return count
}
