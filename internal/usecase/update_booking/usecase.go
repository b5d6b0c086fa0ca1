package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	bookingRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/booking"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
)

// UseCase use case для редактирования бронирования.
// Повторяет проверки создания, исключая само бронирование из подсчетов.
// Проверка емкости комнат пропускается, если дата, время и длительность
// не изменились - перенос в то же место не может создать новый конфликт
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	employeeRepo EmployeeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		employeeRepo: employeeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case редактирования бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%s, service=%d, date=%s, time=%s, staff=%v, force=%t",
		req.BookingID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.StaffIDs, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("UpdateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Длительность берется из услуги; интервал должен помещаться
	// в рабочий день
	duration := service.DurationMinutes
	if !domain.FitsBusinessDay(req.StartTime, duration) {
		uc.logger.Warn("UpdateBooking: interval %s+%dmin does not fit business hours", req.StartTime, duration)
		return nil, ErrOutsideBusinessHours
	}

	// 4. Получаем мастеров и проверяем состав
	staff, err := uc.employeeRepo.GetByIDs(ctx, req.StaffIDs)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to get employees %v: %v", req.StaffIDs, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	if err := validateStaff(req.StaffIDs, staff, service.RequiredStaffCount); err != nil {
		uc.logger.Warn("UpdateBooking: staff validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем текущее состояние бронирования
		existing, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if existing.IsCancelled() {
			uc.logger.Warn("UpdateBooking: booking id=%s is cancelled", req.BookingID)
			return ErrBookingNotEditable
		}

		// Смена услуги на снятую с продажи запрещена; существующая услуга
		// могла быть остановлена после создания - это не блокирует правки
		if existing.ServiceID != req.ServiceID && !service.IsActive() {
			uc.logger.Warn("UpdateBooking: service id=%d is not active", req.ServiceID)
			return ErrServiceInactive
		}

		// 5.2. Получаем все бронирования на целевую дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Занятость мастеров - жесткий отказ, force не помогает.
		// Само бронирование из подсчета исключается
		if conflict := findStaffConflict(req.StartTime, duration, req.StaffIDs, bookings, existing.ID); conflict != nil {
			uc.logger.Warn("UpdateBooking: staff conflict with booking %s (%s)", conflict.Code, conflict.StartTime)
			return fmt.Errorf("%w: conflicts with booking %s", ErrStaffConflict, conflict.Code)
		}

		// 5.4. Емкость комнат проверяется только при изменении даты, времени
		// или длительности - бронирование, остающееся на своем месте,
		// не может занять новую комнату
		timeChanged := !existing.BookingDate.Equal(req.Date) ||
			!existing.StartTime.Equal(req.StartTime) ||
			existing.DurationMinutes != duration

		if timeChanged {
			occupied := countOccupiedRooms(req.StartTime, duration, bookings, existing.ID)
			if occupied >= domain.TotalRooms && !req.Force {
				uc.logger.Warn("UpdateBooking: all rooms occupied, %d/%d", occupied, domain.TotalRooms)
				return ErrRoomsFull
			}

			if occupied >= domain.TotalRooms && req.Force {
				uc.logger.Warn("UpdateBooking: overbooking forced, %d/%d rooms occupied", occupied, domain.TotalRooms)
			}
		}

		// 5.5. Применяем изменения. Код и статус сохраняются,
		// денормализованные снимки обновляются
		existing.BookingDate = req.Date
		existing.StartTime = req.StartTime
		existing.DurationMinutes = duration
		existing.CustomerName = req.CustomerName
		existing.CustomerPhone = req.CustomerPhone
		existing.StaffIDs = req.StaffIDs
		existing.ServiceID = req.ServiceID
		existing.ServiceName = service.Name
		existing.StaffNames = joinStaffNames(staff)
		existing.TotalAmount = totalAmount(service.Price, req.DiscountAmount)
		existing.DiscountAmount = req.DiscountAmount
		existing.Notes = req.Notes

		if err := uc.bookingRepo.Update(txCtx, existing); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = existing
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s code=%s", result.ID, result.Code)

	endTime, err := result.EndTime()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to calculate end time: %v", ErrInternal, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID.String(),
		Code:            result.Code,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		StaffIDs:        result.StaffIDs,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		StaffNames:      result.StaffNames,
		TotalAmount:     result.TotalAmount,
		DiscountAmount:  result.DiscountAmount,
		Notes:           result.Notes,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// joinStaffNames собирает снимок имен мастеров в порядке их назначения
func joinStaffNames(staff []*domain.Employee) string {
	names := make([]string, 0, len(staff))
	for _, emp := range staff {
		names = append(names, emp.Name)
	}
	return strings.Join(names, ", ")
}
