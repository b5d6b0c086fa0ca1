package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	serviceRepo "github.com/nvmanh/SpaDesk-BookingService/internal/infra/storage/service"
)

// UseCase use case для создания бронирования.
// Выполняет полную последовательность проверок конфликтов: услуга, рабочий
// день, состав мастеров, занятость мастеров (жесткий отказ), емкость комнат
// (мягкий отказ, обходится force-флагом).
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, service=%d, date=%s, time=%s, staff=%v, force=%t",
		req.CustomerName, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.StaffIDs, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive() {
		uc.logger.Warn("CreateBooking: service id=%d is not active", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 3. Длительность - снимок длительности услуги на момент создания.
	// Интервал должен помещаться в рабочий день
	duration := service.DurationMinutes
	if !domain.FitsBusinessDay(req.StartTime, duration) {
		uc.logger.Warn("CreateBooking: interval %s+%dmin does not fit business hours", req.StartTime, duration)
		return nil, ErrOutsideBusinessHours
	}

	// 4. Получаем мастеров и проверяем состав
	staff, err := uc.employeeRepo.GetByIDs(ctx, req.StaffIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get employees %v: %v", req.StaffIDs, err)
		return nil, fmt.Errorf("%w: failed to get employees: %v", ErrInternal, err)
	}

	if err := validateStaff(req.StaffIDs, staff, service.RequiredStaffCount); err != nil {
		uc.logger.Warn("CreateBooking: staff validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем все бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Занятость мастеров - жесткий отказ, force не помогает
		if conflict := findStaffConflict(req.StartTime, duration, req.StaffIDs, bookings); conflict != nil {
			uc.logger.Warn("CreateBooking: staff conflict with booking %s (%s)", conflict.Code, conflict.StartTime)
			return fmt.Errorf("%w: conflicts with booking %s", ErrStaffConflict, conflict.Code)
		}

		// 5.3. Емкость комнат - мягкий отказ, обходится force-флагом
		occupied := countOccupiedRooms(req.StartTime, duration, bookings)
		if occupied >= domain.TotalRooms && !req.Force {
			uc.logger.Warn("CreateBooking: all rooms occupied, %d/%d", occupied, domain.TotalRooms)
			return ErrRoomsFull
		}

		if occupied >= domain.TotalRooms && req.Force {
			uc.logger.Warn("CreateBooking: overbooking forced, %d/%d rooms occupied", occupied, domain.TotalRooms)
		}

		// 5.4. Генерируем следующий код бронирования "BK###"
		maxNumber, err := uc.bookingRepo.MaxCodeNumber(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get max code number: %v", err)
			return fmt.Errorf("%w: failed to get max code number: %v", ErrInternal, err)
		}

		// 5.5. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			Code:            fmt.Sprintf("%s%03d", domain.BookingCodePrefix, maxNumber+1),
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			StaffIDs:        req.StaffIDs,
			ServiceID:       req.ServiceID,
			Status:          domain.StatusPending,
			// Денормализация данных услуги и мастеров
			ServiceName:    service.Name,
			StaffNames:     joinStaffNames(staff),
			TotalAmount:    totalAmount(service.Price, req.DiscountAmount),
			DiscountAmount: req.DiscountAmount,
			// Заметки
			Notes: req.Notes,
		}

		// 5.6. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s code=%s", result.ID, result.Code)

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
