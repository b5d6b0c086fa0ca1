package create_booking

import (
	"errors"
	"net/http"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	createBooking "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound     = "услуга не найдена"
	msgServiceInactive     = "услуга снята с продажи"
	msgEmployeeNotFound    = "мастер не найден"
	msgEmployeeNotBookable = "сотрудник недоступен для записи"
	msgInsufficientStaff   = "для услуги назначено недостаточно мастеров"
	msgStaffConflict       = "мастер занят в это время"
	msgRoomsFull           = "все комнаты заняты на выбранное время"
	msgOutsideHours        = "бронирование не помещается в рабочий день"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrRoomsFull):
			h.logger.Warn("POST /bookings - Rooms full: date=%s, time=%s", req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgRoomsFull)

		case errors.Is(err, createBooking.ErrStaffConflict):
			h.logger.Warn("POST /bookings - Staff conflict: date=%s, time=%s, staff=%v",
				req.BookingDate, req.StartTime, req.StaffIDs)
			handlers.RespondConflict(w, msgStaffConflict)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrEmployeeNotFound):
			h.logger.Warn("POST /bookings - Employee not found: staff=%v", req.StaffIDs)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, createBooking.ErrEmployeeNotBookable):
			h.logger.Warn("POST /bookings - Employee not bookable: staff=%v", req.StaffIDs)
			handlers.RespondBadRequest(w, msgEmployeeNotBookable)

		case errors.Is(err, createBooking.ErrInsufficientStaff):
			h.logger.Warn("POST /bookings - Insufficient staff: service_id=%d, staff=%v", req.ServiceID, req.StaffIDs)
			handlers.RespondBadRequest(w, msgInsufficientStaff)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: id=%s, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
