package update_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	updateBooking "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBookingNotFound     = "бронирование не найдено"
	msgBookingNotEditable  = "отмененное бронирование нельзя редактировать"
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
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrBookingNotEditable):
			h.logger.Warn("PUT /bookings/{id} - Booking not editable: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgBookingNotEditable)

		case errors.Is(err, updateBooking.ErrRoomsFull):
			h.logger.Warn("PUT /bookings/{id} - Rooms full: booking_id=%s, date=%s, time=%s",
				bookingID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgRoomsFull)

		case errors.Is(err, updateBooking.ErrStaffConflict):
			h.logger.Warn("PUT /bookings/{id} - Staff conflict: booking_id=%s, staff=%v", bookingID, req.StaffIDs)
			handlers.RespondConflict(w, msgStaffConflict)

		case errors.Is(err, updateBooking.ErrServiceNotFound):
			h.logger.Warn("PUT /bookings/{id} - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateBooking.ErrServiceInactive):
			h.logger.Warn("PUT /bookings/{id} - Service inactive: service_id=%d", req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, updateBooking.ErrEmployeeNotFound):
			h.logger.Warn("PUT /bookings/{id} - Employee not found: staff=%v", req.StaffIDs)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, updateBooking.ErrEmployeeNotBookable):
			h.logger.Warn("PUT /bookings/{id} - Employee not bookable: staff=%v", req.StaffIDs)
			handlers.RespondBadRequest(w, msgEmployeeNotBookable)

		case errors.Is(err, updateBooking.ErrInsufficientStaff):
			h.logger.Warn("PUT /bookings/{id} - Insufficient staff: service_id=%d, staff=%v", req.ServiceID, req.StaffIDs)
			handlers.RespondBadRequest(w, msgInsufficientStaff)

		case errors.Is(err, updateBooking.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /bookings/{id} - Outside business hours: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: id=%s, code=%s", result.ID, result.Code)
	handlers.RespondJSON(w, http.StatusOK, response)
}
