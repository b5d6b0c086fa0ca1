package check_staff_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	checkAvailability "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/check_availability"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

const (
	msgInvalidStaffID   = "некорректный ID мастера"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration  = "некорректная длительность"
	msgInvalidExcludeID = "некорректный ID исключаемого бронирования"
	msgInvalidParams    = "некорректные параметры запроса"
	msgEmployeeNotFound = "мастер не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/staff/{staffId}?date=...&startTime=...&durationMinutes=...&excludeBookingId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil || staffID <= 0 {
		h.logger.Warn("GET /availability/staff/{id} - Invalid staff ID: %s", vars["staffId"])
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/staff/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /availability/staff/{id} - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /availability/staff/{id} - Invalid durationMinutes: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &checkAvailability.StaffRequest{
		StaffID:         staffID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
	}

	if exclude := query.Get("excludeBookingId"); exclude != "" {
		excludeID, err := uuid.Parse(exclude)
		if err != nil {
			h.logger.Warn("GET /availability/staff/{id} - Invalid excludeBookingId: %s", exclude)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	result, err := h.useCase.CheckStaff(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrEmployeeNotFound):
			h.logger.Warn("GET /availability/staff/{id} - Employee not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/staff/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/staff/{id} - Failed to check availability: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
