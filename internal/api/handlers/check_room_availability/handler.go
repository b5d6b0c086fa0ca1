package check_room_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	checkAvailability "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/check_availability"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration  = "некорректная длительность"
	msgInvalidExcludeID = "некорректный ID исключаемого бронирования"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/availability/rooms?date=...&startTime=...&durationMinutes=...&excludeBookingId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/rooms - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /availability/rooms - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /availability/rooms - Invalid durationMinutes: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &checkAvailability.RoomRequest{
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
	}

	if exclude := query.Get("excludeBookingId"); exclude != "" {
		excludeID, err := uuid.Parse(exclude)
		if err != nil {
			h.logger.Warn("GET /availability/rooms - Invalid excludeBookingId: %s", exclude)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	result, err := h.useCase.CheckRoom(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability/rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /availability/rooms - Failed to check availability: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
