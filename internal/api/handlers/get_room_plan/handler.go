package get_room_plan

import (
	"errors"
	"net/http"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	getRoomPlan "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/get_room_plan"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetRoomPlanUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomPlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/room-plan?date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /schedule/room-plan - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomPlan.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getRoomPlan.ErrInvalidInput):
			h.logger.Warn("GET /schedule/room-plan - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/room-plan - Failed to build room plan: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
