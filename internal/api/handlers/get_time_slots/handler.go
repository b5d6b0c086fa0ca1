package get_time_slots

import (
	"net/http"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// TimeSlotsResponse каноническая сетка времени рабочего дня
type TimeSlotsResponse struct {
	Slots []string `json:"slots"`
}

// Handle GET /api/v1/time-slots
// Сетка фиксированная, поэтому usecase здесь не нужен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	grid := domain.TimeGrid()

	slots := make([]string, 0, len(grid))
	for _, slot := range grid {
		slots = append(slots, slot.String())
	}

	handlers.RespondJSON(w, http.StatusOK, TimeSlotsResponse{Slots: slots})
}
