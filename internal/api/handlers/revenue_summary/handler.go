package revenue_summary

import (
	"errors"
	"net/http"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	revenueSummary "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/revenue_summary"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase RevenueSummaryUseCase
	logger  Logger
}

func NewHandler(useCase RevenueSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/revenue/summary?date=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /revenue/summary - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &revenueSummary.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, revenueSummary.ErrInvalidInput):
			h.logger.Warn("GET /revenue/summary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /revenue/summary - Failed to build revenue summary: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
