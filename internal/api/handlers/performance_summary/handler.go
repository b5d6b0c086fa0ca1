package performance_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgInvalidPeriod     = "некорректный период, ожидается from и to в формате YYYY-MM-DD"
	msgNotFound          = "сотрудник не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/performance-summary?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /employees/{id}/performance-summary - Invalid employee ID: %s", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /employees/{id}/performance-summary - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /employees/{id}/performance-summary - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	if to.Before(from) {
		h.logger.Warn("GET /employees/{id}/performance-summary - to before from")
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.PerformanceSummary(r.Context(), employeeID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id}/performance-summary - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /employees/{id}/performance-summary - Failed to build summary: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/performance-summary - Summary built: employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
