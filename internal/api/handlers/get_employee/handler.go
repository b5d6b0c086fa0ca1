package get_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
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

// Handle GET /api/v1/employees/{employeeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeID, err := strconv.ParseInt(vars["employeeId"], 10, 64)
	if err != nil || employeeID <= 0 {
		h.logger.Warn("GET /employees/{id} - Invalid employee ID: %s", vars["employeeId"])
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	result, err := h.service.GetEmployee(r.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/{id} - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /employees/{id} - Failed to get employee: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
