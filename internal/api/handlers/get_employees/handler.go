package get_employees

import (
	"errors"
	"net/http"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/service/catalog"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
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

// Handle GET /api/v1/employees?position=therapist&status=active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var position, status *string
	if p := query.Get("position"); p != "" {
		position = &p
	}
	if s := query.Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetEmployees(r.Context(), position, status)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /employees - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /employees - Failed to get employees: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees - Retrieved %d employees", len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}
