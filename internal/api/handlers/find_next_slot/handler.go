package find_next_slot

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/api/handlers"
	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	findNextSlot "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/find_next_slot"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgInvalidDuration = "некорректная длительность"
	msgInvalidStaffIDs = "некорректный список мастеров"
	msgInvalidParams   = "некорректные параметры запроса"
)

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/next-slot?date=...&fromTime=...&durationMinutes=...&scope=...&staffIds=1,2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /schedule/next-slot - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil || duration <= 0 {
		h.logger.Warn("GET /schedule/next-slot - Invalid durationMinutes: %s", query.Get("durationMinutes"))
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &findNextSlot.Request{
		Date:            date,
		DurationMinutes: duration,
		Scope:           findNextSlot.Scope(query.Get("scope")),
	}

	if fromTime := query.Get("fromTime"); fromTime != "" {
		parsed, err := types.NewTimeStringFromString(fromTime)
		if err != nil {
			h.logger.Warn("GET /schedule/next-slot - Invalid fromTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.FromTime = parsed
	}

	if staffIDs := query.Get("staffIds"); staffIDs != "" {
		for _, raw := range strings.Split(staffIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || id <= 0 {
				h.logger.Warn("GET /schedule/next-slot - Invalid staffIds: %s", staffIDs)
				handlers.RespondBadRequest(w, msgInvalidStaffIDs)
				return
			}
			req.StaffIDs = append(req.StaffIDs, id)
		}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /schedule/next-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /schedule/next-slot - Failed to find next slot: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
