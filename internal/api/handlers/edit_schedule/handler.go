package edit_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/turnosya/booking-service/internal/api/handlers"
	"github.com/turnosya/booking-service/internal/api/middleware"
	"github.com/turnosya/booking-service/internal/service/schedule"
)

const (
	msgMissingTenant         = "тенант не определен"
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidOperation      = "некорректная операция редактирования"
	msgInvalidSchedule       = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/professionals/{professionalId}/schedule
// Применяет последовательность операций редактирования (toggle, toggle_all,
// copy, clear) и возвращает результирующее расписание
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /professionals/{id}/schedule - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	vars := mux.Vars(r)
	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /professionals/{id}/schedule - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req EditScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /professionals/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyOperations(r.Context(), tenantID, professionalID, req.Operations)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidOperation):
			h.logger.Warn("PATCH /professionals/{id}/schedule - Invalid operation: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidOperation)

		case errors.Is(err, schedule.ErrInvalidSchedule):
			h.logger.Warn("PATCH /professionals/{id}/schedule - Invalid schedule: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PATCH /professionals/{id}/schedule - Failed to apply operations: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /professionals/{id}/schedule - Operations applied successfully: professional_id=%d, operations=%d",
		professionalID, len(req.Operations))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
