package update_tenant_config

import (
	"errors"
	"net/http"

	"github.com/turnosya/booking-service/internal/api/handlers"
	"github.com/turnosya/booking-service/internal/api/middleware"
	"github.com/turnosya/booking-service/internal/service/tenantconfig"
)

const (
	msgMissingTenant      = "тенант не определен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректная конфигурация"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("PUT /config - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	var req UpdateTenantConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Update(r.Context(), req.ToDomain(tenantID))
	if err != nil {
		switch {
		case errors.Is(err, tenantconfig.ErrInvalidConfig):
			h.logger.Warn("PUT /config - Invalid config: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /config - Failed to update config: tenant_id=%d, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated successfully: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(saved))
}
