package get_tenant_config

import (
	"net/http"

	"github.com/turnosya/booking-service/internal/api/handlers"
	"github.com/turnosya/booking-service/internal/api/middleware"
)

const msgMissingTenant = "тенант не определен"

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

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /config - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	config, err := h.service.GetConfig(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /config - Failed to get config: tenant_id=%d, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config - Config retrieved successfully: tenant_id=%d", tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(config))
}
