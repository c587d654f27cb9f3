package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/turnosya/booking-service/internal/api/handlers"
	"github.com/turnosya/booking-service/internal/api/middleware"
	getAvailableSlots "github.com/turnosya/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingTenant           = "тенант не определен"
	msgInvalidProfessionalID   = "некорректный ID профессионала"
	msgInvalidServiceID        = "некорректный ID услуги"
	msgMissingServiceID        = "ID услуги обязателен"
	msgMissingDate             = "дата обязательна"
	msgInvalidDate             = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast              = "дата в прошлом"
	msgProfessionalNotFound    = "профессионал не найден"
	msgProfessionalUnavailable = "профессионал недоступен для записи"
	msgServiceNotFound         = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, professionalID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		// Выходной и выход за горизонт - не ошибки, а различимые ответы с
		// пустым списком слотов
		case errors.Is(err, getAvailableSlots.ErrDayOff):
			h.logger.Info("GET /professionals/{id}/available-slots - Day off: professional_id=%d, date=%s",
				professionalID, dateStr)
			handlers.RespondJSON(w, http.StatusOK, &AvailableSlotsResponse{
				Date:           dateStr,
				ProfessionalID: professionalID,
				ServiceID:      serviceID,
				Slots:          []string{},
				DayOff:         true,
			})

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Info("GET /professionals/{id}/available-slots - Date exceeds horizon: professional_id=%d, date=%s",
				professionalID, dateStr)
			handlers.RespondJSON(w, http.StatusOK, &AvailableSlotsResponse{
				Date:           dateStr,
				ProfessionalID: professionalID,
				ServiceID:      serviceID,
				Slots:          []string{},
				ExceedsHorizon: true,
			})

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /professionals/{id}/available-slots - Date in past: professional_id=%d, date=%s",
				professionalID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalInactive):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional inactive: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalUnavailable)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed to get slots: professional_id=%d, service_id=%d, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/available-slots - Slots retrieved successfully: professional_id=%d, service_id=%d, slots_count=%d",
		professionalID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
