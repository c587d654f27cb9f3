package create_booking

import (
	"errors"
	"net/http"

	"github.com/turnosya/booking-service/internal/api/handlers"
	"github.com/turnosya/booking-service/internal/api/middleware"
	createBooking "github.com/turnosya/booking-service/internal/usecase/create_booking"
)

const (
	msgMissingTenant           = "тенант не определен"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidInput            = "некорректные данные запроса"
	msgInvalidDate             = "некорректная дата бронирования"
	msgInvalidTimeSlot         = "время начала должно лежать на 30-минутной границе"
	msgSlotTaken               = "выбранный слот уже занят"
	msgDayOff                  = "профессионал не работает в выбранный день"
	msgDateTooFar              = "дата бронирования слишком далеко в будущем"
	msgLeadTime                = "запись на сегодня возможна минимум за 2 часа до начала"
	msgProfessionalNotFound    = "профессионал не найден"
	msgProfessionalUnavailable = "профессионал недоступен для записи"
	msgServiceNotFound         = "услуга не найдена"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tenantID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDayOff):
			h.logger.Warn("POST /bookings - Day off: professional_id=%d, date=%s", req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrLeadTimeViolation):
			h.logger.Warn("POST /bookings - Lead time violation: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgLeadTime)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrProfessionalInactive):
			h.logger.Warn("POST /bookings - Professional inactive: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalUnavailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, professional_id=%d, date=%s",
		result.ID, req.ProfessionalID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
