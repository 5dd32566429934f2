package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BillboardCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-BillboardCalendar/internal/service/availability"
	checkAvailability "github.com/m04kA/SMC-BillboardCalendar/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "укажите periodIds или пару startDate/endDate"
	msgInvalidWindow      = "некорректное окно аренды"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assets/{assetId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assetID := mux.Vars(r)["assetId"]

	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assets/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(assetID)
	if err != nil {
		h.logger.Warn("POST /assets/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /assets/{id}/availability - Invalid input: asset_id=%s: %v", assetID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, availability.ErrInvalidWindow):
			h.logger.Warn("POST /assets/{id}/availability - Invalid window: asset_id=%s: %v", assetID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case handlers.RespondCalendarError(w, err):
			h.logger.Warn("POST /assets/{id}/availability - Rejected by calendar: asset_id=%s: %v", assetID, err)

		default:
			h.logger.Error("POST /assets/{id}/availability - Failed to check availability: asset_id=%s, error=%v", assetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assets/{id}/availability - asset_id=%s aligned=%t available=%t", assetID, result.Aligned, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
