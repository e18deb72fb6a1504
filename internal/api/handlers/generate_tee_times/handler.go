package generate_tee_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	eventModels "github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	generateTeeTimes "github.com/m04kA/SMC-TeeTimeService/internal/usecase/generate_tee_times"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid group or event ID"
	msgInvalidParams      = "startTime, intervalMinutes, count required"
	msgEventNotFound      = "Event not found"
	msgNotTeeTimeEvent    = "Event does not use tee times"
)

type Handler struct {
	useCase GenerateTeeTimesUseCase
	logger  Logger
}

func NewHandler(useCase GenerateTeeTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/groups/{groupId}/events/{eventId}/tee-times/auto
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req GenerateTeeTimesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times/auto - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(groupID, eventID))
	if err != nil {
		switch {
		case errors.Is(err, generateTeeTimes.ErrInvalidInput):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times/auto - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, generateTeeTimes.ErrEventNotFound):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times/auto - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, generateTeeTimes.ErrNotTeeTimeEvent):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times/auto - Not a tee time event: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgNotTeeTimeEvent)

		default:
			h.logger.Error("POST /groups/{id}/events/{eventId}/tee-times/auto - Failed to generate: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{id}/events/{eventId}/tee-times/auto - Generated %d tee times: event_id=%d", result.Added, eventID)
	handlers.RespondJSON(w, http.StatusOK, eventModels.FromDomainEvent(result.Event))
}
