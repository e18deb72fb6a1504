package add_tee_time

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/events"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid group or event ID"
	msgTimeRequired       = "time required"
	msgEventNotFound      = "Event not found"
	msgNotTeeTimeEvent    = "Event does not use tee times"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/groups/{groupId}/events/{eventId}/tee-times
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

	var req models.AddTeeTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddTeeTime(r.Context(), groupID, eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgTimeRequired)

		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, events.ErrNotTeeTimeEvent):
			h.logger.Warn("POST /groups/{id}/events/{eventId}/tee-times - Not a tee time event: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgNotTeeTimeEvent)

		default:
			h.logger.Error("POST /groups/{id}/events/{eventId}/tee-times - Failed to add tee time: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{id}/events/{eventId}/tee-times - Tee time added: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
