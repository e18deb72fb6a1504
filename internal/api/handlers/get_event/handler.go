package get_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/events"
)

const (
	msgInvalidID     = "invalid group or event ID"
	msgGroupNotFound = "Group not found"
	msgEventNotFound = "Event not found"
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

// Handle GET /api/groups/{groupId}/events/{eventId}
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

	result, err := h.service.GetByID(r.Context(), groupID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrGroupNotFound):
			h.logger.Warn("GET /groups/{id}/events/{eventId} - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("GET /groups/{id}/events/{eventId} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		default:
			h.logger.Error("GET /groups/{id}/events/{eventId} - Failed to fetch event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
