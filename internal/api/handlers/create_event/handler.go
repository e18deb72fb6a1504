package create_event

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
	msgInvalidGroupID     = "invalid group ID"
	msgInvalidInput       = "invalid event fields"
	msgGroupNotFound      = "Group not found"
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

// Handle POST /api/groups/{groupId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /groups/{id}/events - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	var req models.CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), groupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /groups/{id}/events - Invalid input: group_id=%d, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, events.ErrGroupNotFound):
			h.logger.Warn("POST /groups/{id}/events - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("POST /groups/{id}/events - Failed to create event: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{id}/events - Event created: event_id=%d, group_id=%d", result.ID, groupID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
