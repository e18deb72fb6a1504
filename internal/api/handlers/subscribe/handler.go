package subscribe

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidGroupID     = "invalid group ID"
	msgEmailRequired      = "email required"
	msgGroupNotFound      = "Group not found"
)

type Handler struct {
	service SubscriberService
	logger  Logger
}

func NewHandler(service SubscriberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/groups/{groupId}/subscribers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /groups/{id}/subscribers - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/{id}/subscribers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Subscribe(r.Context(), groupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, subscribers.ErrInvalidInput):
			h.logger.Warn("POST /groups/{id}/subscribers - Invalid input: group_id=%d, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, subscribers.ErrGroupNotFound):
			h.logger.Warn("POST /groups/{id}/subscribers - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("POST /groups/{id}/subscribers - Failed to subscribe: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups/{id}/subscribers - Subscribed: subscriber_id=%d, group_id=%d", result.ID, groupID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
