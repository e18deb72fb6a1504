package update_group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidGroupID     = "invalid group ID"
	msgInvalidInput       = "invalid group fields"
	msgGroupNotFound      = "Group not found"
)

type Handler struct {
	service GroupService
	logger  Logger
}

func NewHandler(service GroupService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/groups/{groupId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /groups/{id} - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	var req models.UpdateGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /groups/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), groupID, &req)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrInvalidInput):
			h.logger.Warn("PUT /groups/{id} - Invalid input: group_id=%d, error=%v", groupID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, groups.ErrGroupNotFound):
			h.logger.Warn("PUT /groups/{id} - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("PUT /groups/{id} - Failed to update group: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /groups/{id} - Group updated: group_id=%d", groupID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
