package archive_group

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups"
)

const (
	msgInvalidGroupID = "invalid group ID"
	msgGroupNotFound  = "Group not found"
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

// Handle DELETE /api/groups/{groupId}
// Группа деактивируется, данные сохраняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /groups/{id} - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	result, err := h.service.Archive(r.Context(), groupID)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrGroupNotFound):
			h.logger.Warn("DELETE /groups/{id} - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("DELETE /groups/{id} - Failed to archive group: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /groups/{id} - Group archived: group_id=%d", groupID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
