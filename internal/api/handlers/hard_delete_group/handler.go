package hard_delete_group

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

// okResponse ответ успешного удаления
type okResponse struct {
	OK bool `json:"ok"`
}

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

// Handle DELETE /api/groups/{groupId}/hard
// Безвозвратно удаляет группу вместе с событиями и подписчиками
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /groups/{id}/hard - Invalid group ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	if err := h.service.HardDelete(r.Context(), groupID); err != nil {
		switch {
		case errors.Is(err, groups.ErrGroupNotFound):
			h.logger.Warn("DELETE /groups/{id}/hard - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("DELETE /groups/{id}/hard - Failed to delete group: group_id=%d, error=%v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /groups/{id}/hard - Group deleted permanently: group_id=%d", groupID)
	handlers.RespondJSON(w, http.StatusOK, okResponse{OK: true})
}
