package create_group

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNameRequired       = "name required"
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

// Handle POST /api/groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrInvalidInput):
			h.logger.Warn("POST /groups - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("POST /groups - Failed to create group: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /groups - Group created: group_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
