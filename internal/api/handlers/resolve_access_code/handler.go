package resolve_access_code

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/groups/models"
)

const (
	msgAccessCodeRequired = "accessCode required"
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

// Handle POST /api/groups/resolve-access-code
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveAccessCodeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groups/resolve-access-code - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgAccessCodeRequired)
		return
	}

	result, err := h.service.ResolveAccessCode(r.Context(), req.AccessCode)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgAccessCodeRequired)

		case errors.Is(err, groups.ErrGroupNotFound):
			handlers.RespondNotFound(w, msgGroupNotFound)

		default:
			h.logger.Error("POST /groups/resolve-access-code - Failed to resolve: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
