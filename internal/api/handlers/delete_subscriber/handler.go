package delete_subscriber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers"
)

const (
	msgInvalidID          = "invalid group or subscriber ID"
	msgSubscriberNotFound = "Subscriber not found"
)

// okResponse ответ успешного удаления
type okResponse struct {
	OK bool `json:"ok"`
}

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

// Handle DELETE /api/groups/{groupId}/subscribers/{subscriberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	groupID, err := strconv.ParseInt(vars["groupId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}
	subscriberID, err := strconv.ParseInt(vars["subscriberId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), groupID, subscriberID); err != nil {
		switch {
		case errors.Is(err, subscribers.ErrSubscriberNotFound):
			h.logger.Warn("DELETE /groups/{id}/subscribers/{subscriberId} - Subscriber not found: subscriber_id=%d", subscriberID)
			handlers.RespondNotFound(w, msgSubscriberNotFound)

		default:
			h.logger.Error("DELETE /groups/{id}/subscribers/{subscriberId} - Failed to delete: subscriber_id=%d, error=%v", subscriberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /groups/{id}/subscribers/{subscriberId} - Subscriber deleted: subscriber_id=%d", subscriberID)
	handlers.RespondJSON(w, http.StatusOK, okResponse{OK: true})
}
