package remove_player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	eventModels "github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	removePlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/remove_player"
)

const (
	msgInvalidID       = "invalid group, event, tee time or player ID"
	msgGroupNotFound   = "Group not found"
	msgEventNotFound   = "Event not found"
	msgTeeTimeNotFound = "Tee time not found"
	msgPlayerNotFound  = "Player not found"
)

type Handler struct {
	useCase RemovePlayerUseCase
	logger  Logger
}

func NewHandler(useCase RemovePlayerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/groups/{groupId}/events/{eventId}/tee-times/{teeTimeId}/players/{playerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ids := make(map[string]int64, 4)
	for _, key := range []string{"groupId", "eventId", "teeTimeId", "playerId"} {
		id, err := strconv.ParseInt(vars[key], 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		ids[key] = id
	}

	result, err := h.useCase.Execute(r.Context(), &removePlayer.Request{
		GroupID:   ids["groupId"],
		EventID:   ids["eventId"],
		TeeTimeID: ids["teeTimeId"],
		PlayerID:  ids["playerId"],
	})
	if err != nil {
		switch {
		case errors.Is(err, removePlayer.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		case errors.Is(err, removePlayer.ErrGroupNotFound):
			h.logger.Warn("DELETE .../players/{playerId} - Group not found: group_id=%d", ids["groupId"])
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, removePlayer.ErrEventNotFound):
			h.logger.Warn("DELETE .../players/{playerId} - Event not found: event_id=%d", ids["eventId"])
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, removePlayer.ErrTeeTimeNotFound):
			h.logger.Warn("DELETE .../players/{playerId} - Tee time not found: tee_time_id=%d", ids["teeTimeId"])
			handlers.RespondNotFound(w, msgTeeTimeNotFound)

		case errors.Is(err, removePlayer.ErrPlayerNotFound):
			h.logger.Warn("DELETE .../players/{playerId} - Player not found: player_id=%d", ids["playerId"])
			handlers.RespondNotFound(w, msgPlayerNotFound)

		default:
			h.logger.Error("DELETE .../players/{playerId} - Failed to remove player: player_id=%d, error=%v", ids["playerId"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE .../players/{playerId} - Player removed: player_id=%d", ids["playerId"])
	handlers.RespondJSON(w, http.StatusOK, eventModels.FromDomainEvent(result.Event))
}
