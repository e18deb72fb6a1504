package move_player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	eventModels "github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	movePlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/move_player"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid group or event ID"
	msgInvalidInput       = "fromTeeTimeId, toTeeTimeId, playerId required"
	msgGroupNotFound      = "Group not found"
	msgEventNotFound      = "Event not found"
	msgTeeTimeNotFound    = "Source or destination tee time not found"
	msgPlayerNotFound     = "Player not found in source tee time"
	msgDestinationFull    = "Destination tee time is full"
)

type Handler struct {
	useCase MovePlayerUseCase
	logger  Logger
}

func NewHandler(useCase MovePlayerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/groups/{groupId}/events/{eventId}/move-player
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

	var req MovePlayerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST .../move-player - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &movePlayer.Request{
		GroupID:       groupID,
		EventID:       eventID,
		FromTeeTimeID: req.FromTeeTimeID,
		ToTeeTimeID:   req.ToTeeTimeID,
		PlayerID:      req.PlayerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, movePlayer.ErrInvalidInput):
			h.logger.Warn("POST .../move-player - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, movePlayer.ErrGroupNotFound):
			h.logger.Warn("POST .../move-player - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, movePlayer.ErrEventNotFound):
			h.logger.Warn("POST .../move-player - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, movePlayer.ErrTeeTimeNotFound):
			h.logger.Warn("POST .../move-player - Tee time not found: from=%d, to=%d", req.FromTeeTimeID, req.ToTeeTimeID)
			handlers.RespondNotFound(w, msgTeeTimeNotFound)

		case errors.Is(err, movePlayer.ErrPlayerNotFound):
			h.logger.Warn("POST .../move-player - Player not found: player_id=%d", req.PlayerID)
			handlers.RespondNotFound(w, msgPlayerNotFound)

		case errors.Is(err, movePlayer.ErrDestinationFull):
			h.logger.Warn("POST .../move-player - Destination full: to=%d", req.ToTeeTimeID)
			handlers.RespondBadRequest(w, msgDestinationFull)

		default:
			h.logger.Error("POST .../move-player - Failed to move player: player_id=%d, error=%v", req.PlayerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST .../move-player - Player moved: player_id=%d, from=%d, to=%d",
		req.PlayerID, req.FromTeeTimeID, req.ToTeeTimeID)
	handlers.RespondJSON(w, http.StatusOK, eventModels.FromDomainEvent(result.Event))
}
