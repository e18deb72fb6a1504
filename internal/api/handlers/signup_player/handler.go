package signup_player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	eventModels "github.com/m04kA/SMC-TeeTimeService/internal/service/events/models"
	signupPlayer "github.com/m04kA/SMC-TeeTimeService/internal/usecase/signup_player"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidID          = "invalid group, event or tee time ID"
	msgNameEmailRequired  = "name and email required"
	msgGroupNotFound      = "Group not found"
	msgEventNotFound      = "Event not found"
	msgTeeTimeNotFound    = "Tee time not found"
	msgTeeTimeFull        = "Tee time is full"
)

type Handler struct {
	useCase SignupPlayerUseCase
	logger  Logger
}

func NewHandler(useCase SignupPlayerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/groups/{groupId}/events/{eventId}/tee-times/{teeTimeId}/players
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
	teeTimeID, err := strconv.ParseInt(vars["teeTimeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req SignupPlayerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &signupPlayer.Request{
		GroupID:   groupID,
		EventID:   eventID,
		TeeTimeID: teeTimeID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, signupPlayer.ErrInvalidInput):
			h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameEmailRequired)

		case errors.Is(err, signupPlayer.ErrGroupNotFound):
			h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Group not found: group_id=%d", groupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, signupPlayer.ErrEventNotFound):
			h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, signupPlayer.ErrTeeTimeNotFound):
			h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Tee time not found: tee_time_id=%d", teeTimeID)
			handlers.RespondNotFound(w, msgTeeTimeNotFound)

		case errors.Is(err, signupPlayer.ErrTeeTimeFull):
			h.logger.Warn("POST .../tee-times/{teeTimeId}/players - Tee time full: tee_time_id=%d", teeTimeID)
			handlers.RespondBadRequest(w, msgTeeTimeFull)

		default:
			h.logger.Error("POST .../tee-times/{teeTimeId}/players - Failed to sign up: tee_time_id=%d, error=%v", teeTimeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST .../tee-times/{teeTimeId}/players - Player signed up: player_id=%d, tee_time_id=%d",
		result.PlayerID, teeTimeID)
	handlers.RespondJSON(w, http.StatusOK, eventModels.FromDomainEvent(result.Event))
}
