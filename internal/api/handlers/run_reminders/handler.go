package run_reminders

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-TeeTimeService/internal/api/handlers"
	runReminders "github.com/m04kA/SMC-TeeTimeService/internal/usecase/run_reminders"
)

const msgRunInProgress = "reminder run already in progress"

type Handler struct {
	useCase RunRemindersUseCase
	logger  Logger
}

func NewHandler(useCase RunRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/admin/reminders/empty-tee-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Тело опционально: пустое тело = рассылка по всем активным группам
	var req RunRemindersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /admin/reminders/empty-tee-times - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, "invalid request body")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &runReminders.Request{GroupID: req.GroupID})
	if err != nil {
		switch {
		case errors.Is(err, runReminders.ErrRunInProgress):
			h.logger.Warn("POST /admin/reminders/empty-tee-times - Run already in progress")
			handlers.RespondConflict(w, msgRunInProgress)

		default:
			h.logger.Error("POST /admin/reminders/empty-tee-times - Failed to run reminders: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reminders/empty-tee-times - Run finished: groups=%d, skipped=%t",
		len(result.Summary), result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
