package unsubscribe

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TeeTimeService/internal/service/subscribers"
)

// Ссылка из письма открывается в браузере, поэтому ответ - простой текст
const (
	msgInvalidLink  = "Invalid unsubscribe link."
	msgNotFound     = "Subscription not found or already removed."
	msgUnsubscribed = "You have been unsubscribed successfully."
	msgInternal     = "Something went wrong. Please try again later."
)

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

// Handle GET /unsubscribe/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]
	if token == "" {
		respondText(w, http.StatusBadRequest, msgInvalidLink)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, subscribers.ErrInvalidInput):
			respondText(w, http.StatusBadRequest, msgInvalidLink)

		case errors.Is(err, subscribers.ErrSubscriberNotFound):
			h.logger.Warn("GET /unsubscribe/{token} - Token not found")
			respondText(w, http.StatusNotFound, msgNotFound)

		default:
			h.logger.Error("GET /unsubscribe/{token} - Failed to unsubscribe: %v", err)
			respondText(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("GET /unsubscribe/{token} - Unsubscribed successfully")
	respondText(w, http.StatusOK, msgUnsubscribed)
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}
