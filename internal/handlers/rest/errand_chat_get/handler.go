package errand_chat_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	chatsvc "errandgo/internal/service/chat"
	"errandgo/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := authmw.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	thread, err := h.service.GetThread(r.Context(), id, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, chatsvc.ErrChatNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chatsvc.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ChatThread{
		ChatID:   thread.Chat.ID,
		ErrandID: thread.Chat.ErrandID,
		ClientID: thread.Chat.ClientID,
		RunnerID: thread.Chat.RunnerID,
		Messages: make([]dto.Message, len(thread.Messages)),
	}
	for i := range thread.Messages {
		response.Messages[i] = dto.FromMessage(&thread.Messages[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
