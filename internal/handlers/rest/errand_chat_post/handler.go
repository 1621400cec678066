package errand_chat_post

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

	var messageDTO dto.MessageCreateRequest
	err = json.NewDecoder(r.Body).Decode(&messageDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message, err := h.service.SendMessage(r.Context(), id, session.UserID, messageDTO.Content)
	if err != nil {
		switch {
		case errors.Is(err, chatsvc.ErrEmptyMessage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, chatsvc.ErrChatNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, chatsvc.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromMessage(message))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
