package signout_post

import (
	"net/http"
	"strings"

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
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := h.service.SignOut(r.Context(), token)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("sign out failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
