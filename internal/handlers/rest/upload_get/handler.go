package upload_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"errandgo/internal/pkg/uploads"
	"errandgo/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	store UploadStore
}

func New(log handlerLogger, store UploadStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		store: store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]

	file, err := h.store.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("open upload")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}
