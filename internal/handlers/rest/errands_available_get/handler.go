package errands_available_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	runnersvc "errandgo/internal/service/runner"
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

	available, err := h.service.AvailableErrands(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, runnersvc.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	availableDTOs := make([]dto.AvailableErrand, len(available))
	for i := range available {
		item := &available[i]
		availableDTOs[i] = dto.AvailableErrand{
			Errand:     dto.FromErrand(&item.Errand),
			Client:     dto.FromUser(&item.Client),
			HasOffered: item.HasOffered,
		}
		if item.OfferStatus != nil {
			status := item.OfferStatus.String()
			availableDTOs[i].OfferStatus = &status
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(availableDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
