package errand_runners_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"errandgo/internal/handlers/rest/dto"
	errandsvc "errandgo/internal/service/errand"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	listings, err := h.service.RunnersForErrand(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errandsvc.ErrErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	listingDTOs := make([]dto.RunnerListing, len(listings))
	for i := range listings {
		listing := &listings[i]
		listingDTOs[i] = dto.RunnerListing{
			User:             dto.FromUser(&listing.User),
			Profile:          dto.FromRunnerProfile(&listing.Profile),
			TotalErrands:     listing.TotalErrands,
			CompletedErrands: listing.CompletedErrands,
			AverageRating:    listing.AverageRating,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(listingDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
