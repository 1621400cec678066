package rating_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	errandsvc "errandgo/internal/service/errand"
	ratingsvc "errandgo/internal/service/rating"
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

	var ratingDTO dto.RatingCreateRequest
	err := json.NewDecoder(r.Body).Decode(&ratingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rating, err := h.service.RateErrand(r.Context(), ratingDTO.ErrandID, session.UserID, ratingDTO.Stars, ratingDTO.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ratingsvc.ErrInvalidStars):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandsvc.ErrErrandNotFound),
			errors.Is(err, errandsvc.ErrActiveErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ratingsvc.ErrErrandNotCompleted):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, ratingsvc.ErrNotParticipant):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromRating(rating))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
