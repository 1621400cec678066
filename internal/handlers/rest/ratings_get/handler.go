package ratings_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
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

	// Defaults to the caller's own received ratings; clients may look up a
	// runner's record before hiring them.
	userID := session.UserID
	if userIDStr := r.URL.Query().Get("user_id"); userIDStr != "" {
		parsed, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		userID = parsed
	}

	ratings, err := h.service.RatingsForUser(r.Context(), userID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.UserRatings{
		Ratings: make([]dto.Rating, len(ratings.Ratings)),
		Average: ratings.Average,
		Count:   ratings.Count,
	}
	for i := range ratings.Ratings {
		response.Ratings[i] = dto.FromRating(&ratings.Ratings[i])
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
