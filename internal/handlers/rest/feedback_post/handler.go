package feedback_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	feedbacksvc "errandgo/internal/service/feedback"
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

	var feedbackDTO dto.FeedbackCreateRequest
	err := json.NewDecoder(r.Body).Decode(&feedbackDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.Submit(r.Context(), feedbacksvc.SubmitParams{
		UserID:            session.UserID,
		Stars:             feedbackDTO.Stars,
		FeedbackType:      entities.FeedbackType(feedbackDTO.FeedbackType),
		Feedback:          feedbackDTO.Feedback,
		Suggestions:       feedbackDTO.Suggestions,
		ContactPermission: feedbackDTO.ContactPermission,
	})
	if err != nil {
		switch {
		case errors.Is(err, feedbacksvc.ErrInvalidStars),
			errors.Is(err, feedbacksvc.ErrInvalidFeedbackType),
			errors.Is(err, feedbacksvc.ErrFeedbackTooShort):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FeedbackCreateResponse{
		ID: created.ID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
