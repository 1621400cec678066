package errand_accept_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	errandsvc "errandgo/internal/service/errand"
	negotiationsvc "errandgo/internal/service/negotiation"
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

	// The body is optional: absent means accept at the client's estimate.
	var acceptDTO dto.DirectAcceptRequest
	err = json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.DirectAccept(r.Context(), id, session.UserID, acceptDTO.OfferPrice)
	if err != nil {
		switch {
		case errors.Is(err, negotiationsvc.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandsvc.ErrErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, errandsvc.ErrErrandNotAcceptable),
			errors.Is(err, negotiationsvc.ErrErrandAlreadyAccepted),
			errors.Is(err, negotiationsvc.ErrAlreadyOffered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Assignment{
		ErrandID:       assignment.ErrandID,
		RunnerID:       assignment.RunnerID,
		ActiveErrandID: assignment.ActiveErrandID,
		AgreedPrice:    assignment.AgreedPrice,
		StartTime:      dto.TimeRFC3339(assignment.StartTime),
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
