package negotiation_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var offerDTO dto.OfferCreateRequest
	err := json.NewDecoder(r.Body).Decode(&offerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offer, err := h.service.SubmitOffer(r.Context(), offerDTO.ErrandID, session.UserID, offerDTO.OfferPrice)
	if err != nil {
		switch {
		case errors.Is(err, negotiationsvc.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, errandsvc.ErrErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, negotiationsvc.ErrErrandNotPending),
			errors.Is(err, negotiationsvc.ErrAlreadyOffered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromNegotiation(offer))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
