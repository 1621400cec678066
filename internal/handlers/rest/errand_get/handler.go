package errand_get

import (
	"encoding/json"
	"errors"
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
	log          handlerLogger
	service      Service
	negotiations NegotiationService
}

func New(log handlerLogger, service Service, negotiations NegotiationService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		negotiations: negotiations,
	}
}

type response struct {
	Errand dto.Errand        `json:"errand"`
	Offers []dto.Negotiation `json:"offers,omitempty"`
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

	errand, err := h.service.GetErrand(r.Context(), id, session.UserID, session.Role)
	if err != nil {
		switch {
		case errors.Is(err, errandsvc.ErrErrandNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, errandsvc.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := response{
		Errand: dto.FromErrand(errand),
	}

	// The owner also sees the offers made on their errand.
	if errand.ClientID == session.UserID {
		offers, err := h.negotiations.ListByErrand(r.Context(), id, session.UserID)
		if err != nil && !errors.Is(err, negotiationsvc.ErrForbidden) {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for i := range offers {
			res.Offers = append(res.Offers, dto.FromNegotiation(&offers[i]))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
