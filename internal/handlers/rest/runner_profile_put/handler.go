package runner_profile_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	runnersvc "errandgo/internal/service/runner"
	"errandgo/pkg/logger"
)

type updateRequest struct {
	Address         *string `json:"address,omitempty"`
	VehicleType     *string `json:"vehicle_type,omitempty"`
	City            *string `json:"city,omitempty"`
	PreferredRoutes *string `json:"preferred_routes,omitempty"`
}

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

	var updateDTO updateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	profileModify := entities.RunnerProfileModify{
		UserID:          pointer.To(session.UserID),
		Address:         updateDTO.Address,
		City:            updateDTO.City,
		PreferredRoutes: updateDTO.PreferredRoutes,
	}
	if updateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*updateDTO.VehicleType)
		profileModify.VehicleType = &vehicleType
	}

	profile, err := h.service.UpdateProfile(r.Context(), profileModify)
	if err != nil {
		switch {
		case errors.Is(err, runnersvc.ErrMissingRequiredFields),
			errors.Is(err, runnersvc.ErrInvalidVehicleType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, runnersvc.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromRunnerProfile(profile))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
