package errand_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/dto"
	"errandgo/internal/pkg/factory/price_estimate"
	authmw "errandgo/internal/pkg/middlewares/auth"
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
	session, ok := authmw.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.ErrandCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	params := errandsvc.CreateParams{
		ClientID:         session.UserID,
		Category:         entities.ErrandCategory(createDTO.Category),
		PickupLocation:   createDTO.PickupLocation,
		DeliveryLocation: createDTO.DeliveryLocation,
		Weight:           createDTO.Weight,
		DeliveryTime:     createDTO.DeliveryTime,
		Details:          createDTO.Details,
		Pricing: price_estimate.Input{
			ItemCount:        createDTO.ItemCount,
			BudgetLimit:      createDTO.BudgetLimit,
			DriverTip:        createDTO.DriverTip,
			TotalAmount:      createDTO.TotalAmount,
			Weight:           createDTO.WeightValue,
			Timeframe:        createDTO.Timeframe,
			Fragility:        createDTO.Fragility,
			ServiceType:      createDTO.ServiceType,
			BudgetRange:      createDTO.BudgetRange,
			TotalValue:       createDTO.TotalValue,
			TicketCount:      createDTO.TicketCount,
			PartCount:        createDTO.PartCount,
			FuelType:         createDTO.FuelType,
			FuelQuantity:     createDTO.FuelQuantity,
			ItemsTotalValue:  createDTO.ItemsTotalValue,
			PropertyType:     createDTO.PropertyType,
			AssemblyRequired: createDTO.AssemblyRequired,
			DeliveryTime:     createDTO.DeliveryTime,
			LuggageSize:      createDTO.LuggageSize,
			Urgency:          createDTO.Urgency,
		},
		PickupLat:   createDTO.PickupLat,
		PickupLon:   createDTO.PickupLon,
		DeliveryLat: createDTO.DeliveryLat,
		DeliveryLon: createDTO.DeliveryLon,
		WeightKg:    createDTO.WeightKg,
	}
	if createDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*createDTO.VehicleType)
		params.VehicleType = &vehicleType
	}

	created, err := h.service.CreateErrand(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errandsvc.ErrMissingRequiredFields),
			errors.Is(err, errandsvc.ErrInvalidCategory):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromErrand(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
