package signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"errandgo/internal/handlers/rest/dto"
	"errandgo/internal/service/auth"
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
	var signUpDTO dto.SignUpRequest
	err := json.NewDecoder(r.Body).Decode(&signUpDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, token, err := h.service.SignUp(r.Context(), auth.SignUpParams{
		FullName:        signUpDTO.FullName,
		Username:        signUpDTO.Username,
		Email:           signUpDTO.Email,
		Phone:           signUpDTO.Phone,
		DateOfBirth:     signUpDTO.DateOfBirth,
		Password:        signUpDTO.Password,
		ConfirmPassword: signUpDTO.ConfirmPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRequiredFields),
			errors.Is(err, auth.ErrInvalidEmail),
			errors.Is(err, auth.ErrInvalidPhone),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrPasswordMismatch),
			errors.Is(err, auth.ErrUnderage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, auth.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AuthResponse{
		Token: token,
		User:  dto.FromUser(user),
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
