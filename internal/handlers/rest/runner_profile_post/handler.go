package runner_profile_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"errandgo/internal/entities"
	"errandgo/internal/handlers/rest/dto"
	authmw "errandgo/internal/pkg/middlewares/auth"
	sessionpkg "errandgo/internal/pkg/session"
	"errandgo/internal/pkg/uploads"
	runnersvc "errandgo/internal/service/runner"
	"errandgo/pkg/logger"
)

const maxUploadMemory = 32 << 20

type Handler struct {
	log      handlerLogger
	service  Service
	store    UploadStore
	sessions SessionStore
}

func New(log handlerLogger, service Service, store UploadStore, sessions SessionStore) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		service:  service,
		store:    store,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := authmw.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleType := entities.VehicleType(r.FormValue("vehicle_type"))
	profileModify := entities.RunnerProfileModify{
		UserID:          pointer.To(session.UserID),
		DateOfBirth:     formValue(r, "date_of_birth"),
		Address:         formValue(r, "address"),
		IDNumber:        formValue(r, "id_number"),
		VehicleType:     &vehicleType,
		City:            formValue(r, "city"),
		PreferredRoutes: formValue(r, "preferred_routes"),
	}

	licensePhoto, err := h.saveUpload(r, session.UserID, "license_photo")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	profileModify.LicensePhoto = licensePhoto

	idPhoto, err := h.saveUpload(r, session.UserID, "id_photo")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	profileModify.IDPhoto = idPhoto

	profile, err := h.service.RegisterRunner(r.Context(), profileModify)
	if err != nil {
		switch {
		case errors.Is(err, runnersvc.ErrMissingRequiredFields),
			errors.Is(err, runnersvc.ErrInvalidVehicleType),
			errors.Is(err, runnersvc.ErrUnderage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, runnersvc.ErrProfileExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.refreshSessionRole(r, session.UserID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromRunnerProfile(profile))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// refreshSessionRole rewrites the caller's session under its current token so
// the runner role takes effect without a fresh sign-in. The promotion is
// already committed; a store failure only means the role catches up on the
// next sign-in.
func (h *Handler) refreshSessionRole(r *http.Request, userID int64) {
	token, ok := authmw.TokenFromContext(r.Context())
	if !ok {
		return
	}

	err := h.sessions.Update(r.Context(), token, sessionpkg.Session{
		UserID: userID,
		Role:   entities.RoleRunner,
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("refresh session role")
	}
}

// saveUpload stores one optional document field. A missing file is not an
// error; an unsupported type is.
func (h *Handler) saveUpload(r *http.Request, userID int64, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	name, err := h.store.Save(userID, field, header.Filename, file)
	if err != nil {
		if !errors.Is(err, uploads.ErrUnsupportedType) {
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("field", field),
			).Error("save upload")
		}
		return nil, err
	}
	return &name, nil
}

func formValue(r *http.Request, field string) *string {
	value := r.FormValue(field)
	if value == "" {
		return nil
	}
	return &value
}
