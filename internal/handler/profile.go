package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// ProfileHandler handles HTTP requests for saved generator profiles.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleListProfiles handles GET /api/v1/profiles requests.
func (h *ProfileHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	profiles, err := h.service.ListProfiles(r.Context(), userID)
	if err != nil {
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// HandleCreateProfile handles POST /api/v1/profiles requests.
func (h *ProfileHandler) HandleCreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.CreateProfile(r.Context(), userID, req)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateProfile handles PUT /api/v1/profiles/{profile_id} requests.
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	var req model.ProfileRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, id, req)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteProfile handles DELETE /api/v1/profiles/{profile_id} requests.
func (h *ProfileHandler) HandleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(r.Context(), userID, id); err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGenerateFromProfile handles POST /api/v1/profiles/{profile_id}/generate
// requests. The optional ?count= query parameter requests several passwords.
func (h *ProfileHandler) HandleGenerateFromProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse(service.ErrInvalidCount.Error()))
			return
		}
		count = n
	}

	resp, err := h.service.GenerateFromProfile(r.Context(), userID, id, count)
	if err != nil {
		h.writeProfileError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case service.IsValidationError(err),
		errors.Is(err, service.ErrProfileNameRequired),
		errors.Is(err, service.ErrProfileNameTooLong):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrProfileNameTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrProfileNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		internalError(w, r, err)
	}
}

func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
	}
	return userID, ok
}

func profileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "profile_id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid profile id"))
		return 0, false
	}
	return id, true
}
