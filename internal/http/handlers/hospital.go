package handlers

import (
	"errors"
	"net/http"

	"bloodlink/internal/apperr"
)

// HospitalHandler serves HTTP endpoints for hospital reference data.
type HospitalHandler struct{ uc hospitalUsecase }

// NewHospitalHandler wires a hospitalUsecase into HTTP handlers.
func NewHospitalHandler(uc hospitalUsecase) *HospitalHandler {
	return &HospitalHandler{uc: uc}
}

// List handles GET /hospitals.
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, hospitalsToResponse(list))
}

// GetByID handles GET /hospitals/{id}.
func (h *HospitalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	hosp, err := h.uc.Get(ctx, id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, hospitalToResponse(*hosp))
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
