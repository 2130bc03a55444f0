package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bloodlink/internal/apperr"
)

// DonorHandler serves HTTP endpoints for donor resources.
type DonorHandler struct{ uc donorUsecase }

// NewDonorHandler wires a donorUsecase into HTTP handlers.
func NewDonorHandler(uc donorUsecase) *DonorHandler { return &DonorHandler{uc: uc} }

// GetByID handles GET /donors/{id}.
func (h *DonorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	d, err := h.uc.Get(ctx, id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, donorToResponse(*d))
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /donors.
func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := pagination(w, r)
	if !ok {
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx, limit, offset)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, donorsToResponse(list))
}

// Register handles POST /donors.
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerDonorRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	id, err := h.uc.Register(ctx, req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/donors/"+strconv.FormatInt(id, 10))
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(w, r, http.StatusConflict, "phone already exists")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /donors with partial updates from the request body.
func (h *DonorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateDonorRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	_, err := h.uc.UpdatePartial(ctx, req.toModel())
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(w, r, http.StatusConflict, "phone already exists")
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
