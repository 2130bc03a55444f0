package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bloodlink/internal/apperr"
)

// RecipientHandler serves HTTP endpoints for recipient resources.
type RecipientHandler struct{ uc recipientUsecase }

// NewRecipientHandler wires a recipientUsecase into HTTP handlers.
func NewRecipientHandler(uc recipientUsecase) *RecipientHandler {
	return &RecipientHandler{uc: uc}
}

// GetByID handles GET /recipients/{id}.
func (h *RecipientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	rec, err := h.uc.Get(ctx, id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, recipientToResponse(*rec))
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /recipients.
func (h *RecipientHandler) List(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, r, http.StatusOK, recipientsToResponse(list))
}

// Register handles POST /recipients.
func (h *RecipientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRecipientRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	id, err := h.uc.Register(ctx, req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/recipients/"+strconv.FormatInt(id, 10))
		writeJSON(w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(w, r, http.StatusConflict, "phone already exists")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// UpdateStatus handles POST /recipients/{id}/status.
func (h *RecipientHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateRecipientStatusRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	err = h.uc.UpdateStatus(ctx, id, req.Status)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid status")
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
