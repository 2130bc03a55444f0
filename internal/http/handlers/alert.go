package handlers

import (
	"errors"
	"net/http"

	"bloodlink/internal/apperr"
	"github.com/go-chi/chi/v5"
)

// AlertHandler serves HTTP endpoints for emergency blood alerts.
type AlertHandler struct{ uc alertUsecase }

// NewAlertHandler wires an alertUsecase into HTTP handlers.
func NewAlertHandler(uc alertUsecase) *AlertHandler { return &AlertHandler{uc: uc} }

// Send handles POST /alerts. The alert is persisted and fanned out to
// every active donor whose blood group is in the target set; partial
// delivery failures still return 201 with the counts.
func (h *AlertHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendAlertRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	alert, report, err := h.uc.Send(r.Context(), req.toSpec())
	switch {
	case err == nil:
		w.Header().Set("Location", "/alerts/"+alert.ID)
		writeJSON(w, r, http.StatusCreated, sendAlertResponse{
			Alert:     alertToResponse(*alert),
			Eligible:  report.Eligible,
			Delivered: report.Delivered,
			Failed:    report.Failed,
		})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /alerts.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	list, err := h.uc.List(ctx)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, alertsToResponse(list))
}

// Deactivate handles POST /alerts/{id}/deactivate.
func (h *AlertHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	err := h.uc.Deactivate(ctx, id)
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(w, r, http.StatusBadRequest, "invalid id")
	case errors.Is(err, apperr.NotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}
