package handlers

import (
	"net/http"
)

// MatchHandler serves HTTP endpoints for compatibility matching.
type MatchHandler struct{ uc matchUsecase }

// NewMatchHandler wires a matchUsecase into HTTP handlers.
func NewMatchHandler(uc matchUsecase) *MatchHandler { return &MatchHandler{uc: uc} }

// FindForRecipient handles GET /recipients/{id}/matches.
//
// An unknown recipient yields an empty list rather than 404: matching
// is advisory and callers poll it before the recipient record lands.
func (h *MatchHandler) FindForRecipient(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid id")
		return
	}
	ctx, cancel := withDBTimeout(r.Context())
	defer cancel()

	matches, err := h.uc.FindMatches(ctx, id)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, r, http.StatusOK, matchesToResponse(matches))
}
