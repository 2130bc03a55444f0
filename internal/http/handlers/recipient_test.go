package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
)

type stubRecipientUsecase struct {
	getFn          func(ctx context.Context, id int64) (*domain.Recipient, error)
	listFn         func(ctx context.Context, limit, offset *int) ([]domain.Recipient, error)
	registerFn     func(ctx context.Context, r *domain.Recipient) (int64, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.RecipientStatus) error
}

func (s *stubRecipientUsecase) Get(ctx context.Context, id int64) (*domain.Recipient, error) {
	return s.getFn(ctx, id)
}

func (s *stubRecipientUsecase) List(ctx context.Context, limit, offset *int) ([]domain.Recipient, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubRecipientUsecase) Register(ctx context.Context, r *domain.Recipient) (int64, error) {
	return s.registerFn(ctx, r)
}

func (s *stubRecipientUsecase) UpdateStatus(ctx context.Context, id int64, status domain.RecipientStatus) error {
	return s.updateStatusFn(ctx, id, status)
}

func TestRecipientHandler_Register_Created(t *testing.T) {
	t.Parallel()

	h := NewRecipientHandler(&stubRecipientUsecase{
		registerFn: func(ctx context.Context, rec *domain.Recipient) (int64, error) {
			require.Equal(t, domain.ABNeg, rec.BloodGroup)
			require.Equal(t, domain.UrgencyCritical, rec.Urgency)
			return 12, nil
		},
	})

	body := `{"user_id":"u2","name":"Olga","phone":"+79991112233","blood_group":"AB-","urgency":"critical","latitude":59.93,"longitude":30.31}`
	req := httptest.NewRequest(http.MethodPost, "/recipients", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "/recipients/12", rr.Header().Get("Location"))
}

func TestRecipientHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	h := NewRecipientHandler(&stubRecipientUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Recipient, error) {
			return &domain.Recipient{
				ID:         id,
				Name:       "Olga",
				BloodGroup: domain.BPos,
				Urgency:    domain.UrgencyHigh,
				Status:     domain.RecipientWaiting,
			}, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/recipients/5", nil), "id", "5")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp recipientDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(5), resp.ID)
	require.Equal(t, domain.RecipientWaiting, resp.Status)
}

func TestRecipientHandler_UpdateStatus_OK(t *testing.T) {
	t.Parallel()

	h := NewRecipientHandler(&stubRecipientUsecase{
		updateStatusFn: func(ctx context.Context, id int64, status domain.RecipientStatus) error {
			require.Equal(t, int64(5), id)
			require.Equal(t, domain.RecipientFulfilled, status)
			return nil
		},
	})

	req := withURLParam(
		httptest.NewRequest(http.MethodPost, "/recipients/5/status",
			strings.NewReader(`{"status":"fulfilled"}`)),
		"id", "5")
	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRecipientHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	h := NewRecipientHandler(&stubRecipientUsecase{
		updateStatusFn: func(ctx context.Context, id int64, status domain.RecipientStatus) error {
			return apperr.Invalid
		},
	})

	req := withURLParam(
		httptest.NewRequest(http.MethodPost, "/recipients/5/status",
			strings.NewReader(`{"status":"teleported"}`)),
		"id", "5")
	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRecipientHandler_UpdateStatus_NotFound(t *testing.T) {
	t.Parallel()

	h := NewRecipientHandler(&stubRecipientUsecase{
		updateStatusFn: func(ctx context.Context, id int64, status domain.RecipientStatus) error {
			return apperr.NotFound
		},
	})

	req := withURLParam(
		httptest.NewRequest(http.MethodPost, "/recipients/404/status",
			strings.NewReader(`{"status":"cancelled"}`)),
		"id", "404")
	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
