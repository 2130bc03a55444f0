package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bloodlink/internal/apperr"
	"bloodlink/internal/domain"
)

type stubDonorUsecase struct {
	getFn           func(ctx context.Context, id int64) (*domain.Donor, error)
	listFn          func(ctx context.Context, limit, offset *int) ([]domain.Donor, error)
	registerFn      func(ctx context.Context, d *domain.Donor) (int64, error)
	updatePartialFn func(ctx context.Context, u domain.PartialDonorUpdate) (bool, error)
}

func (s *stubDonorUsecase) Get(ctx context.Context, id int64) (*domain.Donor, error) {
	return s.getFn(ctx, id)
}

func (s *stubDonorUsecase) List(ctx context.Context, limit, offset *int) ([]domain.Donor, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubDonorUsecase) Register(ctx context.Context, d *domain.Donor) (int64, error) {
	return s.registerFn(ctx, d)
}

func (s *stubDonorUsecase) UpdatePartial(ctx context.Context, u domain.PartialDonorUpdate) (bool, error) {
	return s.updatePartialFn(ctx, u)
}

func TestDonorHandler_GetByID_OK(t *testing.T) {
	t.Parallel()

	expected := &domain.Donor{
		ID:         99,
		Name:       "Ivan",
		Phone:      "+79990000000",
		BloodGroup: domain.ONeg,
		IsActive:   true,
	}
	uc := &stubDonorUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Donor, error) {
			require.Equal(t, expected.ID, id)
			return expected, nil
		},
	}
	h := NewDonorHandler(uc)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/donors/99", nil), "id", "99")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp donorDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, expected.ID, resp.ID)
	require.Equal(t, expected.Name, resp.Name)
	require.Equal(t, domain.ONeg, resp.BloodGroup)
	require.True(t, resp.IsActive)
}

func TestDonorHandler_GetByID_InvalidID(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Donor, error) {
			require.FailNow(t, "usecase.Get should not be called on invalid id")
			return nil, nil
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/donors/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDonorHandler_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Donor, error) {
			return nil, apperr.NotFound
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/donors/10", nil), "id", "10")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDonorHandler_GetByID_InternalError(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		getFn: func(ctx context.Context, id int64) (*domain.Donor, error) {
			return nil, errors.New("db down")
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/donors/10", nil), "id", "10")
	rr := httptest.NewRecorder()
	h.GetByID(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestDonorHandler_List_PassesPagination(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		listFn: func(ctx context.Context, limit, offset *int) ([]domain.Donor, error) {
			require.NotNil(t, limit)
			require.NotNil(t, offset)
			require.Equal(t, 5, *limit)
			require.Equal(t, 10, *offset)
			return []domain.Donor{{ID: 1}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/donors?limit=5&offset=10", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []donorDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp, 1)
}

func TestDonorHandler_List_InvalidLimit(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		listFn: func(ctx context.Context, limit, offset *int) ([]domain.Donor, error) {
			require.FailNow(t, "usecase.List should not be called on invalid limit")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/donors?limit=-1", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDonorHandler_Register_Created(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		registerFn: func(ctx context.Context, d *domain.Donor) (int64, error) {
			require.Equal(t, "Ivan", d.Name)
			require.Equal(t, domain.APos, d.BloodGroup)
			return 7, nil
		},
	})

	body := `{"user_id":"u1","name":"Ivan","phone":"+79990000000","blood_group":"A+","latitude":55.75,"longitude":37.62}`
	req := httptest.NewRequest(http.MethodPost, "/donors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "/donors/7", rr.Header().Get("Location"))

	var resp map[string]int64
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(7), resp["id"])
}

func TestDonorHandler_Register_Invalid(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		registerFn: func(ctx context.Context, d *domain.Donor) (int64, error) {
			return 0, apperr.Invalid
		},
	})

	body := `{"name":"Ivan","phone":"bad","blood_group":"A+"}`
	req := httptest.NewRequest(http.MethodPost, "/donors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDonorHandler_Register_Conflict(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		registerFn: func(ctx context.Context, d *domain.Donor) (int64, error) {
			return 0, apperr.Conflict
		},
	})

	body := `{"name":"Ivan","phone":"+79990000000","blood_group":"A+"}`
	req := httptest.NewRequest(http.MethodPost, "/donors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestDonorHandler_Update_OK(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialDonorUpdate) (bool, error) {
			require.Equal(t, int64(3), u.ID)
			require.NotNil(t, u.IsActive)
			require.False(t, *u.IsActive)
			require.Nil(t, u.Name)
			return true, nil
		},
	})

	body := `{"id":3,"is_active":false}`
	req := httptest.NewRequest(http.MethodPut, "/donors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDonorHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	h := NewDonorHandler(&stubDonorUsecase{
		updatePartialFn: func(ctx context.Context, u domain.PartialDonorUpdate) (bool, error) {
			return false, apperr.NotFound
		},
	})

	body := `{"id":404,"is_active":true}`
	req := httptest.NewRequest(http.MethodPut, "/donors", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
