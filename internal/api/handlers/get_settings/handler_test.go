package get_settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	err error
	got *models.GetSettingsRequest
}

func (f *fakeService) Get(_ context.Context, req *models.GetSettingsRequest) (*models.SettingsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	level := models.LevelShop
	if req.BarberID != nil {
		level = models.LevelBarber
	}
	return &models.SettingsResponse{ID: 2, BarberID: req.BarberID, Level: level, SlotStepMinutes: 10, AdvanceBookingDays: 30}, nil
}

func (f *fakeService) List(_ context.Context, userID int64) (*models.SettingsListResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SettingsListResponse{Settings: []models.SettingsResponse{
		{ID: 1, Level: models.LevelShop, SlotStepMinutes: 10},
		{ID: 2, Level: models.LevelBarber, SlotStepMinutes: 15},
	}}, nil
}

func newRequest(target string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandler_ShopLevel(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("/api/v1/settings", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.got.UserID)
	assert.Nil(t, svc.got.BarberID)

	var body models.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, models.LevelShop, body.Level)
}

func TestHandler_BarberLevel(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("/api/v1/settings?barberId=3", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.BarberID)
	assert.Equal(t, int64(3), *svc.got.BarberID)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		userID     int64
		svcErr     error
		wantStatus int
	}{
		{"no user", "/api/v1/settings", 0, nil, http.StatusUnauthorized},
		{"bad barber id", "/api/v1/settings?barberId=x", 1, nil, http.StatusBadRequest},
		{"negative barber id", "/api/v1/settings?barberId=-1", 1, nil, http.StatusBadRequest},
		{"unknown barber", "/api/v1/settings?barberId=9", 1, settings.ErrBarberNotFound, http.StatusNotFound},
		{"foreign barber", "/api/v1/settings?barberId=4", 1, settings.ErrAccessDenied, http.StatusForbidden},
		{"internal", "/api/v1/settings", 1, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest(tt.target, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_List(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())
	rec := httptest.NewRecorder()

	h.HandleList(rec, newRequest("/api/v1/settings/all", 1))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.SettingsListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Settings, 2)

	rec = httptest.NewRecorder()
	h.HandleList(rec, newRequest("/api/v1/settings/all", 0))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: settings.ErrInternal}, logger.NewNop()).
		HandleList(rec, newRequest("/api/v1/settings/all", 1))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
