package update_settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/settings"
	"github.com/m04kA/SMC-BarberService/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/ptr"
)

type fakeService struct {
	err error
	got *models.UpsertSettingsRequest
}

func (f *fakeService) Upsert(_ context.Context, req *models.UpsertSettingsRequest) (*models.SettingsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SettingsResponse{
		ID:              1,
		BarberID:        req.BarberID,
		Level:           models.LevelBarber,
		SlotStepMinutes: ptr.Value(req.SlotStepMinutes),
		BufferMinutes:   ptr.Value(req.BufferMinutes),
	}, nil
}

func put(body string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandler_Saved(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, put(`{"barberId":3,"slotStepMinutes":15,"bufferMinutes":10}`, 1))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.got.UserID)
	assert.Equal(t, ptr.Ptr(int64(3)), svc.got.BarberID)
	assert.Equal(t, ptr.Ptr(15), svc.got.SlotStepMinutes)
	assert.Nil(t, svc.got.AdvanceBookingDays)

	var body models.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 15, body.SlotStepMinutes)
	assert.Equal(t, 10, body.BufferMinutes)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		userID     int64
		svcErr     error
		wantStatus int
	}{
		{"no user", `{"slotStepMinutes":15}`, 0, nil, http.StatusUnauthorized},
		{"empty body", ``, 1, nil, http.StatusBadRequest},
		{"unknown field", `{"step":15}`, 1, nil, http.StatusBadRequest},
		{"zero barber id", `{"barberId":0}`, 1, nil, http.StatusBadRequest},
		{"invalid values", `{"slotStepMinutes":0}`, 1, fmt.Errorf("%w: step must be positive", settings.ErrInvalidInput), http.StatusBadRequest},
		{"unknown barber", `{"barberId":9}`, 1, settings.ErrBarberNotFound, http.StatusNotFound},
		{"foreign barber", `{"barberId":4}`, 1, settings.ErrAccessDenied, http.StatusForbidden},
		{"internal", `{"bufferMinutes":5}`, 1, settings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, put(tt.body, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
