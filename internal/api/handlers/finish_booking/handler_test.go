package finish_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	err error
	got *models.ChangeStatusRequest
}

func (f *fakeService) Finish(_ context.Context, req *models.ChangeStatusRequest) error {
	f.got = req
	return f.err
}

func newRequest(bookingID string, userID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/finish", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	return req
}

func TestHandler_Finished(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest("12", 3))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), svc.got.BookingID)
	assert.Equal(t, int64(3), svc.got.UserID)

	var body StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.ID)
	assert.Equal(t, "finished", body.Status)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		userID     int64
		svcErr     error
		wantStatus int
	}{
		{"invalid id", "abc", 3, nil, http.StatusBadRequest},
		{"zero id", "0", 3, nil, http.StatusBadRequest},
		{"no user", "12", 0, nil, http.StatusUnauthorized},
		{"not found", "12", 3, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", "12", 3, bookings.ErrAccessDenied, http.StatusForbidden},
		{"cancelled booking", "12", 3, bookings.ErrCannotFinish, http.StatusConflict},
		{"internal", "12", 3, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			h := NewHandler(svc, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest(tt.bookingID, tt.userID))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusBadRequest || tt.wantStatus == http.StatusUnauthorized {
				assert.Nil(t, svc.got, "service must not be called")
			}
		})
	}
}
