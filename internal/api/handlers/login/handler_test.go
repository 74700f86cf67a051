package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/service/auth"
	"github.com/m04kA/SMC-BarberService/internal/service/auth/models"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
)

type fakeService struct {
	err error
	got *models.LoginRequest
}

func (f *fakeService) Login(_ context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.TokenResponse{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC),
		User:      models.UserResponse{ID: 1, Name: "Rocha", Email: req.Email, ShopSlug: "rocha"},
	}, nil
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
}

func TestHandler_LoggedIn(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, post(`{"email":"rocha@barber.com","password":"secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rocha@barber.com", svc.got.Email)
	assert.Equal(t, "secret123", svc.got.Password)

	var body models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body.Token)
	assert.Equal(t, "rocha", body.User.ShopSlug)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"empty body", ``, nil, http.StatusBadRequest},
		{"bad email", `{"email":"rocha","password":"secret123"}`, nil, http.StatusBadRequest},
		{"missing password", `{"email":"rocha@barber.com"}`, nil, http.StatusBadRequest},
		{"wrong password", `{"email":"rocha@barber.com","password":"nope"}`, auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid input", `{"email":"rocha@barber.com","password":"x"}`, auth.ErrInvalidInput, http.StatusUnauthorized},
		{"internal", `{"email":"rocha@barber.com","password":"secret123"}`, errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.svcErr}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, post(tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var body struct {
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, msgInvalidCredentials, body.Message)
			}
		})
	}
}
