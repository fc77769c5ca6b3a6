// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/internal/service"
	"github.com/MKhiriev/go-phonebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router with mocked services, exercising the
// same middleware chain as production.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString == "valid-token" {
				return models.Token{UserID: 1}, nil
			}
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
		findByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Name: "Ann", Email: "ann@x.com"}, nil
		},
	}
	contacts := &mockContactService{
		listFn: func(_ context.Context, _ int64) ([]models.Contact, error) {
			return []models.Contact{}, nil
		},
	}

	h := NewHandler(&service.Services{AuthService: auth, ContactService: contacts}, testConfig(), logger.Nop())
	return h.Init()
}

func TestRouter_RootAndHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Phonebook API is running!","version":"1.0.0","status":"OK"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK","database":"connected"}`, rec.Body.String())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users/current"},
		{http.MethodGet, "/contacts"},
		{http.MethodPost, "/contacts"},
		{http.MethodDelete, "/contacts/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"Not authorized!"}`, rec.Body.String())
		})
	}
}

func TestRouter_ProtectedRouteWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRouter_CurrentUser(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/users/current", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ann","email":"ann@x.com"}`, rec.Body.String())
}

// ─────────────────────────────────────────────
// CORS
// ─────────────────────────────────────────────

func TestRouter_CORSPreflightAllowedOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/contacts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// preflight answers 200, not 204
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_CORSDisallowedOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSActualRequestAllowedOrigin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

// every response carries a trace id for log correlation
func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestRouter_TraceIDHeaderPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "incoming-trace")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace", rec.Header().Get("X-Trace-ID"))
}
