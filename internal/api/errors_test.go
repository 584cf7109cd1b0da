package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nshelest/mesto-api/internal/domain"
	"github.com/nshelest/mesto-api/internal/service/auth"
	"github.com/nshelest/mesto-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"card not found", store.ErrCardNotFound, http.StatusNotFound},
		{"generic not found", store.ErrNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"generic duplicate", store.ErrDuplicate, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped not found",
			fmt.Errorf("fetching: %w", store.ErrCardNotFound),
			http.StatusNotFound,
		},
		{
			"wrapped validation error",
			domain.NewValidationError("name", "is too short", domain.ErrValidation),
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("internal errors never leak detail", func(t *testing.T) {
		t.Parallel()

		msg := GetSafeErrorMessage(errors.New("pq: connection refused at 10.0.0.7"))
		assert.Equal(t, internalErrorMessage, msg)
		assert.NotContains(t, msg, "10.0.0.7")
	})

	t.Run("auth failures share one message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t,
			GetSafeErrorMessage(auth.ErrInvalidToken),
			GetSafeErrorMessage(auth.ErrExpiredToken))
	})

	t.Run("validation errors keep the field detail", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("name", "is too short", domain.ErrValidation)
		assert.Equal(t, "name is too short", GetSafeErrorMessage(err))
	})

	t.Run("nil error maps to the generic message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, internalErrorMessage, GetSafeErrorMessage(nil))
	})
}

func TestHandleAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		override        string
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "not found renders envelope",
			err:             store.ErrCardNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "card not found",
		},
		{
			name:            "override replaces mapped message",
			err:             store.ErrCardNotFound,
			override:        "no such card",
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "no such card",
		},
		{
			name:            "override never applies to internal errors",
			err:             errors.New("boom"),
			override:        "something custom",
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("GET", "/cards/123", nil)
			rr := httptest.NewRecorder()

			HandleAPIError(rr, req, tt.err, tt.override)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}
