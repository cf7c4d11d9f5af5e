package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRespondServiceErrorPlanLimits(t *testing.T) {
	t.Run("QuotaExceeded", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondServiceError(rec, &utils.QuotaExceededError{Limit: 3})

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorResponse(t, rec)
		require.Equal(t, utils.ErrCodeQuotaExceeded, body.Code)
		require.Equal(t, map[string]any{"limit": float64(3)}, body.Details)
	})

	t.Run("PhotoLimitExceeded", func(t *testing.T) {
		rec := httptest.NewRecorder()
		respondServiceError(rec, &utils.PhotoLimitError{Limit: 5})

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorResponse(t, rec)
		require.Equal(t, utils.ErrCodePhotoLimitExceeded, body.Code)
		require.Equal(t, map[string]any{"limit": float64(5)}, body.Details)
	})
}

func TestDecodeAndValidateCreateProperty(t *testing.T) {
	newRequest := func(body string) (*httptest.ResponseRecorder, *http.Request) {
		return httptest.NewRecorder(),
			httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	}

	t.Run("MissingCoordinatesRejected", func(t *testing.T) {
		rec, req := newRequest(`{
			"title": "Sunny apartment downtown",
			"price": 85000,
			"category": "Apartment",
			"bedrooms": 2,
			"bathrooms": 1,
			"province": "Pichincha",
			"city": "Quito",
			"photos": ["https://cdn.example.com/a.jpg"]
		}`)

		var dst dtos.CreatePropertyRequest
		require.False(t, decodeAndValidate(rec, req, &dst))
		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeErrorResponse(t, rec)
		require.Equal(t, utils.ErrCodeValidation, body.Code)
		require.Contains(t, body.Details, "Latitude")
		require.Contains(t, body.Details, "Longitude")
	})

	t.Run("ZeroCoordinatesAccepted", func(t *testing.T) {
		// (0,0) is a valid point; only absent coordinates are refused.
		rec, req := newRequest(`{
			"title": "Sunny apartment downtown",
			"price": 85000,
			"category": "Apartment",
			"bedrooms": 2,
			"bathrooms": 1,
			"latitude": 0,
			"longitude": 0,
			"province": "Pichincha",
			"city": "Quito",
			"photos": ["https://cdn.example.com/a.jpg"]
		}`)

		var dst dtos.CreatePropertyRequest
		require.True(t, decodeAndValidate(rec, req, &dst))
		require.NotNil(t, dst.Latitude)
		require.NotNil(t, dst.Longitude)
	})
}
