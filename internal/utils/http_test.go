package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: amount must be positive", models.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: razorpay rejected", models.ErrProvider), http.StatusBadRequest},
		{fmt.Errorf("%w: mandate", models.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: already cancelled", models.ErrConflict), http.StatusConflict},
		{models.ErrLocked, http.StatusConflict},
		{models.ErrInvalidWebhook, http.StatusUnauthorized},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), tt.err.Error())
	}
}

func TestDomainErrorResponse(t *testing.T) {
	e := echo.New()

	t.Run("known error keeps message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, DomainErrorResponse(c, fmt.Errorf("%w: mandate", models.ErrNotFound)))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found: mandate", body.Error)
		assert.False(t, body.Success)
	})

	t.Run("unknown error hides detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, DomainErrorResponse(c, errors.New("pq: connection reset")))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal server error", body.Error)
	})
}

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "Mandate created", map[string]string{"id": "m1"}))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Mandate created", body.Message)
}

func TestUserIDFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := UserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", "not-a-uuid")
	_, ok = UserIDFromContext(c)
	assert.False(t, ok)

	id := uuid.New()
	c.Set("user_id", id)
	got, ok := UserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
