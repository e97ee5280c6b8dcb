package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents_FilterAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewEventHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().ListEvents(gomock.Any(), userID, models.EventFilter{EventType: models.EventMandateDebited, Limit: 20}).
		Return([]models.AuditEvent{{ID: uuid.New(), UserID: userID, EventType: models.EventMandateDebited}}, nil)

	c, rec := newContext(http.MethodGet, "/api/events?type=mandate_debited&limit=20", "", userID)
	require.NoError(t, h.Events(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"event_type":"mandate_debited"`)
}

func TestEvents_NoQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewEventHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().ListEvents(gomock.Any(), userID, models.EventFilter{}).Return(nil, nil)

	c, rec := newContext(http.MethodGet, "/api/events", "", userID)
	require.NoError(t, h.Events(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvents_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewEventHandler(mocks.NewMockMandateUC(ctrl))

	for _, target := range []string{"/api/events?limit=ten", "/api/events?limit=-1"} {
		c, rec := newContext(http.MethodGet, target, "", uuid.New())
		require.NoError(t, h.Events(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestEvents_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewEventHandler(mocks.NewMockMandateUC(ctrl))

	c, rec := newContext(http.MethodGet, "/api/events", "", uuid.Nil)
	require.NoError(t, h.Events(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEvents_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewEventHandler(mockUC)

	mockUC.EXPECT().ListEvents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	c, rec := newContext(http.MethodGet, "/api/events", "", uuid.New())
	require.NoError(t, h.Events(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockMandateUC(ctrl)
	h := NewEventHandler(mockUC)
	userID := uuid.New()

	mockUC.EXPECT().ListNotifications(gomock.Any(), userID, 5).
		Return([]models.AuditEvent{{ID: uuid.New(), UserID: userID, EventType: models.EventPreDebitSent}}, nil)

	c, rec := newContext(http.MethodGet, "/api/notifications?limit=5", "", userID)
	require.NoError(t, h.Notifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"event_type":"pre_debit_sent"`)
}

func TestNotifications_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewEventHandler(mocks.NewMockMandateUC(ctrl))

	c, rec := newContext(http.MethodGet, "/api/notifications?limit=x", "", uuid.New())
	require.NoError(t, h.Notifications(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
