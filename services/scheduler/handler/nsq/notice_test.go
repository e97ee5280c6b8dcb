package nsq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDeliverer struct {
	got []models.PreDebitNotice
	err error
}

func (d *recordingDeliverer) Deliver(_ context.Context, notice models.PreDebitNotice) error {
	d.got = append(d.got, notice)
	return d.err
}

func TestHandleNotice_Delivers(t *testing.T) {
	d := &recordingDeliverer{}
	h := NewNoticeHandler(d)
	notice := models.PreDebitNotice{UserID: uuid.New(), MandateID: uuid.New(), AmountPaise: 500, Message: "₹5.00 will be debited"}
	body, err := json.Marshal(notice)
	require.NoError(t, err)

	require.NoError(t, h.handleNotice(body))
	require.Len(t, d.got, 1)
	assert.Equal(t, notice.MandateID, d.got[0].MandateID)
	assert.Equal(t, int64(500), d.got[0].AmountPaise)
}

func TestHandleNotice_DropsMalformed(t *testing.T) {
	d := &recordingDeliverer{}
	h := NewNoticeHandler(d)

	assert.NoError(t, h.handleNotice([]byte(`{not json`)))
	assert.NoError(t, h.handleNotice([]byte(`{"amount_paise":100}`)))
	assert.Empty(t, d.got)
}

func TestHandleNotice_DeliveryErrorRequeues(t *testing.T) {
	d := &recordingDeliverer{err: errors.New("sms gateway down")}
	h := NewNoticeHandler(d)
	body, _ := json.Marshal(models.PreDebitNotice{UserID: uuid.New(), MandateID: uuid.New()})

	assert.Error(t, h.handleNotice(body))
}

func TestLogDeliverer(t *testing.T) {
	assert.NoError(t, LogDeliverer{}.Deliver(context.Background(), models.PreDebitNotice{}))
}
