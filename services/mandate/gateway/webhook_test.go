package gateway

import (
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"event":"subscription.charged"}`)
	sig := Sign(body, "whsec")

	assert.True(t, VerifySignature(body, sig, "whsec"))
	assert.False(t, VerifySignature(body, sig, "other"))
	assert.False(t, VerifySignature([]byte(`{"event":"subscription.paused"}`), sig, "whsec"))
	assert.False(t, VerifySignature(body, "", "whsec"))
	assert.False(t, VerifySignature(body, sig, ""))
}

func TestParseWebhook_Charged(t *testing.T) {
	body := []byte(`{
		"event": "subscription.charged",
		"created_at": 1767225600,
		"payload": {
			"subscription": {"entity": {"id": "sub_1", "status": "active"}},
			"payment": {"entity": {"id": "pay_1", "amount": 50000, "status": "captured"}}
		}
	}`)

	cb, err := ParseWebhook(body, "evt_1")
	require.NoError(t, err)
	assert.Equal(t, "evt_1", cb.EventID)
	assert.Equal(t, models.CallbackCharged, cb.Event)
	assert.Equal(t, "sub_1", cb.ExternalMandateID)
	assert.Equal(t, "pay_1", cb.PaymentID)
	assert.Equal(t, int64(50000), cb.AmountPaise)
	require.NotNil(t, cb.OccurredAt)
	assert.Equal(t, int64(1767225600), cb.OccurredAt.Unix())
}

func TestParseWebhook_ChargeReferences(t *testing.T) {
	debitID := uuid.New()
	body := []byte(`{
		"event": "subscription.charged",
		"payload": {
			"subscription": {"entity": {"id": "sub_1", "status": "active"}},
			"payment": {"entity": {"id": "pay_1", "invoice_id": "inv_1", "amount": 500,
				"notes": {"debit_id": "` + debitID.String() + `"}}}
		}
	}`)

	cb, err := ParseWebhook(body, "evt_1")
	require.NoError(t, err)
	assert.Equal(t, "inv_1", cb.InvoiceID)
	require.NotNil(t, cb.DebitID)
	assert.Equal(t, debitID, *cb.DebitID)
	assert.Equal(t, models.ChargeRef{DebitID: &debitID, PaymentID: "pay_1", InvoiceID: "inv_1"}, cb.Ref())
}

func TestParseWebhook_EmptyNotesArray(t *testing.T) {
	body := []byte(`{
		"event": "payment.failed",
		"payload": {"payment": {"entity": {"id": "pay_2", "notes": []}}}
	}`)

	cb, err := ParseWebhook(body, "")
	require.NoError(t, err)
	assert.Nil(t, cb.DebitID)
	assert.Equal(t, "pay_2", cb.PaymentID)
}

func TestParseWebhook_Failed(t *testing.T) {
	body := []byte(`{
		"event": "payment.failed",
		"payload": {
			"subscription": {"entity": {"id": "sub_1"}},
			"payment": {"entity": {"id": "pay_2", "amount": 100, "error_description": "insufficient balance"}}
		}
	}`)

	cb, err := ParseWebhook(body, "")
	require.NoError(t, err)
	assert.Equal(t, "insufficient balance", cb.FailureReason)
	assert.Nil(t, cb.OccurredAt)
}

func TestParseWebhook_Malformed(t *testing.T) {
	_, err := ParseWebhook([]byte(`{not json`), "")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = ParseWebhook([]byte(`{"payload":{}}`), "")
	assert.ErrorIs(t, err, models.ErrValidation)
}
