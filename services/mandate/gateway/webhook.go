package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
)

const (
	SignatureHeader = "X-Razorpay-Signature"
	EventIDHeader   = "X-Razorpay-Event-Id"

	// DebitNoteKey names the invoice note carrying the debit attempt id
	DebitNoteKey = "debit_id"
)

// VerifySignature checks the hex HMAC-SHA256 of the raw body in constant time.
// An empty secret or signature never verifies.
func VerifySignature(body []byte, signature, secret string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign returns the signature Razorpay would send for body
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type webhookEnvelope struct {
	Event     string `json:"event"`
	CreatedAt int64  `json:"created_at"`
	Payload   struct {
		Subscription *struct {
			Entity struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"entity"`
		} `json:"subscription"`
		Payment *struct {
			Entity struct {
				ID               string          `json:"id"`
				InvoiceID        string          `json:"invoice_id"`
				Amount           int64           `json:"amount"`
				Status           string          `json:"status"`
				ErrorDescription string          `json:"error_description"`
				Notes            json.RawMessage `json:"notes"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseWebhook decodes a verified Razorpay webhook body into a provider callback
func ParseWebhook(body []byte, eventID string) (*models.ProviderCallback, error) {
	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed webhook body: %v", models.ErrValidation, err)
	}
	if env.Event == "" {
		return nil, fmt.Errorf("%w: webhook has no event", models.ErrValidation)
	}

	cb := &models.ProviderCallback{EventID: eventID, Event: env.Event}
	if sub := env.Payload.Subscription; sub != nil {
		cb.ExternalMandateID = sub.Entity.ID
		cb.Status = sub.Entity.Status
	}
	if pay := env.Payload.Payment; pay != nil {
		cb.PaymentID = pay.Entity.ID
		cb.InvoiceID = pay.Entity.InvoiceID
		cb.DebitID = noteDebitID(pay.Entity.Notes)
		cb.AmountPaise = pay.Entity.Amount
		cb.FailureReason = pay.Entity.ErrorDescription
	}
	if env.CreatedAt > 0 {
		at := time.Unix(env.CreatedAt, 0).UTC()
		cb.OccurredAt = &at
	}
	return cb, nil
}

// noteDebitID reads the debit id placed in the invoice notes. Razorpay sends
// empty notes as an array, so anything that is not an object is skipped.
func noteDebitID(raw json.RawMessage) *uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var notes map[string]interface{}
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil
	}
	s, ok := notes[DebitNoteKey].(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
