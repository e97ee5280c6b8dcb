package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	natspkg "github.com/piresc/roundup/internal/pkg/nats"
	"github.com/piresc/roundup/services/mandate"
	"github.com/piresc/roundup/services/mandate/gateway"
)

// CallbackHandler consumes raw provider webhooks relayed over NATS by an edge service.
// Each relayed body is verified against the webhook secret before it is parsed.
type CallbackHandler struct {
	mandateUC  mandate.MandateUC
	natsClient *natspkg.Client
	secret     string
	subs       []*nats.Subscription
}

// NewCallbackHandler creates a new callback NATS handler
func NewCallbackHandler(mandateUC mandate.MandateUC, client *natspkg.Client, webhookSecret string) *CallbackHandler {
	return &CallbackHandler{
		mandateUC:  mandateUC,
		natsClient: client,
		secret:     webhookSecret,
		subs:       make([]*nats.Subscription, 0),
	}
}

// InitNATSConsumers joins the callback queue group
func (h *CallbackHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(constants.SubjectPaymentCallback, constants.QueuePaymentCallback,
		func(msg *nats.Msg) {
			if err := h.handleCallback(msg.Data); err != nil {
				logger.Error("Error handling relayed callback",
					logger.String("subject", msg.Subject),
					logger.Err(err))
			}
		})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectPaymentCallback, err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to relayed payment callbacks",
		logger.String("subject", constants.SubjectPaymentCallback),
		logger.String("queue", constants.QueuePaymentCallback))
	return nil
}

// Close unsubscribes every subscription
func (h *CallbackHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = nil
}

func (h *CallbackHandler) handleCallback(data []byte) error {
	var relayed models.RelayedWebhook
	if err := json.Unmarshal(data, &relayed); err != nil {
		return fmt.Errorf("failed to unmarshal relayed webhook: %w", err)
	}

	if !gateway.VerifySignature(relayed.Body, relayed.Signature, h.secret) {
		return fmt.Errorf("%w: relayed webhook signature does not verify", models.ErrInvalidWebhook)
	}

	cb, err := gateway.ParseWebhook(relayed.Body, relayed.EventID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	outcome, err := h.mandateUC.HandleCallback(ctx, *cb)
	if err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Relayed callback handled",
		logger.String("event", cb.Event),
		logger.String("outcome", outcome))
	return nil
}
