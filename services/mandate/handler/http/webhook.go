package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/utils"
	"github.com/piresc/roundup/services/mandate"
	"github.com/piresc/roundup/services/mandate/gateway"
)

const maxWebhookBody = 1 << 20

// WebhookHandler receives signed payment provider callbacks
type WebhookHandler struct {
	mandateUC mandate.MandateUC
	secret    string
}

// NewWebhookHandler creates a webhook handler verifying bodies with secret
func NewWebhookHandler(mandateUC mandate.MandateUC, secret string) *WebhookHandler {
	return &WebhookHandler{
		mandateUC: mandateUC,
		secret:    secret,
	}
}

type webhookAck struct {
	Status string `json:"status"`
}

// Payments verifies the signature over the raw body before anything is parsed
func (h *WebhookHandler) Payments(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read body")
	}

	if !gateway.VerifySignature(body, c.Request().Header.Get(gateway.SignatureHeader), h.secret) {
		logger.WarnCtx(ctx, "Rejected webhook with invalid signature",
			logger.String("remote_ip", c.RealIP()))
		return utils.UnauthorizedResponse(c, "Invalid signature")
	}

	cb, err := gateway.ParseWebhook(body, c.Request().Header.Get(gateway.EventIDHeader))
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	outcome, err := h.mandateUC.HandleCallback(ctx, *cb)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, webhookAck{Status: outcome})
}
