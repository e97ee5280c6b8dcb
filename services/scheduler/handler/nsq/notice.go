package nsq

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	nsqpkg "github.com/piresc/roundup/internal/pkg/nsq"
)

const maxDeliveryAttempts = 5

// Deliverer hands a notice to the user's channel (SMS, push, email)
type Deliverer interface {
	Deliver(ctx context.Context, notice models.PreDebitNotice) error
}

// LogDeliverer writes notices to the log. It stands in until a channel is integrated.
type LogDeliverer struct{}

// Deliver logs the notice
func (LogDeliverer) Deliver(ctx context.Context, notice models.PreDebitNotice) error {
	logger.InfoCtx(ctx, "Pre-debit notice delivered",
		logger.UUID("user_id", notice.UserID),
		logger.UUID("mandate_id", notice.MandateID),
		logger.Paise("amount_paise", notice.AmountPaise),
		logger.String("message", notice.Message))
	return nil
}

// NoticeHandler consumes pre-debit notices from NSQ and delivers them
type NoticeHandler struct {
	deliverer Deliverer
	consumer  *nsqpkg.Consumer
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(deliverer Deliverer) *NoticeHandler {
	return &NoticeHandler{deliverer: deliverer}
}

// Start connects to nsqd on the delivery channel
func (h *NoticeHandler) Start(address string) error {
	consumer, err := nsqpkg.NewConsumer(constants.TopicPreDebitNotice, constants.ChannelNoticeDelivery,
		address, maxDeliveryAttempts, h.handleNotice)
	if err != nil {
		return err
	}
	h.consumer = consumer

	logger.Info("Consuming pre-debit notices",
		logger.String("topic", constants.TopicPreDebitNotice),
		logger.String("channel", constants.ChannelNoticeDelivery))
	return nil
}

// Stop waits for in-flight deliveries
func (h *NoticeHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

// handleNotice drops malformed messages and requeues failed deliveries
func (h *NoticeHandler) handleNotice(body []byte) error {
	var notice models.PreDebitNotice
	if err := nsqpkg.UnmarshalMessage(body, &notice); err != nil {
		logger.Warn("Dropping malformed pre-debit notice", logger.Err(err))
		return nil
	}
	if notice.MandateID == uuid.Nil || notice.UserID == uuid.Nil {
		logger.Warn("Dropping pre-debit notice without ids")
		return nil
	}

	if err := h.deliverer.Deliver(context.Background(), notice); err != nil {
		return fmt.Errorf("failed to deliver notice for mandate %s: %w", notice.MandateID, err)
	}
	return nil
}
