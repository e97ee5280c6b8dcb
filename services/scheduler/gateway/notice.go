package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// TopicPublisher is the subset of the NSQ producer used for notices
type TopicPublisher interface {
	Publish(topic string, message interface{}) error
}

// NoticeGW publishes pre-debit notices to NSQ for the notification workers
type NoticeGW struct {
	producer TopicPublisher
}

// NewNoticeGW creates a notice gateway on producer
func NewNoticeGW(producer TopicPublisher) *NoticeGW {
	return &NoticeGW{producer: producer}
}

// SendPreDebitNotice succeeds only once nsqd has accepted the message
func (gw *NoticeGW) SendPreDebitNotice(ctx context.Context, notice models.PreDebitNotice) error {
	if err := gw.producer.Publish(constants.TopicPreDebitNotice, notice); err != nil {
		return fmt.Errorf("failed to send pre-debit notice: %w", err)
	}
	logger.InfoCtx(ctx, "Pre-debit notice sent",
		logger.UUID("mandate_id", notice.MandateID),
		logger.Paise("amount_paise", notice.AmountPaise))
	return nil
}

// LogNoticeGW only logs notices. It is used when no nsqd is configured.
type LogNoticeGW struct{}

// SendPreDebitNotice writes the notice to the log
func (LogNoticeGW) SendPreDebitNotice(ctx context.Context, notice models.PreDebitNotice) error {
	logger.InfoCtx(ctx, "Pre-debit notice",
		logger.UUID("user_id", notice.UserID),
		logger.UUID("mandate_id", notice.MandateID),
		logger.String("message", notice.Message))
	return nil
}
