package scheduler

import (
	"context"

	"github.com/piresc/roundup/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/piresc/roundup/services/scheduler NoticeGW

// NoticeGW delivers pre-debit notices to the user notification channel
type NoticeGW interface {
	SendPreDebitNotice(ctx context.Context, notice models.PreDebitNotice) error
}
