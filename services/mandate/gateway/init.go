package gateway

import (
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/mandate"
)

// Payment provider names
const (
	ProviderRazorpay = "razorpay"
	ProviderMock     = "mock"
)

// NewPaymentGW returns the provider named in configuration. It is chosen once at start-up.
func NewPaymentGW(cfg *models.ProvidersConfig) (mandate.PaymentGW, string) {
	if cfg.Payment == ProviderRazorpay {
		logger.Info("Using Razorpay payment provider", logger.String("base_url", cfg.RazorpayBaseURL))
		return NewRazorpayGW(cfg), ProviderRazorpay
	}
	logger.Info("Using mock payment provider")
	return NewMockGW(), ProviderMock
}
