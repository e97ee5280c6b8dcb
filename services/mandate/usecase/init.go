package usecase

import (
	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment"
	"github.com/piresc/roundup/services/mandate"
)

const defaultMaxFailures = 3

// MandateUC implements the mandate use case interface
type MandateUC struct {
	cfg          *models.Config
	mandateRepo  mandate.MandateRepo
	paymentGW    mandate.PaymentGW
	investmentUC investment.InvestmentUC
	deduper      mandate.CallbackDeduper
	publisher    audit.Publisher
}

// NewMandateUC creates a new mandate use case
func NewMandateUC(
	cfg *models.Config,
	mandateRepo mandate.MandateRepo,
	paymentGW mandate.PaymentGW,
	investmentUC investment.InvestmentUC,
	deduper mandate.CallbackDeduper,
	publisher audit.Publisher,
) *MandateUC {
	return &MandateUC{
		cfg:          cfg,
		mandateRepo:  mandateRepo,
		paymentGW:    paymentGW,
		investmentUC: investmentUC,
		deduper:      deduper,
		publisher:    publisher,
	}
}

func (uc *MandateUC) maxFailures() int {
	if uc.cfg.Scheduler.MaxFailures > 0 {
		return uc.cfg.Scheduler.MaxFailures
	}
	return defaultMaxFailures
}

func (uc *MandateUC) providerName() string {
	if uc.cfg.Providers.Payment != "" {
		return uc.cfg.Providers.Payment
	}
	return "mock"
}
