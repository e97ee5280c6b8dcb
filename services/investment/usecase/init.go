package usecase

import (
	"github.com/piresc/roundup/internal/pkg/audit"
	"github.com/piresc/roundup/internal/pkg/lock"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/investment"
)

// InvestmentUC implements the investment use case interface
type InvestmentUC struct {
	cfg            *models.Config
	investmentRepo investment.InvestmentRepo
	investmentGW   investment.InvestmentGW
	locker         lock.Locker
	publisher      audit.Publisher
}

// NewInvestmentUC creates a new investment use case
func NewInvestmentUC(
	cfg *models.Config,
	investmentRepo investment.InvestmentRepo,
	investmentGW investment.InvestmentGW,
	locker lock.Locker,
	publisher audit.Publisher,
) *InvestmentUC {
	return &InvestmentUC{
		cfg:            cfg,
		investmentRepo: investmentRepo,
		investmentGW:   investmentGW,
		locker:         locker,
		publisher:      publisher,
	}
}
