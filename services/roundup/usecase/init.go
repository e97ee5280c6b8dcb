package usecase

import (
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/piresc/roundup/services/roundup"
)

// RoundupUC implements the roundup use case interface
type RoundupUC struct {
	cfg         *models.Config
	roundupRepo roundup.RoundupRepo
}

// NewRoundupUC creates a new roundup use case
func NewRoundupUC(
	cfg *models.Config,
	roundupRepo roundup.RoundupRepo,
) *RoundupUC {
	return &RoundupUC{
		cfg:         cfg,
		roundupRepo: roundupRepo,
	}
}
