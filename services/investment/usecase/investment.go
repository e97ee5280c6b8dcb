package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/constants"
	"github.com/piresc/roundup/internal/pkg/logger"
	"github.com/piresc/roundup/internal/pkg/models"
)

// SweepPending invests the user's unclaimed pending roundups
func (uc *InvestmentUC) SweepPending(ctx context.Context, userID uuid.UUID, req models.SweepRequest) (*models.SweepResult, error) {
	slices, err := uc.resolveSlices(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return uc.sweep(ctx, userID, nil, slices)
}

// SettleDebit invests the roundups funded by a succeeded debit with the user's risk profile
func (uc *InvestmentUC) SettleDebit(ctx context.Context, debit *models.MandateDebit) (*models.SweepResult, error) {
	if debit == nil || debit.Status != models.DebitStatusSucceeded {
		return nil, fmt.Errorf("%w: only succeeded debits can be settled", models.ErrValidation)
	}

	profile, err := uc.investmentRepo.GetRiskProfile(ctx, debit.UserID)
	if err != nil {
		return nil, err
	}
	slices, err := uc.profileSlices(profile)
	if err != nil {
		return nil, err
	}

	result, err := uc.sweep(ctx, debit.UserID, &debit.ID, slices)
	if err != nil {
		return nil, err
	}

	if result.Status == models.SweepStatusNoPending {
		settled, err := uc.investmentRepo.MarkDebitSettled(ctx, debit.ID, models.Now())
		if err != nil {
			return nil, err
		}
		if settled {
			logger.InfoCtx(ctx, "Debit settled without pending roundups",
				logger.UUID("debit_id", debit.ID))
		}
	}
	return result, nil
}

func (uc *InvestmentUC) sweep(ctx context.Context, userID uuid.UUID, debitID *uuid.UUID, slices []models.AllocationSlice) (*models.SweepResult, error) {
	var result *models.SweepResult
	key := fmt.Sprintf(constants.KeySweepLock, userID)

	err := uc.locker.WithLock(ctx, key, uc.cfg.Scheduler.LockExpiry, func(ctx context.Context) error {
		plan, err := uc.investmentRepo.PrepareSweep(ctx, userID, debitID, func(total int64) ([]models.AllocationShare, error) {
			return Allocate(total, slices)
		})
		if err != nil {
			return err
		}
		if len(plan.Orders) == 0 {
			result = &models.SweepResult{Status: models.SweepStatusNoPending, Orders: []models.InvestmentOrder{}}
			return nil
		}

		orders := make([]models.InvestmentOrder, len(plan.Orders))
		for i, order := range plan.Orders {
			orders[i] = uc.placeOrder(ctx, order)
		}
		result = summarize(plan.TotalPaise, orders)

		eventType := models.EventSweepExecuted
		if result.Status == models.SweepStatusFailed {
			eventType = models.EventSweepFailed
		}
		invested := result.InvestedPaise
		event := models.NewAuditEvent(userID, nil, eventType,
			fmt.Sprintf("Sweep %s: %d of %d paise invested across %d orders",
				result.Status, result.InvestedPaise, result.TotalPaise, len(orders)),
			&invested)

		if err := uc.investmentRepo.FinishSweep(ctx, userID, debitID, orders, event); err != nil {
			return err
		}
		uc.publisher.Publish(ctx, event)
		return nil
	})
	if err != nil {
		logger.WarnCtx(ctx, "Sweep failed", logger.UUID("user_id", userID), logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Sweep completed",
		logger.UUID("user_id", userID),
		logger.String("status", result.Status),
		logger.Paise("invested_paise", result.InvestedPaise))

	if result.Status == models.SweepStatusFailed {
		return result, fmt.Errorf("%w: every order of the sweep failed", models.ErrProvider)
	}
	return result, nil
}

// placeOrder sends one order keyed by its id. Provider errors fail the order.
func (uc *InvestmentUC) placeOrder(ctx context.Context, order models.InvestmentOrder) models.InvestmentOrder {
	res, err := uc.investmentGW.PlaceOrder(ctx, models.PlaceOrderRequest{
		UserID:         order.UserID,
		AmountPaise:    order.AmountPaise,
		InstrumentType: order.InstrumentType,
		IdempotencyKey: order.ID,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Investment order failed",
			logger.UUID("order_id", order.ID),
			logger.String("instrument", order.InstrumentType),
			logger.Err(err))
		order.Status = models.OrderStatusFailed
		return order
	}

	order.Status = orderStatus(res.Status)
	if res.ExternalOrderID != "" {
		external := res.ExternalOrderID
		order.ExternalOrderID = &external
	}
	return order
}

func orderStatus(providerStatus string) models.OrderStatus {
	switch strings.ToLower(providerStatus) {
	case "executed", "success", "completed":
		return models.OrderStatusExecuted
	case "failed":
		return models.OrderStatusFailed
	}
	return models.OrderStatusPending
}

func summarize(total int64, orders []models.InvestmentOrder) *models.SweepResult {
	result := &models.SweepResult{TotalPaise: total, Orders: orders}
	executed, failed := 0, 0
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusExecuted:
			executed++
			result.InvestedPaise += order.AmountPaise
		case models.OrderStatusFailed:
			failed++
		}
	}

	switch {
	case executed == len(orders):
		result.Status = models.SweepStatusExecuted
	case failed == len(orders):
		result.Status = models.SweepStatusFailed
	default:
		result.Status = models.SweepStatusPartial
	}
	return result
}

// Portfolio reports the pending total and the net executed position per instrument
func (uc *InvestmentUC) Portfolio(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	pending, err := uc.investmentRepo.SumPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	positions, err := uc.investmentRepo.ListPositions(ctx, userID)
	if err != nil {
		return nil, err
	}

	portfolio := &models.Portfolio{UserID: userID, PendingPaise: pending, Positions: positions}
	for _, p := range positions {
		portfolio.InvestedPaise += p.NetPaise()
	}
	return portfolio, nil
}

// RecordRedemption withdraws from an executed position and posts the credit entry
func (uc *InvestmentUC) RecordRedemption(ctx context.Context, req models.RedemptionRequest) (*models.Redemption, error) {
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", models.ErrValidation)
	}
	if req.AmountPaise <= 0 {
		return nil, fmt.Errorf("%w: amount_paise must be positive", models.ErrValidation)
	}
	if models.InstrumentFamily(req.InstrumentType) == "" {
		return nil, fmt.Errorf("%w: unknown instrument %q", models.ErrValidation, req.InstrumentType)
	}

	redemption := &models.Redemption{
		ID:             uuid.New(),
		UserID:         req.UserID,
		InstrumentType: req.InstrumentType,
		AmountPaise:    req.AmountPaise,
		Status:         models.OrderStatusExecuted,
		CreatedAt:      models.Now(),
	}
	amount := req.AmountPaise
	event := models.NewAuditEvent(req.UserID, nil, models.EventRedemptionRecorded,
		fmt.Sprintf("Redeemed %d paise from %s", req.AmountPaise, req.InstrumentType), &amount)

	// the sweep lock also serialises position changes
	key := fmt.Sprintf(constants.KeySweepLock, req.UserID)
	err := uc.locker.WithLock(ctx, key, uc.cfg.Scheduler.LockExpiry, func(ctx context.Context) error {
		return uc.investmentRepo.CreateRedemption(ctx, redemption, event)
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, event)
	return redemption, nil
}

// Reconcile compares the signed ledger sum with executed orders minus redemptions
func (uc *InvestmentUC) Reconcile(ctx context.Context, userID uuid.UUID) (*models.Reconciliation, error) {
	rec, err := uc.investmentRepo.GetReconciliation(ctx, userID)
	if err != nil {
		return nil, err
	}
	rec.Balanced = rec.LedgerNetPaise == rec.OrdersPaise-rec.RedemptionPaise
	if !rec.Balanced {
		logger.ErrorCtx(ctx, "Ledger out of balance",
			logger.UUID("user_id", userID),
			logger.Paise("ledger_net_paise", rec.LedgerNetPaise),
			logger.Paise("orders_paise", rec.OrdersPaise),
			logger.Paise("redemption_paise", rec.RedemptionPaise))
	}
	return rec, nil
}

// ListOrders returns the user's investment orders
func (uc *InvestmentUC) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.InvestmentOrder, error) {
	return uc.investmentRepo.ListOrders(ctx, userID)
}

// ListLedger returns the user's ledger entries
func (uc *InvestmentUC) ListLedger(ctx context.Context, userID uuid.UUID) ([]models.LedgerEntry, error) {
	return uc.investmentRepo.ListLedger(ctx, userID)
}
