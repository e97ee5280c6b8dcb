package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	auditmocks "github.com/piresc/roundup/internal/pkg/audit/mocks"
	lockmocks "github.com/piresc/roundup/internal/pkg/lock/mocks"
	"github.com/piresc/roundup/internal/pkg/models"
	investmentmocks "github.com/piresc/roundup/services/investment/mocks"
	"github.com/piresc/roundup/services/mandate"
	mandatemocks "github.com/piresc/roundup/services/mandate/mocks"
	"github.com/piresc/roundup/services/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

type testMocks struct {
	schedulerRepo *mocks.MockSchedulerRepo
	mandateRepo   *mandatemocks.MockMandateRepo
	paymentGW     *mandatemocks.MockPaymentGW
	noticeGW      *mocks.MockNoticeGW
	investmentUC  *investmentmocks.MockInvestmentUC
	locker        *lockmocks.MockLocker
	publisher     *auditmocks.MockPublisher
}

func testConfig() *models.Config {
	return &models.Config{Scheduler: models.SchedulerConfig{
		DebitTimeout:      time.Second,
		LockExpiry:        2 * time.Minute,
		NoticeWindow:      24 * time.Hour,
		MaxFailures:       3,
		InsufficientRetry: 24 * time.Hour,
	}}
}

func newTestUC(t *testing.T) (*SchedulerUC, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		schedulerRepo: mocks.NewMockSchedulerRepo(ctrl),
		mandateRepo:   mandatemocks.NewMockMandateRepo(ctrl),
		paymentGW:     mandatemocks.NewMockPaymentGW(ctrl),
		noticeGW:      mocks.NewMockNoticeGW(ctrl),
		investmentUC:  investmentmocks.NewMockInvestmentUC(ctrl),
		locker:        lockmocks.NewMockLocker(ctrl),
		publisher:     auditmocks.NewMockPublisher(ctrl),
	}
	m.locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ time.Duration, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	uc := NewSchedulerUC(testConfig(), m.schedulerRepo, m.mandateRepo, m.paymentGW, m.noticeGW,
		m.investmentUC, m.locker, m.publisher, nil)
	uc.clock = func() time.Time { return now }
	return uc, m
}

func ptr[T any](v T) *T { return &v }

func dueMandate() *models.Mandate {
	return &models.Mandate{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		ExternalMandateID: ptr("sub_1"),
		Status:            models.MandateStatusActive,
		MaxAmountPaise:    500,
		Frequency:         models.FrequencyWeekly,
		NextDebitAt:       ptr(now.Add(-time.Hour)),
	}
}

// applyTo runs the repository mutation against current like the real transaction would
func applyTo(t *testing.T, current *models.Mandate, captured *[]models.AuditEvent) func(fn mandate.MutateFunc) {
	return func(fn mandate.MutateFunc) {
		events, err := fn(current)
		require.NoError(t, err)
		if captured != nil {
			*captured = append(*captured, events...)
		}
	}
}

func TestProcessMandate_FirstPassOnlySendsNotice(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	var events []models.AuditEvent

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(700), nil)
	m.noticeGW.EXPECT().SendPreDebitNotice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.PreDebitNotice) error {
			assert.Equal(t, int64(500), n.AmountPaise)
			assert.Equal(t, "Auto-debit scheduled: ₹5.00 will be debited in 24 hours for your roundup investment", n.Message)
			return nil
		})
	m.mandateRepo.EXPECT().MutateMandate(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn mandate.MutateFunc) (*models.Mandate, error) {
			applyTo(t, current, &events)(fn)
			return current, nil
		})

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNoticeSent, outcome.Result)
	require.NotNil(t, current.PreDebitNotificationSentAt)
	assert.Equal(t, now, *current.PreDebitNotificationSentAt)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventPreDebitSent, events[0].EventType)
	assert.Equal(t, int64(500), *events[0].AmountPaise)
}

func TestProcessMandate_NeverDebitsInsideNoticeWindow(t *testing.T) {
	for _, elapsed := range []time.Duration{0, time.Hour, 23*time.Hour + 59*time.Minute + 59*time.Second} {
		uc, m := newTestUC(t)
		current := dueMandate()
		current.PreDebitNotificationSentAt = ptr(now.Add(-elapsed))

		m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
		m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(700), nil)

		outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
		require.NoError(t, err)
		assert.Equal(t, models.DebitResultNoticePending, outcome.Result, elapsed.String())
	}
}

func TestProcessMandate_NoticeWindowHasRegulatoryFloor(t *testing.T) {
	uc, m := newTestUC(t)
	uc.cfg.Scheduler.NoticeWindow = time.Minute
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-time.Hour))

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(700), nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNoticePending, outcome.Result)
}

func TestProcessMandate_DebitsCappedAmount(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-25 * time.Hour))
	current.FailureCount = 2
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, UserID: current.UserID,
		AmountPaise: 500, Status: models.DebitStatusInitiated}
	var events []models.AuditEvent

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(700), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(500), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), models.DebitRequest{
		ExternalMandateID: "sub_1",
		AmountPaise:       500,
		Description:       models.DebitDescription(current.ID),
		Reference:         debit.ID,
	}).Return(&models.DebitResult{PaymentID: "pay_1", Status: "captured"}, nil)
	m.mandateRepo.EXPECT().CompleteDebit(gomock.Any(), debit.ID, "pay_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			applyTo(t, current, &events)(fn)
			settled := *debit
			settled.Status = models.DebitStatusSucceeded
			return &settled, nil
		})
	m.investmentUC.EXPECT().SettleDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.MandateDebit) (*models.SweepResult, error) {
			assert.Equal(t, models.DebitStatusSucceeded, d.Status)
			return &models.SweepResult{Status: models.SweepStatusExecuted, InvestedPaise: 500}, nil
		})

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultDebited, outcome.Result)
	assert.Equal(t, int64(500), outcome.AmountPaise)

	assert.Zero(t, current.FailureCount)
	assert.Nil(t, current.PreDebitNotificationSentAt)
	assert.Equal(t, now, *current.LastDebitAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *current.NextDebitAt)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventMandateDebited, events[0].EventType)
}

// expectFailedDebit wires one failing debit attempt and applies the failure mutation to current
func expectFailedDebit(t *testing.T, m *testMocks, current *models.Mandate, providerErr error, events *[]models.AuditEvent) {
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, UserID: current.UserID,
		AmountPaise: 300, Status: models.DebitStatusInitiated}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(300), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(300), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).Return(nil, providerErr)
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, _ string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			applyTo(t, current, events)(fn)
			return debit, nil
		})
}

func TestProcessMandate_ThreeFailuresAutoPause(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-48 * time.Hour))
	var events []models.AuditEvent

	for i := 1; i <= 3; i++ {
		expectFailedDebit(t, m, current, errors.New("bank declined"), &events)

		outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
		require.NoError(t, err)
		assert.Equal(t, models.DebitResultFailed, outcome.Result)
		assert.Equal(t, i, current.FailureCount)
	}

	assert.Equal(t, models.MandateStatusPaused, current.Status)
	assert.Equal(t, "Debit failed: bank declined", *current.LastFailureReason)
	require.Len(t, events, 4)
	assert.Equal(t, models.EventMandateAutoPaused, events[3].EventType)

	// paused mandates stay out of later passes until resumed
	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNotDue, outcome.Result)
}

func TestProcessMandate_InsufficientBalanceResetsNotice(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))

	expectFailedDebit(t, m, current, errors.New("Insufficient balance in account"), nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
	assert.Nil(t, current.PreDebitNotificationSentAt)
	assert.Equal(t, now.Add(24*time.Hour), *current.NextDebitAt)
	assert.Equal(t, models.MandateStatusActive, current.Status)
}

func TestProcessMandate_TimeoutIsFailure(t *testing.T) {
	uc, m := newTestUC(t)
	uc.cfg.Scheduler.DebitTimeout = 20 * time.Millisecond
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, UserID: current.UserID,
		AmountPaise: 200, Status: models.DebitStatusInitiated}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(200), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(200), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.DebitRequest) (*models.DebitResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, reason string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			assert.Contains(t, reason, "timed out")
			applyTo(t, current, nil)(fn)
			return debit, nil
		})

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
	assert.Equal(t, 1, current.FailureCount)
}

func TestProcessMandate_NonSuccessStatusIsFailure(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, AmountPaise: 100}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(100), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(100), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		Return(&models.DebitResult{PaymentID: "pay_x", Status: "failed", Error: "mandate expired"}, nil)
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "pay_x", "Debit failed: mandate expired", gomock.Any()).
		Return(debit, nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
}

func TestProcessMandate_FailureOverriddenByCallback(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, AmountPaise: 100}
	charged := &models.MandateDebit{ID: debit.ID, MandateID: current.ID, AmountPaise: 100, Status: models.DebitStatusSucceeded}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(100), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(100), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "", gomock.Any(), gomock.Any()).Return(nil, models.ErrConflict)
	m.mandateRepo.EXPECT().GetDebit(gomock.Any(), debit.ID).Return(charged, nil)
	m.investmentUC.EXPECT().SettleDebit(gomock.Any(), charged).Return(&models.SweepResult{Status: models.SweepStatusExecuted}, nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultDebited, outcome.Result)
}

func TestProcessMandate_StateChangedBeforeDebitAttempt(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))

	// a pause or notice reset lands between the gate read and the locked claim
	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(300), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(300), now, 24*time.Hour).
		Return(nil, fmt.Errorf("%w: mandate is no longer due", models.ErrConflict))

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNotDue, outcome.Result)
	assert.Nil(t, outcome.DebitID)
}

func TestProcessMandate_RecordsChargeAfterCancellation(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, UserID: current.UserID,
		AmountPaise: 400, Status: models.DebitStatusInitiated}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(400), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(400), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.DebitRequest) (*models.DebitResult, error) {
			// shutdown arrives after the provider accepted the charge
			cancel()
			return &models.DebitResult{PaymentID: "pay_late", Status: "captured"}, nil
		})
	m.mandateRepo.EXPECT().CompleteDebit(gomock.Any(), debit.ID, "pay_late", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			require.NoError(t, ctx.Err())
			applyTo(t, current, nil)(fn)
			settled := *debit
			settled.Status = models.DebitStatusSucceeded
			return &settled, nil
		})
	m.investmentUC.EXPECT().SettleDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *models.MandateDebit) (*models.SweepResult, error) {
			require.NoError(t, ctx.Err())
			return &models.SweepResult{Status: models.SweepStatusExecuted, InvestedPaise: 400}, nil
		})

	outcome, err := uc.ProcessMandate(ctx, current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultDebited, outcome.Result)
	assert.Equal(t, now, *current.LastDebitAt)
}

func TestProcessMandate_RecordsFailureAfterCancellation(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, AmountPaise: 100}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(100), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(100), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.DebitRequest) (*models.DebitResult, error) {
			cancel()
			return nil, errors.New("bank declined")
		})
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "", "Debit failed: bank declined", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _, _ string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			require.NoError(t, ctx.Err())
			applyTo(t, current, nil)(fn)
			return debit, nil
		})

	outcome, err := uc.ProcessMandate(ctx, current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
	assert.Equal(t, 1, current.FailureCount)
}

// A payment.failed callback that already failed the attempt counted it; the
// scheduler's failure finds the attempt resolved and does not count it again.
func TestProcessMandate_FailureAlreadyCountedByCallback(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, AmountPaise: 100}
	failed := &models.MandateDebit{ID: debit.ID, MandateID: current.ID, AmountPaise: 100, Status: models.DebitStatusFailed}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(100), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(100), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		Return(&models.DebitResult{PaymentID: "pay_2", Status: "failed", Error: "declined"}, nil)
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), debit.ID, "pay_2", "Debit failed: declined", gomock.Any()).
		Return(nil, models.ErrConflict)
	m.mandateRepo.EXPECT().GetDebit(gomock.Any(), debit.ID).Return(failed, nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
	assert.Equal(t, 0, current.FailureCount)
}

func TestProcessMandate_SuccessOverriddenByFailedCallback(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))
	debit := &models.MandateDebit{ID: uuid.New(), MandateID: current.ID, AmountPaise: 100}
	failed := &models.MandateDebit{ID: debit.ID, MandateID: current.ID, AmountPaise: 100, Status: models.DebitStatusFailed}

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(100), nil)
	m.mandateRepo.EXPECT().BeginDebitAttempt(gomock.Any(), current.ID, int64(100), now, 24*time.Hour).Return(debit, nil)
	m.paymentGW.EXPECT().ExecuteDebit(gomock.Any(), gomock.Any()).
		Return(&models.DebitResult{PaymentID: "inv_1", Status: "issued"}, nil)
	m.mandateRepo.EXPECT().CompleteDebit(gomock.Any(), debit.ID, "inv_1", gomock.Any()).Return(nil, models.ErrConflict)
	m.mandateRepo.EXPECT().GetDebit(gomock.Any(), debit.ID).Return(failed, nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultFailed, outcome.Result)
}

func TestProcessMandate_NothingPendingAdvances(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.PreDebitNotificationSentAt = ptr(now.Add(-2 * time.Hour))
	var events []models.AuditEvent

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(0), nil)
	m.mandateRepo.EXPECT().MutateMandate(gomock.Any(), current.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fn mandate.MutateFunc) (*models.Mandate, error) {
			applyTo(t, current, &events)(fn)
			return current, nil
		})

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNoPending, outcome.Result)
	assert.Nil(t, current.PreDebitNotificationSentAt)
	assert.Equal(t, now.Add(7*24*time.Hour), *current.NextDebitAt)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventDebitSkipped, events[0].EventType)
}

func TestProcessMandate_ResolvesInterruptedAttempt(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	stale := uuid.New()
	current.ProcessingDebitID = &stale
	current.ProcessingStartedAt = ptr(now.Add(-10 * time.Minute))
	current.PreDebitNotificationSentAt = ptr(now.Add(-30 * time.Hour))

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil).Times(2)
	m.mandateRepo.EXPECT().FailDebit(gomock.Any(), stale, "", "debit attempt interrupted", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, _ string, fn mandate.MutateFunc) (*models.MandateDebit, error) {
			applyTo(t, current, nil)(fn)
			current.ProcessingDebitID = nil
			current.ProcessingStartedAt = nil
			return &models.MandateDebit{ID: stale, Status: models.DebitStatusFailed}, nil
		})
	m.mandateRepo.EXPECT().SumUnclaimed(gomock.Any(), current.UserID).Return(int64(0), nil)
	m.mandateRepo.EXPECT().MutateMandate(gomock.Any(), current.ID, gomock.Any()).Return(current, nil)

	outcome, err := uc.ProcessMandate(context.Background(), current.ID, now)
	require.NoError(t, err)
	assert.Equal(t, models.DebitResultNoPending, outcome.Result)
	assert.Equal(t, 1, current.FailureCount)
}

func TestProcessMandate_RecentAttemptInFlight(t *testing.T) {
	uc, m := newTestUC(t)
	current := dueMandate()
	current.ProcessingDebitID = ptr(uuid.New())
	current.ProcessingStartedAt = ptr(now.Add(-10 * time.Second))

	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), current.ID).Return(current, nil)

	_, err := uc.ProcessMandate(context.Background(), current.ID, now)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestProcessMandate_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	locker := lockmocks.NewMockLocker(ctrl)
	uc := NewSchedulerUC(testConfig(), nil, nil, nil, nil, nil, locker, nil, nil)
	id := uuid.New()

	locker.EXPECT().WithLock(gomock.Any(), "lock:mandate:"+id.String(), gomock.Any(), gomock.Any()).
		Return(models.ErrLocked)

	_, err := uc.ProcessMandate(context.Background(), id, now)
	assert.ErrorIs(t, err, models.ErrLocked)
}

func TestRunDebitPass_IsolatesFailures(t *testing.T) {
	uc, m := newTestUC(t)
	broken, notDue := uuid.New(), dueMandate()
	notDue.NextDebitAt = ptr(now.Add(time.Hour))
	unsettled := models.MandateDebit{ID: uuid.New(), UserID: uuid.New(), AmountPaise: 400, Status: models.DebitStatusSucceeded}

	m.schedulerRepo.EXPECT().ListDueMandates(gomock.Any(), now, dueBatchSize).Return([]uuid.UUID{broken, notDue.ID}, nil)
	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), broken).Return(nil, errors.New("connection reset"))
	m.mandateRepo.EXPECT().GetMandate(gomock.Any(), notDue.ID).Return(notDue, nil)
	m.schedulerRepo.EXPECT().ListUnsettledDebits(gomock.Any(), unsettledBatchSize).Return([]models.MandateDebit{unsettled}, nil)
	m.investmentUC.EXPECT().SettleDebit(gomock.Any(), &unsettled).
		Return(&models.SweepResult{Status: models.SweepStatusExecuted, InvestedPaise: 400}, nil)

	summary, err := uc.RunDebitPass(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Due)
	require.Len(t, summary.Outcomes, 2)
	assert.Equal(t, models.DebitResultError, summary.Outcomes[0].Result)
	assert.Equal(t, models.DebitResultNotDue, summary.Outcomes[1].Result)
	assert.Equal(t, 1, summary.Settled)
}

func TestRunDebitPass_ListError(t *testing.T) {
	uc, m := newTestUC(t)

	m.schedulerRepo.EXPECT().ListDueMandates(gomock.Any(), now, dueBatchSize).Return(nil, errors.New("db down"))

	_, err := uc.RunDebitPass(context.Background(), now)
	assert.Error(t, err)
}
