package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name   string
		total  int64
		slices []models.AllocationSlice
		want   []models.AllocationShare
	}{
		{
			name:  "exact split",
			total: 1000,
			slices: []models.AllocationSlice{
				{Instrument: "mf_debt", Percent: 50},
				{Instrument: "mf_equity", Percent: 30},
				{Instrument: "gold", Percent: 20},
			},
			want: []models.AllocationShare{
				{Instrument: "mf_debt", AmountPaise: 500},
				{Instrument: "mf_equity", AmountPaise: 300},
				{Instrument: "gold", AmountPaise: 200},
			},
		},
		{
			name:  "remainder to first instrument",
			total: 1001,
			slices: []models.AllocationSlice{
				{Instrument: "mf_debt", Percent: 40},
				{Instrument: "mf_equity", Percent: 50},
				{Instrument: "gold", Percent: 10},
			},
			want: []models.AllocationShare{
				{Instrument: "mf_debt", AmountPaise: 401},
				{Instrument: "mf_equity", AmountPaise: 500},
				{Instrument: "gold", AmountPaise: 100},
			},
		},
		{
			name:  "zero percent dropped",
			total: 7,
			slices: []models.AllocationSlice{
				{Instrument: "gold", Percent: 0},
				{Instrument: "mf_equity", Percent: 100},
			},
			want: []models.AllocationShare{{Instrument: "mf_equity", AmountPaise: 7}},
		},
		{
			name:   "zero total",
			total:  0,
			slices: []models.AllocationSlice{{Instrument: "gold", Percent: 100}},
			want:   []models.AllocationShare{{Instrument: "gold", AmountPaise: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.total, tt.slices)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllocate_SumsToTotal(t *testing.T) {
	for _, slices := range models.DefaultRiskAllocations() {
		for total := int64(0); total < 500; total += 7 {
			shares, err := Allocate(total, slices)
			require.NoError(t, err)
			var sum int64
			for _, s := range shares {
				sum += s.AmountPaise
			}
			assert.Equal(t, total, sum)
		}
	}
}

func TestAllocate_RejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name   string
		slices []models.AllocationSlice
	}{
		{name: "empty", slices: nil},
		{name: "sum below 100", slices: []models.AllocationSlice{{Instrument: "gold", Percent: 90}}},
		{name: "negative", slices: []models.AllocationSlice{{Instrument: "gold", Percent: 110}, {Instrument: "mf_debt", Percent: -10}}},
		{name: "duplicate", slices: []models.AllocationSlice{{Instrument: "gold", Percent: 50}, {Instrument: "gold", Percent: 50}}},
		{name: "missing instrument", slices: []models.AllocationSlice{{Percent: 100}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Allocate(100, tt.slices)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}

	_, err := Allocate(-1, []models.AllocationSlice{{Instrument: "gold", Percent: 100}})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPreviewAllocation(t *testing.T) {
	uc, m := newTestUC(t)
	userID := uuid.New()

	t.Run("stored risk profile and pending total", func(t *testing.T) {
		m.repo.EXPECT().GetRiskProfile(gomock.Any(), userID).Return(models.RiskHigh, nil)
		m.repo.EXPECT().SumPending(gomock.Any(), userID).Return(int64(1000), nil)

		shares, err := uc.PreviewAllocation(context.Background(), userID, 0, models.SweepRequest{})
		require.NoError(t, err)
		assert.Equal(t, []models.AllocationShare{
			{Instrument: models.InstrumentMFDebt, AmountPaise: 200},
			{Instrument: models.InstrumentMFEquity, AmountPaise: 700},
			{Instrument: models.InstrumentGold, AmountPaise: 100},
		}, shares)
	})

	t.Run("single instrument", func(t *testing.T) {
		shares, err := uc.PreviewAllocation(context.Background(), userID, 300, models.SweepRequest{Instrument: "gold"})
		require.NoError(t, err)
		assert.Equal(t, []models.AllocationShare{{Instrument: "gold", AmountPaise: 300}}, shares)
	})

	t.Run("default profile when none stored", func(t *testing.T) {
		m.repo.EXPECT().GetRiskProfile(gomock.Any(), userID).Return("", nil)
		shares, err := uc.PreviewAllocation(context.Background(), userID, 1000, models.SweepRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(400), shares[0].AmountPaise)
	})

	t.Run("unknown risk profile", func(t *testing.T) {
		_, err := uc.PreviewAllocation(context.Background(), userID, 1000, models.SweepRequest{RiskProfile: "yolo"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown instrument in custom map", func(t *testing.T) {
		_, err := uc.PreviewAllocation(context.Background(), userID, 1000, models.SweepRequest{
			Allocation: []models.AllocationSlice{{Instrument: "crypto", Percent: 100}},
		})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}
