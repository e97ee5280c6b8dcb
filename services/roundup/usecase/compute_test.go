package usecase

import (
	"testing"

	"github.com/piresc/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func paise(v int64) *int64 { return &v }

func TestComputeRoundup(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		base   int64
		want   int64
	}{
		{"rupees 247 to next 10", 24700, 1000, 300},
		{"exact multiple", 25000, 1000, 0},
		{"one paise over", 25001, 1000, 999},
		{"base of one rupee", 24750, 100, 50},
		{"zero amount", 0, 1000, 0},
		{"negative amount", -500, 1000, 0},
		{"zero base", 24700, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeRoundup(tt.amount, tt.base))
		})
	}
}

func TestComputeRoundup_StaysBelowBaseAndCompletesMultiple(t *testing.T) {
	for _, base := range []int64{1, 7, 100, 1000, 5000} {
		for amount := int64(1); amount < 3*base+5; amount++ {
			r := ComputeRoundup(amount, base)
			assert.GreaterOrEqual(t, r, int64(0))
			assert.Less(t, r, base)
			assert.Zero(t, (amount+r)%base)
		}
	}
}

func TestApplyCaps(t *testing.T) {
	tests := []struct {
		name      string
		caps      *models.CapSetting
		sums      models.RoundupWindowSums
		candidate int64
		want      int64
	}{
		{"no caps", &models.CapSetting{}, models.RoundupWindowSums{TodayPaise: 9999}, 300, 300},
		{"nil settings", nil, models.RoundupWindowSums{}, 300, 300},
		{"paused", &models.CapSetting{Paused: true}, models.RoundupWindowSums{}, 300, 0},
		{"daily remaining smaller", &models.CapSetting{DailyCapPaise: paise(1000)}, models.RoundupWindowSums{TodayPaise: 800}, 300, 200},
		{"daily exhausted", &models.CapSetting{DailyCapPaise: paise(1000)}, models.RoundupWindowSums{TodayPaise: 1000}, 300, 0},
		{"daily overshot", &models.CapSetting{DailyCapPaise: paise(500)}, models.RoundupWindowSums{TodayPaise: 700}, 300, 0},
		{"monthly binds", &models.CapSetting{DailyCapPaise: paise(1000), MonthlyCapPaise: paise(5000)},
			models.RoundupWindowSums{TodayPaise: 100, MonthPaise: 4950}, 300, 50},
		{"zero cap", &models.CapSetting{MonthlyCapPaise: paise(0)}, models.RoundupWindowSums{}, 300, 0},
		{"zero candidate", &models.CapSetting{}, models.RoundupWindowSums{}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyCaps(tt.caps, tt.sums, tt.candidate))
		})
	}
}

func TestApplyCaps_NeverExceedsWindowCaps(t *testing.T) {
	caps := &models.CapSetting{DailyCapPaise: paise(2500), MonthlyCapPaise: paise(6000)}
	var month int64
	for day := 0; day < 5; day++ {
		var today int64
		for i := int64(1); i <= 40; i++ {
			allowed := ApplyCaps(caps, models.RoundupWindowSums{TodayPaise: today, MonthPaise: month}, (i*37)%999+1)
			today += allowed
			month += allowed
			assert.LessOrEqual(t, today, *caps.DailyCapPaise)
			assert.LessOrEqual(t, month, *caps.MonthlyCapPaise)
		}
	}
	assert.Equal(t, int64(6000), month)
}
