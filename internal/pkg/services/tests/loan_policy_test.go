package tests

import (
	"testing"
	"time"

	"globe/pocketbank_sms/configs"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"
	"globe/pocketbank_sms/internal/pkg/services"

	"github.com/stretchr/testify/assert"
)

func TestNewLoanPolicy(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()

	assert.Equal(t, services.LoanPolicyScore, services.NewLoanPolicy("score", cfg).Name())
	assert.Equal(t, services.LoanPolicyDaily, services.NewLoanPolicy("daily", cfg).Name())
	// Unknown names fall back to score gating.
	assert.Equal(t, services.LoanPolicyScore, services.NewLoanPolicy("", cfg).Name())
	assert.Equal(t, services.LoanPolicyScore, services.NewLoanPolicy("bogus", cfg).Name())
}

func TestPolicyInitialCreditScores(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()

	assert.Equal(t, 700, services.NewLoanPolicy("score", cfg).InitialCreditScore())
	assert.Equal(t, 750, services.NewLoanPolicy("daily", cfg).InitialCreditScore())
}

func TestScoreGatedPolicyEvaluate(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy("score", cfg)
	now := time.Now()

	tests := []struct {
		name        string
		creditScore int
		amount      int
		approved    bool
	}{
		{"Just Below Floor", 499, 1, false},
		{"At Floor Small Amount", 500, 1, true},
		{"At Auto Approve Boundary Large Amount", 750, 5001, false},
		{"Above Auto Approve Boundary Large Amount", 751, 5001, true},
		{"Mid Range At Limit", 600, 5000, true},
		{"Mid Range Above Limit", 600, 5001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := models.UserLedger{CreditScore: tt.creditScore}
			decision := policy.Evaluate(user, tt.amount, 7, now)
			assert.Equal(t, tt.approved, decision.Approved)
			if !tt.approved {
				assert.Equal(t, consts.ErrorInEligibleCreditScore, decision.DenialError)
				assert.Equal(t, consts.MsgLoanDeniedScore, decision.DenialMessage)
			}
		})
	}
}

func TestDailyLimitPolicyEvaluate(t *testing.T) {
	cfg := configs.DefaultPolicyConfig()
	policy := services.NewLoanPolicy("daily", cfg)
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	t.Run("First Loan Of The Day Unrestricted", func(t *testing.T) {
		decision := policy.Evaluate(models.UserLedger{}, 10000, 3, now)
		assert.True(t, decision.Approved)
		assert.InDelta(t, 1500.0, decision.Interest, 0.001)
		assert.InDelta(t, 11500.0, decision.TotalRepayment, 0.001)
	})

	t.Run("Same Day Repeat Over Cap Denied", func(t *testing.T) {
		earlier := now.Add(-2 * time.Hour)
		user := models.UserLedger{LastLoanDate: &earlier}
		decision := policy.Evaluate(user, 501, 1, now)
		assert.False(t, decision.Approved)
		assert.Equal(t, consts.ErrorDailyLoanCapExceeded, decision.DenialError)
	})

	t.Run("Same Day Repeat At Cap Approved", func(t *testing.T) {
		earlier := now.Add(-2 * time.Hour)
		user := models.UserLedger{LastLoanDate: &earlier}
		decision := policy.Evaluate(user, 500, 1, now)
		assert.True(t, decision.Approved)
	})

	t.Run("Previous Day Loan Does Not Trigger Cap", func(t *testing.T) {
		yesterday := now.AddDate(0, 0, -1)
		user := models.UserLedger{LastLoanDate: &yesterday}
		decision := policy.Evaluate(user, 10000, 1, now)
		assert.True(t, decision.Approved)
	})

	t.Run("Midnight Boundary Splits Days", func(t *testing.T) {
		beforeMidnight := time.Date(2026, 3, 13, 23, 59, 0, 0, time.UTC)
		user := models.UserLedger{LastLoanDate: &beforeMidnight}
		decision := policy.Evaluate(user, 10000, 1, now)
		assert.True(t, decision.Approved)
	})
}
