package services

import (
	"fmt"
	"globe/pocketbank_sms/configs"
	"globe/pocketbank_sms/internal/pkg/consts"
	"globe/pocketbank_sms/internal/pkg/models"
	"time"
)

// LoanDecision is the outcome of a policy evaluation. DenialMessage is only
// set when Approved is false; TotalRepayment and Interest are only meaningful
// for policies that charge interest.
type LoanDecision struct {
	Approved       bool
	DenialError    *models.CustomError
	DenialMessage  string
	TotalRepayment float64
	Interest       float64
}

// LoanPolicy gates loan approval. Two incompatible policies shipped in the
// original product; both are kept and selected by configuration instead of
// silently merged.
type LoanPolicy interface {
	Name() string
	InitialCreditScore() int
	Evaluate(user models.UserLedger, amount, days int, now time.Time) LoanDecision
	ApprovalMessage(amount, days, newBalance int, decision LoanDecision) string
}

const (
	LoanPolicyScore = "score"
	LoanPolicyDaily = "daily"
)

// NewLoanPolicy resolves the configured policy, defaulting to score gating.
func NewLoanPolicy(name string, cfg configs.PolicyConfig) LoanPolicy {
	if name == LoanPolicyDaily {
		return &DailyLimitPolicy{cfg: cfg}
	}
	return &ScoreGatedPolicy{cfg: cfg}
}

// ScoreGatedPolicy approves on credit score alone: hard floor below which
// everything is denied, a band above which everything is approved, and a
// mid-range that only clears small amounts.
type ScoreGatedPolicy struct {
	cfg configs.PolicyConfig
}

func (p *ScoreGatedPolicy) Name() string { return LoanPolicyScore }

func (p *ScoreGatedPolicy) InitialCreditScore() int { return p.cfg.ScoreSeed }

func (p *ScoreGatedPolicy) Evaluate(user models.UserLedger, amount, days int, now time.Time) LoanDecision {
	if user.CreditScore < p.cfg.ScoreFloor {
		return LoanDecision{
			DenialError:   consts.ErrorInEligibleCreditScore,
			DenialMessage: consts.MsgLoanDeniedScore,
		}
	}
	if user.CreditScore > p.cfg.ScoreAutoApprove {
		return LoanDecision{Approved: true}
	}
	if amount > p.cfg.ScoreMidRangeMaxLoan {
		return LoanDecision{
			DenialError:   consts.ErrorInEligibleCreditScore,
			DenialMessage: consts.MsgLoanDeniedScore,
		}
	}
	return LoanDecision{Approved: true}
}

func (p *ScoreGatedPolicy) ApprovalMessage(amount, days, newBalance int, decision LoanDecision) string {
	return fmt.Sprintf(consts.MsgLoanApproved, amount, newBalance)
}

// DailyLimitPolicy caps repeat borrowing within a calendar day and charges
// simple interest on the new principal only; prior outstanding loans do not
// compound.
type DailyLimitPolicy struct {
	cfg configs.PolicyConfig
}

func (p *DailyLimitPolicy) Name() string { return LoanPolicyDaily }

func (p *DailyLimitPolicy) InitialCreditScore() int { return p.cfg.DailySeed }

func (p *DailyLimitPolicy) Evaluate(user models.UserLedger, amount, days int, now time.Time) LoanDecision {
	if user.LastLoanDate != nil && sameCalendarDay(*user.LastLoanDate, now) && amount > p.cfg.DailyCapAmount {
		return LoanDecision{
			DenialError:   consts.ErrorDailyLoanCapExceeded,
			DenialMessage: fmt.Sprintf(consts.MsgLoanDeniedDailyCap, p.cfg.DailyCapAmount),
		}
	}

	interest := float64(amount) * p.cfg.DailyInterestRate * float64(days)
	return LoanDecision{
		Approved:       true,
		Interest:       interest,
		TotalRepayment: float64(amount) + interest,
	}
}

func (p *DailyLimitPolicy) ApprovalMessage(amount, days, newBalance int, decision LoanDecision) string {
	return fmt.Sprintf(consts.MsgLoanApprovedInterest, amount, days, decision.TotalRepayment, decision.Interest, newBalance)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
