package configs

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyConfig holds the tunables of the loan approval policies. Defaults
// match the production demo values; an optional yaml file overrides them.
type PolicyConfig struct {
	InitialBalance       int     `yaml:"initial_balance"`
	ScoreSeed            int     `yaml:"score_seed"`
	ScoreFloor           int     `yaml:"score_floor"`
	ScoreAutoApprove     int     `yaml:"score_auto_approve"`
	ScoreMidRangeMaxLoan int     `yaml:"score_mid_range_max_loan"`
	ScoreRepaymentStep   int     `yaml:"score_repayment_step"`
	ScoreCeiling         int     `yaml:"score_ceiling"`
	DailySeed            int     `yaml:"daily_seed"`
	DailyCapAmount       int     `yaml:"daily_cap_amount"`
	DailyInterestRate    float64 `yaml:"daily_interest_rate"`
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		InitialBalance:       1000,
		ScoreSeed:            700,
		ScoreFloor:           500,
		ScoreAutoApprove:     750,
		ScoreMidRangeMaxLoan: 5000,
		ScoreRepaymentStep:   20,
		ScoreCeiling:         850,
		DailySeed:            750,
		DailyCapAmount:       500,
		DailyInterestRate:    0.05,
	}
}

// GetPolicyConfig returns the policy config, overlaying the yaml file at
// POLICY_CONFIG_PATH when one is configured.
func GetPolicyConfig() PolicyConfig {
	cfg := DefaultPolicyConfig()

	if POLICY_CONFIG_PATH == "" {
		return cfg
	}

	data, err := os.ReadFile(POLICY_CONFIG_PATH)
	if err != nil {
		log.Printf("Error reading policy config %s: %v", POLICY_CONFIG_PATH, err)
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Error parsing policy config %s: %v", POLICY_CONFIG_PATH, err)
		return DefaultPolicyConfig()
	}

	return cfg
}
