package wellness

import (
	"fmt"

	"github.com/2beens/clubtrainer/internal/routines"
	"github.com/2beens/clubtrainer/pkg"
)

type Metric string

const (
	MetricScore Metric = "score"
	// legacy metrics, authored on the 1..5 scale
	MetricWellbeing Metric = "wellbeing"
	MetricFatigue   Metric = "fatigue"
)

type Operator string

const (
	OpLess              Operator = "<"
	OpLessOrEqual       Operator = "<="
	opLessOrEqualSymbol Operator = "≤"
)

type Action string

const (
	ActionRemoveReps Action = "remove_reps"
	ActionRemoveSets Action = "remove_sets"
)

// Rule lowers the prescribed load when the wellness score crosses Threshold.
// Stored rules are always normalized to the score metric.
type Rule struct {
	Metric    Metric   `json:"metric" validate:"eq=score"`
	Operator  Operator `json:"operator" validate:"oneof=< <="`
	Threshold int      `json:"threshold" validate:"min=0,max=25"`
	Action    Action   `json:"action" validate:"oneof=remove_reps remove_sets"`
	Amount    int      `json:"amount" validate:"min=1,max=5"`
}

// Adaptation summarizes what the matching rules took away.
type Adaptation struct {
	Matched     bool `json:"matched"`
	RepsRemoved int  `json:"repsRemoved"`
	SetsRemoved int  `json:"setsRemoved"`
}

func DefaultRules() []Rule {
	return []Rule{
		{Metric: MetricScore, Operator: OpLess, Threshold: 10, Action: ActionRemoveReps, Amount: 1},
		{Metric: MetricScore, Operator: OpLess, Threshold: 8, Action: ActionRemoveSets, Amount: 1},
	}
}

// NormalizeRule rewrites a rule onto the 0..25 score metric. Legacy 1..5
// metrics get their threshold multiplied by 5 and clamped. The result is
// validated.
func NormalizeRule(rule Rule) (Rule, error) {
	switch rule.Metric {
	case MetricWellbeing, MetricFatigue:
		rule.Metric = MetricScore
		rule.Threshold = clampScore(rule.Threshold * 5)
	}
	if rule.Operator == opLessOrEqualSymbol {
		rule.Operator = OpLessOrEqual
	}
	if err := pkg.ValidateStruct(rule); err != nil {
		return Rule{}, fmt.Errorf("invalid rule: %w", err)
	}
	return rule, nil
}

// RuleMatches evaluates rule against a 0..25 score. A rule on any metric
// other than score, or with an unknown operator, never matches.
func RuleMatches(score int, rule Rule) bool {
	if rule.Metric != MetricScore {
		return false
	}
	switch rule.Operator {
	case OpLess:
		return score < rule.Threshold
	case OpLessOrEqual, opLessOrEqualSymbol:
		return score <= rule.Threshold
	default:
		return false
	}
}

// ApplyRules returns a reduced copy of exercises. Amounts of all matching
// rules are summed per action and applied once to every exercise; sets and
// reps never go below 1.
func ApplyRules(exercises []routines.Prescription, rules []Rule, score int) ([]routines.Prescription, Adaptation) {
	var adaptation Adaptation
	for _, rule := range rules {
		if !RuleMatches(score, rule) {
			continue
		}
		adaptation.Matched = true
		switch rule.Action {
		case ActionRemoveReps:
			adaptation.RepsRemoved += rule.Amount
		case ActionRemoveSets:
			adaptation.SetsRemoved += rule.Amount
		}
	}

	adapted := make([]routines.Prescription, len(exercises))
	for i, ex := range exercises {
		ex.Sets = max(1, ex.Sets-adaptation.SetsRemoved)
		ex.Reps = max(1, ex.Reps-adaptation.RepsRemoved)
		adapted[i] = ex
	}
	return adapted, adaptation
}
