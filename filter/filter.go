// Package filter compiles expression-language predicates over Direct
// campaigns, used by the campaigns command to narrow listings.
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/oleg78/yadirect/direct"
)

// Func reports whether a campaign matches a compiled expression.
type Func func(direct.Campaign) bool

// ParseAndCreateFilter compiles an expression into a campaign predicate.
//
// The expression sees the fields of the campaign environment, e.g.:
//
//	State == "ON" && DailyBudget > 300000000
//	Name startsWith "brand-" || Clicks > 1000
func ParseAndCreateFilter(expression string) (Func, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return func(campaign direct.Campaign) bool {
		out, err := vm.Run(program, buildEnv(campaign))
		if err != nil {
			return false
		}
		matched, ok := out.(bool)
		return ok && matched
	}, nil
}

// buildEnv flattens a campaign into the variables an expression can use.
// Missing optional parts become zero values so expressions never need
// nil checks.
func buildEnv(campaign direct.Campaign) map[string]any {
	env := map[string]any{
		"Id":          campaign.ID,
		"Name":        campaign.Name,
		"State":       campaign.State,
		"Status":      campaign.Status,
		"Type":        campaign.Type,
		"DailyBudget": int64(0),
		"Balance":     int64(0),
		"Clicks":      int64(0),
		"Impressions": int64(0),
	}

	if campaign.DailyBudget != nil {
		env["DailyBudget"] = campaign.DailyBudget.Amount
	}
	if campaign.Funds != nil && campaign.Funds.CampaignFunds != nil {
		env["Balance"] = campaign.Funds.CampaignFunds.Balance
	}
	if campaign.Statistics != nil {
		env["Clicks"] = campaign.Statistics.Clicks
		env["Impressions"] = campaign.Statistics.Impressions
	}

	return env
}
