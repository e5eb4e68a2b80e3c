package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleg78/yadirect/direct"
	"github.com/oleg78/yadirect/filter"
)

var (
	campaignIDs []int64
	filterExpr  string
	preset      string
)

// campaignsCmd represents the campaigns command
var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List campaigns",
	Long:  `List the account's campaigns, optionally narrowed by ids or a filter expression.`,
	RunE:  runCampaigns,
}

func init() {
	campaignsCmd.Flags().Int64SliceVar(&campaignIDs, "ids", nil, "campaign ids (default all)")
	campaignsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	campaignsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runCampaigns(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	var filterFunc filter.Func
	if expression != "" {
		filterFunc, err = filter.ParseAndCreateFilter(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expression).Msg("Listing campaigns")
	}

	campaigns, err := client.Campaigns(cmd.Context(), campaignIDs)
	if err != nil {
		return err
	}

	var matched []direct.Campaign
	for _, campaign := range campaigns {
		if filterFunc != nil && !filterFunc(campaign) {
			continue
		}
		matched = append(matched, campaign)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	if len(matched) == 0 {
		fmt.Println("No campaigns found.")
		return nil
	}

	fmt.Printf("\nFound %d campaigns:\n", len(matched))
	fmt.Println(strings.Repeat("-", 80))
	for _, campaign := range matched {
		fmt.Printf("• %d  %s [%s]", campaign.ID, campaign.Name, campaign.State)
		if campaign.Type != "" {
			fmt.Printf(" (%s)", campaign.Type)
		}
		fmt.Println()
		if campaign.DailyBudget != nil {
			fmt.Printf("  Daily budget: %.2f (%s)\n", micros(campaign.DailyBudget.Amount), campaign.DailyBudget.Mode)
		}
		if campaign.Funds != nil && campaign.Funds.CampaignFunds != nil {
			fmt.Printf("  Balance: %.2f\n", micros(campaign.Funds.CampaignFunds.Balance))
		}
		if campaign.Statistics != nil {
			fmt.Printf("  Clicks: %d / Impressions: %d\n", campaign.Statistics.Clicks, campaign.Statistics.Impressions)
		}
	}

	return nil
}

// getFilterExpression resolves the --filter / --preset flags
func getFilterExpression() (string, error) {
	if filterExpr != "" && preset != "" {
		return "", fmt.Errorf("cannot use both --filter and --preset")
	}

	if preset != "" {
		expression, ok := cfg.Filter[preset]
		if !ok {
			return "", fmt.Errorf("preset %q not found in config", preset)
		}
		return expression, nil
	}

	return filterExpr, nil
}

// micros converts API micro-amounts to currency units for display
func micros(amount int64) float64 {
	return float64(amount) / 1e6
}
