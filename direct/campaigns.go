package direct

import (
	"context"
	"encoding/json"
	"fmt"
)

// campaignFieldNames are the fields requested for every campaign.
var campaignFieldNames = []string{
	"Id",
	"Name",
	"State",
	"DailyBudget",
	"Funds",
	"Statistics",
	"Type",
}

var textCampaignFieldNames = []string{
	"RelevantKeywords",
	"Settings",
	"BiddingStrategy",
}

// Campaigns retrieves campaigns keyed by campaign id. Pass nil or an
// empty slice to retrieve every campaign of the account.
func (c *Client) Campaigns(ctx context.Context, ids []int64) (map[int64]Campaign, error) {
	criteria := CampaignSelectionCriteria{}
	if len(ids) > 0 {
		criteria.IDs = ids
	}

	params := CampaignsGetParams{
		SelectionCriteria:      criteria,
		FieldNames:             campaignFieldNames,
		TextCampaignFieldNames: textCampaignFieldNames,
	}

	campaigns := make(map[int64]Campaign)
	for {
		raw, err := c.call(ctx, ServiceCampaigns, "get", &params)
		if err != nil {
			return nil, fmt.Errorf("failed to get campaigns: %w", err)
		}

		var result campaignsGetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to parse campaigns: %w", err)
		}
		for _, campaign := range result.Campaigns {
			campaigns[campaign.ID] = campaign
		}

		if result.LimitedBy == 0 {
			break
		}
		c.logger.Debug().Int64("offset", result.LimitedBy).Msg("Fetching next campaigns page")
		params.Page = &Page{Offset: result.LimitedBy}
	}

	c.logger.Debug().Int("count", len(campaigns)).Msg("Retrieved campaigns")
	return campaigns, nil
}
