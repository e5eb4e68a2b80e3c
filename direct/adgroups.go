package direct

import (
	"context"
	"encoding/json"
	"fmt"
)

var adGroupFieldNames = []string{
	"CampaignId",
	"Id",
	"Name",
	"Status",
	"Type",
}

// CampaignGroups retrieves the accepted ad groups of a campaign, keyed
// by group id.
func (c *Client) CampaignGroups(ctx context.Context, campaignID int64) (map[int64]AdGroup, error) {
	params := AdGroupsGetParams{
		SelectionCriteria: AdGroupSelectionCriteria{
			CampaignIDs: []int64{campaignID},
			Statuses:    []string{StatusAccepted},
		},
		FieldNames: adGroupFieldNames,
	}

	groups := make(map[int64]AdGroup)
	for {
		raw, err := c.call(ctx, ServiceAdGroups, "get", &params)
		if err != nil {
			return nil, fmt.Errorf("failed to get groups: %w", err)
		}

		var result adGroupsGetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to parse groups: %w", err)
		}
		for _, group := range result.AdGroups {
			groups[group.ID] = group
		}

		if result.LimitedBy == 0 {
			break
		}
		params.Page = &Page{Offset: result.LimitedBy}
	}

	c.logger.Debug().
		Int("count", len(groups)).
		Int64("campaign_id", campaignID).
		Msg("Retrieved campaign groups")
	return groups, nil
}

// CampaignActiveGroups retrieves the ids of the campaign's groups that
// have at least one active ad.
func (c *Client) CampaignActiveGroups(ctx context.Context, campaignID int64) ([]int64, error) {
	ads, err := c.CampaignsActiveAds(ctx, []int64{campaignID})
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(ads))
	var groupIDs []int64
	for _, ad := range ads {
		if _, ok := seen[ad.AdGroupID]; ok {
			continue
		}
		seen[ad.AdGroupID] = struct{}{}
		groupIDs = append(groupIDs, ad.AdGroupID)
	}

	c.logger.Debug().
		Int("count", len(groupIDs)).
		Int64("campaign_id", campaignID).
		Msg("Retrieved active groups")
	return groupIDs, nil
}
