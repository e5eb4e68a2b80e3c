package direct

import (
	"context"
	"encoding/json"
	"fmt"
)

var adFieldNames = []string{
	"Id",
	"AdGroupId",
	"CampaignId",
}

// GroupsActiveAds retrieves the active (state ON, status ACCEPTED) ads
// of the given groups, keyed by ad id.
func (c *Client) GroupsActiveAds(ctx context.Context, groupIDs []int64) (map[int64]Ad, error) {
	if len(groupIDs) == 0 {
		return map[int64]Ad{}, nil
	}
	return c.activeAds(ctx, AdSelectionCriteria{
		AdGroupIDs: groupIDs,
		States:     []string{StateOn},
		Statuses:   []string{StatusAccepted},
	})
}

// CampaignsActiveAds retrieves the active ads of the given campaigns,
// keyed by ad id.
func (c *Client) CampaignsActiveAds(ctx context.Context, campaignIDs []int64) (map[int64]Ad, error) {
	if len(campaignIDs) == 0 {
		return map[int64]Ad{}, nil
	}
	return c.activeAds(ctx, AdSelectionCriteria{
		CampaignIDs: campaignIDs,
		States:      []string{StateOn},
		Statuses:    []string{StatusAccepted},
	})
}

func (c *Client) activeAds(ctx context.Context, criteria AdSelectionCriteria) (map[int64]Ad, error) {
	params := AdsGetParams{
		SelectionCriteria: criteria,
		FieldNames:        adFieldNames,
	}

	ads := make(map[int64]Ad)
	for {
		raw, err := c.call(ctx, ServiceAds, "get", &params)
		if err != nil {
			return nil, fmt.Errorf("failed to get ads: %w", err)
		}

		var result adsGetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to parse ads: %w", err)
		}
		for _, ad := range result.Ads {
			ads[ad.ID] = ad
		}

		if result.LimitedBy == 0 {
			break
		}
		params.Page = &Page{Offset: result.LimitedBy}
	}

	c.logger.Debug().Int("count", len(ads)).Msg("Retrieved active ads")
	return ads, nil
}
