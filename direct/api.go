package direct

import (
	"context"
)

var _ API = (*Client)(nil)

// API defines the interface for Direct v5 operations
type API interface {
	// TestConnection verifies the client can reach the API with its credentials
	TestConnection(ctx context.Context) error

	// Campaigns retrieves campaigns by id, or all campaigns when ids is empty
	Campaigns(ctx context.Context, ids []int64) (map[int64]Campaign, error)

	// CampaignGroups retrieves the accepted groups of a campaign
	CampaignGroups(ctx context.Context, campaignID int64) (map[int64]AdGroup, error)

	// CampaignActiveGroups retrieves the ids of groups with active ads
	CampaignActiveGroups(ctx context.Context, campaignID int64) ([]int64, error)

	// GroupsActiveAds retrieves the active ads of the given groups
	GroupsActiveAds(ctx context.Context, groupIDs []int64) (map[int64]Ad, error)

	// CampaignsActiveAds retrieves the active ads of the given campaigns
	CampaignsActiveAds(ctx context.Context, campaignIDs []int64) (map[int64]Ad, error)

	// GroupsBids retrieves bids for a list of groups, keyed by keyword id
	GroupsBids(ctx context.Context, groupIDs []int64) (map[int64]Bid, error)

	// CampaignBids retrieves all bids of a campaign
	CampaignBids(ctx context.Context, campaignID int64) (map[int64]Bid, error)

	// CampaignActiveBids retrieves bids of a campaign's active groups
	CampaignActiveBids(ctx context.Context, campaignID int64) (map[int64]Bid, error)

	// CampaignsBids retrieves active-group bids across several campaigns
	CampaignsBids(ctx context.Context, campaignIDs []int64) (map[int64]Bid, error)

	// SetBids applies bid assignments and returns the number of results
	SetBids(ctx context.Context, bids []BidSetItem) (int, error)

	// Units reports the API units state after the most recent call
	Units() string
}
