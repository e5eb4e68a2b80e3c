package direct

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// maxGroupsPerRequest bounds AdGroupIds in a single bids get request.
	maxGroupsPerRequest = 10000

	// maxBidsPerRequest bounds the Bids array in a single set request.
	maxBidsPerRequest = 10000
)

var bidFieldNames = []string{
	"CampaignId",
	"KeywordId",
	"Bid",
	"ContextBid",
	"CompetitorsBids",
	"SearchPrices",
	"MinSearchPrice",
	"CurrentSearchPrice",
}

// GroupsBids retrieves bids for a list of groups, keyed by keyword id.
// Large group lists are split into chunks fetched concurrently, bounded
// by the client's maxClients. A failed chunk fails the whole call.
func (c *Client) GroupsBids(ctx context.Context, groupIDs []int64) (map[int64]Bid, error) {
	if len(groupIDs) == 0 {
		return map[int64]Bid{}, nil
	}

	bids := make(map[int64]Bid)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxClients)

	for start := 0; start < len(groupIDs); start += maxGroupsPerRequest {
		chunk := groupIDs[start:min(start+maxGroupsPerRequest, len(groupIDs))]
		g.Go(func() error {
			params := BidsGetParams{
				SelectionCriteria: BidSelectionCriteria{AdGroupIDs: chunk},
				FieldNames:        bidFieldNames,
			}
			part, err := c.getBids(ctx, &params)
			if err != nil {
				return err
			}
			mu.Lock()
			maps.Copy(bids, part)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("bids", len(bids)).
		Int("groups", len(groupIDs)).
		Msg("Retrieved group bids")
	return bids, nil
}

// CampaignBids retrieves every bid of a campaign, keyed by keyword id.
func (c *Client) CampaignBids(ctx context.Context, campaignID int64) (map[int64]Bid, error) {
	params := BidsGetParams{
		SelectionCriteria: BidSelectionCriteria{CampaignIDs: []int64{campaignID}},
		FieldNames:        bidFieldNames,
	}

	bids, err := c.getBids(ctx, &params)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int("bids", len(bids)).
		Int64("campaign_id", campaignID).
		Msg("Retrieved campaign bids")
	return bids, nil
}

// CampaignActiveBids retrieves the bids of a campaign's active groups.
func (c *Client) CampaignActiveBids(ctx context.Context, campaignID int64) (map[int64]Bid, error) {
	groups, err := c.CampaignActiveGroups(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return map[int64]Bid{}, nil
	}
	return c.GroupsBids(ctx, groups)
}

// CampaignsBids retrieves active-group bids across several campaigns,
// fetching campaigns concurrently bounded by maxClients.
func (c *Client) CampaignsBids(ctx context.Context, campaignIDs []int64) (map[int64]Bid, error) {
	if len(campaignIDs) == 0 {
		return map[int64]Bid{}, nil
	}

	start := time.Now()
	bids := make(map[int64]Bid)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxClients)

	for _, campaignID := range campaignIDs {
		campaignID := campaignID
		g.Go(func() error {
			part, err := c.CampaignActiveBids(ctx, campaignID)
			if err != nil {
				return fmt.Errorf("failed to get bids for campaign %d: %w", campaignID, err)
			}
			mu.Lock()
			maps.Copy(bids, part)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("bids", len(bids)).
		Int("campaigns", len(campaignIDs)).
		Dur("elapsed", time.Since(start)).
		Msg("Retrieved campaigns bids")
	return bids, nil
}

// SetBids applies bid assignments in chunks and returns the number of
// per-item results the API reported.
func (c *Client) SetBids(ctx context.Context, bids []BidSetItem) (int, error) {
	applied := 0
	for start := 0; start < len(bids); start += maxBidsPerRequest {
		chunk := bids[start:min(start+maxBidsPerRequest, len(bids))]

		raw, err := c.call(ctx, ServiceBids, "set", &BidsSetParams{Bids: chunk})
		if err != nil {
			return applied, fmt.Errorf("failed to set bids: %w", err)
		}

		var result bidsSetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return applied, fmt.Errorf("failed to parse set results: %w", err)
		}
		applied += len(result.SetResults)

		c.logger.Debug().
			Int("chunk", len(chunk)).
			Int("results", len(result.SetResults)).
			Msg("Set bids chunk")
	}

	c.logger.Info().Int("bids", applied).Msg("Set bids")
	return applied, nil
}

// getBids runs one bids get request, following LimitedBy pagination.
func (c *Client) getBids(ctx context.Context, params *BidsGetParams) (map[int64]Bid, error) {
	bids := make(map[int64]Bid)
	for {
		raw, err := c.call(ctx, ServiceBids, "get", params)
		if err != nil {
			return nil, fmt.Errorf("failed to get bids: %w", err)
		}

		var result bidsGetResult
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("failed to parse bids: %w", err)
		}
		for _, bid := range result.Bids {
			bids[bid.KeywordID] = bid
		}

		if result.LimitedBy == 0 {
			break
		}
		params.Page = &Page{Offset: result.LimitedBy}
	}
	return bids, nil
}
