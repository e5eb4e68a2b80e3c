package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oleg78/yadirect/direct"
)

var (
	bidsCampaignID  int64
	bidsCampaignIDs []int64
	bidsGroupIDs    []int64
	bidsActiveOnly  bool
	bidsFile        string
	bidsDryRun      bool
)

// bidsCmd groups the bid subcommands
var bidsCmd = &cobra.Command{
	Use:   "bids",
	Short: "Get or set keyword bids",
}

// bidsGetCmd represents the bids get command
var bidsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get keyword bids for campaigns or groups",
	RunE:  runBidsGet,
}

// bidsSetCmd represents the bids set command
var bidsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set keyword bids from a JSON file",
	Long: `Apply bid assignments loaded from a JSON file holding an array of
objects in the API's Bids schema, e.g.
[{"KeywordId": 101, "Bid": 1500000}, ...]`,
	RunE: runBidsSet,
}

func init() {
	bidsGetCmd.Flags().Int64Var(&bidsCampaignID, "campaign", 0, "campaign id")
	bidsGetCmd.Flags().Int64SliceVar(&bidsCampaignIDs, "campaigns", nil, "campaign ids")
	bidsGetCmd.Flags().Int64SliceVar(&bidsGroupIDs, "groups", nil, "group ids")
	bidsGetCmd.Flags().BoolVar(&bidsActiveOnly, "active", false, "only bids of groups with active ads")

	bidsSetCmd.Flags().StringVar(&bidsFile, "file", "", "JSON file with bid assignments")
	bidsSetCmd.Flags().BoolVarP(&bidsDryRun, "dry-run", "d", false, "print what would be sent without sending")
	bidsSetCmd.MarkFlagRequired("file")

	bidsCmd.AddCommand(bidsGetCmd)
	bidsCmd.AddCommand(bidsSetCmd)
}

func runBidsGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		bids map[int64]direct.Bid
		err  error
	)

	switch {
	case len(bidsGroupIDs) > 0:
		bids, err = client.GroupsBids(ctx, bidsGroupIDs)
	case len(bidsCampaignIDs) > 0:
		bids, err = client.CampaignsBids(ctx, bidsCampaignIDs)
	case bidsCampaignID != 0 && bidsActiveOnly:
		bids, err = client.CampaignActiveBids(ctx, bidsCampaignID)
	case bidsCampaignID != 0:
		bids, err = client.CampaignBids(ctx, bidsCampaignID)
	default:
		return fmt.Errorf("one of --campaign, --campaigns or --groups is required")
	}
	if err != nil {
		return err
	}

	if len(bids) == 0 {
		fmt.Println("No bids found.")
		return nil
	}

	keywordIDs := make([]int64, 0, len(bids))
	for id := range bids {
		keywordIDs = append(keywordIDs, id)
	}
	sort.Slice(keywordIDs, func(i, j int) bool { return keywordIDs[i] < keywordIDs[j] })

	fmt.Printf("\nFound %d bids:\n", len(bids))
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("%-12s %-12s %-12s %-12s %s\n", "KEYWORD", "CAMPAIGN", "BID", "CONTEXT", "SEARCH PRICE")
	for _, id := range keywordIDs {
		bid := bids[id]
		fmt.Printf("%-12d %-12d %-12.2f %-12.2f %.2f\n",
			bid.KeywordID, bid.CampaignID,
			micros(bid.Bid), micros(bid.ContextBid), micros(bid.CurrentSearchPrice))
	}

	return nil
}

func runBidsSet(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(bidsFile)
	if err != nil {
		return fmt.Errorf("failed to read bids file: %w", err)
	}

	var bids []direct.BidSetItem
	if err := json.Unmarshal(data, &bids); err != nil {
		return fmt.Errorf("failed to parse bids file: %w", err)
	}
	if len(bids) == 0 {
		return fmt.Errorf("bids file %s contains no bids", bidsFile)
	}

	if bidsDryRun {
		fmt.Printf("[DRY RUN] Would set %d bids from %s\n", len(bids), bidsFile)
		return nil
	}

	count, err := client.SetBids(cmd.Context(), bids)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Set %d bids\n", count)
	return nil
}
