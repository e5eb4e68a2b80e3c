package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var (
	groupsCampaignID int64
	groupsActiveOnly bool
)

// groupsCmd represents the groups command
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List ad groups of a campaign",
	RunE:  runGroups,
}

func init() {
	groupsCmd.Flags().Int64Var(&groupsCampaignID, "campaign", 0, "campaign id")
	groupsCmd.Flags().BoolVar(&groupsActiveOnly, "active", false, "only groups with active ads")
	groupsCmd.MarkFlagRequired("campaign")
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if groupsActiveOnly {
		groupIDs, err := client.CampaignActiveGroups(ctx, groupsCampaignID)
		if err != nil {
			return err
		}
		if len(groupIDs) == 0 {
			fmt.Println("No active groups found.")
			return nil
		}
		sort.Slice(groupIDs, func(i, j int) bool { return groupIDs[i] < groupIDs[j] })
		fmt.Printf("\nFound %d active groups:\n", len(groupIDs))
		for _, id := range groupIDs {
			fmt.Printf("• %d\n", id)
		}
		return nil
	}

	groups, err := client.CampaignGroups(ctx, groupsCampaignID)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Println("No groups found.")
		return nil
	}

	ids := make([]int64, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	fmt.Printf("\nFound %d groups:\n", len(groups))
	fmt.Println(strings.Repeat("-", 80))
	for _, id := range ids {
		group := groups[id]
		fmt.Printf("• %d  %s [%s]\n", group.ID, group.Name, group.Status)
	}

	return nil
}
