package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show account information and balance (v4 API)",
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	infos, err := clientV4.ClientInfo(cmd.Context())
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No account information returned.")
		return nil
	}

	fmt.Println(strings.Repeat("-", 60))
	for _, info := range infos {
		fmt.Printf("Login:    %s\n", info.Login)
		if info.FIO != "" {
			fmt.Printf("Name:     %s\n", info.FIO)
		}
		if info.Email != "" {
			fmt.Printf("Email:    %s\n", info.Email)
		}
		if info.Role != "" {
			fmt.Printf("Role:     %s\n", info.Role)
		}
		if info.Currency != "" {
			fmt.Printf("Currency: %s\n", info.Currency)
		}
		fmt.Printf("Discount: %.2f%%\n", info.Discount)
		fmt.Println(strings.Repeat("-", 60))
	}

	return nil
}
