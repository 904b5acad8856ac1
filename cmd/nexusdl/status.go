package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Validate the API key and show account details",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	user, err := client.Validate(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(user)
		return nil
	}

	tier := "free"
	if user.IsPremium {
		tier = "premium"
	}
	fmt.Printf("API key OK: %s (user %d, %s account)\n", user.Name, user.UserID, tier)
	return nil
}
