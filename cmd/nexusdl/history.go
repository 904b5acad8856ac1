package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/nexusdl/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed downloads",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	records, err := store.List()
	if err != nil {
		return err
	}

	if jsonOutput {
		printJSON(records)
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No downloads recorded.")
		return nil
	}

	fmt.Printf("%-4s %-40s %-24s %8s %8s %10s  %s\n",
		"ID", "FILE", "GAME", "MOD", "FILEID", "SIZE", "WHEN")
	for _, r := range records {
		name := r.FileName
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Printf("%-4d %-40s %-24s %8d %8d %10s  %s\n",
			r.ID, name, r.Domain, r.ModID, r.FileID,
			formatSize(r.SizeBytes), r.DownloadedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
