package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/nexusdl/pkg/gamedomain"
)

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the recognized game domains and their aliases",
	RunE:  runGames,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
}

func runGames(cmd *cobra.Command, args []string) error {
	table := gamedomain.Default()
	slugs := table.Slugs()

	if jsonOutput {
		out := make(map[string][]string, len(slugs))
		for _, slug := range slugs {
			out[slug] = table.Aliases(slug)
		}
		printJSON(out)
		return nil
	}

	fmt.Printf("%-28s %s\n", "DOMAIN", "ALIASES")
	for _, slug := range slugs {
		fmt.Printf("%-28s %s\n", slug, strings.Join(table.Aliases(slug), ", "))
	}
	return nil
}
