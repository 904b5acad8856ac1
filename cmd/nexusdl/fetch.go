package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/nexusdl/internal/fetch"
	"github.com/vmunix/nexusdl/internal/history"
	"github.com/vmunix/nexusdl/internal/plan"
)

var (
	fetchAll    bool
	fetchPick   string
	fetchFilter string
	fetchDir    string
	fetchForce  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <manifest.json>",
	Short: "Download Nexus files referenced by a modlist manifest",
	Long: `Resolves a modlist manifest into a download plan and fetches the
selected files through the Nexus Mods API. Without a selection flag an
interactive prompt asks which entries to download.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchAll, "all", false, "Download every entry")
	fetchCmd.Flags().StringVar(&fetchPick, "pick", "", "Download entries by number, e.g. \"1,4,7\"")
	fetchCmd.Flags().StringVar(&fetchFilter, "filter", "", "Download entries matching this text")
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "Target directory (overrides config)")
	fetchCmd.Flags().BoolVar(&fetchForce, "force", false, "Re-download files already recorded in history")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	entries, problems, err := buildPlan(args[0])
	if err != nil {
		return err
	}
	printProblems(problems)
	if len(entries) == 0 {
		fmt.Println("No downloadable Nexus files found in the manifest.")
		return nil
	}

	criterion, err := selectionCriterion(fetchAll, fetchPick, fetchFilter)
	if err != nil {
		return err
	}
	if criterion == nil {
		criterion = promptSelection(os.Stdin, entries)
		if criterion == nil {
			return nil
		}
	}

	jobs, selProblems := plan.Resolve(entries, criterion)
	printProblems(selProblems)
	if len(jobs) == 0 {
		fmt.Println("Nothing selected.")
		return nil
	}

	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	dir := cfg.Download.Dir
	if fetchDir != "" {
		dir = fetchDir
	}

	opts := []fetch.Option{
		fetch.WithForce(fetchForce),
		fetch.WithProgress(!quietOutput),
		fetch.WithLogger(logger),
		fetch.WithUserAgent(userAgent()),
	}
	store, err := history.Open(cfg.Database.Path)
	if err != nil {
		logger.Warn("download history unavailable", "path", cfg.Database.Path, "error", err)
	} else {
		defer store.Close()
		opts = append(opts, fetch.WithHistory(store))
	}

	runner := fetch.NewRunner(client, dir, opts...)
	results := runner.Run(cmd.Context(), jobs)
	return reportResults(results)
}

// selectionCriterion maps the mutually exclusive selection flags to a
// criterion. nil with no error means no flag was given and the
// interactive prompt should decide.
func selectionCriterion(all bool, pick, filter string) (plan.Criterion, error) {
	set := 0
	if all {
		set++
	}
	if pick != "" {
		set++
	}
	if filter != "" {
		set++
	}
	if set > 1 {
		return nil, errors.New("--all, --pick and --filter are mutually exclusive")
	}

	switch {
	case all:
		return plan.All{}, nil
	case pick != "":
		c, err := plan.ParseSelection(pick)
		if err != nil {
			return nil, fmt.Errorf("--pick: %w", err)
		}
		if _, ok := c.(plan.Indexes); !ok {
			return nil, fmt.Errorf("--pick wants numbers, got %q", pick)
		}
		return c, nil
	case filter != "":
		return plan.Filter{Text: filter}, nil
	}
	return nil, nil
}

// promptSelection shows the numbered plan and reads one selection.
// Returns nil when the user quits.
func promptSelection(in io.Reader, entries []plan.Entry) plan.Criterion {
	printEntryList(entries)
	reader := bufio.NewReader(in)
	for {
		fmt.Print("\nSelect files to download (numbers, filter text, 'all', 'q' to quit): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "q" || line == "quit" {
			return nil
		}
		c, parseErr := plan.ParseSelection(line)
		if parseErr != nil {
			fmt.Println("Please enter a selection.")
			continue
		}
		return c
	}
}

func reportResults(results []fetch.Result) error {
	var done, skipped, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
			fmt.Printf("FAILED  %s: %v\n", res.Job.FileName, res.Err)
		case res.Skipped:
			skipped++
			if !quietOutput {
				fmt.Printf("skipped %s (already downloaded)\n", res.Job.FileName)
			}
		default:
			done++
			if !quietOutput {
				fmt.Printf("saved   %s (%s)\n", res.Path, formatSize(res.Size))
			}
		}
	}

	fmt.Printf("\n%d downloaded, %d skipped, %d failed\n", done, skipped, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(results))
	}
	return nil
}
