package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/nexusdl/internal/manifest"
	"github.com/vmunix/nexusdl/internal/plan"
	"github.com/vmunix/nexusdl/pkg/gamedomain"
)

var planFilter string

var planCmd = &cobra.Command{
	Use:   "plan <manifest.json>",
	Short: "List the downloadable Nexus files in a modlist manifest",
	Long: `Parses a Wabbajack-style modlist manifest and lists every Nexus
download it references, numbered the way fetch will number them.
Entries that cannot be turned into a download (unknown game, bad IDs)
are reported at the end without aborting the listing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFilter, "filter", "", "Only list entries matching this text")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	entries, problems, err := buildPlan(args[0])
	if err != nil {
		return err
	}

	if planFilter != "" {
		jobs, _ := plan.Resolve(entries, plan.Filter{Text: planFilter})
		if jsonOutput {
			printJSON(struct {
				Jobs     []plan.Job    `json:"jobs"`
				Problems []planProblem `json:"problems,omitempty"`
			}{jobs, problemsJSON(problems)})
			return nil
		}
		fmt.Printf("%d of %d entries match %q:\n\n", len(jobs), len(entries), planFilter)
		for i, j := range jobs {
			fmt.Printf("  %3d. %s (%s, mod %d, file %d)\n", i+1, j.Name, j.Domain, j.ModID, j.FileID)
		}
		printProblems(problems)
		return nil
	}

	if jsonOutput {
		printJSON(struct {
			Entries  []plan.Entry  `json:"entries"`
			Problems []planProblem `json:"problems,omitempty"`
		}{entries, problemsJSON(problems)})
		return nil
	}

	fmt.Printf("Found %d downloadable Nexus files in %s:\n\n", len(entries), args[0])
	printEntryList(entries)
	printProblems(problems)
	return nil
}

// buildPlan runs the manifest through extraction and normalization. The
// returned entry order is the display order every selection refers to.
func buildPlan(path string) ([]plan.Entry, []plan.Problem, error) {
	root, err := manifest.Load(path)
	if err != nil {
		return nil, nil, err
	}
	descriptors := manifest.Extract(root)
	entries, problems := plan.Normalize(descriptors, gamedomain.Default())
	return entries, problems, nil
}

func printEntryList(entries []plan.Entry) {
	for i, e := range entries {
		fmt.Printf("  %3d. %s (%s, mod %d, file %d)\n", i+1, e.Name, e.Domain, e.ModID, e.FileID)
	}
}

func printProblems(problems []plan.Problem) {
	if quietOutput || len(problems) == 0 {
		return
	}
	fmt.Printf("\nSkipped %d entries:\n", len(problems))
	for _, p := range problems {
		fmt.Printf("  - %s\n", p.String())
	}
}

type planProblem struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

func problemsJSON(problems []plan.Problem) []planProblem {
	if len(problems) == 0 {
		return nil
	}
	out := make([]planProblem, 0, len(problems))
	for _, p := range problems {
		out = append(out, planProblem{Source: p.Source, Error: p.Err.Error()})
	}
	return out
}
