package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/nexusdl/internal/fetch"
	"github.com/vmunix/nexusdl/internal/history"
	"github.com/vmunix/nexusdl/internal/plan"
	"github.com/vmunix/nexusdl/pkg/gamedomain"
)

var (
	getOutput string
	getDir    string
	getForce  bool
)

var getCmd = &cobra.Command{
	Use:   "get <game> <mod-id> <file-id>",
	Short: "Download a single Nexus file by game, mod and file ID",
	Long: `Downloads one file directly, without a manifest. The game can be a
Nexus domain slug or a common alias ("SkyrimSE", "Fallout 4", ...).`,
	Args: cobra.ExactArgs(3),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getOutput, "output", "o", "", "Local file name (default derived from the IDs)")
	getCmd.Flags().StringVar(&getDir, "dir", "", "Target directory (overrides config)")
	getCmd.Flags().BoolVar(&getForce, "force", false, "Re-download even if recorded in history")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	table := gamedomain.Default()
	domain, ok := table.Resolve(args[0])
	if !ok {
		if hint, found := table.Suggest(args[0]); found {
			return fmt.Errorf("unrecognized game %q (did you mean %q?)", args[0], hint)
		}
		return fmt.Errorf("unrecognized game %q (see 'nexusdl games')", args[0])
	}

	modID, err := parsePositiveID("mod-id", args[1])
	if err != nil {
		return err
	}
	fileID, err := parsePositiveID("file-id", args[2])
	if err != nil {
		return err
	}

	name := getOutput
	if name == "" {
		name = fmt.Sprintf("%s-%d-%d", domain, modID, fileID)
	}
	fileName := plan.SanitizeFileName(name)
	if fileName == "" {
		fileName = fmt.Sprintf("%s-%d-%d", domain, modID, fileID)
	}

	job := plan.Job{
		Domain:   domain,
		ModID:    modID,
		FileID:   fileID,
		Name:     name,
		FileName: fileName,
	}

	client, err := newAPIClient(cfg)
	if err != nil {
		return err
	}

	dir := cfg.Download.Dir
	if getDir != "" {
		dir = getDir
	}

	opts := []fetch.Option{
		fetch.WithForce(getForce),
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
	results := runner.Run(cmd.Context(), []plan.Job{job})
	return reportResults(results)
}

func parsePositiveID(what, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", what, raw)
	}
	return n, nil
}
