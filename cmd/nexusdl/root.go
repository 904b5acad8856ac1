package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath  string
	jsonOutput  bool
	quietOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "nexusdl",
	Short: "Bulk downloader for Nexus Mods",
	Long: `nexusdl - bulk downloader for Nexus Mods

Downloads mod archives through the Nexus Mods API, either one at a time
or in bulk by resolving a Wabbajack-style modlist manifest into a
download plan.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: standard search order)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quietOutput, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("nexusdl {{.Version}}\n")
}
