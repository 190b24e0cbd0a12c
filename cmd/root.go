package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/podintel/podintel-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "podintel-api",
	Short: "Podcast intelligence API server",
	Long: `PodIntel API - podcast transcription and summarization service

Registers podcasts by RSS feed, downloads episode audio, transcribes it
with Groq Whisper, and produces a structured four-section summary
(executive summary, key themes, notable quotes, actionable insights).
Processing runs asynchronously; clients poll the episode endpoint for
status and results.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads configuration before a command runs. The version and help
// commands work without config, so failures there are skipped.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
