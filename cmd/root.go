package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"serptally/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "serptally",
	Short: "serptally - tally the hostnames ranking for your search terms",
	Long: `serptally queries a SERP API for each search term in a list, extracts the
hostnames appearing in the top organic results, and appends per-term hostname
frequencies to a CSV file for bulk ranking audits.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.InitConfig)
}

// newLogger builds the stderr logger used by the client and batch layers.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
