package cmd

import (
	"fmt"
	"os"

	"serptally/internal/batch"
	"serptally/internal/config"
	"serptally/internal/output"
	"serptally/internal/serp"
	"serptally/internal/terms"

	"github.com/spf13/cobra"
)

var (
	runInput    string
	runOutput   string
	runEndpoint string
	runDomain   string
	runLoc      string
	runLang     string
	runDevice   string
	runSerpType string
	runPage     string
	runVerbatim string
	runWorkers  int
	runVerbose  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a CSV of search terms and tally ranking hostnames",
	Long: `Reads search terms from the input CSV (column "search_terms"), queries the
SERP API for each term over a bounded worker pool, and appends one
(term, hostname, count) row per ranking hostname to the output CSV.

The output file is opened in append mode, so repeated runs accumulate
rows. Failed terms are reported individually and never abort the batch.`,
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := config.GetAPIKey()
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "Error: no API key configured.")
			fmt.Fprintln(os.Stderr, "Configure your API key using: serptally config set-key <YOUR_API_KEY>")
			return
		}
		endpoint := runEndpoint
		if endpoint == "" {
			endpoint = config.GetAPIURL()
		}
		if endpoint == "" {
			fmt.Fprintln(os.Stderr, "Error: no API endpoint configured.")
			fmt.Fprintln(os.Stderr, "Set one using: serptally config set-url <URL> or --endpoint")
			return
		}
		if runInput == "" {
			fmt.Fprintln(os.Stderr, "Error: an input CSV is required (-i terms.csv).")
			return
		}

		payload := serp.Payload{
			Domain:   runDomain,
			Loc:      runLoc,
			Lang:     runLang,
			Device:   runDevice,
			SerpType: runSerpType,
			Page:     runPage,
			Verbatim: runVerbatim,
		}
		if err := validatePayload(payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		termList, err := terms.Load(runInput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading terms: %v\n", err)
			return
		}
		if len(termList) == 0 {
			fmt.Fprintln(os.Stderr, "Error: the input file contains no search terms.")
			return
		}

		sink, err := output.NewAppender(runOutput)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening output file: %v\n", err)
			return
		}
		defer sink.Close()

		logger := newLogger(runVerbose)
		client := serp.NewClient(endpoint, apiKey, payload, logger)
		runner := batch.NewRunner(client, sink, logger, runWorkers)

		results := runner.Run(cmd.Context(), termList)

		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "Failed to process term %q: %v\n", res.Term, res.Err)
			}
		}
		fmt.Fprintf(os.Stderr, "Processed %d terms (%d failed). Rows appended to %s\n",
			len(results), failed, runOutput)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Input CSV with a search_terms column (required)")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "output.csv", "Output CSV to append rows to")
	runCmd.Flags().StringVar(&runEndpoint, "endpoint", "", "SERP API endpoint (default from config)")
	runCmd.Flags().StringVar(&runDomain, "domain", "google.com", "Search engine domain")
	runCmd.Flags().StringVar(&runLoc, "loc", "Delhi,India", "Search location")
	runCmd.Flags().StringVar(&runLang, "lang", "en", "Result language")
	runCmd.Flags().StringVar(&runDevice, "device", "desktop", "Device: desktop, mobile, tablet")
	runCmd.Flags().StringVar(&runSerpType, "serp-type", "web", "SERP type: web, news, images, videos")
	runCmd.Flags().StringVar(&runPage, "page", "1", "Result page number")
	runCmd.Flags().StringVar(&runVerbatim, "verbatim", "0", "Verbatim flag (0 or 1)")
	runCmd.Flags().IntVar(&runWorkers, "workers", batch.DefaultWorkers, "Concurrent requests (10-100)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Verbose worker logging")
}

// validatePayload rejects enum values the API would refuse before any
// request is made.
func validatePayload(p serp.Payload) error {
	switch p.Device {
	case "desktop", "mobile", "tablet":
	default:
		return fmt.Errorf("invalid device %q (expected desktop, mobile or tablet)", p.Device)
	}
	switch p.SerpType {
	case "web", "news", "images", "videos":
	default:
		return fmt.Errorf("invalid serp type %q (expected web, news, images or videos)", p.SerpType)
	}
	return nil
}
