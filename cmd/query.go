package cmd

import (
	"fmt"
	"os"
	"sort"

	"serptally/internal/config"
	"serptally/internal/serp"

	"github.com/spf13/cobra"
)

var (
	queryEndpoint string
	queryDomain   string
	queryLoc      string
	queryLang     string
	queryDevice   string
	querySerpType string
	queryPage     string
	queryVerbatim string
	queryVerbose  bool
)

var queryCmd = &cobra.Command{
	Use:   "query [term]",
	Short: "Tally ranking hostnames for a single search term",
	Long: `Query the SERP API for one term and print the hostnames of its top
organic results with their occurrence counts.
Examples:
  serptally query 'best espresso machine'
  serptally query 'vpn reviews' --loc 'London,United Kingdom' --device mobile`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		apiKey := config.GetAPIKey()
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "Error: no API key configured.")
			fmt.Fprintln(os.Stderr, "Configure your API key using: serptally config set-key <YOUR_API_KEY>")
			return
		}
		endpoint := queryEndpoint
		if endpoint == "" {
			endpoint = config.GetAPIURL()
		}
		payload := serp.Payload{
			Domain:   queryDomain,
			Loc:      queryLoc,
			Lang:     queryLang,
			Device:   queryDevice,
			SerpType: querySerpType,
			Page:     queryPage,
			Verbatim: queryVerbatim,
		}
		if err := validatePayload(payload); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		term := args[0]
		client := serp.NewClient(endpoint, apiKey, payload, newLogger(queryVerbose))

		tally, err := client.Live(cmd.Context(), term)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying: %v\n", err)
			return
		}
		if len(tally) == 0 {
			fmt.Println("No organic results.")
			return
		}

		// Highest count first, hostname as tie-break.
		hosts := make([]string, 0, len(tally))
		for host := range tally {
			hosts = append(hosts, host)
		}
		sort.Slice(hosts, func(i, j int) bool {
			if tally[hosts[i]] != tally[hosts[j]] {
				return tally[hosts[i]] > tally[hosts[j]]
			}
			return hosts[i] < hosts[j]
		})
		for _, host := range hosts {
			fmt.Printf("%s: %d\n", host, tally[host])
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryEndpoint, "endpoint", "", "SERP API endpoint (default from config)")
	queryCmd.Flags().StringVar(&queryDomain, "domain", "google.com", "Search engine domain")
	queryCmd.Flags().StringVar(&queryLoc, "loc", "Delhi,India", "Search location")
	queryCmd.Flags().StringVar(&queryLang, "lang", "en", "Result language")
	queryCmd.Flags().StringVar(&queryDevice, "device", "desktop", "Device: desktop, mobile, tablet")
	queryCmd.Flags().StringVar(&querySerpType, "serp-type", "web", "SERP type: web, news, images, videos")
	queryCmd.Flags().StringVar(&queryPage, "page", "1", "Result page number")
	queryCmd.Flags().StringVar(&queryVerbatim, "verbatim", "0", "Verbatim flag (0 or 1)")
	queryCmd.Flags().BoolVarP(&queryVerbose, "verbose", "v", false, "Verbose request logging")
}
