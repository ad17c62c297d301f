package cmd

import (
	"fmt"
	"serptally/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure serptally settings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set the API key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		err := config.SetAPIKey(key)
		if err != nil {
			fmt.Printf("Error setting API key: %v\n", err)
			return
		}
		fmt.Println("API key set successfully.")
	},
}

var getKeyCmd = &cobra.Command{
	Use:   "get-key",
	Short: "Get the current API key",
	Run: func(cmd *cobra.Command, args []string) {
		key := config.GetAPIKey()
		if key == "" {
			fmt.Println("API key is not set.")
		} else {
			fmt.Printf("Current API key: %s\n", key)
		}
	},
}

var setURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the SERP API endpoint",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := args[0]
		err := config.SetAPIURL(url)
		if err != nil {
			fmt.Printf("Error setting API endpoint: %v\n", err)
			return
		}
		fmt.Println("API endpoint set successfully.")
	},
}

var getURLCmd = &cobra.Command{
	Use:   "get-url",
	Short: "Get the current SERP API endpoint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Current API endpoint: %s\n", config.GetAPIURL())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(getKeyCmd)
	configCmd.AddCommand(setURLCmd)
	configCmd.AddCommand(getURLCmd)
}
