package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	APIKey = "api_key"
	APIURL = "api_url"

	// DefaultAPIURL is the SerpHouse live SERP endpoint.
	DefaultAPIURL = "https://api.serphouse.com/serp/live"
)

// InitConfig initializes the configuration
func InitConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".serptally")

	viper.SetDefault(APIURL, DefaultAPIURL)

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// SetAPIKey sets the API key in the configuration file
func SetAPIKey(key string) error {
	viper.Set(APIKey, key)
	return writeConfig()
}

// GetAPIKey returns the API key from the configuration
func GetAPIKey() string {
	return viper.GetString(APIKey)
}

// SetAPIURL sets the SERP API endpoint in the configuration file
func SetAPIURL(url string) error {
	viper.Set(APIURL, url)
	return writeConfig()
}

// GetAPIURL returns the SERP API endpoint from the configuration
func GetAPIURL() string {
	return viper.GetString(APIURL)
}

func writeConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, ".serptally.yaml")
	return viper.WriteConfigAs(configPath)
}
