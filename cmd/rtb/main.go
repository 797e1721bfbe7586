package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/rtb-client/cmd/rtb/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rtb",
	Short: "Real-time Bidding API CLI",
	Long: `A command-line interface for the Real-time Bidding API.

This CLI lists and manages the bidder accounts, endpoints and publisher
connections available to a service account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.rtb/config.yml)")
	rootCmd.PersistentFlags().StringP("key-file", "k", "", "path to a service account JSON key")
	rootCmd.PersistentFlags().String("endpoint", "", "API endpoint URL")
	rootCmd.PersistentFlags().String("user-project", "", "Google Cloud project billed for API quota")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, text, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log retries and other notable events")
	rootCmd.PersistentFlags().Bool("debug", false, "log every HTTP request and response")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("key_file", rootCmd.PersistentFlags().Lookup("key-file"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("user_project", rootCmd.PersistentFlags().Lookup("user-project"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewBiddersCommand())
	rootCmd.AddCommand(commands.NewEndpointsCommand())
	rootCmd.AddCommand(commands.NewPublisherConnectionsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.rtb/config.yml
		viper.AddConfigPath(filepath.Join(home, ".rtb"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// RTB_KEY_FILE, RTB_ENDPOINT, ...
	viper.SetEnvPrefix("RTB")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
