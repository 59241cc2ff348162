package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the base command; subcommands register themselves on init().
var rootCmd = &cobra.Command{
	Use:   "twstock",
	Short: "Fetches Taiwan stock market data and saves it to CSV or Excel files",
	Long: `twstock downloads TWSE daily deal info (股價日成交資訊) from the FinMind
data API and saves it to CSV or Excel files. Downloaded records are kept on
a local cache, so past queries keep working when the API is unreachable.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("[✗]", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.twstock.yaml)")
	rootCmd.PersistentFlags().String("token", "", "FinMind API token (optional, raises the request quota)")
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".twstock")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
