package main

import (
	"fmt"
	"os"

	"twstock/fetch"
	"twstock/parsers"
	"twstock/reports"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var updateCatalog bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [term]",
	Short: "Lists TWSE securities matching a name or id",
	Long: `Searches the local security catalog by (partial) name or id and prints the
matches. Without a term, the whole catalog is printed. The catalog is
downloaded on first use and kept on ` + catalogFile + `.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := list(args); err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVarP(&updateCatalog, "update", "u", false, "Refresh the local security catalog before searching")
}

func list(args []string) error {
	log := reports.NewLogger(os.Stderr)
	stock := fetch.NewStockFetch(nil, log, viper.GetString("token"))

	stocks, err := loadCatalog(stock, updateCatalog)
	if err != nil {
		return err
	}

	var term string
	if len(args) == 1 {
		term = args[0]
	}
	found := parsers.SearchStocks(stocks, term)
	if len(found) == 0 {
		return errors.Errorf("no security matches %q", term)
	}

	for _, s := range found {
		fmt.Printf("%s\t%s\t%s\n", s.ID, s.Name, s.Industry)
	}

	return nil
}
