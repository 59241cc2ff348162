package main

import (
	"fmt"
	"os"

	"twstock"
	"twstock/fetch"
	"twstock/parsers"
	"twstock/reports"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flags
var (
	output  string
	format  string
	offline bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get stock_id start_date [end_date]",
	Short: "Downloads daily deal info and saves it to a file",
	Long: `Downloads the TWSE daily deal info for one stock between start_date and
end_date (both YYYY-MM-DD; end_date defaults to today) and saves it to a CSV
or Excel file. The stock may also be given by (partial) name, resolved
against the local security catalog.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := get(args); err != nil {
			fmt.Println("[✗]", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&output, "output", "o", "stock_data.csv", "Output file name")
	getCmd.Flags().StringVarP(&format, "format", "r", reports.FormatCsv, "Output format: csv|xlsx")
	getCmd.Flags().BoolVar(&offline, "offline", false, "Serve records from the local cache, without network access")
}

func get(args []string) error {
	log := reports.NewLogger(os.Stderr)

	db, err := openDatabase()
	if err != nil {
		return err
	}
	store, err := parsers.NewDealSqlite(db)
	if err != nil {
		return err
	}
	stock := fetch.NewStockFetch(store, log, viper.GetString("token"))

	id, err := resolveStock(stock, args[0])
	if err != nil {
		return err
	}
	var endDate string
	if len(args) == 3 {
		endDate = args[2]
	}
	q, err := twstock.NewQuery(id, args[1], endDate)
	if err != nil {
		return err
	}

	var records []twstock.Record
	if offline {
		records, err = stock.CachedDeals(q)
	} else {
		records, err = stock.Deals(q)
	}
	if err != nil {
		// a failed fetch still produces a file; the reason stays on the log
		log.Error("%v", err)
		records = nil
	}

	filename, err := reports.Save(twstock.BuildTable(records), output, format)
	if err != nil {
		return err
	}

	info, err := os.Stat(filename)
	if err != nil {
		return err
	}
	fmt.Printf("[✓] %s row(s) saved to %s (%s)\n",
		humanize.Comma(int64(len(records))), filename, humanize.Bytes(uint64(info.Size())))

	return nil
}
