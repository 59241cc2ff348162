package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"twstock"
	"twstock/fetch"
	"twstock/parsers"

	"github.com/manifoldco/promptui"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Directory where the deal cache and the security catalog are stored
const dataDir = ".data"

const catalogFile = dataDir + "/stocks.yml"

// openDatabase opens the local deal cache.
func openDatabase() (db *sql.DB, err error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, err
	}
	connStr := "file:" + dataDir + "/twstock.db?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", connStr)
	if err != nil {
		return db, errors.Wrap(err, "database open failed")
	}
	db.SetMaxOpenConns(1)

	return
}

// loadCatalog returns the local security catalog, downloading and saving it
// first when missing or when 'update' is set.
func loadCatalog(stock *fetch.StockFetch, update bool) ([]twstock.StockInfo, error) {
	if !update {
		if c, err := parsers.CatalogFromYaml(catalogFile); err == nil {
			return c.Stocks, nil
		}
	}

	stocks, err := stock.Catalog()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, err
	}
	if err := parsers.CatalogToYaml(stocks, catalogFile); err != nil {
		return nil, err
	}

	return stocks, nil
}

// resolveStock turns the command line argument into a stock id: valid ids
// pass through untouched; anything else is searched on the catalog by name,
// prompting the user when more than one security matches.
func resolveStock(stock *fetch.StockFetch, arg string) (string, error) {
	if twstock.IsStockID(arg) {
		return arg, nil
	}

	stocks, err := loadCatalog(stock, false)
	if err != nil {
		return "", err
	}

	found := parsers.SearchStocks(stocks, arg)
	switch len(found) {
	case 0:
		return "", errors.Errorf("no security matches %q", arg)
	case 1:
		return found[0].ID, nil
	}

	list := make([]string, len(found))
	for i, f := range found {
		list[i] = fmt.Sprintf("%s  %s", f.ID, f.Name)
	}
	chosen := promptUser(list, "")
	if chosen == "" {
		return "", errors.New("no security selected")
	}
	return strings.Fields(chosen)[0], nil
}

// promptUser presents a navigable list to be selected on CLI.
func promptUser(list []string, label string) (result string) {
	if label == "" {
		label = "Select the security"
	}

	prompt := promptui.Select{
		Label: label,
		Items: list,
		Size:  10,
	}

	_, result, err := prompt.Run()

	if err != nil {
		fmt.Printf("Prompt failed %v\n", err)
		return
	}

	return
}
