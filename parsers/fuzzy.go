package parsers

import (
	"strings"

	"twstock"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchStocks returns the catalog entries matching 'term'. An exact id
// match wins outright; otherwise ids and names are matched fuzzily, so a
// partial name like "台積" finds 台積電.
func SearchStocks(stocks []twstock.StockInfo, term string) []twstock.StockInfo {
	term = strings.TrimSpace(term)
	if term == "" {
		return stocks
	}

	for _, s := range stocks {
		if strings.EqualFold(s.ID, term) {
			return []twstock.StockInfo{s}
		}
	}

	var found []twstock.StockInfo
	for _, s := range stocks {
		if fuzzy.MatchFold(term, s.ID) || fuzzy.MatchFold(term, s.Name) {
			found = append(found, s)
		}
	}
	return found
}
